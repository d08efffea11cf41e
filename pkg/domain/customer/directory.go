package customer

import "context"

// Directory is the external customer lookup the ledger depends on. It is the
// only collaborator called across a network boundary, and only at account
// opening.
type Directory interface {
	// Fetch returns the customer for id, ErrNotFound if the directory does
	// not know it, or ErrFetchFailed on any lookup failure.
	Fetch(ctx context.Context, id string) (*Customer, error)
}
