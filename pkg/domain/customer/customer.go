// Package customer defines the read model the ledger consumes from the
// customer directory. Customers are fetched, never stored.
package customer

import "errors"

var (
	// ErrNotFound is returned when the directory knows no customer with the
	// given id.
	ErrNotFound = errors.New("customer does not exist")

	// ErrFetchFailed is returned when the directory lookup itself fails.
	ErrFetchFailed = errors.New("failed to fetch customer")

	// ErrBanned is returned when opening an account for a banned customer.
	ErrBanned = errors.New("customer is banned")
)

// Customer is the directory's answer for a customer id.
type Customer struct {
	ID     string `json:"id"`
	Banned bool   `json:"banned"`
}
