package account

import (
	"github.com/shopspring/decimal"

	domain "github.com/mboissel/ledger/pkg/domain/account"
)

// OpenAccountRequest is the body of POST /accounts. A missing balance opens
// the account at zero.
type OpenAccountRequest struct {
	Customer string          `json:"customer" validate:"required"`
	Balance  decimal.Decimal `json:"balance"`
}

// AmountRequest is the body of the deposit, withdraw and transfer routes.
// The amount's sign is business-validated by the service, not here, so a
// zero or negative amount surfaces as its ledger error kind.
type AmountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// AccountResponse is the wire shape of an account.
type AccountResponse struct {
	ID       string          `json:"id"`
	Customer string          `json:"customer"`
	Balance  decimal.Decimal `json:"balance"`
	Closed   bool            `json:"closed"`
}

// TransferResponse pairs both updated legs of a transfer.
type TransferResponse struct {
	Source AccountResponse `json:"source"`
	Target AccountResponse `json:"target"`
}

func toResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:       a.ID.String(),
		Customer: a.Customer,
		Balance:  a.Balance,
		Closed:   a.Closed,
	}
}

func toTransferResponse(r *domain.TransferResult) TransferResponse {
	return TransferResponse{
		Source: toResponse(&r.Source),
		Target: toResponse(&r.Target),
	}
}
