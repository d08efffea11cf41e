// Package account exposes the ledger operations over HTTP.
package account

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"

	accountsvc "github.com/mboissel/ledger/pkg/service/account"
	"github.com/mboissel/ledger/webapi/common"
)

// Routes registers the account routes.
//
//   - POST   /accounts                    : Open an account for a customer.
//   - GET    /accounts/:id                : Read an account.
//   - POST   /accounts/:id/deposit        : Deposit into an account.
//   - POST   /accounts/:id/withdraw       : Withdraw from an account.
//   - POST   /accounts/:from/:to/transfer : Transfer between two accounts.
//   - DELETE /accounts/:id                : Close an account.
func Routes(app *fiber.App, svc *accountsvc.Service) {
	app.Post("/accounts", Open(svc))
	app.Get("/accounts/:id", Read(svc))
	app.Post("/accounts/:id/deposit", Deposit(svc))
	app.Post("/accounts/:id/withdraw", Withdraw(svc))
	app.Post("/accounts/:from/:to/transfer", Transfer(svc))
	app.Delete("/accounts/:id", Close(svc))
}

// Open returns the handler opening an account for a customer.
func Open(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		input, ok := common.BindAndValidate[OpenAccountRequest](c)
		if !ok {
			return nil // error response already written
		}
		a, err := svc.Open(c.Context(), input.Customer, input.Balance)
		if err != nil {
			log.Errorf("Failed to open account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to open account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusCreated, "Account opened", toResponse(a))
	}
}

// Read returns the handler reading an account's current state.
func Read(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseAccountID(c, "id")
		if !ok {
			return nil
		}
		a, err := svc.Get(c.Context(), id)
		if err != nil {
			return common.ProblemDetailsJSON(c, "Failed to read account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account", toResponse(a))
	}
}

// Deposit returns the handler crediting an account.
func Deposit(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseAccountID(c, "id")
		if !ok {
			return nil
		}
		input, ok := common.BindAndValidate[AmountRequest](c)
		if !ok {
			return nil
		}
		a, err := svc.Deposit(c.Context(), id, input.Amount)
		if err != nil {
			log.Errorf("Failed to deposit: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to deposit", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Deposit successful", toResponse(a))
	}
}

// Withdraw returns the handler debiting an account.
func Withdraw(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseAccountID(c, "id")
		if !ok {
			return nil
		}
		input, ok := common.BindAndValidate[AmountRequest](c)
		if !ok {
			return nil
		}
		a, err := svc.Withdraw(c.Context(), id, input.Amount)
		if err != nil {
			log.Errorf("Failed to withdraw: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to withdraw", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Withdrawal successful", toResponse(a))
	}
}

// Transfer returns the handler moving money between two accounts.
func Transfer(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		from, ok := parseAccountID(c, "from")
		if !ok {
			return nil
		}
		to, ok := parseAccountID(c, "to")
		if !ok {
			return nil
		}
		input, ok := common.BindAndValidate[AmountRequest](c)
		if !ok {
			return nil
		}
		result, err := svc.Transfer(c.Context(), from, to, input.Amount)
		if err != nil {
			log.Errorf("Failed to transfer: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to transfer", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Transfer successful", toTransferResponse(result))
	}
}

// Close returns the handler closing an account.
func Close(svc *accountsvc.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseAccountID(c, "id")
		if !ok {
			return nil
		}
		a, err := svc.Close(c.Context(), id)
		if err != nil {
			log.Errorf("Failed to close account: %v", err)
			return common.ProblemDetailsJSON(c, "Failed to close account", err)
		}
		return common.SuccessResponseJSON(c, fiber.StatusOK, "Account closed", toResponse(a))
	}
}

// parseAccountID parses the route parameter as a UUID; on failure the 400
// response is already written and ok is false.
func parseAccountID(c *fiber.Ctx, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(param))
	if err != nil {
		common.ErrorResponseJSON(c, fiber.StatusBadRequest, //nolint:errcheck
			"Invalid account ID", "Account ID must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}
