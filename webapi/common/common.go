// Package common holds the response envelope, problem-details and binding
// helpers shared by the webapi handlers.
package common

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"github.com/mboissel/ledger/pkg/domain/account"
	"github.com/mboissel/ledger/pkg/domain/customer"
)

// Response defines the standard API response structure for success cases.
type Response struct {
	Status  int    `json:"status"`         // HTTP status code
	Message string `json:"message"`        // Human-readable explanation
	Data    any    `json:"data,omitempty"` // Response data
}

// ProblemDetails follows RFC 9457 Problem Details for HTTP APIs.
type ProblemDetails struct {
	Type     string `json:"type,omitempty"`     // A URI reference that identifies the problem type
	Title    string `json:"title"`              // Short, human-readable summary
	Status   int    `json:"status"`             // HTTP status code
	Detail   string `json:"detail,omitempty"`   // Human-readable explanation
	Instance string `json:"instance,omitempty"` // URI reference that identifies the specific occurrence
}

// SuccessResponseJSON writes the standard success envelope.
func SuccessResponseJSON(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// ProblemDetailsJSON writes an RFC 9457 problem response. The status is
// derived from the error's place in the ledger's error taxonomy.
func ProblemDetailsJSON(c *fiber.Ctx, title string, err error) error {
	status := ErrorToStatusCode(err)
	pd := ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Instance: c.OriginalURL(),
	}
	if err != nil {
		pd.Detail = err.Error()
	}
	return c.Status(status).JSON(pd, "application/problem+json")
}

// ErrorResponseJSON writes a problem response with an explicit status.
func ErrorResponseJSON(c *fiber.Ctx, status int, title, detail string) error {
	return c.Status(status).JSON(ProblemDetails{
		Type:     "about:blank",
		Title:    title,
		Status:   status,
		Detail:   detail,
		Instance: c.OriginalURL(),
	}, "application/problem+json")
}

// ErrorToStatusCode maps the ledger's closed error taxonomy to HTTP status
// codes: validation and business violations are client errors, storage and
// directory-lookup failures are server errors.
func ErrorToStatusCode(err error) int {
	switch {
	case errors.Is(err, account.ErrAccountNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, account.ErrAccountAlreadyExists):
		return fiber.StatusConflict
	case errors.Is(err, account.ErrInsufficientBalance),
		errors.Is(err, account.ErrAccountClosed),
		errors.Is(err, account.ErrBalanceNotZero):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, account.ErrNegativeDeposit),
		errors.Is(err, account.ErrNegativeWithdraw),
		errors.Is(err, account.ErrNegativeTransfer),
		errors.Is(err, account.ErrNegativeOpeningBalance):
		return fiber.StatusBadRequest
	case errors.Is(err, customer.ErrBanned),
		errors.Is(err, customer.ErrNotFound):
		return fiber.StatusBadRequest
	case errors.Is(err, customer.ErrFetchFailed),
		errors.Is(err, account.ErrStorage):
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

// BindAndValidate parses the request body and validates it using
// go-playground/validator. On failure the 400 response is already written
// and ok is false; the handler must not write again.
func BindAndValidate[T any](c *fiber.Ctx) (*T, bool) {
	var input T
	if err := c.BodyParser(&input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Invalid request body", err.Error()) //nolint:errcheck
		return nil, false
	}
	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		ErrorResponseJSON(c, fiber.StatusBadRequest, "Validation failed", err.Error()) //nolint:errcheck
		return nil, false
	}
	return &input, true
}
