// Package customer serves the built-in customer directory stub: a fixed set
// of known and banned customer ids behind the directory's REST contract.
// Pointing CUSTOMER_API_URL at the service itself makes a local instance
// runnable end to end without a real directory.
package customer

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/mboissel/ledger/pkg/domain/customer"
)

// KnownCustomers are ids the stub directory resolves as existing, not banned.
var KnownCustomers = map[string]bool{"bcavy": true, "sdaviet": true}

// BannedCustomers are ids the stub directory resolves as existing and banned.
var BannedCustomers = map[string]bool{"cdirand": true, "fvenere": true}

// Routes registers the directory stub route.
//
//   - GET /customers/:id : Resolve a customer id to {id, banned} or 404.
func Routes(app *fiber.App) {
	app.Get("/customers/:id", Read())
}

// Read returns the handler resolving a customer id.
func Read() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")
		switch {
		case KnownCustomers[strings.ToLower(id)]:
			return c.JSON(customer.Customer{ID: id, Banned: false})
		case BannedCustomers[strings.ToLower(id)]:
			return c.JSON(customer.Customer{ID: id, Banned: true})
		default:
			return c.SendStatus(fiber.StatusNotFound)
		}
	}
}
