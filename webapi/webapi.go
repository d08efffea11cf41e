// Package webapi wires the ledger's HTTP surface: account routes, the
// built-in customer directory stub and shared middleware.
package webapi

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	accountsvc "github.com/mboissel/ledger/pkg/service/account"
	accountweb "github.com/mboissel/ledger/webapi/account"
	"github.com/mboissel/ledger/webapi/common"
	customerweb "github.com/mboissel/ledger/webapi/customer"
)

// SetupApp initializes Fiber with middleware and all routes.
func SetupApp(svc *accountsvc.Service) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return common.ProblemDetailsJSON(c, "Internal Server Error", err)
		},
	})

	fiberApp.Use(recover.New())
	fiberApp.Use(requestid.New())
	fiberApp.Use(logger.New())

	accountweb.Routes(fiberApp, svc)
	customerweb.Routes(fiberApp)

	return fiberApp
}
