package webserver

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/webserver/controller"
)

func routes(app *fiber.App, controllers Controllers, supportedLanguages []string) {
	langGroup := app.Group(fmt.Sprintf("/:lang<regex(%s)>", strings.Join(supportedLanguages, "|")), func(c *fiber.Ctx) error {
		c.Locals("Lang", c.Params("lang"))
		return c.Next()
	})

	api := langGroup.Group("/api")

	api.Get("/period", controllers.Periods.Detail)
	api.Post("/period/arith", controllers.Periods.Arith)

	api.Post("/instants", controllers.Instants.Instants)
	api.Post("/intervals", controllers.Instants.Intervals)

	api.Post("/sequence", controllers.Sequences.Sequence)

	api.Get("/saved", controllers.Saved.List)
	api.Get("/saved/:slug", controllers.Saved.Detail)
	api.Post("/saved", controllers.RequireToken, controllers.Saved.Create)
	api.Delete("/saved/:slug", controllers.RequireToken, controllers.Saved.Delete)

	app.Get("/", func(c *fiber.Ctx) error {
		return controller.Root(c, supportedLanguages)
	})
}
