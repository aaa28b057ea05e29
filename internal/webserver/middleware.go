package webserver

import (
	"github.com/gofiber/fiber/v2"
	jwtware "github.com/gofiber/jwt/v3"
	"github.com/svera/nanoperiod/internal/webserver/jwtclaimsreader"
)

// RequireToken only lets through requests carrying a bearer JWT signed with
// jwtSecret. The token subject is stored in the "Author" local. Without a
// secret every request is let through.
func RequireToken(jwtSecret []byte) func(*fiber.Ctx) error {
	if len(jwtSecret) == 0 {
		return func(c *fiber.Ctx) error {
			return c.Next()
		}
	}

	return jwtware.New(jwtware.Config{
		SigningKey:    jwtSecret,
		SigningMethod: "HS256",
		TokenLookup:   "header:Authorization",
		AuthScheme:    "Bearer",
		SuccessHandler: func(c *fiber.Ctx) error {
			c.Locals("Author", jwtclaimsreader.Subject(c))
			return c.Next()
		},
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fiber.ErrUnauthorized
		},
	})
}
