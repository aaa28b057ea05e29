package jwtclaimsreader

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

// Subject returns the subject of the token validated for the request, or an
// empty string if there is none.
func Subject(c *fiber.Ctx) string {
	t, ok := c.Locals("user").(*jwt.Token)
	if !ok {
		return ""
	}
	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return ""
	}
	if value, ok := claims["sub"].(string); ok {
		return value
	}
	return ""
}

// GenerateToken signs a token for subject valid until expiration.
func GenerateToken(subject string, expiration time.Time, secret []byte) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": jwt.NewNumericDate(expiration),
	})

	return token.SignedString(secret)
}
