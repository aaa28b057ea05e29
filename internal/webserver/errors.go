package webserver

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/batch"
	"github.com/svera/nanoperiod/internal/i18n"
	"github.com/svera/nanoperiod/internal/period"
	"github.com/svera/nanoperiod/internal/sequence"
	"github.com/svera/nanoperiod/internal/tz"
	"gorm.io/gorm"
)

// ErrorHandler writes errors as a JSON object with a translated message.
// Errors not caused by the request are logged and hidden behind a generic
// internal server error.
func ErrorHandler(translator i18n.Translator) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		lang, _ := c.Locals("Lang").(string)
		code, message := describe(err, lang, translator)
		return c.Status(code).JSON(fiber.Map{
			"error": message,
		})
	}
}

func describe(err error, lang string, translator i18n.Translator) (int, string) {
	var (
		parseErr *period.ParseError
		zoneErr  *tz.UnknownZoneError
		fiberErr *fiber.Error
	)

	switch {
	case errors.As(err, &parseErr):
		return fiber.StatusBadRequest, translator.T(lang, "Cannot read \"%s\" as a period", parseErr.Text)
	case errors.As(err, &zoneErr):
		return fiber.StatusBadRequest, translator.T(lang, "Unknown time zone \"%s\"", zoneErr.Zone)
	case errors.Is(err, period.ErrDivideByZero):
		return fiber.StatusBadRequest, translator.T(lang, "Division by zero")
	case errors.Is(err, sequence.ErrNonConverging):
		return fiber.StatusBadRequest, translator.T(lang, "The sequence never reaches its end, check the step")
	case errors.Is(err, sequence.ErrNegativeLength):
		return fiber.StatusBadRequest, translator.T(lang, "The sequence length cannot be negative")
	case errors.Is(err, sequence.ErrTooLong):
		return fiber.StatusBadRequest, translator.T(lang, "The sequence is too long")
	case errors.Is(err, batch.ErrLengthMismatch):
		return fiber.StatusBadRequest, translator.T(lang, "Input lengths must be multiples of each other")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fiber.StatusNotFound, translator.T(lang, "Not Found")
	case errors.As(err, &fiberErr):
		return fiberErr.Code, translator.T(lang, fiberErr.Message)
	}

	log.Println(err)
	return fiber.StatusInternalServerError, translator.T(lang, "Internal Server Error")
}
