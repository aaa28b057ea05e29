package controller

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/text/language"
)

// Root redirects to the API of the language that best matches the
// Accept-Language header. The first supported language is the default.
func Root(c *fiber.Ctx, supportedLanguages []string) error {
	return c.Redirect(fmt.Sprintf("/%s/api/saved", ChooseBestLanguage(c, supportedLanguages)))
}

func ChooseBestLanguage(c *fiber.Ctx, supportedLanguages []string) string {
	acceptHeader := c.Get(fiber.HeaderAcceptLanguage)
	tags := make([]language.Tag, len(supportedLanguages))
	for i, lang := range supportedLanguages {
		tags[i] = language.Make(lang)
	}
	languageMatcher := language.NewMatcher(tags)

	t, _, _ := language.ParseAcceptLanguage(acceptHeader)
	_, index, _ := languageMatcher.Match(t...)
	return supportedLanguages[index]
}
