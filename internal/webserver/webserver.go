package webserver

import (
	"embed"
	"io/fs"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/svera/nanoperiod/internal/i18n"
)

//go:embed embedded
var embedded embed.FS

const DefaultLanguage = "en"

type Config struct {
	Version           string
	JwtSecret         []byte
	DefaultZone       string
	MaxSequenceLength int
	Workers           int
	ResultsPerPage    int
	BodyLimit         int
	ReadTimeout       time.Duration
	Verbose           bool
}

// Translations returns the embedded translation files.
func Translations() fs.FS {
	dir, err := fs.Sub(embedded, "embedded/translations")
	if err != nil {
		log.Fatal(err)
	}
	return dir
}

// New builds a new Fiber application and sets up the required routes
func New(cfg Config, translator i18n.Translator, supportedLanguages []string, controllers Controllers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               cfg.Version,
		BodyLimit:             cfg.BodyLimit,
		ReadTimeout:           cfg.ReadTimeout,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler(translator),
	})

	app.Use(recover.New())
	if cfg.Verbose {
		app.Use(logger.New())
	}

	routes(app, controllers, supportedLanguages)
	return app
}
