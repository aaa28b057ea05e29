package main

import (
	"fmt"
	"log"
	"time"

	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/i18n"
	"github.com/svera/nanoperiod/internal/tz"
	"github.com/svera/nanoperiod/internal/webserver"
	"github.com/svera/nanoperiod/internal/webserver/infrastructure"
)

func run(cfg Config) error {
	db := infrastructure.Connect(cfg.DatabasePath, cfg.Verbose)

	printers, err := i18n.Printers(webserver.Translations(), webserver.DefaultLanguage)
	if err != nil {
		return err
	}

	resolver := tz.NewDatabase()
	if _, err := resolver.Location(cfg.DefaultZone); err != nil {
		return err
	}

	webserverConfig := webserver.Config{
		Version:           version,
		JwtSecret:         []byte(cfg.JwtSecret),
		DefaultZone:       cfg.DefaultZone,
		MaxSequenceLength: cfg.MaxSequenceLength,
		Workers:           cfg.Workers,
		ResultsPerPage:    cfg.ResultsPerPage,
		BodyLimit:         cfg.BodyLimit,
		ReadTimeout:       time.Duration(cfg.ReadTimeout) * time.Second,
		Verbose:           cfg.Verbose,
	}
	if cfg.JwtSecret == "" {
		log.Println("No JWT secret configured, anyone can save and delete periods")
	}

	controllers := webserver.SetupControllers(webserverConfig, db, calendar.New(resolver))
	app := webserver.New(webserverConfig, i18n.NewTranslator(printers, webserver.DefaultLanguage), i18n.Languages(printers), controllers)

	fmt.Printf("nanoperiod version %s started listening on port %d\n\n", version, cfg.Port)
	return app.Listen(fmt.Sprintf(":%d", cfg.Port))
}
