package webserver

import (
	"github.com/gofiber/fiber/v2"
	"github.com/svera/nanoperiod/internal/batch"
	"github.com/svera/nanoperiod/internal/calendar"
	"github.com/svera/nanoperiod/internal/sequence"
	"github.com/svera/nanoperiod/internal/webserver/controller/instants"
	"github.com/svera/nanoperiod/internal/webserver/controller/periods"
	"github.com/svera/nanoperiod/internal/webserver/controller/saved"
	"github.com/svera/nanoperiod/internal/webserver/controller/sequences"
	"github.com/svera/nanoperiod/internal/webserver/model"
	"gorm.io/gorm"
)

type Controllers struct {
	Periods      *periods.Controller
	Instants     *instants.Controller
	Sequences    *sequences.Controller
	Saved        *saved.Controller
	RequireToken func(c *fiber.Ctx) error
}

func SetupControllers(cfg Config, db *gorm.DB, engine *calendar.Engine) Controllers {
	savedRepository := &model.SavedPeriodRepository{DB: db}

	savedCfg := saved.Config{
		ResultsPerPage: cfg.ResultsPerPage,
	}

	return Controllers{
		Periods:      periods.NewController(),
		Instants:     instants.NewController(batch.NewMapper(engine, cfg.Workers), cfg.DefaultZone),
		Sequences:    sequences.NewController(sequence.NewGenerator(engine, cfg.MaxSequenceLength), cfg.DefaultZone),
		Saved:        saved.NewController(savedRepository, savedCfg),
		RequireToken: RequireToken(cfg.JwtSecret),
	}
}
