package saved

import (
	"github.com/svera/nanoperiod/internal/result"
	"github.com/svera/nanoperiod/internal/webserver/model"
)

type savedRepository interface {
	List(page int, resultsPerPage int) (result.Paginated[[]model.SavedPeriod], error)
	FindBySlug(slug string) (*model.SavedPeriod, error)
	Create(s *model.SavedPeriod) error
	Delete(slug string) error
}

type Config struct {
	ResultsPerPage int
}

type Controller struct {
	repository savedRepository
	config     Config
}

// NewController returns a new instance of the saved periods controller
func NewController(repository savedRepository, cfg Config) *Controller {
	return &Controller{
		repository: repository,
		config:     cfg,
	}
}
