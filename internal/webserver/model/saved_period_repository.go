package model

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/svera/nanoperiod/internal/result"
	"gorm.io/gorm"
)

type SavedPeriodRepository struct {
	DB *gorm.DB
}

func (r *SavedPeriodRepository) List(page int, resultsPerPage int) (result.Paginated[[]SavedPeriod], error) {
	saved := []SavedPeriod{}
	var total int64

	if res := r.DB.Model(&SavedPeriod{}).Count(&total); res.Error != nil {
		return result.Paginated[[]SavedPeriod]{}, res.Error
	}
	res := r.DB.Scopes(Paginate(page, resultsPerPage)).Order("created_at DESC, id DESC").Find(&saved)
	if res.Error != nil {
		return result.Paginated[[]SavedPeriod]{}, res.Error
	}

	return result.NewPaginated(
		resultsPerPage,
		page,
		int(total),
		saved,
	), nil
}

func (r *SavedPeriodRepository) FindBySlug(slug string) (*SavedPeriod, error) {
	saved := &SavedPeriod{}
	result := r.DB.Where("slug = ?", slug).First(saved)
	return saved, result.Error
}

// Create stores s with a new uuid and a slug derived from its name, adding a
// numeric suffix when the slug is already taken.
func (r *SavedPeriodRepository) Create(s *SavedPeriod) error {
	s.Uuid = uuid.NewString()
	base := s.BaseSlug()
	if base == "" {
		base = s.Uuid
	}
	s.Slug = base

	for i := 2; ; i++ {
		var count int64
		if res := r.DB.Model(&SavedPeriod{}).Where("slug = ?", s.Slug).Count(&count); res.Error != nil {
			return res.Error
		}
		if count == 0 {
			break
		}
		s.Slug = fmt.Sprintf("%s-%d", base, i)
	}

	return r.DB.Create(s).Error
}

func (r *SavedPeriodRepository) Delete(slug string) error {
	result := r.DB.Where("slug = ?", slug).Delete(&SavedPeriod{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
