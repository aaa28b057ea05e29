package model

import (
	"time"

	"github.com/gosimple/slug"
	"github.com/microcosm-cc/bluemonday"
	"github.com/svera/nanoperiod/internal/period"
)

const (
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

// SavedPeriod is a named period stored in its canonical text form.
type SavedPeriod struct {
	ID          uint          `gorm:"primarykey" json:"-"`
	CreatedAt   time.Time     `json:"createdAt"`
	UpdatedAt   time.Time     `json:"-"`
	Uuid        string        `gorm:"type:char(36);uniqueIndex; not null" json:"uuid"`
	Slug        string        `gorm:"type:varchar(255);uniqueIndex; not null" json:"slug"`
	Name        string        `gorm:"type:varchar(100); not null" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	Author      string        `gorm:"type:varchar(255)" json:"author,omitempty"`
	Period      period.Period `gorm:"type:varchar(64); not null" json:"period"`
}

// Sanitize strips markup from the user provided texts and truncates them.
func (s *SavedPeriod) Sanitize() {
	p := bluemonday.StrictPolicy()
	s.Name = truncate(p.Sanitize(s.Name), NameMaxLength)
	s.Description = truncate(p.Sanitize(s.Description), DescriptionMaxLength)
}

// BaseSlug derives the URL key of the saved period from its name.
func (s *SavedPeriod) BaseSlug() string {
	return slug.Make(s.Name)
}

func truncate(text string, length int) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	return string(runes[:length])
}
