package model

import (
	"gorm.io/gorm"
)

const (
	ResultsPerPage    = 10
	MaxResultsPerPage = 100
)

func Paginate(currentPage int, pageSize int) func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if currentPage <= 0 {
			currentPage = 1
		}

		switch {
		case pageSize > MaxResultsPerPage:
			pageSize = MaxResultsPerPage
		case pageSize <= 0:
			pageSize = ResultsPerPage
		}

		offset := (currentPage - 1) * pageSize
		return db.Offset(offset).Limit(pageSize)
	}
}
