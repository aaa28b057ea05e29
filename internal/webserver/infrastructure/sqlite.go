package infrastructure

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/svera/nanoperiod/internal/webserver/model"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the sqlite database at path, creating it if needed, and
// migrates the schema.
func Connect(path string, verbose bool) *gorm.DB {
	inMemory := strings.Contains(path, ":memory:")
	if _, err := os.Stat(path); os.IsNotExist(err) && !inMemory {
		if _, err = os.Create(path); err != nil {
			log.Fatal(err)
		}
		log.Printf("Created database at %s\n", path)
	}

	logLevel := logger.Silent
	if verbose {
		logLevel = logger.Info
	}

	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("%s?_pragma=foreign_keys(1)", path)), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	// Every connection to an in-memory database gets a database of its own.
	if inMemory {
		sqlDB, err := db.DB()
		if err != nil {
			log.Fatal(err)
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(&model.SavedPeriod{}); err != nil {
		log.Fatal(err)
	}
	return db
}
