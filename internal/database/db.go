package database

import (
	"log"
	"time"

	"github.com/fiamanillah/TravelLaneConnectBackend/internal/model"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const retryDelay = 5 * time.Second

// Connect opens a GORM connection pool and migrates the core models.
// TranslateError turns driver unique-violation errors into
// gorm.ErrDuplicatedKey so services can handle them cleanly.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(
		&model.Application{},
		&model.Payment{},
	); err != nil {
		log.Println("WARNING: Failed to auto-migrate models:", err)
	}

	return db, nil
}

// WaitForConnection keeps attempting Connect with a fixed delay until it
// succeeds. There is no attempt limit.
func WaitForConnection(dsn string) *gorm.DB {
	for {
		db, err := Connect(dsn)
		if err == nil {
			return db
		}
		log.Printf("Database connection error: %v. Retrying in %s...", err, retryDelay)
		time.Sleep(retryDelay)
	}
}
