package database

import (
	"log"

	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresDB(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Station{}, &models.Train{}, &models.Order{}); err != nil {
		log.Fatalf("failed to auto-migrate: %v", err)
	}

	return db
}
