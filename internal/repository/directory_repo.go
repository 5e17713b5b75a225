package repository

import (
	"context"

	"github.com/umeshpagere/cepl-kumbh-mela/internal/models"
	"gorm.io/gorm"
)

type DirectoryRepository interface {
	Seed(ctx context.Context, stations []models.Station, trains []models.Train) error
	Stations(ctx context.Context) ([]models.Station, error)
	Trains(ctx context.Context) ([]models.Train, error)
}

type directoryRepository struct {
	db *gorm.DB
}

func NewDirectoryRepository(db *gorm.DB) DirectoryRepository {
	return &directoryRepository{db: db}
}

// Seed inserts the bundled timetable on first start. Rows keep their insert
// order (seq), which is the directory order search results are returned in.
func (r *directoryRepository) Seed(ctx context.Context, stations []models.Station, trains []models.Train) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Station{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(stations) > 0 {
		if err := r.db.WithContext(ctx).Create(&stations).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Model(&models.Train{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 && len(trains) > 0 {
		if err := r.db.WithContext(ctx).Create(&trains).Error; err != nil {
			return err
		}
	}
	return nil
}

func (r *directoryRepository) Stations(ctx context.Context) ([]models.Station, error) {
	var stations []models.Station
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&stations).Error; err != nil {
		return nil, err
	}
	return stations, nil
}

func (r *directoryRepository) Trains(ctx context.Context) ([]models.Train, error) {
	var trains []models.Train
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&trains).Error; err != nil {
		return nil, err
	}
	return trains, nil
}
