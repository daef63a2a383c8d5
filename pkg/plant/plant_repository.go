package plant

import (
	"Planta-Backend/domain"
	"Planta-Backend/entities"
	"context"
	"strings"

	"gorm.io/gorm"
)

type (
	PlantRepository interface {
		AddPlant(ctx context.Context, plant *entities.Plant) error
		GetPlantByID(ctx context.Context, id string) (*entities.Plant, error)
		UpdatePlant(ctx context.Context, plant *entities.Plant) error
		DeletePlant(ctx context.Context, id string) error
		GetPlants(ctx context.Context, userID string, category string, search string) ([]*entities.Plant, error)

		AddCareLog(ctx context.Context, entry *entities.CareLogEntry) error
		GetCareLogByID(ctx context.Context, id string) (*entities.CareLogEntry, error)
		UpdateCareLog(ctx context.Context, entry *entities.CareLogEntry) error
		DeleteCareLog(ctx context.Context, id string) error
		GetCareLogs(ctx context.Context, plantID string, filter domain.CareLogFilter) ([]*entities.CareLogEntry, error)
	}

	plantRepository struct {
		db *gorm.DB
	}
)

func NewPlantRepository(db *gorm.DB) PlantRepository {
	return &plantRepository{db: db}
}

func (r *plantRepository) AddPlant(ctx context.Context, plant *entities.Plant) error {
	return r.db.WithContext(ctx).Create(plant).Error
}

func (r *plantRepository) GetPlantByID(ctx context.Context, id string) (*entities.Plant, error) {
	var plant entities.Plant
	if err := r.db.WithContext(ctx).Preload("CareLog").Where("id = ?", id).First(&plant).Error; err != nil {
		return nil, err
	}
	return &plant, nil
}

func (r *plantRepository) UpdatePlant(ctx context.Context, plant *entities.Plant) error {
	return r.db.WithContext(ctx).Save(plant).Error
}

func (r *plantRepository) DeletePlant(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Plant{}).Error
}

func (r *plantRepository) GetPlants(ctx context.Context, userID string, category string, search string) ([]*entities.Plant, error) {
	var plants []*entities.Plant

	query := r.db.WithContext(ctx).Where("user_id = ?", userID)

	if category != "all" && category != "" {
		query = query.Where("category = ?", category)
	}
	if search != "" {
		query = query.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	if err := query.Preload("CareLog").Order("created_at desc").Find(&plants).Error; err != nil {
		return nil, err
	}
	return plants, nil
}

func (r *plantRepository) AddCareLog(ctx context.Context, entry *entities.CareLogEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *plantRepository) GetCareLogByID(ctx context.Context, id string) (*entities.CareLogEntry, error) {
	var entry entities.CareLogEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *plantRepository) UpdateCareLog(ctx context.Context, entry *entities.CareLogEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *plantRepository) DeleteCareLog(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.CareLogEntry{}).Error
}

func (r *plantRepository) GetCareLogs(ctx context.Context, plantID string, filter domain.CareLogFilter) ([]*entities.CareLogEntry, error) {
	var entries []*entities.CareLogEntry

	query := r.db.WithContext(ctx).Where("plant_id = ?", plantID)

	if filter.Activity != "all" && filter.Activity != "" {
		query = query.Where("activity = ?", filter.Activity)
	}
	if filter.StartDate != nil {
		query = query.Where("date >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		query = query.Where("date <= ?", *filter.EndDate)
	}

	if err := query.Order("date desc").Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}
