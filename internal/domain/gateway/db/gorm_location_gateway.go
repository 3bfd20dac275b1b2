package db

import (
	"gorm.io/gorm"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type GormLocationGateway struct {
	DB *gorm.DB
}

var _ LocationGateway = (*GormLocationGateway)(nil)

func NewGormLocationGateway(db *gorm.DB) *GormLocationGateway {
	return &GormLocationGateway{DB: db}
}

// FindAllActive returns the locations flagged eligible for synchronization
func (gateway *GormLocationGateway) FindAllActive() ([]entity.Location, error) {
	locations := make([]entity.Location, 0)

	result := gateway.DB.Where("active_flag = ?", "Y").Find(&locations)
	if result.Error != nil {
		return nil, model.Faultf(model.StoreUnavailable, "failed to query active locations: %w", result.Error)
	}

	return locations, nil
}
