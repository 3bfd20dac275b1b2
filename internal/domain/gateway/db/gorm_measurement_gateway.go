package db

import (
	"gorm.io/gorm"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type GormMeasurementGateway struct {
	DB *gorm.DB
}

var _ MeasurementGateway = (*GormMeasurementGateway)(nil)

func NewGormMeasurementGateway(db *gorm.DB) *GormMeasurementGateway {
	return &GormMeasurementGateway{DB: db}
}

// Insert persists one measurement row in its own transaction.
func (gateway *GormMeasurementGateway) Insert(measurement entity.Measurement) error {
	result := gateway.DB.Create(&measurement)
	if result.Error != nil {
		return model.Faultf(model.PersistenceError, "failed to insert measurement for location %d: %w", measurement.LocationID, result.Error)
	}

	return nil
}
