package db

import "weather-bridge/internal/domain/entity"

// MeasurementGateway appends persisted measurements. The table is insert-only:
// no read-modify-write path exists and no natural key prevents duplicates.
type MeasurementGateway interface {
	// Insert persists one measurement row in its own transaction. Each call
	// commits independently, so a failed insert never affects rows already
	// written for other locations.
	Insert(measurement entity.Measurement) error
}
