package db

import "weather-bridge/internal/domain/entity"

// LocationGateway reads the registry of monitored locations. It is a pure
// read surface: this service never writes location rows.
type LocationGateway interface {
	// FindAllActive returns the locations flagged eligible for
	// synchronization. Ordering is unspecified and must not be relied upon.
	FindAllActive() ([]entity.Location, error)
}
