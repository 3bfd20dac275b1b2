package db

import "weather-bridge/internal/domain/model"

type HealthDBGateway interface {
	Health() model.ComponentHealthStatus
}
