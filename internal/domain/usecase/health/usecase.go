package health

import "weather-bridge/internal/domain/model"

type UseCase interface {
	CheckHealth() model.HealthResponse
}
