package weather

import (
	"context"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type UseCase interface {
	// FetchLatest fetches the provider's hourly series for the coordinates
	// and normalizes the freshest sample. It returns the normalized record
	// and the raw provider payload, or a model.Fault. Callers must validate
	// the coordinate ranges before calling.
	FetchLatest(ctx context.Context, lat float64, lon float64) (*model.LatestWeather, string, error)

	// ListActiveLocations returns the registry of locations flagged for
	// synchronization, read fresh from the store.
	ListActiveLocations() ([]entity.Location, error)

	// SyncPass runs one direct synchronization pass: for every active
	// location it fetches from the provider and persists a measurement,
	// committing per location. One bad location never blocks the rest.
	SyncPass(ctx context.Context, requestID string) error

	// RunBatch runs one orchestrated batch: for every active location it
	// calls the local endpoint over loopback and persists the returned
	// normalized record, committing per location.
	RunBatch(ctx context.Context, requestID string) error
}
