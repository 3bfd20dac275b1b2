package api

import (
	"context"

	"weather-bridge/internal/domain/model/external"
)

// ForecastGateway defines the interface for fetching the provider's hourly
// weather series.
type ForecastGateway interface {
	// GetHourlyForecast fetches the hourly time series for the coordinates.
	// It returns the decoded response together with the unparsed body, or a
	// model.Fault classifying the failure. No partial data is ever returned.
	GetHourlyForecast(ctx context.Context, lat float64, lon float64) (*external.HourlyForecastResponse, []byte, error)
}
