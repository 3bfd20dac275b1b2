package weather

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/gateway/api"
	"weather-bridge/internal/domain/gateway/db"
	"weather-bridge/internal/domain/model"
	"weather-bridge/internal/domain/model/external"
	"weather-bridge/pkg/log"
	"weather-bridge/pkg/metrics"
)

// hourlyTimeLayout is the provider's hourly timestamp format.
const hourlyTimeLayout = "2006-01-02T15:04"

type weatherUseCase struct {
	forecastGateway    api.ForecastGateway
	bridgeClient       api.BridgeClient
	locationGateway    db.LocationGateway
	measurementGateway db.MeasurementGateway
}

func NewWeatherUseCase(forecastGateway api.ForecastGateway, bridgeClient api.BridgeClient, locationGateway db.LocationGateway, measurementGateway db.MeasurementGateway) UseCase {
	return &weatherUseCase{
		forecastGateway:    forecastGateway,
		bridgeClient:       bridgeClient,
		locationGateway:    locationGateway,
		measurementGateway: measurementGateway,
	}
}

// FetchLatest fetches the provider's hourly series and normalizes the freshest sample
func (uc *weatherUseCase) FetchLatest(ctx context.Context, lat float64, lon float64) (*model.LatestWeather, string, error) {
	response, rawBody, err := uc.forecastGateway.GetHourlyForecast(ctx, lat, lon)
	if err != nil {
		metrics.ObserveFetchFailure(string(model.KindOf(err)))
		return nil, "", err
	}

	record, err := normalizeHourly(&response.Hourly)
	if err != nil {
		metrics.ObserveFetchFailure(string(model.KindOf(err)))
		return nil, "", err
	}

	return record, string(rawBody), nil
}

// normalizeHourly selects the last index of the parallel hourly arrays. The
// provider returns series in chronological order, so the last entry is the
// presumed freshest forecast hour; timestamp monotonicity is not validated.
func normalizeHourly(hourly *external.HourlySeries) (*model.LatestWeather, error) {
	if len(hourly.Time) == 0 {
		return nil, model.Faultf(model.ParseError, "hourly series missing or empty")
	}

	idx := len(hourly.Time) - 1
	if len(hourly.Temperature2m) <= idx || len(hourly.RelativeHumidity) <= idx ||
		len(hourly.Precipitation) <= idx || len(hourly.WindSpeed10m) <= idx {
		return nil, model.Faultf(model.ParseError, "hourly series arrays are not aligned")
	}

	precipitation := hourly.Precipitation[idx]
	isRain := precipitation != nil && *precipitation > 0

	return &model.LatestWeather{
		MeasuredAt:  hourly.Time[idx],
		TempC:       hourly.Temperature2m[idx],
		Humidity:    hourly.RelativeHumidity[idx],
		WindSpeedMs: hourly.WindSpeed10m[idx],
		IsRain:      isRain,
	}, nil
}

// ListActiveLocations returns the registry of locations flagged for synchronization
func (uc *weatherUseCase) ListActiveLocations() ([]entity.Location, error) {
	return uc.locationGateway.FindAllActive()
}

// SyncPass runs one direct synchronization pass against the provider
func (uc *weatherUseCase) SyncPass(ctx context.Context, requestID string) error {
	locations, err := uc.locationGateway.FindAllActive()
	if err != nil {
		return fmt.Errorf("failed to list active locations: %w", err)
	}

	log.Info("Starting synchronization pass",
		zap.String("request_id", requestID),
		zap.Int("locations", len(locations)))

	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := uc.syncLocation(ctx, location); err != nil {
			log.Error("Failed to synchronize location",
				zap.String("request_id", requestID),
				zap.Int64("location_id", location.ID),
				zap.String("city", location.CityName),
				zap.Error(err))
			continue
		}

		metrics.ObserveLocationSynced()
	}

	log.Info("Synchronization pass completed", zap.String("request_id", requestID))
	return nil
}

// syncLocation is the direct per-location unit of work: fetch, normalize, insert, commit
func (uc *weatherUseCase) syncLocation(ctx context.Context, location entity.Location) error {
	record, rawPayload, err := uc.FetchLatest(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return fmt.Errorf("fetch failed for location %d: %w", location.ID, err)
	}

	measurement := entity.Measurement{
		LocationID:  location.ID,
		MeasuredAt:  parseMeasuredAt(record.MeasuredAt),
		TempC:       record.TempC,
		Humidity:    record.Humidity,
		WindSpeedMs: record.WindSpeedMs,
		IsRain:      entity.RainFlag(record.IsRain),
		RawJSON:     rawPayload,
	}

	if err := uc.measurementGateway.Insert(measurement); err != nil {
		return fmt.Errorf("insert failed for location %d: %w", location.ID, err)
	}

	return nil
}

// RunBatch runs one orchestrated batch through the local endpoint
func (uc *weatherUseCase) RunBatch(ctx context.Context, requestID string) error {
	if uc.bridgeClient == nil {
		return model.Faultf(model.ConfigMissing, "bridge endpoint is not configured")
	}

	locations, err := uc.locationGateway.FindAllActive()
	if err != nil {
		return fmt.Errorf("failed to list active locations: %w", err)
	}

	log.Info("Starting bridge batch run",
		zap.String("request_id", requestID),
		zap.Int("locations", len(locations)))

	var failed int
	for _, location := range locations {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := uc.syncLocationThroughBridge(ctx, location); err != nil {
			failed++
			log.Error("Failed bridge unit of work",
				zap.String("request_id", requestID),
				zap.Int64("location_id", location.ID),
				zap.String("city", location.CityName),
				zap.Error(err))
			continue
		}

		metrics.ObserveLocationSynced()
	}

	log.Info("Bridge batch run completed",
		zap.String("request_id", requestID),
		zap.Int("total", len(locations)),
		zap.Int("failed", failed))
	return nil
}

// syncLocationThroughBridge is the orchestrated per-location unit of work:
// call the endpoint, extract fields, insert, commit.
func (uc *weatherUseCase) syncLocationThroughBridge(ctx context.Context, location entity.Location) error {
	response, rawBody, err := uc.bridgeClient.GetLatest(ctx, location.Latitude, location.Longitude)
	if err != nil {
		return fmt.Errorf("endpoint call failed for location %d: %w", location.ID, err)
	}

	measurement := entity.Measurement{
		LocationID:  location.ID,
		MeasuredAt:  parseMeasuredAt(response.MeasuredAt),
		TempC:       response.TempC,
		Humidity:    response.Humidity,
		WindSpeedMs: response.WindSpeedMs,
		IsRain:      entity.RainFlagFromString(response.IsRainText()),
		RawJSON:     string(rawBody),
	}

	if err := uc.measurementGateway.Insert(measurement); err != nil {
		return fmt.Errorf("insert failed for location %d: %w", location.ID, err)
	}

	return nil
}

// parseMeasuredAt parses the provider's hourly timestamp, falling back to
// RFC 3339 and finally to the current time.
func parseMeasuredAt(value string) time.Time {
	if ts, err := time.Parse(hourlyTimeLayout, value); err == nil {
		return ts.UTC()
	}
	if ts, err := time.Parse(time.RFC3339, value); err == nil {
		return ts.UTC()
	}
	return time.Now().UTC()
}
