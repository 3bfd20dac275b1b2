package db

import (
	"database/sql"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type SQLCMeasurementGateway struct {
	DB *sql.DB
}

var _ MeasurementGateway = (*SQLCMeasurementGateway)(nil)

func NewSQLCMeasurementGateway(db *sql.DB) *SQLCMeasurementGateway {
	return &SQLCMeasurementGateway{DB: db}
}

// Insert persists one measurement row. The single statement runs in its own
// implicit transaction, which is the per-location commit boundary.
func (gateway *SQLCMeasurementGateway) Insert(measurement entity.Measurement) error {
	query := `
		INSERT INTO weather_measurements (id_location, measured_at, temp_c, humidity, wind_speed_ms, is_rain, raw_json)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := gateway.DB.Exec(query,
		measurement.LocationID,
		measurement.MeasuredAt,
		nullableFloat(measurement.TempC),
		nullableFloat(measurement.Humidity),
		nullableFloat(measurement.WindSpeedMs),
		measurement.IsRain,
		measurement.RawJSON,
	)
	if err != nil {
		return model.Faultf(model.PersistenceError, "failed to insert measurement for location %d: %w", measurement.LocationID, err)
	}

	return nil
}

// nullableFloat maps an optional float to its SQL representation
func nullableFloat(value *float64) sql.NullFloat64 {
	if value == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *value, Valid: true}
}
