package db

import (
	"database/sql"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type SQLCLocationGateway struct {
	DB *sql.DB
}

var _ LocationGateway = (*SQLCLocationGateway)(nil)

func NewSQLCLocationGateway(db *sql.DB) *SQLCLocationGateway {
	return &SQLCLocationGateway{DB: db}
}

// FindAllActive returns the locations flagged eligible for synchronization
func (gateway *SQLCLocationGateway) FindAllActive() ([]entity.Location, error) {
	query := `
		SELECT l.id_location, l.country_code, l.city_name, l.latitude, l.longitude, l.active_flag
		FROM weather_locations l
		WHERE l.active_flag = $1`

	rows, err := gateway.DB.Query(query, "Y")
	if err != nil {
		return nil, model.Faultf(model.StoreUnavailable, "failed to query active locations: %w", err)
	}
	defer rows.Close()

	locations := make([]entity.Location, 0)
	for rows.Next() {
		var location entity.Location
		if err := rows.Scan(&location.ID, &location.CountryCode, &location.CityName,
			&location.Latitude, &location.Longitude, &location.ActiveFlag); err != nil {
			return nil, model.Faultf(model.StoreUnavailable, "failed to scan location row: %w", err)
		}
		locations = append(locations, location)
	}

	if err := rows.Err(); err != nil {
		return nil, model.Faultf(model.StoreUnavailable, "failed to read location rows: %w", err)
	}

	return locations, nil
}
