package entity

import (
	"strings"
	"time"
)

const (
	RainYes = "Y"
	RainNo  = "N"
)

// Measurement is one persisted weather sample for a location. Rows are
// append-only: they are created once per successful fetch and never updated
// or deleted by this service.
type Measurement struct {
	LocationID  int64     `json:"locationId" gorm:"column:id_location"`
	MeasuredAt  time.Time `json:"measuredAt" gorm:"column:measured_at"`
	TempC       *float64  `json:"tempC" gorm:"column:temp_c"`
	Humidity    *float64  `json:"humidity" gorm:"column:humidity"`
	WindSpeedMs *float64  `json:"windSpeedMs" gorm:"column:wind_speed_ms"`
	IsRain      string    `json:"isRain" gorm:"column:is_rain"`
	RawJSON     string    `json:"rawJson" gorm:"column:raw_json"`
}

// TableName maps the entity to the store table.
func (Measurement) TableName() string {
	return "weather_measurements"
}

// RainFlag converts a boolean rain indicator to the persisted single-character flag.
func RainFlag(isRain bool) string {
	if isRain {
		return RainYes
	}
	return RainNo
}

// RainFlagFromString converts a textual rain indicator to the persisted flag.
// Only "true" and "1" (case-insensitive) count as rain; anything else is 'N'.
func RainFlagFromString(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true", "1":
		return RainYes
	default:
		return RainNo
	}
}
