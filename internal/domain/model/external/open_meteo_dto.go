package external

// HourlyForecastResponse represents the provider's hourly time-series
// response. All series are parallel arrays indexed identically.
type HourlyForecastResponse struct {
	Latitude  float64      `json:"latitude"`
	Longitude float64      `json:"longitude"`
	Hourly    HourlySeries `json:"hourly"`
}

// HourlySeries holds the parallel hourly arrays.
type HourlySeries struct {
	Time             []string   `json:"time"`
	Temperature2m    []*float64 `json:"temperature_2m"`
	RelativeHumidity []*float64 `json:"relativehumidity_2m"`
	Precipitation    []*float64 `json:"precipitation"`
	WindSpeed10m     []*float64 `json:"wind_speed_10m"`
}

// ProviderErrorResponse represents error responses from the provider API
type ProviderErrorResponse struct {
	Error  bool   `json:"error"`
	Reason string `json:"reason"`
}
