package model

// LatestWeather is the reduced weather shape exposed across the local
// endpoint. It is intentionally narrower than a persisted measurement:
// consumers never see the provider-specific structure or the raw payload.
type LatestWeather struct {
	MeasuredAt  string   `json:"measuredAt"`
	TempC       *float64 `json:"tempC"`
	Humidity    *float64 `json:"humidity"`
	WindSpeedMs *float64 `json:"windSpeedMs"`
	IsRain      bool     `json:"isRain"`
}
