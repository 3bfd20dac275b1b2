package external

import (
	"encoding/json"
	"strings"
)

// BridgeLatestResponse represents the normalized JSON returned by the local
// endpoint, as the batch consumer reads it: scalar fields selected by name
// from a single JSON object. The rain indicator is kept in its textual form
// so the consumer decides how to persist it.
type BridgeLatestResponse struct {
	MeasuredAt  string          `json:"measuredAt"`
	TempC       *float64        `json:"tempC"`
	Humidity    *float64        `json:"humidity"`
	WindSpeedMs *float64        `json:"windSpeedMs"`
	IsRain      json.RawMessage `json:"isRain"`
}

// IsRainText returns the rain indicator as unquoted text.
func (r *BridgeLatestResponse) IsRainText() string {
	return strings.Trim(string(r.IsRain), `"`)
}

// BridgeProblemResponse represents the problem body the local endpoint
// answers with on failure.
type BridgeProblemResponse struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Status int    `json:"status"`
}
