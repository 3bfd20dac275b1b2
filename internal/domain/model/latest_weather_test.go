package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-bridge/internal/domain/model"
)

const floatTolerance = 1e-6

func floatPtr(v float64) *float64 {
	return &v
}

func TestLatestWeather_JSONRoundTrip(t *testing.T) {
	original := model.LatestWeather{
		MeasuredAt:  "2025-01-01T00:00",
		TempC:       floatPtr(5.0),
		Humidity:    floatPtr(80),
		WindSpeedMs: floatPtr(2.0),
		IsRain:      false,
	}

	encoded, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded model.LatestWeather
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, original.MeasuredAt, decoded.MeasuredAt)
	assert.Equal(t, original.IsRain, decoded.IsRain)
	require.NotNil(t, decoded.TempC)
	require.NotNil(t, decoded.Humidity)
	require.NotNil(t, decoded.WindSpeedMs)
	assert.InDelta(t, *original.TempC, *decoded.TempC, floatTolerance)
	assert.InDelta(t, *original.Humidity, *decoded.Humidity, floatTolerance)
	assert.InDelta(t, *original.WindSpeedMs, *decoded.WindSpeedMs, floatTolerance)
}

func TestLatestWeather_FieldNames(t *testing.T) {
	record := model.LatestWeather{
		MeasuredAt: "2025-01-01T00:00",
		IsRain:     true,
	}

	encoded, err := json.Marshal(record)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(encoded, &fields))

	// Wire field names are a contract with external consumers.
	for _, name := range []string{"measuredAt", "tempC", "humidity", "windSpeedMs", "isRain"} {
		assert.Contains(t, fields, name)
	}
	assert.Len(t, fields, 5)
}

func TestLatestWeather_NullableFieldsSerializeAsNull(t *testing.T) {
	record := model.LatestWeather{MeasuredAt: "2025-01-01T00:00"}

	encoded, err := json.Marshal(record)
	require.NoError(t, err)

	assert.JSONEq(t,
		`{"measuredAt":"2025-01-01T00:00","tempC":null,"humidity":null,"windSpeedMs":null,"isRain":false}`,
		string(encoded))
}
