package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-bridge/internal/domain/gateway/api"
	"weather-bridge/internal/domain/model"
)

func TestBridgeClient_GetLatest(t *testing.T) {
	tests := []struct {
		name         string
		body         string
		wantRainText string
	}{
		{
			name:         "boolean true",
			body:         `{"measuredAt":"2025-01-01T00:00","tempC":5,"humidity":80,"windSpeedMs":2,"isRain":true}`,
			wantRainText: "true",
		},
		{
			name:         "boolean false",
			body:         `{"measuredAt":"2025-01-01T00:00","tempC":5,"humidity":80,"windSpeedMs":2,"isRain":false}`,
			wantRainText: "false",
		},
		{
			name:         "numeric flag",
			body:         `{"measuredAt":"2025-01-01T00:00","tempC":5,"humidity":80,"windSpeedMs":2,"isRain":1}`,
			wantRainText: "1",
		},
		{
			name:         "quoted string",
			body:         `{"measuredAt":"2025-01-01T00:00","tempC":5,"humidity":80,"windSpeedMs":2,"isRain":"true"}`,
			wantRainText: "true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/weather/latest", r.URL.Path)
				assert.Equal(t, "51.5", r.URL.Query().Get("lat"))
				assert.Equal(t, "-0.12", r.URL.Query().Get("lon"))
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := api.NewBridgeClient(server.URL, 5*time.Second)

			response, rawBody, err := client.GetLatest(context.Background(), 51.5, -0.12)
			require.NoError(t, err)
			require.NotNil(t, response)

			assert.Equal(t, "2025-01-01T00:00", response.MeasuredAt)
			assert.Equal(t, tt.wantRainText, response.IsRainText())
			assert.JSONEq(t, tt.body, string(rawBody))
		})
	}
}

func TestBridgeClient_ProblemResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`{"title":"Bad Gateway","detail":"provider unreachable","status":502}`))
	}))
	defer server.Close()

	client := api.NewBridgeClient(server.URL, 5*time.Second)

	response, _, err := client.GetLatest(context.Background(), 10, 20)
	require.Error(t, err)
	assert.Nil(t, response)
	assert.Equal(t, model.UpstreamStatusError, model.KindOf(err))
	assert.Contains(t, err.Error(), "provider unreachable")
}

func TestBridgeClient_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	serverURL := server.URL
	server.Close()

	client := api.NewBridgeClient(serverURL, 1*time.Second)

	_, _, err := client.GetLatest(context.Background(), 10, 20)
	require.Error(t, err)
	assert.Equal(t, model.NetworkFailure, model.KindOf(err))
}
