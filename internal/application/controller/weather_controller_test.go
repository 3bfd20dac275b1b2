package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-bridge/internal/domain/entity"
	"weather-bridge/internal/domain/model"
)

type stubWeatherUseCase struct {
	fetchCalls int
	record     *model.LatestWeather
	fetchErr   error

	locations    []entity.Location
	locationsErr error
}

func (s *stubWeatherUseCase) FetchLatest(ctx context.Context, lat float64, lon float64) (*model.LatestWeather, string, error) {
	s.fetchCalls++
	if s.fetchErr != nil {
		return nil, "", s.fetchErr
	}
	return s.record, "{}", nil
}

func (s *stubWeatherUseCase) ListActiveLocations() ([]entity.Location, error) {
	return s.locations, s.locationsErr
}

func (s *stubWeatherUseCase) SyncPass(ctx context.Context, requestID string) error {
	return nil
}

func (s *stubWeatherUseCase) RunBatch(ctx context.Context, requestID string) error {
	return nil
}

func sample() *model.LatestWeather {
	temp := 5.0
	humidity := 80.0
	wind := 2.0
	return &model.LatestWeather{
		MeasuredAt:  "2025-01-01T00:00",
		TempC:       &temp,
		Humidity:    &humidity,
		WindSpeedMs: &wind,
		IsRain:      false,
	}
}

func newGetLatestContext(e *echo.Echo, query string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/weather/latest?"+query, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestGetLatest_Success(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherUseCase{record: sample()}
	controller := NewWeatherController(e.Group(""), stub)

	c, rec := newGetLatestContext(e, "lat=51.5&lon=-0.12")
	require.NoError(t, controller.GetLatest(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"measuredAt":"2025-01-01T00:00","tempC":5,"humidity":80,"windSpeedMs":2,"isRain":false}`,
		rec.Body.String())
	assert.Equal(t, 1, stub.fetchCalls)
}

func TestGetLatest_CoordinateValidation(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		wantCode int
	}{
		{name: "latitude lower bound accepted", query: "lat=-90&lon=0", wantCode: http.StatusOK},
		{name: "latitude upper bound accepted", query: "lat=90&lon=0", wantCode: http.StatusOK},
		{name: "latitude below range", query: "lat=-90.0000001&lon=0", wantCode: http.StatusBadRequest},
		{name: "latitude above range", query: "lat=90.0000001&lon=0", wantCode: http.StatusBadRequest},
		{name: "longitude bounds accepted", query: "lat=0&lon=180", wantCode: http.StatusOK},
		{name: "longitude above range", query: "lat=0&lon=180.0000001", wantCode: http.StatusBadRequest},
		{name: "latitude missing", query: "lon=0", wantCode: http.StatusBadRequest},
		{name: "latitude not a number", query: "lat=abc&lon=0", wantCode: http.StatusBadRequest},
		{name: "longitude not a number", query: "lat=0&lon=abc", wantCode: http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			stub := &stubWeatherUseCase{record: sample()}
			controller := NewWeatherController(e.Group(""), stub)

			c, rec := newGetLatestContext(e, tt.query)
			require.NoError(t, controller.GetLatest(c))
			assert.Equal(t, tt.wantCode, rec.Code)

			if tt.wantCode == http.StatusBadRequest {
				// Rejected coordinates never reach the provider.
				assert.Zero(t, stub.fetchCalls)

				var problem model.ProblemDetail
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
				assert.Equal(t, http.StatusBadRequest, problem.Status)
				assert.NotEmpty(t, problem.Detail)
			}
		})
	}
}

func TestGetLatest_UpstreamFailure(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherUseCase{fetchErr: model.Faultf(model.NetworkFailure, "provider unreachable")}
	controller := NewWeatherController(e.Group(""), stub)

	c, rec := newGetLatestContext(e, "lat=10&lon=20")
	require.NoError(t, controller.GetLatest(c))

	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var problem model.ProblemDetail
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problem))
	assert.Equal(t, "Upstream weather provider error", problem.Title)
	assert.Equal(t, http.StatusBadGateway, problem.Status)
}

func TestGetLatest_AbandonedRequest(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherUseCase{record: sample()}
	controller := NewWeatherController(e.Group(""), stub)

	req := httptest.NewRequest(http.MethodGet, "/weather/latest?lat=10&lon=20", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, controller.GetLatest(c))
	assert.Equal(t, StatusClientClosedRequest, rec.Code)
	assert.Zero(t, stub.fetchCalls)
}

func TestListLocations(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherUseCase{locations: []entity.Location{
		{ID: 1, CountryCode: "GB", CityName: "London", Latitude: 51.5, Longitude: -0.12, ActiveFlag: "Y"},
	}}
	controller := NewWeatherController(e.Group(""), stub)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.ListLocations(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	var locations []entity.Location
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &locations))
	require.Len(t, locations, 1)
	assert.Equal(t, "London", locations[0].CityName)
}

func TestListLocations_StoreUnavailable(t *testing.T) {
	e := echo.New()
	stub := &stubWeatherUseCase{locationsErr: model.Faultf(model.StoreUnavailable, "connection refused")}
	controller := NewWeatherController(e.Group(""), stub)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, controller.ListLocations(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
