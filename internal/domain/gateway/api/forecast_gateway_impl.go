package api

import (
	"context"
	"fmt"
	"time"

	"weather-bridge/internal/domain/model"
	"weather-bridge/internal/domain/model/external"
	"weather-bridge/pkg/httpclient"
	"weather-bridge/pkg/util/numberutils"
)

// hourlySeriesParam names the parallel arrays requested from the provider.
const hourlySeriesParam = "temperature_2m,relativehumidity_2m,precipitation,wind_speed_10m"

// forecastGatewayImpl implements the ForecastGateway interface
type forecastGatewayImpl struct {
	httpClient *httpclient.Client
}

// NewForecastGateway creates a new instance of ForecastGateway with an HTTP
// client bound to the provider base URL. extraParams is appended verbatim to
// every request query string. Each call opens its own connection and performs
// a single attempt with a fixed timeout.
func NewForecastGateway(baseURL string, extraParams string, timeout time.Duration) ForecastGateway {
	httpClient := httpclient.NewClient(baseURL, httpclient.ClientOptions{
		RawQuery:       extraParams,
		RequestTimeout: timeout,
	})

	return &forecastGatewayImpl{
		httpClient: httpClient,
	}
}

// GetHourlyForecast fetches the hourly time series for the coordinates.
func (g *forecastGatewayImpl) GetHourlyForecast(ctx context.Context, lat float64, lon float64) (*external.HourlyForecastResponse, []byte, error) {
	// Coordinates are formatted with a plain decimal point regardless of
	// the process locale.
	params := map[string]string{
		"latitude":  numberutils.FormatFloat64(lat),
		"longitude": numberutils.FormatFloat64(lon),
		"hourly":    hourlySeriesParam,
	}

	// The base URL is the full forecast endpoint; no path segment is added.
	var rawBody []byte
	successResp, errResp, status, err := g.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithQueryParams(params).
		WithSuccessResp(&external.HourlyForecastResponse{}).
		WithErrorResp(&external.ProviderErrorResponse{}).
		WithRawBody(&rawBody).
		Execute()

	if err == nil {
		response := successResp.(*external.HourlyForecastResponse)
		return response, rawBody, nil
	}

	switch {
	case status == 0:
		return nil, nil, model.Faultf(model.NetworkFailure, "provider unreachable: %w", err)
	case status < 200 || status >= 300:
		if errResp != nil {
			if provErr, ok := errResp.(*external.ProviderErrorResponse); ok && provErr.Reason != "" {
				return nil, nil, model.Faultf(model.UpstreamStatusError, "provider returned status %d: %s", status, provErr.Reason)
			}
		}
		return nil, nil, model.Faultf(model.UpstreamStatusError, "provider returned status %d", status)
	default:
		return nil, nil, model.NewFault(model.ParseError, fmt.Errorf("malformed provider response: %w", err))
	}
}
