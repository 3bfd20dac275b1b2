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

// bridgeClientImpl implements the BridgeClient interface
type bridgeClientImpl struct {
	httpClient *httpclient.Client
}

// NewBridgeClient creates a new instance of BridgeClient bound to the local
// endpoint base URL.
func NewBridgeClient(baseURL string, timeout time.Duration) BridgeClient {
	httpClient := httpclient.NewClient(baseURL, httpclient.ClientOptions{
		RequestTimeout: timeout,
	})

	return &bridgeClientImpl{
		httpClient: httpClient,
	}
}

// GetLatest calls GET /weather/latest for the coordinates.
func (c *bridgeClientImpl) GetLatest(ctx context.Context, lat float64, lon float64) (*external.BridgeLatestResponse, []byte, error) {
	params := map[string]string{
		"lat": numberutils.FormatFloat64(lat),
		"lon": numberutils.FormatFloat64(lon),
	}

	var rawBody []byte
	successResp, errResp, status, err := c.httpClient.Request().
		WithContext(ctx).
		WithMethod(httpclient.GET).
		WithPath("/weather/latest").
		WithQueryParams(params).
		WithSuccessResp(&external.BridgeLatestResponse{}).
		WithErrorResp(&external.BridgeProblemResponse{}).
		WithRawBody(&rawBody).
		Execute()

	if err == nil {
		return successResp.(*external.BridgeLatestResponse), rawBody, nil
	}

	switch {
	case status == 0:
		return nil, nil, model.Faultf(model.NetworkFailure, "bridge endpoint unreachable: %w", err)
	case status < 200 || status >= 300:
		if errResp != nil {
			if problem, ok := errResp.(*external.BridgeProblemResponse); ok && problem.Detail != "" {
				return nil, nil, model.Faultf(model.UpstreamStatusError, "bridge endpoint returned status %d: %s", status, problem.Detail)
			}
		}
		return nil, nil, model.Faultf(model.UpstreamStatusError, "bridge endpoint returned status %d", status)
	default:
		return nil, nil, model.NewFault(model.ParseError, fmt.Errorf("malformed bridge response: %w", err))
	}
}
