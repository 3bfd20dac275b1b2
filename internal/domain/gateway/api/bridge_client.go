package api

import (
	"context"

	"weather-bridge/internal/domain/model/external"
)

// BridgeClient defines the consumer side of the local endpoint contract: the
// batch worker talks to the bridge over loopback HTTP exactly the way an
// external orchestrator would.
type BridgeClient interface {
	// GetLatest calls GET /weather/latest for the coordinates and returns the
	// normalized record together with the accumulated response body, or a
	// model.Fault classifying the failure.
	GetLatest(ctx context.Context, lat float64, lon float64) (*external.BridgeLatestResponse, []byte, error)
}
