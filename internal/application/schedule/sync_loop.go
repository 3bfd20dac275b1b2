package schedule

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"weather-bridge/internal/domain/usecase/weather"
	"weather-bridge/pkg/log"
	"weather-bridge/pkg/metrics"
)

// LoopState is the state of the diagnostic loop.
type LoopState int32

const (
	LoopRunning LoopState = iota
	LoopStopped
)

func (s LoopState) String() string {
	if s == LoopRunning {
		return "Running"
	}
	return "Stopped"
}

// SyncLoop is the in-process diagnostic cycle: it runs a direct
// synchronization pass, waits a fixed interval and repeats, independent of
// the batch scheduler. A failing pass is logged and never stops the loop;
// only cancellation does, and only while waiting or between passes.
type SyncLoop struct {
	useCase  weather.UseCase
	interval time.Duration
	state    atomic.Int32
}

// NewSyncLoop creates a diagnostic loop with the given wait interval.
func NewSyncLoop(useCase weather.UseCase, interval time.Duration) *SyncLoop {
	return &SyncLoop{
		useCase:  useCase,
		interval: interval,
	}
}

// State returns the loop's current state.
func (l *SyncLoop) State() LoopState {
	return LoopState(l.state.Load())
}

// Run blocks until the context is cancelled. Successes and failures wait the
// same fixed interval; there is no backoff.
func (l *SyncLoop) Run(ctx context.Context) {
	l.state.Store(int32(LoopRunning))
	defer l.state.Store(int32(LoopStopped))

	log.Infof("Diagnostic sync loop started, interval %s", l.interval)

	for {
		if ctx.Err() != nil {
			log.Info("Diagnostic sync loop stopped")
			return
		}

		l.runPass(ctx)

		timer := time.NewTimer(l.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			log.Info("Diagnostic sync loop stopped")
			return
		case <-timer.C:
		}
	}
}

// runPass executes one pass and swallows its error: the loop itself is never
// fatal.
func (l *SyncLoop) runPass(ctx context.Context) {
	requestID := uuid.New().String()

	if err := l.useCase.SyncPass(ctx, requestID); err != nil {
		metrics.ObserveSyncPass("loop", "failure")
		log.Error("Diagnostic sync pass failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	metrics.ObserveSyncPass("loop", "success")
}
