package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-bridge/internal/domain/usecase/weather"
	"weather-bridge/pkg/log"
	"weather-bridge/pkg/metrics"
	"weather-bridge/pkg/redis"
)

// BridgeSchedulerConfig holds configuration for the bridge batch scheduler
type BridgeSchedulerConfig struct {
	CronExpression  string
	LockTTL         time.Duration
	RefreshInterval time.Duration
}

// BridgeScheduler triggers the per-location batch run on a fixed recurring
// schedule. When a redis client is provided the schedule is guarded by a
// distributed lock so overlapping triggers across instances are excluded.
type BridgeScheduler struct {
	cron        *cron.Cron
	useCase     weather.UseCase
	redisClient *redis.Client
	config      *BridgeSchedulerConfig
}

// NewBridgeScheduler creates a new bridge batch scheduler. redisClient may be
// nil, in which case the schedule runs without distributed locking.
func NewBridgeScheduler(useCase weather.UseCase, redisClient *redis.Client, cronExpression string, lockTTL int, refreshInterval int) *BridgeScheduler {
	return &BridgeScheduler{
		cron:        cron.New(),
		useCase:     useCase,
		redisClient: redisClient,
		config: &BridgeSchedulerConfig{
			CronExpression:  cronExpression,
			LockTTL:         time.Duration(lockTTL) * time.Second,
			RefreshInterval: time.Duration(refreshInterval) * time.Second,
		},
	}
}

// InitBridgeScheduleTasks initializes the recurring batch trigger
func (s *BridgeScheduler) InitBridgeScheduleTasks(ctx context.Context) {
	go func() {
		var refreshErrChan <-chan error

		if s.redisClient != nil {
			lock := redis.NewScheduledTaskLock(
				s.redisClient,
				"bridge_batch_scheduler",
				s.getLockTTL(),
				s.getRefreshInterval(),
				"bridge_schedules",
			)

			if err := lock.Lock(ctx); err != nil {
				log.Errorf("Failed to acquire distributed lock, bridge scheduler will not be initialized: %v", err)
				return
			}

			refreshErrChan = lock.AutoRefresh(ctx)
		}

		// The tick runs under the scheduler's lifecycle context so shutdown
		// cancels an in-flight batch between locations.
		_, err := s.cron.AddFunc(s.config.CronExpression, func() { s.ExecuteScheduledTask(ctx) })
		if err != nil {
			log.Errorf("Failed to initialize bridge scheduler, cron will not be started: %v", err)
			return
		}

		s.cron.Start()
		log.Infof("Bridge batch scheduler started with cron expression: %s", s.config.CronExpression)

		if refreshErrChan == nil {
			<-ctx.Done()
			s.stopCron()
			log.Info("Bridge batch scheduler stopped gracefully")
			return
		}

		err = <-refreshErrChan
		s.stopCron()

		if err != nil && err != context.Canceled {
			log.Errorf("Bridge batch scheduler stopped due to lock refresh failure: %v", err)
		} else {
			log.Info("Bridge batch scheduler stopped gracefully")
		}
	}()
}

// ExecuteScheduledTask executes one batch run. Failures are logged and never
// propagate, so the next trigger always fires.
func (s *BridgeScheduler) ExecuteScheduledTask(ctx context.Context) {
	requestID := uuid.New().String()

	log.Info("Bridge batch trigger fired", zap.String("request_id", requestID))

	if err := s.useCase.RunBatch(ctx, requestID); err != nil {
		metrics.ObserveSyncPass("batch", "failure")
		log.Error("Bridge batch run failed", zap.String("request_id", requestID), zap.Error(err))
		return
	}

	metrics.ObserveSyncPass("batch", "success")
	log.Info("Bridge batch run finished", zap.String("request_id", requestID))
}

// Stop gracefully stops the scheduler
func (s *BridgeScheduler) Stop() {
	s.stopCron()
}

func (s *BridgeScheduler) stopCron() {
	if s.cron != nil {
		cronCtx := s.cron.Stop()
		<-cronCtx.Done()
	}
}

func (s *BridgeScheduler) getLockTTL() time.Duration {
	if s.config.LockTTL > 0 {
		return s.config.LockTTL
	}
	return 10 * time.Minute
}

func (s *BridgeScheduler) getRefreshInterval() time.Duration {
	if s.config.RefreshInterval > 0 {
		return s.config.RefreshInterval
	}
	return 1 * time.Minute
}
