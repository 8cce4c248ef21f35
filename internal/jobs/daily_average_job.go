package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	portssvc "github.com/SscSPs/cashflow_forecast_app/internal/core/ports/services"
	"github.com/SscSPs/cashflow_forecast_app/internal/middleware"
	"github.com/robfig/cron/v3"
)

const defaultRunTimeout = 10 * time.Minute

// DailyAverageJob periodically rebuilds the stored daily spending shape of every
// variable expense.
type DailyAverageJob struct {
	svc     portssvc.DailyAverageSvc
	logger  *slog.Logger
	cron    *cron.Cron
	timeout time.Duration
}

// Option configures a DailyAverageJob.
type Option func(*DailyAverageJob)

// WithRunTimeout bounds a single refresh.
func WithRunTimeout(d time.Duration) Option {
	return func(j *DailyAverageJob) {
		if d > 0 {
			j.timeout = d
		}
	}
}

// NewDailyAverageJob schedules svc on a standard five-field cron spec.
func NewDailyAverageJob(svc portssvc.DailyAverageSvc, spec string, logger *slog.Logger, opts ...Option) (*DailyAverageJob, error) {
	if logger == nil {
		logger = slog.Default()
	}
	j := &DailyAverageJob{
		svc:     svc,
		logger:  logger.With(slog.String("job", "daily_average_refresh")),
		timeout: defaultRunTimeout,
	}
	for _, opt := range opts {
		opt(j)
	}

	j.cron = cron.New(cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)))
	if _, err := j.cron.AddFunc(spec, func() { _, _ = j.RunOnce(context.Background()) }); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return j, nil
}

// RunOnce refreshes the averages immediately and returns how many expenses were rebuilt.
func (j *DailyAverageJob) RunOnce(ctx context.Context) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, j.timeout)
	defer cancel()
	ctx = middleware.WithLogger(ctx, j.logger)

	start := time.Now()
	n, err := j.svc.RefreshDailyAverages(ctx)
	if err != nil {
		j.logger.Error("Daily average refresh failed",
			slog.Int("refreshed", n),
			slog.String("error", err.Error()),
			slog.Duration("duration", time.Since(start)))
		return n, err
	}
	j.logger.Info("Daily average refresh finished", slog.Int("refreshed", n), slog.Duration("duration", time.Since(start)))
	return n, nil
}

// Start runs the scheduler in the background.
func (j *DailyAverageJob) Start() {
	j.cron.Start()
	j.logger.Info("Daily average job scheduled", slog.Time("next_run", j.cron.Entries()[0].Next))
}

// Stop stops scheduling and waits for a running refresh to finish or ctx to expire.
func (j *DailyAverageJob) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
		j.logger.Warn("Daily average job did not stop in time")
	}
}
