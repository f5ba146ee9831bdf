// Package worker runs periodic maintenance next to the HTTP server.
package worker

import (
	"context"
	"errors"
	"log/slog"
	"time"
)

// Retention is implemented by usecase.TrackingUseCase.
type Retention interface {
	CleanupOldClickEvents(ctx context.Context, days int) (int64, error)
	PruneFraudChecks(ctx context.Context, days int) (int64, error)
}

// RetentionWorker deletes ledger rows and fraud checks older than days on
// every tick, starting immediately.
type RetentionWorker struct {
	logger    *slog.Logger
	retention Retention
	interval  time.Duration
	days      int
}

// NewRetentionWorker runs retention every interval against a days-long window.
func NewRetentionWorker(logger *slog.Logger, retention Retention, interval time.Duration, days int) *RetentionWorker {
	if interval <= 0 {
		interval = 24 * time.Hour
	}
	return &RetentionWorker{logger: logger, retention: retention, interval: interval, days: days}
}

// Run blocks until ctx is done.
func (w *RetentionWorker) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		if err := w.runOnce(ctx); err != nil && !errors.Is(err, context.Canceled) {
			w.logger.ErrorContext(ctx, "retention iteration failed", slog.Any("error", err))
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}

func (w *RetentionWorker) runOnce(ctx context.Context) error {
	clicks, err := w.retention.CleanupOldClickEvents(ctx, w.days)
	if err != nil {
		return err
	}
	checks, err := w.retention.PruneFraudChecks(ctx, w.days)
	if err != nil {
		return err
	}
	w.logger.InfoContext(ctx, "retention completed",
		slog.Int("days", w.days),
		slog.Int64("click_events_deleted", clicks),
		slog.Int64("fraud_checks_deleted", checks),
	)
	return nil
}
