package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"time"

	"affiliate-tracker/internal/core/domain"
)

const (
	defaultStatsDays = 7

	EventConversionRecorded = "conversion.recorded"
	EventClickRejected      = "click.rejected"
)

// GetDailyAnalytics lists an application's rollup rows between from and to,
// both inclusive at day granularity.
func (u *TrackingUseCase) GetDailyAnalytics(ctx context.Context, applicationID string, from, to time.Time) ([]domain.DailyAnalytics, error) {
	if applicationID == "" {
		return nil, fmt.Errorf("application id: %w", domain.ErrInvalidInput)
	}
	from, to = domain.Day(from), domain.Day(to)
	if to.Before(from) {
		return nil, fmt.Errorf("range %s..%s: %w", from.Format(time.DateOnly), to.Format(time.DateOnly), domain.ErrInvalidInput)
	}
	rows, err := u.analytics.ListDaily(ctx, applicationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list daily analytics: %w", err)
	}
	return rows, nil
}

// GetFraudStats aggregates persisted fraud checks over the trailing days.
func (u *TrackingUseCase) GetFraudStats(ctx context.Context, days int) (*domain.FraudStats, error) {
	if days <= 0 {
		days = defaultStatsDays
	}
	since := u.nowFn().AddDate(0, 0, -days)

	stats, err := u.fraudChecks.Summarize(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("summarize fraud checks: %w", err)
	}
	clicks, err := u.ledger.CountClicksSince(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("count clicks: %w", err)
	}

	stats.Days = days
	stats.TotalClicks = clicks
	stats.FraudRate = 0
	if stats.TotalChecks > 0 {
		rate := float64(stats.BlockedClicks) / float64(stats.TotalChecks) * 100
		stats.FraudRate = math.Round(rate*100) / 100
	}
	return stats, nil
}

// CleanupOldClickEvents removes ledger rows strictly older than days.
func (u *TrackingUseCase) CleanupOldClickEvents(ctx context.Context, days int) (int64, error) {
	cutoff := u.retentionCutoff(days)
	deleted, err := u.ledger.DeleteClicksBefore(ctx, cutoff, u.settings.RetentionBatchSize)
	if err != nil {
		return deleted, fmt.Errorf("delete clicks before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	u.logger.Info("click retention cleanup",
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}

// PruneFraudChecks removes fraud check summaries older than days. It is
// run alongside click retention so stats never outlive their ledger.
func (u *TrackingUseCase) PruneFraudChecks(ctx context.Context, days int) (int64, error) {
	cutoff := u.retentionCutoff(days)
	deleted, err := u.fraudChecks.DeleteBefore(ctx, cutoff, u.settings.RetentionBatchSize)
	if err != nil {
		return deleted, fmt.Errorf("delete fraud checks before %s: %w", cutoff.Format(time.RFC3339), err)
	}
	u.logger.Info("fraud check retention cleanup",
		slog.Time("cutoff", cutoff),
		slog.Int64("deleted", deleted),
	)
	return deleted, nil
}

// RetentionDays is the configured default window for cleanup callers.
func (u *TrackingUseCase) RetentionDays() int {
	return u.settings.RetentionDays
}

func (u *TrackingUseCase) retentionCutoff(days int) time.Time {
	if days <= 0 {
		days = u.settings.RetentionDays
	}
	return u.nowFn().AddDate(0, 0, -days)
}

// publish is best effort and bounded by PublishTimeout; a slow broker must
// not hold up the redirect that triggered the event.
func (u *TrackingUseCase) publish(ctx context.Context, eventType, key string, v any) {
	if u.events == nil {
		return
	}
	payload, err := json.Marshal(v)
	if err != nil {
		u.logger.Error("marshal event", slog.String("type", eventType), slog.Any("error", err))
		return
	}
	ctx, cancel := context.WithTimeout(ctx, u.settings.PublishTimeout)
	defer cancel()
	if err := u.events.Publish(ctx, eventType, key, payload); err != nil {
		u.logger.Warn("publish event", slog.String("type", eventType), slog.String("key", key), slog.Any("error", err))
	}
}
