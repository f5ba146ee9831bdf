package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
)

// ApplicationRepository reads marketplace-owned applications and offers.
// Missing rows are reported as domain.ErrNotFound.
type ApplicationRepository interface {
	GetApplication(ctx context.Context, id string) (*domain.Application, error)
	GetOffer(ctx context.Context, id string) (*domain.Offer, error)
	ResolveTrackingCode(ctx context.Context, code string) (*domain.TrackingLink, error)
}

// ClickCounter answers the recent-history questions the fraud scorer asks.
type ClickCounter interface {
	// CountRecentByIP counts ledger clicks from ip at or after since.
	CountRecentByIP(ctx context.Context, ip string, since time.Time) (int64, error)
	// CountByIPAndApplication counts ledger clicks from ip on applicationID at
	// or after since.
	CountByIPAndApplication(ctx context.Context, ip, applicationID string, since time.Time) (int64, error)
}

// LedgerRepository owns click events. Implementations must be
// concurrency-safe and keep at most one analytics row per application and day.
type LedgerRepository interface {
	ClickCounter

	// AppendClick inserts click and, in the same transaction, increments
	// the day's click count and recomputes its distinct IP count.
	AppendClick(ctx context.Context, click *domain.ClickEvent) (*domain.DailyAnalytics, error)

	// CountClicksSince counts all ledger clicks at or after since.
	CountClicksSince(ctx context.Context, since time.Time) (int64, error)

	// DeleteClicksBefore removes clicks strictly older than cutoff in batches
	// of batchSize and returns the total removed.
	DeleteClicksBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// AnalyticsRepository owns the daily rollup and the payments created with it.
type AnalyticsRepository interface {
	// RecordConversion increments the day's conversions by one and earnings
	// by amount, and inserts payment, in one transaction.
	RecordConversion(ctx context.Context, applicationID string, day time.Time, amount decimal.Decimal, payment *domain.Payment) (*domain.DailyAnalytics, error)

	// ListDaily returns rows with from <= day <= to ordered by day.
	ListDaily(ctx context.Context, applicationID string, from, to time.Time) ([]domain.DailyAnalytics, error)
}

// FraudCheckRepository persists fraud check summaries for statistics.
type FraudCheckRepository interface {
	Save(ctx context.Context, check *domain.FraudCheck) error
	// Summarize fills TotalChecks, FlaggedClicks and BlockedClicks for checks
	// at or after since.
	Summarize(ctx context.Context, since time.Time) (*domain.FraudStats, error)
	DeleteBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error)
}

// GeoLocator resolves an IP to a location. Callers bound it with a timeout
// and degrade to domain.UnknownLocation on any error.
type GeoLocator interface {
	Locate(ctx context.Context, ip string) (domain.GeoLocation, error)
}

// EventPublisher emits domain events to downstream consumers.
type EventPublisher interface {
	Publish(ctx context.Context, eventType, key string, payload []byte) error
}
