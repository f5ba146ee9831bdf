package port

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
)

// TrackingUseCase defines the business operations exposed by the click
// tracking core. This interface represents the primary port into the
// application domain.
type TrackingUseCase interface {
	// RecordClick resolves trackingCode, scores the click and ledgers it when
	// valid. It returns the destination URL to redirect to. Only an unknown
	// tracking code produces an error; fraud rejections and ledger failures
	// are logged and the redirect URL is still returned.
	RecordClick(ctx context.Context, trackingCode string, in domain.ClickInput) (string, error)

	// CheckClickFraud evaluates a click against recent ledger history and
	// static heuristics. It performs no writes.
	CheckClickFraud(ctx context.Context, ip, userAgent, referer, applicationID string) domain.FraudCheckResult

	// LogTrackingClick appends the click to the ledger and folds it into the
	// day's analytics row for the application.
	LogTrackingClick(ctx context.Context, applicationID string, in domain.ClickInput) (*domain.DailyAnalytics, error)

	// RecordConversion computes the commission for one conversion, adds it to
	// the day's analytics and creates a pending payment. It returns nil, nil
	// for commission types that are settled through another path.
	RecordConversion(ctx context.Context, applicationID string, saleAmount *decimal.Decimal) (*ConversionResult, error)

	// GetDailyAnalytics lists rollup rows for an application, ordered by day.
	GetDailyAnalytics(ctx context.Context, applicationID string, from, to time.Time) ([]domain.DailyAnalytics, error)

	// GetFraudStats aggregates fraud checks over the trailing days.
	GetFraudStats(ctx context.Context, days int) (*domain.FraudStats, error)

	// CleanupOldClickEvents deletes ledger rows older than days and returns
	// how many were removed.
	CleanupOldClickEvents(ctx context.Context, days int) (int64, error)
}

// ConversionResult is returned after a conversion has been recorded.
type ConversionResult struct {
	Earnings  decimal.Decimal
	Analytics domain.DailyAnalytics
	Payment   domain.Payment
}
