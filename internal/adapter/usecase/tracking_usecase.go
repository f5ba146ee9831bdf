package usecase

import (
	"log/slog"
	"time"

	"github.com/google/uuid"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// Settings tunes the fraud windows, the geo and publish bounds, the fee split
// and retention batching. Zero values are replaced by DefaultSettings.
type Settings struct {
	RateLimitWindow    time.Duration
	RateLimitThreshold int64
	RepeatWindow       time.Duration
	RepeatThreshold    int64
	GeoLookupTimeout   time.Duration
	PublishTimeout     time.Duration
	FeeSplit           domain.FeeSplit
	RetentionDays      int
	RetentionBatchSize int
}

// DefaultSettings returns the production thresholds: 10 clicks per IP per
// minute, 5 clicks per IP per link per hour, a 4%/3% fee split and 90 days
// of ledger retention.
func DefaultSettings() Settings {
	return Settings{
		RateLimitWindow:    time.Minute,
		RateLimitThreshold: 10,
		RepeatWindow:       time.Hour,
		RepeatThreshold:    5,
		GeoLookupTimeout:   250 * time.Millisecond,
		PublishTimeout:     100 * time.Millisecond,
		FeeSplit:           domain.DefaultFeeSplit,
		RetentionDays:      90,
		RetentionBatchSize: 1000,
	}
}

func (s Settings) withDefaults() Settings {
	d := DefaultSettings()
	if s.RateLimitWindow <= 0 {
		s.RateLimitWindow = d.RateLimitWindow
	}
	if s.RateLimitThreshold <= 0 {
		s.RateLimitThreshold = d.RateLimitThreshold
	}
	if s.RepeatWindow <= 0 {
		s.RepeatWindow = d.RepeatWindow
	}
	if s.RepeatThreshold <= 0 {
		s.RepeatThreshold = d.RepeatThreshold
	}
	if s.GeoLookupTimeout <= 0 {
		s.GeoLookupTimeout = d.GeoLookupTimeout
	}
	if s.PublishTimeout <= 0 {
		s.PublishTimeout = d.PublishTimeout
	}
	if s.FeeSplit.PlatformPercent.IsZero() && s.FeeSplit.ProcessorPercent.IsZero() {
		s.FeeSplit = d.FeeSplit
	}
	if s.RetentionDays <= 0 {
		s.RetentionDays = d.RetentionDays
	}
	if s.RetentionBatchSize <= 0 {
		s.RetentionBatchSize = d.RetentionBatchSize
	}
	return s
}

// Dependencies are the outbound ports the use case drives. Geo and Events
// are optional.
type Dependencies struct {
	Applications port.ApplicationRepository
	Ledger       port.LedgerRepository
	Analytics    port.AnalyticsRepository
	FraudChecks  port.FraudCheckRepository
	Geo          port.GeoLocator
	Events       port.EventPublisher
	Logger       *slog.Logger
}

// TrackingUseCase implements port.TrackingUseCase. It holds no mutable
// state of its own; every guarantee comes from the repositories.
type TrackingUseCase struct {
	apps        port.ApplicationRepository
	ledger      port.LedgerRepository
	analytics   port.AnalyticsRepository
	fraudChecks port.FraudCheckRepository
	geo         port.GeoLocator
	events      port.EventPublisher
	logger      *slog.Logger
	settings    Settings

	nowFn func() time.Time
	idFn  func() string
}

var _ port.TrackingUseCase = (*TrackingUseCase)(nil)

// NewTrackingUseCase wires the use case.
func NewTrackingUseCase(deps Dependencies, settings Settings) *TrackingUseCase {
	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &TrackingUseCase{
		apps:        deps.Applications,
		ledger:      deps.Ledger,
		analytics:   deps.Analytics,
		fraudChecks: deps.FraudChecks,
		geo:         deps.Geo,
		events:      deps.Events,
		logger:      logger,
		settings:    settings.withDefaults(),
		nowFn:       func() time.Time { return time.Now().UTC() },
		idFn:        uuid.NewString,
	}
}
