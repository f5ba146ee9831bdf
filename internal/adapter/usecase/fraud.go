package usecase

import (
	"context"
	"log/slog"

	"affiliate-tracker/internal/core/domain"
)

// CheckClickFraud runs every heuristic and accumulates flags in check order.
// Failing history lookups count as zero so a broken store never blocks
// traffic on its own.
func (u *TrackingUseCase) CheckClickFraud(ctx context.Context, ip, userAgent, referer, applicationID string) domain.FraudCheckResult {
	now := u.nowFn()
	flags := make([]domain.Flag, 0, 6)

	recent, err := u.ledger.CountRecentByIP(ctx, ip, now.Add(-u.settings.RateLimitWindow))
	if err != nil {
		u.logger.Warn("recent click count failed", slog.String("ip", ip), slog.Any("error", err))
		recent = 0
	}
	if recent >= u.settings.RateLimitThreshold {
		flags = append(flags, domain.FlagRateLimitExceeded)
	}

	if domain.IsBotUserAgent(userAgent) {
		flags = append(flags, domain.FlagBotUserAgent)
	}

	if domain.IsBlank(userAgent) {
		flags = append(flags, domain.FlagNoUserAgent)
	}

	if domain.IsPrivateNetworkIP(ip) {
		flags = append(flags, domain.FlagPrivateNetworkIP)
	}

	if domain.IsBlank(referer) {
		flags = append(flags, domain.FlagNoReferer)
	}

	repeated, err := u.ledger.CountByIPAndApplication(ctx, ip, applicationID, now.Add(-u.settings.RepeatWindow))
	if err != nil {
		u.logger.Warn("repeated click count failed",
			slog.String("ip", ip),
			slog.String("application_id", applicationID),
			slog.Any("error", err),
		)
		repeated = 0
	}
	if repeated >= u.settings.RepeatThreshold {
		flags = append(flags, domain.FlagRepeatedClicks)
	}

	return domain.NewFraudCheckResult(flags)
}

// logFraudDetection writes the structured fraud record for one click.
func (u *TrackingUseCase) logFraudDetection(ctx context.Context, trackingCode, ip string, res domain.FraudCheckResult) {
	level := slog.LevelInfo
	if !res.IsValid {
		level = slog.LevelWarn
	}
	flags := make([]string, len(res.Flags))
	for i, f := range res.Flags {
		flags[i] = string(f)
	}
	u.logger.LogAttrs(ctx, level, "fraud detection",
		slog.Time("timestamp", u.nowFn()),
		slog.String("tracking_code", trackingCode),
		slog.String("ip", ip),
		slog.Int("fraud_score", res.FraudScore),
		slog.Bool("is_valid", res.IsValid),
		slog.String("reason", res.Reason),
		slog.Any("flags", flags),
	)
}
