package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// RecordConversion computes earnings for the application's offer, then
// folds them into today's rollup and creates a pending payment atomically.
func (u *TrackingUseCase) RecordConversion(ctx context.Context, applicationID string, saleAmount *decimal.Decimal) (*port.ConversionResult, error) {
	if saleAmount != nil && saleAmount.IsNegative() {
		return nil, fmt.Errorf("sale amount %s: %w", saleAmount.String(), domain.ErrInvalidInput)
	}

	app, err := u.apps.GetApplication(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("get application %s: %w", applicationID, err)
	}
	offer, err := u.apps.GetOffer(ctx, app.OfferID)
	if err != nil {
		return nil, fmt.Errorf("get offer %s: %w", app.OfferID, err)
	}

	earnings, err := domain.CalculateCommission(*offer, saleAmount)
	if errors.Is(err, domain.ErrCommissionNotApplicable) {
		u.logger.Info("conversion skipped",
			slog.String("application_id", app.ID),
			slog.String("commission_type", string(offer.CommissionType)),
		)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("offer %s: %w", offer.ID, err)
	}

	now := u.nowFn()
	payment := domain.NewPendingPayment(u.idFn(), *app, *offer, earnings, u.settings.FeeSplit, now)

	day, err := u.analytics.RecordConversion(ctx, app.ID, domain.Day(now), earnings, &payment)
	if err != nil {
		return nil, fmt.Errorf("record conversion: %w", err)
	}

	u.logger.Info("conversion recorded",
		slog.String("application_id", app.ID),
		slog.String("payment_id", payment.ID),
		slog.String("earnings", earnings.StringFixed(2)),
	)
	u.publish(ctx, EventConversionRecorded, app.ID, conversionRecordedEvent{
		ApplicationID: app.ID,
		OfferID:       offer.ID,
		CreatorID:     app.CreatorID,
		CompanyID:     offer.CompanyID,
		PaymentID:     payment.ID,
		Earnings:      earnings,
		PlatformFee:   payment.PlatformFeeAmount,
		ProcessorFee:  payment.StripeFeeAmount,
		Net:           payment.NetAmount,
		RecordedAt:    now,
	})

	return &port.ConversionResult{
		Earnings:  earnings,
		Analytics: *day,
		Payment:   payment,
	}, nil
}

type conversionRecordedEvent struct {
	ApplicationID string          `json:"application_id"`
	OfferID       string          `json:"offer_id"`
	CreatorID     string          `json:"creator_id"`
	CompanyID     string          `json:"company_id"`
	PaymentID     string          `json:"payment_id"`
	Earnings      decimal.Decimal `json:"earnings"`
	PlatformFee   decimal.Decimal `json:"platform_fee"`
	ProcessorFee  decimal.Decimal `json:"processor_fee"`
	Net           decimal.Decimal `json:"net"`
	RecordedAt    time.Time       `json:"recorded_at"`
}
