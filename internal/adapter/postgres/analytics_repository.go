package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// AnalyticsRepository owns the conversion side of daily_analytics and the
// payments table.
type AnalyticsRepository struct {
	pool *pgxpool.Pool
}

var _ port.AnalyticsRepository = (*AnalyticsRepository)(nil)

// NewAnalyticsRepository returns an analytics repository backed by pool.
func NewAnalyticsRepository(pool *pgxpool.Pool) *AnalyticsRepository {
	return &AnalyticsRepository{pool: pool}
}

// RecordConversion adds one conversion and amount to the day's row and
// inserts payment, if any, in the same transaction.
func (r *AnalyticsRepository) RecordConversion(ctx context.Context, applicationID string, day time.Time, amount decimal.Decimal, payment *domain.Payment) (*domain.DailyAnalytics, error) {
	var out *domain.DailyAnalytics

	err := inTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		row := tx.QueryRow(ctx, `
            INSERT INTO daily_analytics (application_id, day, conversions, earnings, updated_at)
            VALUES ($1, $2::date, 1, $3::numeric, now())
            ON CONFLICT (application_id, day) DO UPDATE
            SET conversions = daily_analytics.conversions + 1,
                earnings = daily_analytics.earnings + EXCLUDED.earnings,
                updated_at = now()
            RETURNING `+dailyColumns,
			applicationID, domain.Day(day), amount.String())
		var err error
		if out, err = scanDaily(row); err != nil {
			return fmt.Errorf("upsert daily conversions: %w", err)
		}

		if payment == nil {
			return nil
		}
		_, err = tx.Exec(ctx, `
            INSERT INTO payments
                (id, application_id, offer_id, creator_id, company_id, gross_amount,
                 platform_fee_amount, stripe_fee_amount, net_amount, status, description, created_at)
            VALUES ($1,$2,$3,$4,$5,$6::numeric,$7::numeric,$8::numeric,$9::numeric,$10,$11,$12)`,
			payment.ID, payment.ApplicationID, payment.OfferID, payment.CreatorID, payment.CompanyID,
			payment.GrossAmount.String(), payment.PlatformFeeAmount.String(),
			payment.StripeFeeAmount.String(), payment.NetAmount.String(),
			payment.Status, payment.Description, payment.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert payment: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListDaily returns the rows for applicationID between from and to
// inclusive, ordered by day.
func (r *AnalyticsRepository) ListDaily(ctx context.Context, applicationID string, from, to time.Time) ([]domain.DailyAnalytics, error) {
	rows, err := r.pool.Query(ctx, `
        SELECT `+dailyColumns+`
        FROM daily_analytics
        WHERE application_id = $1 AND day >= $2::date AND day <= $3::date
        ORDER BY day`,
		applicationID, domain.Day(from), domain.Day(to))
	if err != nil {
		return nil, err
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.DailyAnalytics, error) {
		da, err := scanDaily(row)
		if err != nil {
			return domain.DailyAnalytics{}, err
		}
		return *da, nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
