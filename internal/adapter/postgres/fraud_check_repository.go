package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// FraudCheckRepository stores one summary row per scored click.
type FraudCheckRepository struct {
	pool *pgxpool.Pool
}

var _ port.FraudCheckRepository = (*FraudCheckRepository)(nil)

// NewFraudCheckRepository returns a fraud check repository backed by pool.
func NewFraudCheckRepository(pool *pgxpool.Pool) *FraudCheckRepository {
	return &FraudCheckRepository{pool: pool}
}

// Save inserts one fraud check summary.
func (r *FraudCheckRepository) Save(ctx context.Context, check *domain.FraudCheck) error {
	flags := make([]string, len(check.Flags))
	for i, f := range check.Flags {
		flags[i] = string(f)
	}
	_, err := r.pool.Exec(ctx, `
        INSERT INTO fraud_checks
            (id, tracking_code, application_id, ip_address, fraud_score, is_valid, reason, flags, checked_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`,
		check.ID, check.TrackingCode, check.ApplicationID, check.IPAddress, check.FraudScore,
		check.IsValid, check.Reason, flags, check.CheckedAt)
	return err
}

// Summarize counts checks, flagged checks and blocked checks since since.
func (r *FraudCheckRepository) Summarize(ctx context.Context, since time.Time) (*domain.FraudStats, error) {
	var stats domain.FraudStats
	err := r.pool.QueryRow(ctx, `
        SELECT count(*),
               count(*) FILTER (WHERE cardinality(flags) > 0),
               count(*) FILTER (WHERE NOT is_valid)
        FROM fraud_checks
        WHERE checked_at >= $1`, since).
		Scan(&stats.TotalChecks, &stats.FlaggedClicks, &stats.BlockedClicks)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

// DeleteBefore removes checks older than cutoff in batches of batchSize.
func (r *FraudCheckRepository) DeleteBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	return deleteInBatches(ctx, r.pool, `
        WITH doomed AS (
            SELECT id FROM fraud_checks
            WHERE checked_at < $1
            LIMIT $2
            FOR UPDATE SKIP LOCKED
        )
        DELETE FROM fraud_checks f USING doomed WHERE f.id = doomed.id`, cutoff, batchSize)
}
