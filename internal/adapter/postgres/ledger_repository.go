package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// LedgerRepository owns click_events and the click side of daily_analytics.
type LedgerRepository struct {
	pool *pgxpool.Pool
}

var _ port.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository returns a ledger backed by pool.
func NewLedgerRepository(pool *pgxpool.Pool) *LedgerRepository {
	return &LedgerRepository{pool: pool}
}

// CountRecentByIP counts clicks from ip at or after since.
func (r *LedgerRepository) CountRecentByIP(ctx context.Context, ip string, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM click_events WHERE ip_address = $1 AND timestamp >= $2`, ip, since).Scan(&n)
	return n, err
}

// CountByIPAndApplication counts clicks from ip on applicationID at or after since.
func (r *LedgerRepository) CountByIPAndApplication(ctx context.Context, ip, applicationID string, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx,
		`SELECT count(*) FROM click_events WHERE ip_address = $1 AND application_id = $2 AND timestamp >= $3`,
		ip, applicationID, since).Scan(&n)
	return n, err
}

// CountClicksSince counts every ledgered click at or after since.
func (r *LedgerRepository) CountClicksSince(ctx context.Context, since time.Time) (int64, error) {
	var n int64
	err := r.pool.QueryRow(ctx, `SELECT count(*) FROM click_events WHERE timestamp >= $1`, since).Scan(&n)
	return n, err
}

// AppendClick runs in READ COMMITTED. The upsert takes the row lock on the
// day's analytics row, so the distinct IP recount that follows sees every
// click committed by writers that held the lock before us.
func (r *LedgerRepository) AppendClick(ctx context.Context, click *domain.ClickEvent) (*domain.DailyAnalytics, error) {
	start, end := domain.DayBounds(click.Timestamp)
	var out *domain.DailyAnalytics

	err := inTx(ctx, r.pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
            INSERT INTO click_events
                (id, application_id, offer_id, creator_id, ip_address, user_agent, referer,
                 country, city, device_type, browser, timestamp)
            VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)`,
			click.ID, click.ApplicationID, click.OfferID, click.CreatorID, click.IPAddress,
			click.UserAgent, click.Referer, click.Country, click.City, click.DeviceType,
			click.Browser, click.Timestamp)
		if err != nil {
			return fmt.Errorf("insert click: %w", err)
		}

		_, err = tx.Exec(ctx, `
            INSERT INTO daily_analytics (application_id, day, clicks, unique_clicks, updated_at)
            VALUES ($1, $2::date, 1, 1, now())
            ON CONFLICT (application_id, day) DO UPDATE
            SET clicks = daily_analytics.clicks + 1, updated_at = now()`,
			click.ApplicationID, start)
		if err != nil {
			return fmt.Errorf("upsert daily clicks: %w", err)
		}

		row := tx.QueryRow(ctx, `
            UPDATE daily_analytics
            SET unique_clicks = (
                SELECT count(DISTINCT ip_address) FROM click_events
                WHERE application_id = $1 AND timestamp >= $3 AND timestamp < $4
            )
            WHERE application_id = $1 AND day = $2::date
            RETURNING `+dailyColumns,
			click.ApplicationID, start, start, end)
		out, err = scanDaily(row)
		if err != nil {
			return fmt.Errorf("recount unique clicks: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteClicksBefore deletes in batches so retention never holds long locks
// on the ledger; rows locked by concurrent work are skipped and picked up by
// the next run.
func (r *LedgerRepository) DeleteClicksBefore(ctx context.Context, cutoff time.Time, batchSize int) (int64, error) {
	return deleteInBatches(ctx, r.pool, `
        WITH doomed AS (
            SELECT id FROM click_events
            WHERE timestamp < $1
            ORDER BY timestamp
            LIMIT $2
            FOR UPDATE SKIP LOCKED
        )
        DELETE FROM click_events c USING doomed WHERE c.id = doomed.id`, cutoff, batchSize)
}

func deleteInBatches(ctx context.Context, pool *pgxpool.Pool, query string, cutoff time.Time, batchSize int) (int64, error) {
	if batchSize <= 0 {
		batchSize = 1000
	}
	var total int64
	for {
		if err := ctx.Err(); err != nil {
			return total, err
		}
		tag, err := pool.Exec(ctx, query, cutoff, batchSize)
		if err != nil {
			return total, err
		}
		n := tag.RowsAffected()
		total += n
		if n < int64(batchSize) {
			return total, nil
		}
	}
}
