// Package postgres implements the repository ports on PostgreSQL via pgx.
// NUMERIC columns cross the wire as text so amounts never pass through
// float64.
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
)

// inTx runs fn in a transaction and commits when it returns nil.
func inTx(ctx context.Context, pool *pgxpool.Pool, opts pgx.TxOptions, fn func(pgx.Tx) error) (err error) {
	tx, err := pool.BeginTx(ctx, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()
	return fn(tx)
}

func notFound(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s: %w", what, domain.ErrNotFound)
	}
	return err
}

func parseDecimal(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse numeric %q: %w", s, err)
	}
	return d, nil
}

func parseOptionalDecimal(s *string) (*decimal.Decimal, error) {
	if s == nil {
		return nil, nil
	}
	d, err := parseDecimal(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

const dailyColumns = `application_id, day, clicks, unique_clicks, conversions, earnings::text, earnings_paid::text, updated_at`

func scanDaily(row pgx.Row) (*domain.DailyAnalytics, error) {
	var (
		da             domain.DailyAnalytics
		earnings, paid string
	)
	if err := row.Scan(&da.ApplicationID, &da.Day, &da.Clicks, &da.UniqueClicks, &da.Conversions, &earnings, &paid, &da.UpdatedAt); err != nil {
		return nil, err
	}
	var err error
	if da.Earnings, err = parseDecimal(earnings); err != nil {
		return nil, err
	}
	if da.EarningsPaid, err = parseDecimal(paid); err != nil {
		return nil, err
	}
	da.Day = domain.Day(da.Day)
	return &da, nil
}
