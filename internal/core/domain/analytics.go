package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyAnalytics is the per application, per UTC day rollup of clicks and
// conversions. There is at most one row per (ApplicationID, Day).
// Clicks >= UniqueClicks >= 0 always holds; Earnings only grows.
type DailyAnalytics struct {
	ApplicationID string
	Day           time.Time
	Clicks        int64
	UniqueClicks  int64
	Conversions   int64
	Earnings      decimal.Decimal
	EarningsPaid  decimal.Decimal
	UpdatedAt     time.Time
}

// Day truncates t to the start of its UTC calendar day.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// DayBounds returns [start, end) of the UTC day containing t.
func DayBounds(t time.Time) (time.Time, time.Time) {
	start := Day(t)
	return start, start.AddDate(0, 0, 1)
}
