// Package memory holds map-backed repositories with the same transactional
// guarantees as the postgres adapter. A single mutex stands in for the
// database transaction, so every write path is atomic.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

var (
	_ port.ApplicationRepository = (*Store)(nil)
	_ port.LedgerRepository      = (*Store)(nil)
	_ port.AnalyticsRepository   = (*Store)(nil)
	_ port.FraudCheckRepository  = (*Store)(nil)
)

type dayKey struct {
	applicationID string
	day           time.Time
}

// Store implements every repository port in memory.
type Store struct {
	mu           sync.RWMutex
	offers       map[string]domain.Offer
	applications map[string]domain.Application
	clicks       []domain.ClickEvent
	daily        map[dayKey]domain.DailyAnalytics
	payments     []domain.Payment
	fraudChecks  []domain.FraudCheck

	now func() time.Time
}

// NewStore returns an empty store on the wall clock.
func NewStore() *Store {
	return &Store{
		offers:       map[string]domain.Offer{},
		applications: map[string]domain.Application{},
		daily:        map[dayKey]domain.DailyAnalytics{},
		now:          func() time.Time { return time.Now().UTC() },
	}
}

// PutOffer inserts or replaces an offer.
func (s *Store) PutOffer(o domain.Offer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[o.ID] = o
}

// PutApplication inserts or replaces an application.
func (s *Store) PutApplication(a domain.Application) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.applications[a.ID] = a
}

func (s *Store) GetApplication(_ context.Context, id string) (*domain.Application, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	app, ok := s.applications[id]
	if !ok {
		return nil, fmt.Errorf("application %s: %w", id, domain.ErrNotFound)
	}
	return &app, nil
}

func (s *Store) GetOffer(_ context.Context, id string) (*domain.Offer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	offer, ok := s.offers[id]
	if !ok {
		return nil, fmt.Errorf("offer %s: %w", id, domain.ErrNotFound)
	}
	return &offer, nil
}

func (s *Store) ResolveTrackingCode(_ context.Context, code string) (*domain.TrackingLink, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, app := range s.applications {
		if app.TrackingCode != code {
			continue
		}
		offer, ok := s.offers[app.OfferID]
		if !ok {
			break
		}
		return &domain.TrackingLink{
			TrackingCode:   app.TrackingCode,
			ApplicationID:  app.ID,
			OfferID:        app.OfferID,
			CreatorID:      app.CreatorID,
			DestinationURL: offer.DestinationURL,
		}, nil
	}
	return nil, fmt.Errorf("tracking code %s: %w", code, domain.ErrNotFound)
}

func (s *Store) CountRecentByIP(_ context.Context, ip string, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.clicks {
		if c.IPAddress == ip && !c.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountByIPAndApplication(_ context.Context, ip, applicationID string, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.clicks {
		if c.IPAddress == ip && c.ApplicationID == applicationID && !c.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

func (s *Store) CountClicksSince(_ context.Context, since time.Time) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var n int64
	for _, c := range s.clicks {
		if !c.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

// AppendClick inserts the click and recomputes the day's distinct IP count
// while holding the write lock.
func (s *Store) AppendClick(_ context.Context, click *domain.ClickEvent) (*domain.DailyAnalytics, error) {
	if click == nil {
		return nil, fmt.Errorf("nil click: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.clicks = append(s.clicks, *click)

	start, end := domain.DayBounds(click.Timestamp)
	ips := map[string]struct{}{}
	for _, c := range s.clicks {
		if c.ApplicationID == click.ApplicationID && !c.Timestamp.Before(start) && c.Timestamp.Before(end) {
			ips[c.IPAddress] = struct{}{}
		}
	}

	row := s.dailyRow(click.ApplicationID, start)
	row.Clicks++
	row.UniqueClicks = int64(len(ips))
	row.UpdatedAt = s.now()
	s.daily[dayKey{click.ApplicationID, start}] = row
	return &row, nil
}

func (s *Store) DeleteClicksBefore(_ context.Context, cutoff time.Time, _ int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.clicks[:0]
	var deleted int64
	for _, c := range s.clicks {
		if c.Timestamp.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	s.clicks = kept
	return deleted, nil
}

func (s *Store) RecordConversion(_ context.Context, applicationID string, day time.Time, amount decimal.Decimal, payment *domain.Payment) (*domain.DailyAnalytics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	day = domain.Day(day)
	row := s.dailyRow(applicationID, day)
	row.Conversions++
	row.Earnings = row.Earnings.Add(amount)
	row.UpdatedAt = s.now()
	s.daily[dayKey{applicationID, day}] = row
	if payment != nil {
		s.payments = append(s.payments, *payment)
	}
	return &row, nil
}

func (s *Store) ListDaily(_ context.Context, applicationID string, from, to time.Time) ([]domain.DailyAnalytics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	from, to = domain.Day(from), domain.Day(to)
	out := make([]domain.DailyAnalytics, 0)
	for k, row := range s.daily {
		if k.applicationID != applicationID || k.day.Before(from) || k.day.After(to) {
			continue
		}
		out = append(out, row)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day.Before(out[j].Day) })
	return out, nil
}

// Payments returns a copy of every payment written so far.
func (s *Store) Payments() []domain.Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]domain.Payment(nil), s.payments...)
}

func (s *Store) Save(_ context.Context, check *domain.FraudCheck) error {
	if check == nil {
		return fmt.Errorf("nil fraud check: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fraudChecks = append(s.fraudChecks, *check)
	return nil
}

func (s *Store) Summarize(_ context.Context, since time.Time) (*domain.FraudStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats := &domain.FraudStats{}
	for _, fc := range s.fraudChecks {
		if fc.CheckedAt.Before(since) {
			continue
		}
		stats.TotalChecks++
		if len(fc.Flags) > 0 {
			stats.FlaggedClicks++
		}
		if !fc.IsValid {
			stats.BlockedClicks++
		}
	}
	return stats, nil
}

func (s *Store) DeleteBefore(_ context.Context, cutoff time.Time, _ int) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	kept := s.fraudChecks[:0]
	var deleted int64
	for _, fc := range s.fraudChecks {
		if fc.CheckedAt.Before(cutoff) {
			deleted++
			continue
		}
		kept = append(kept, fc)
	}
	s.fraudChecks = kept
	return deleted, nil
}

// dailyRow returns the existing row or a zero row. Callers hold mu.
func (s *Store) dailyRow(applicationID string, day time.Time) domain.DailyAnalytics {
	if row, ok := s.daily[dayKey{applicationID, day}]; ok {
		return row
	}
	return domain.DailyAnalytics{
		ApplicationID: applicationID,
		Day:           day,
		Earnings:      decimal.Zero,
		EarningsPaid:  decimal.Zero,
	}
}
