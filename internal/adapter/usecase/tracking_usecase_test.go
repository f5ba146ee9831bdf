package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"affiliate-tracker/internal/adapter/memory"
	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port/mocks"
)

const (
	chromeUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	referer  = "https://instagram.com/some-creator"
	publicIP = "203.0.113.10"
)

var fixedNow = time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

type mockDeps struct {
	apps      *mocks.MockApplicationRepository
	ledger    *mocks.MockLedgerRepository
	analytics *mocks.MockAnalyticsRepository
	checks    *mocks.MockFraudCheckRepository
	geo       *mocks.MockGeoLocator
	events    *mocks.MockEventPublisher
}

func newMocked(t *testing.T) (*TrackingUseCase, mockDeps) {
	t.Helper()
	m := mockDeps{
		apps:      mocks.NewMockApplicationRepository(t),
		ledger:    mocks.NewMockLedgerRepository(t),
		analytics: mocks.NewMockAnalyticsRepository(t),
		checks:    mocks.NewMockFraudCheckRepository(t),
		geo:       mocks.NewMockGeoLocator(t),
		events:    mocks.NewMockEventPublisher(t),
	}
	uc := NewTrackingUseCase(Dependencies{
		Applications: m.apps,
		Ledger:       m.ledger,
		Analytics:    m.analytics,
		FraudChecks:  m.checks,
		Geo:          m.geo,
		Events:       m.events,
		Logger:       quietLogger(),
	}, Settings{GeoLookupTimeout: 20 * time.Millisecond})
	uc.nowFn = func() time.Time { return fixedNow }
	return uc, m
}

func newInMemory(t *testing.T) (*TrackingUseCase, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	offers := []domain.Offer{
		{ID: "o-sale", CompanyID: "co1", Title: "Sneakers", DestinationURL: "https://shop.example/sneakers", CommissionType: domain.CommissionPerSale, CommissionPercentage: dec("10")},
		{ID: "o-lead", CompanyID: "co1", Title: "Newsletter", DestinationURL: "https://shop.example/news", CommissionType: domain.CommissionPerLead, CommissionAmount: dec("25")},
		{ID: "o-retainer", CompanyID: "co2", Title: "Ambassador", DestinationURL: "https://brand.example", CommissionType: domain.CommissionMonthlyRetainer, CommissionAmount: dec("500")},
		{ID: "o-hybrid", CompanyID: "co2", Title: "Hybrid", DestinationURL: "https://brand.example/h", CommissionType: domain.CommissionHybrid},
	}
	for _, o := range offers {
		store.PutOffer(o)
		store.PutApplication(domain.Application{
			ID:           "app-" + o.ID[2:],
			OfferID:      o.ID,
			CreatorID:    "creator-1",
			TrackingCode: "code-" + o.ID[2:],
			Status:       "approved",
		})
	}
	uc := NewTrackingUseCase(Dependencies{
		Applications: store,
		Ledger:       store,
		Analytics:    store,
		FraudChecks:  store,
		Logger:       quietLogger(),
	}, Settings{})
	return uc, store
}

func expectCounts(m mockDeps, recent, repeated int64) {
	m.ledger.EXPECT().CountRecentByIP(mock.Anything, mock.Anything, fixedNow.Add(-time.Minute)).Return(recent, nil)
	m.ledger.EXPECT().CountByIPAndApplication(mock.Anything, mock.Anything, mock.Anything, fixedNow.Add(-time.Hour)).Return(repeated, nil)
}

func TestCheckClickFraud_CleanClick(t *testing.T) {
	uc, m := newMocked(t)
	expectCounts(m, 0, 0)

	res := uc.CheckClickFraud(context.Background(), publicIP, chromeUA, referer, "app-1")

	assert.True(t, res.IsValid)
	assert.Zero(t, res.FraudScore)
	assert.Empty(t, res.Flags)
	assert.Empty(t, res.Reason)
}

func TestCheckClickFraud_OrdinaryBrowserWithoutHistory(t *testing.T) {
	uc, _ := newInMemory(t)

	res := uc.CheckClickFraud(context.Background(), "203.0.113.5", "Mozilla/5.0", "https://tiktok.com", "app-lead")

	assert.True(t, res.IsValid)
	assert.Zero(t, res.FraudScore)
	assert.Equal(t, []domain.Flag{}, res.Flags)
}

func TestCheckClickFraud_PrivateAddressWithoutHeaders(t *testing.T) {
	uc, m := newMocked(t)
	expectCounts(m, 0, 0)

	res := uc.CheckClickFraud(context.Background(), "192.168.1.1", "", "", "app-1")

	assert.Equal(t, []domain.Flag{domain.FlagNoUserAgent, domain.FlagPrivateNetworkIP, domain.FlagNoReferer}, res.Flags)
	assert.Equal(t, 45, res.FraudScore)
	assert.True(t, res.IsValid)
	assert.Equal(t, domain.FlagNoUserAgent.Description(), res.Reason)
}

func TestCheckClickFraud_BotUserAgent(t *testing.T) {
	for _, ua := range []string{"curl/8.4.0", "python-requests/2.31", "Mozilla/5.0 (compatible; Googlebot/2.1)", "HeadlessChrome/120"} {
		t.Run(ua, func(t *testing.T) {
			uc, m := newMocked(t)
			expectCounts(m, 0, 0)

			res := uc.CheckClickFraud(context.Background(), publicIP, ua, referer, "app-1")

			assert.Contains(t, res.Flags, domain.FlagBotUserAgent)
			assert.Equal(t, 30, res.FraudScore)
			assert.Equal(t, domain.FlagBotUserAgent.Description(), res.Reason)
		})
	}
}

func TestCheckClickFraud_ScoreIsCapped(t *testing.T) {
	uc, m := newMocked(t)
	expectCounts(m, 25, 25)

	res := uc.CheckClickFraud(context.Background(), "10.0.0.8", "Scrapy/2.11", "", "app-1")

	assert.Equal(t, []domain.Flag{
		domain.FlagRateLimitExceeded,
		domain.FlagBotUserAgent,
		domain.FlagPrivateNetworkIP,
		domain.FlagNoReferer,
		domain.FlagRepeatedClicks,
	}, res.Flags)
	assert.Equal(t, domain.MaxFraudScore, res.FraudScore)
	assert.False(t, res.IsValid)
	assert.Equal(t, domain.FlagRateLimitExceeded.Description(), res.Reason)
}

func TestCheckClickFraud_ThresholdBoundaries(t *testing.T) {
	uc, m := newMocked(t)
	expectCounts(m, 9, 4)

	res := uc.CheckClickFraud(context.Background(), publicIP, chromeUA, referer, "app-1")
	assert.Empty(t, res.Flags)

	uc, m = newMocked(t)
	expectCounts(m, 10, 5)

	res = uc.CheckClickFraud(context.Background(), publicIP, chromeUA, referer, "app-1")
	assert.Equal(t, []domain.Flag{domain.FlagRateLimitExceeded, domain.FlagRepeatedClicks}, res.Flags)
	assert.Equal(t, 65, res.FraudScore)
	assert.False(t, res.IsValid)
}

func TestCheckClickFraud_CounterFailuresFailOpen(t *testing.T) {
	uc, m := newMocked(t)
	m.ledger.EXPECT().CountRecentByIP(mock.Anything, publicIP, mock.Anything).Return(int64(0), errors.New("db down"))
	m.ledger.EXPECT().CountByIPAndApplication(mock.Anything, publicIP, "app-1", mock.Anything).Return(int64(0), errors.New("db down"))

	res := uc.CheckClickFraud(context.Background(), publicIP, chromeUA, "", "app-1")

	assert.Equal(t, []domain.Flag{domain.FlagNoReferer}, res.Flags)
	assert.True(t, res.IsValid)
}

func TestRateLimitAfterTenClicks(t *testing.T) {
	uc, _ := newInMemory(t)
	ctx := context.Background()

	for range 10 {
		_, err := uc.LogTrackingClick(ctx, "app-lead", domain.ClickInput{IP: publicIP, UserAgent: chromeUA, Referer: referer})
		require.NoError(t, err)
	}

	res := uc.CheckClickFraud(ctx, publicIP, chromeUA, referer, "app-lead")
	assert.Contains(t, res.Flags, domain.FlagRateLimitExceeded)
	assert.Contains(t, res.Flags, domain.FlagRepeatedClicks)
	assert.False(t, res.IsValid)

	other := uc.CheckClickFraud(ctx, "198.51.100.20", chromeUA, referer, "app-lead")
	assert.Empty(t, other.Flags)
}

func TestLogTrackingClick_UniqueClicksPerDay(t *testing.T) {
	uc, _ := newInMemory(t)
	ctx := context.Background()
	ts := time.Date(2025, 6, 15, 9, 0, 0, 0, time.UTC)

	var last *domain.DailyAnalytics
	for i := range 7 {
		var err error
		last, err = uc.LogTrackingClick(ctx, "app-lead", domain.ClickInput{IP: publicIP, UserAgent: chromeUA, Timestamp: ts.Add(time.Duration(i) * time.Minute)})
		require.NoError(t, err)
	}
	assert.Equal(t, int64(7), last.Clicks)
	assert.Equal(t, int64(1), last.UniqueClicks)

	last, err := uc.LogTrackingClick(ctx, "app-lead", domain.ClickInput{IP: "198.51.100.1", UserAgent: chromeUA, Timestamp: ts})
	require.NoError(t, err)
	assert.Equal(t, int64(8), last.Clicks)
	assert.Equal(t, int64(2), last.UniqueClicks)
	assert.True(t, last.Day.Equal(domain.Day(ts)))
}

func TestLogTrackingClick_UnknownApplication(t *testing.T) {
	uc, _ := newInMemory(t)

	_, err := uc.LogTrackingClick(context.Background(), "nope", domain.ClickInput{IP: publicIP})

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestLogTrackingClick_Enrichment(t *testing.T) {
	uc, m := newMocked(t)
	m.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", OfferID: "o1", CreatorID: "cr1"}, nil)
	m.geo.EXPECT().Locate(mock.Anything, publicIP).Return(domain.GeoLocation{Country: "DE", City: "Berlin"}, nil)

	var stored domain.ClickEvent
	m.ledger.EXPECT().AppendClick(mock.Anything, mock.AnythingOfType("*domain.ClickEvent")).
		RunAndReturn(func(_ context.Context, c *domain.ClickEvent) (*domain.DailyAnalytics, error) {
			stored = *c
			return &domain.DailyAnalytics{ApplicationID: c.ApplicationID, Clicks: 1, UniqueClicks: 1}, nil
		})

	_, err := uc.LogTrackingClick(context.Background(), "app-1", domain.ClickInput{IP: publicIP, UserAgent: chromeUA, Referer: referer})
	require.NoError(t, err)

	assert.NotEmpty(t, stored.ID)
	assert.Equal(t, "o1", stored.OfferID)
	assert.Equal(t, "cr1", stored.CreatorID)
	assert.Equal(t, "DE", stored.Country)
	assert.Equal(t, "Berlin", stored.City)
	assert.Equal(t, "desktop", stored.DeviceType)
	assert.Equal(t, "Chrome", stored.Browser)
	assert.True(t, stored.Timestamp.Equal(fixedNow))
}

func TestLogTrackingClick_GeoTimeoutDegrades(t *testing.T) {
	uc, m := newMocked(t)
	m.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1"}, nil)
	m.geo.EXPECT().Locate(mock.Anything, publicIP).
		RunAndReturn(func(context.Context, string) (domain.GeoLocation, error) {
			time.Sleep(200 * time.Millisecond)
			return domain.GeoLocation{Country: "US", City: "Austin"}, nil
		})

	var stored domain.ClickEvent
	m.ledger.EXPECT().AppendClick(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.ClickEvent) (*domain.DailyAnalytics, error) {
			stored = *c
			return &domain.DailyAnalytics{}, nil
		})

	start := time.Now()
	_, err := uc.LogTrackingClick(context.Background(), "app-1", domain.ClickInput{IP: publicIP, UserAgent: chromeUA})
	require.NoError(t, err)

	assert.Less(t, time.Since(start), 150*time.Millisecond)
	assert.Equal(t, domain.UnknownLocation, stored.Country)
	assert.Equal(t, domain.UnknownLocation, stored.City)
}

func TestLogTrackingClick_GeoErrorDegrades(t *testing.T) {
	uc, m := newMocked(t)
	m.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1"}, nil)
	m.geo.EXPECT().Locate(mock.Anything, publicIP).Return(domain.GeoLocation{}, errors.New("no database"))

	var stored domain.ClickEvent
	m.ledger.EXPECT().AppendClick(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, c *domain.ClickEvent) (*domain.DailyAnalytics, error) {
			stored = *c
			return &domain.DailyAnalytics{}, nil
		})

	_, err := uc.LogTrackingClick(context.Background(), "app-1", domain.ClickInput{IP: publicIP})
	require.NoError(t, err)
	assert.Equal(t, domain.UnknownLocation, stored.Country)
	assert.Equal(t, domain.UnknownLocation, stored.DeviceType)
}

func TestRecordClick_UnknownCode(t *testing.T) {
	uc, store := newInMemory(t)
	ctx := context.Background()

	_, err := uc.RecordClick(ctx, "missing", domain.ClickInput{IP: publicIP})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.RecordClick(ctx, "  ", domain.ClickInput{IP: publicIP})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stats, err := store.Summarize(ctx, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, stats.TotalChecks)
}

func TestRecordClick_ValidClickIsLedgered(t *testing.T) {
	uc, store := newInMemory(t)
	ctx := context.Background()

	url, err := uc.RecordClick(ctx, "code-lead", domain.ClickInput{IP: publicIP, UserAgent: chromeUA, Referer: referer})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/news", url)

	n, err := store.CountClicksSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	stats, err := uc.GetFraudStats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalChecks)
	assert.Equal(t, int64(1), stats.TotalClicks)
	assert.Zero(t, stats.BlockedClicks)
}

func TestRecordClick_FraudulentClickStillRedirects(t *testing.T) {
	uc, store := newInMemory(t)
	ctx := context.Background()

	url, err := uc.RecordClick(ctx, "code-lead", domain.ClickInput{IP: "10.1.2.3", UserAgent: "Wget/1.21", Referer: referer})
	require.NoError(t, err)
	assert.Equal(t, "https://shop.example/news", url)

	n, err := store.CountClicksSince(ctx, time.Time{})
	require.NoError(t, err)
	assert.Zero(t, n)

	stats, err := uc.GetFraudStats(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.BlockedClicks)
	assert.Equal(t, int64(1), stats.FlaggedClicks)
	assert.InDelta(t, 100.0, stats.FraudRate, 0.001)
}

func TestRecordClick_LedgerFailureIsSwallowed(t *testing.T) {
	uc, m := newMocked(t)
	link := &domain.TrackingLink{TrackingCode: "abc", ApplicationID: "app-1", DestinationURL: "https://dest.example"}
	m.apps.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil)
	expectCounts(m, 0, 0)
	m.checks.EXPECT().Save(mock.Anything, mock.AnythingOfType("*domain.FraudCheck")).Return(errors.New("insert failed"))
	m.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1"}, nil)
	m.geo.EXPECT().Locate(mock.Anything, publicIP).Return(domain.GeoLocation{}, nil)
	m.ledger.EXPECT().AppendClick(mock.Anything, mock.Anything).Return(nil, errors.New("serialization failure"))

	url, err := uc.RecordClick(context.Background(), "abc", domain.ClickInput{IP: publicIP, UserAgent: chromeUA, Referer: referer})

	require.NoError(t, err)
	assert.Equal(t, "https://dest.example", url)
}

func TestRecordClick_RejectedClickPublishesEvent(t *testing.T) {
	uc, m := newMocked(t)
	link := &domain.TrackingLink{TrackingCode: "abc", ApplicationID: "app-1", DestinationURL: "https://dest.example"}
	m.apps.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil)
	expectCounts(m, 12, 0)
	m.checks.EXPECT().Save(mock.Anything, mock.Anything).
		Run(func(_ context.Context, fc *domain.FraudCheck) {
			assert.False(t, fc.IsValid)
			assert.Equal(t, "abc", fc.TrackingCode)
		}).
		Return(nil)
	m.events.EXPECT().Publish(mock.Anything, EventClickRejected, "app-1", mock.Anything).Return(nil)

	url, err := uc.RecordClick(context.Background(), "abc", domain.ClickInput{IP: publicIP, UserAgent: "curl/8.0", Referer: referer})

	require.NoError(t, err)
	assert.Equal(t, "https://dest.example", url)
}

func TestRecordClick_SlowPublisherDoesNotHoldRedirect(t *testing.T) {
	uc, m := newMocked(t)
	uc.settings.PublishTimeout = 30 * time.Millisecond
	link := &domain.TrackingLink{TrackingCode: "abc", ApplicationID: "app-1", DestinationURL: "https://dest.example"}
	m.apps.EXPECT().ResolveTrackingCode(mock.Anything, "abc").Return(link, nil)
	expectCounts(m, 12, 0)
	m.checks.EXPECT().Save(mock.Anything, mock.Anything).Return(nil)
	m.events.EXPECT().Publish(mock.Anything, EventClickRejected, "app-1", mock.Anything).
		RunAndReturn(func(ctx context.Context, _, _ string, _ []byte) error {
			_, ok := ctx.Deadline()
			assert.True(t, ok)
			<-ctx.Done()
			return ctx.Err()
		})

	start := time.Now()
	url, err := uc.RecordClick(context.Background(), "abc", domain.ClickInput{IP: publicIP, UserAgent: "curl/8.0", Referer: referer})
	elapsed := time.Since(start)

	require.NoError(t, err)
	assert.Equal(t, "https://dest.example", url)
	assert.Less(t, elapsed, 500*time.Millisecond)
}

func TestRecordConversion_PerSale(t *testing.T) {
	uc, store := newInMemory(t)

	res, err := uc.RecordConversion(context.Background(), "app-sale", dec("100.00"))
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Equal(t, "10.00", res.Earnings.StringFixed(2))
	assert.Equal(t, "10.00", res.Payment.GrossAmount.StringFixed(2))
	assert.Equal(t, "0.40", res.Payment.PlatformFeeAmount.StringFixed(2))
	assert.Equal(t, "0.30", res.Payment.StripeFeeAmount.StringFixed(2))
	assert.Equal(t, "9.30", res.Payment.NetAmount.StringFixed(2))
	assert.Equal(t, domain.PaymentStatusPending, res.Payment.Status)
	assert.Equal(t, "co1", res.Payment.CompanyID)
	assert.Equal(t, int64(1), res.Analytics.Conversions)
	assert.Len(t, store.Payments(), 1)
}

func TestRecordConversion_PerLeadIgnoresSale(t *testing.T) {
	uc, _ := newInMemory(t)

	res, err := uc.RecordConversion(context.Background(), "app-lead", dec("999"))
	require.NoError(t, err)
	assert.Equal(t, "25.00", res.Earnings.StringFixed(2))

	res, err = uc.RecordConversion(context.Background(), "app-lead", nil)
	require.NoError(t, err)
	assert.Equal(t, "25.00", res.Earnings.StringFixed(2))
	assert.Equal(t, int64(2), res.Analytics.Conversions)
	assert.Equal(t, "50.00", res.Analytics.Earnings.StringFixed(2))
}

func TestRecordConversion_SameDayAccumulates(t *testing.T) {
	uc, _ := newInMemory(t)
	uc.nowFn = func() time.Time { return fixedNow }
	ctx := context.Background()

	_, err := uc.RecordConversion(ctx, "app-sale", dec("1000"))
	require.NoError(t, err)
	res, err := uc.RecordConversion(ctx, "app-sale", dec("500"))
	require.NoError(t, err)

	assert.Equal(t, "50.00", res.Earnings.StringFixed(2))
	assert.Equal(t, "150.00", res.Analytics.Earnings.StringFixed(2))

	rows, err := uc.GetDailyAnalytics(ctx, "app-sale", fixedNow, fixedNow)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(2), rows[0].Conversions)
}

func TestRecordConversion_RetainerIsNoop(t *testing.T) {
	uc, store := newInMemory(t)

	res, err := uc.RecordConversion(context.Background(), "app-retainer", dec("100"))

	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Empty(t, store.Payments())
}

func TestRecordConversion_ValidationGaps(t *testing.T) {
	uc, store := newInMemory(t)
	ctx := context.Background()

	_, err := uc.RecordConversion(ctx, "app-sale", nil)
	assert.ErrorIs(t, err, domain.ErrMissingSaleAmount)
	assert.ErrorIs(t, err, domain.ErrValidationGap)

	_, err = uc.RecordConversion(ctx, "app-hybrid", dec("50"))
	assert.ErrorIs(t, err, domain.ErrHybridUnresolvable)

	_, err = uc.RecordConversion(ctx, "app-sale", dec("-1"))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.RecordConversion(ctx, "ghost", dec("10"))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.Empty(t, store.Payments())
}

func TestRecordConversion_PublishesEvent(t *testing.T) {
	uc, m := newMocked(t)
	m.apps.EXPECT().GetApplication(mock.Anything, "app-1").Return(&domain.Application{ID: "app-1", OfferID: "o1", CreatorID: "cr1"}, nil)
	m.apps.EXPECT().GetOffer(mock.Anything, "o1").Return(&domain.Offer{ID: "o1", CompanyID: "co1", CommissionType: domain.CommissionPerClick, CommissionAmount: dec("0.5")}, nil)
	m.analytics.EXPECT().RecordConversion(mock.Anything, "app-1", domain.Day(fixedNow), mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(decimal.RequireFromString("0.50")) }), mock.AnythingOfType("*domain.Payment")).
		Return(&domain.DailyAnalytics{ApplicationID: "app-1", Conversions: 1}, nil)
	m.events.EXPECT().Publish(mock.Anything, EventConversionRecorded, "app-1", mock.Anything).Return(errors.New("broker unavailable"))

	res, err := uc.RecordConversion(context.Background(), "app-1", nil)

	require.NoError(t, err)
	assert.Equal(t, "0.50", res.Earnings.StringFixed(2))
}

func TestConcurrentWritesShareOneDayRow(t *testing.T) {
	uc, _ := newInMemory(t)
	ctx := context.Background()

	const workers = 20
	var wg sync.WaitGroup
	wg.Add(workers * 2)
	for range workers {
		go func() {
			defer wg.Done()
			_, err := uc.LogTrackingClick(ctx, "app-lead", domain.ClickInput{IP: publicIP, UserAgent: chromeUA})
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := uc.RecordConversion(ctx, "app-lead", nil)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	today := time.Now().UTC()
	rows, err := uc.GetDailyAnalytics(ctx, "app-lead", today, today)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, int64(workers), rows[0].Clicks)
	assert.Equal(t, int64(1), rows[0].UniqueClicks)
	assert.Equal(t, int64(workers), rows[0].Conversions)
	assert.Equal(t, "500.00", rows[0].Earnings.StringFixed(2))
}

func TestGetDailyAnalytics_InvalidRange(t *testing.T) {
	uc, _ := newInMemory(t)

	_, err := uc.GetDailyAnalytics(context.Background(), "app-lead", fixedNow, fixedNow.AddDate(0, 0, -1))
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.GetDailyAnalytics(context.Background(), "", fixedNow, fixedNow)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestGetFraudStats(t *testing.T) {
	uc, m := newMocked(t)
	since := fixedNow.AddDate(0, 0, -7)
	m.checks.EXPECT().Summarize(mock.Anything, since).Return(&domain.FraudStats{TotalChecks: 3, FlaggedClicks: 2, BlockedClicks: 1}, nil)
	m.ledger.EXPECT().CountClicksSince(mock.Anything, since).Return(int64(2), nil)

	stats, err := uc.GetFraudStats(context.Background(), 0)

	require.NoError(t, err)
	assert.Equal(t, 7, stats.Days)
	assert.Equal(t, int64(2), stats.TotalClicks)
	assert.Equal(t, 33.33, stats.FraudRate)
}

func TestGetFraudStats_NoChecks(t *testing.T) {
	uc, m := newMocked(t)
	m.checks.EXPECT().Summarize(mock.Anything, mock.Anything).Return(&domain.FraudStats{}, nil)
	m.ledger.EXPECT().CountClicksSince(mock.Anything, mock.Anything).Return(int64(0), nil)

	stats, err := uc.GetFraudStats(context.Background(), 30)

	require.NoError(t, err)
	assert.Equal(t, 30, stats.Days)
	assert.Zero(t, stats.FraudRate)
}

func TestCleanupOldClickEvents(t *testing.T) {
	uc, m := newMocked(t)
	m.ledger.EXPECT().DeleteClicksBefore(mock.Anything, fixedNow.AddDate(0, 0, -90), 1000).Return(int64(4200), nil)
	m.ledger.EXPECT().DeleteClicksBefore(mock.Anything, fixedNow.AddDate(0, 0, -30), 1000).Return(int64(0), nil)

	n, err := uc.CleanupOldClickEvents(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4200), n)

	n, err = uc.CleanupOldClickEvents(context.Background(), 30)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestPruneFraudChecks(t *testing.T) {
	uc, m := newMocked(t)
	m.checks.EXPECT().DeleteBefore(mock.Anything, fixedNow.AddDate(0, 0, -90), 1000).Return(int64(0), errors.New("lock timeout"))

	_, err := uc.PruneFraudChecks(context.Background(), 90)

	assert.Error(t, err)
}
