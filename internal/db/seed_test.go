package db

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"affiliate-tracker/internal/adapter/memory"
	"affiliate-tracker/internal/core/domain"
)

func TestDemoOffersCoverEveryCommissionType(t *testing.T) {
	offers, apps := DemoOffers()
	require.Len(t, apps, len(offers))

	seen := map[domain.CommissionType]bool{}
	codes := map[string]bool{}
	for i, o := range offers {
		seen[o.CommissionType] = true
		assert.Equal(t, o.ID, apps[i].OfferID)
		assert.False(t, codes[apps[i].TrackingCode], "duplicate code %s", apps[i].TrackingCode)
		codes[apps[i].TrackingCode] = true
	}
	for _, ct := range []domain.CommissionType{
		domain.CommissionPerSale, domain.CommissionPerLead, domain.CommissionPerClick,
		domain.CommissionMonthlyRetainer, domain.CommissionHybrid,
	} {
		assert.True(t, seen[ct], ct)
	}
}

func TestDemoPaymentsAreStable(t *testing.T) {
	first := DemoPayments(domain.DefaultFeeSplit)
	second := DemoPayments(domain.DefaultFeeSplit)

	require.Len(t, first, 2)
	require.Len(t, second, 2)
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
		p := first[i]
		assert.True(t, p.GrossAmount.Equal(p.PlatformFeeAmount.Add(p.StripeFeeAmount).Add(p.NetAmount)))
		assert.Equal(t, domain.PaymentStatusPending, p.Status)
	}
	assert.NotEqual(t, first[0].ID, first[1].ID)
	assert.Equal(t, "app-newsletter", first[0].ApplicationID)
	assert.Equal(t, "app-app", first[1].ApplicationID)
}

func TestSeedStore(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, SeedStore(t.Context(), store, domain.DefaultFeeSplit))

	link, err := store.ResolveTrackingCode(t.Context(), "demo-sneakers")
	require.NoError(t, err)
	assert.Equal(t, "https://acme.example/sneakers", link.DestinationURL)
}

func TestSeedStoreTwiceKeepsOneConversionPerPayment(t *testing.T) {
	store := memory.NewStore()
	require.NoError(t, SeedStore(t.Context(), store, domain.DefaultFeeSplit))
	require.NoError(t, SeedStore(t.Context(), store, domain.DefaultFeeSplit))

	payments := store.Payments()
	require.Len(t, payments, 2)

	for _, p := range payments {
		rows, err := store.ListDaily(t.Context(), p.ApplicationID, p.CreatedAt, p.CreatedAt)
		require.NoError(t, err)
		require.Len(t, rows, 1)
		assert.Equal(t, int64(1), rows[0].Conversions)
		assert.True(t, rows[0].Earnings.Equal(p.GrossAmount))
	}
}
