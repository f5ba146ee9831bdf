package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
)

// DemoOffers returns one offer per commission type, each with a single
// approved application. Tracking codes are stable so the demo links can be
// shared.
func DemoOffers() ([]domain.Offer, []domain.Application) {
	pct := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	now := time.Now().UTC()

	offers := []domain.Offer{
		{ID: "offer-sneakers", CompanyID: "company-acme", Title: "Acme Sneakers", DestinationURL: "https://acme.example/sneakers", CommissionType: domain.CommissionPerSale, CommissionPercentage: pct("12.5")},
		{ID: "offer-newsletter", CompanyID: "company-acme", Title: "Acme Newsletter", DestinationURL: "https://acme.example/newsletter", CommissionType: domain.CommissionPerLead, CommissionAmount: pct("3.00")},
		{ID: "offer-app", CompanyID: "company-globex", Title: "Globex App", DestinationURL: "https://globex.example/app", CommissionType: domain.CommissionPerClick, CommissionAmount: pct("0.15")},
		{ID: "offer-ambassador", CompanyID: "company-globex", Title: "Globex Ambassador", DestinationURL: "https://globex.example", CommissionType: domain.CommissionMonthlyRetainer, CommissionAmount: pct("750")},
		{ID: "offer-bundle", CompanyID: "company-initech", Title: "Initech Bundle", DestinationURL: "https://initech.example/bundle", CommissionType: domain.CommissionHybrid, CommissionPercentage: pct("8")},
	}
	apps := make([]domain.Application, 0, len(offers))
	for i, o := range offers {
		o.CreatedAt = now
		offers[i] = o
		apps = append(apps, domain.Application{
			ID:           "app-" + o.ID[len("offer-"):],
			OfferID:      o.ID,
			CreatorID:    "creator-demo",
			TrackingCode: "demo-" + o.ID[len("offer-"):],
			Status:       "approved",
			CreatedAt:    now,
		})
	}
	return offers, apps
}

// demoNamespace scopes the name-based ids of seeded payments.
var demoNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("affiliate-tracker/demo"))

// DemoPayments returns one pending payment per demo offer whose commission
// needs no sale amount. Ids are
// derived from the application id, so every call yields the same rows.
func DemoPayments(split domain.FeeSplit) []domain.Payment {
	offers, apps := DemoOffers()
	var out []domain.Payment
	for i, a := range apps {
		earnings, err := domain.CalculateCommission(offers[i], nil)
		if err != nil {
			continue
		}
		id := uuid.NewSHA1(demoNamespace, []byte("payment/"+a.ID)).String()
		out = append(out, domain.NewPendingPayment(id, a, offers[i], earnings, split, a.CreatedAt))
	}
	return out
}

// Seed inserts the demo offers and applications plus the demo conversions.
// Each conversion writes its payment and bumps the day's analytics row in
// one statement, and only when the payment id is new, so reseeding is a
// no-op.
func Seed(ctx context.Context, db *pgxpool.Pool, split domain.FeeSplit) error {
	offers, apps := DemoOffers()

	for _, o := range offers {
		_, err := db.Exec(ctx, `INSERT INTO offers
    (id, company_id, title, destination_url, commission_type, commission_amount, commission_percentage, created_at)
VALUES ($1,$2,$3,$4,$5,$6::numeric,$7::numeric,$8) ON CONFLICT DO NOTHING`,
			o.ID, o.CompanyID, o.Title, o.DestinationURL, string(o.CommissionType),
			optionalString(o.CommissionAmount), optionalString(o.CommissionPercentage), o.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, a := range apps {
		_, err := db.Exec(ctx, `INSERT INTO applications
    (id, offer_id, creator_id, tracking_code, status, created_at)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			a.ID, a.OfferID, a.CreatorID, a.TrackingCode, a.Status, a.CreatedAt)
		if err != nil {
			return err
		}
	}

	for _, p := range DemoPayments(split) {
		_, err := db.Exec(ctx, `WITH paid AS (
    INSERT INTO payments
        (id, application_id, offer_id, creator_id, company_id, gross_amount, platform_fee_amount,
         stripe_fee_amount, net_amount, status, description, created_at)
    VALUES ($1,$2,$3,$4,$5,$6::numeric,$7::numeric,$8::numeric,$9::numeric,$10,$11,$12)
    ON CONFLICT (id) DO NOTHING
    RETURNING application_id, gross_amount
)
INSERT INTO daily_analytics (application_id, day, conversions, earnings, updated_at)
SELECT application_id, $13::date, 1, gross_amount, now() FROM paid
ON CONFLICT (application_id, day) DO UPDATE
SET conversions = daily_analytics.conversions + 1,
    earnings = daily_analytics.earnings + EXCLUDED.earnings,
    updated_at = now()`,
			p.ID, p.ApplicationID, p.OfferID, p.CreatorID, p.CompanyID, p.GrossAmount.String(),
			p.PlatformFeeAmount.String(), p.StripeFeeAmount.String(), p.NetAmount.String(),
			p.Status, p.Description, p.CreatedAt, domain.Day(p.CreatedAt))
		if err != nil {
			return err
		}
	}
	return nil
}

// DemoStore is what SeedStore needs from an in-process store.
type DemoStore interface {
	PutOffer(domain.Offer)
	PutApplication(domain.Application)
	Payments() []domain.Payment
	RecordConversion(ctx context.Context, applicationID string, day time.Time, amount decimal.Decimal, payment *domain.Payment) (*domain.DailyAnalytics, error)
}

// SeedStore loads the same demo data as Seed into an in-process store.
// Conversions whose payment is already present are skipped.
func SeedStore(ctx context.Context, s DemoStore, split domain.FeeSplit) error {
	offers, apps := DemoOffers()
	for _, o := range offers {
		s.PutOffer(o)
	}
	for _, a := range apps {
		s.PutApplication(a)
	}

	seen := make(map[string]bool)
	for _, p := range s.Payments() {
		seen[p.ID] = true
	}
	for _, p := range DemoPayments(split) {
		if seen[p.ID] {
			continue
		}
		if _, err := s.RecordConversion(ctx, p.ApplicationID, p.CreatedAt, p.GrossAmount, &p); err != nil {
			return err
		}
	}
	return nil
}

func optionalString(d *decimal.Decimal) *string {
	if d == nil {
		return nil
	}
	s := d.String()
	return &s
}
