package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"affiliate-tracker/internal/core/domain"
	"affiliate-tracker/internal/core/port"
)

// ApplicationRepository reads offers and applications owned by the
// marketplace.
type ApplicationRepository struct {
	pool *pgxpool.Pool
}

var _ port.ApplicationRepository = (*ApplicationRepository)(nil)

// NewApplicationRepository returns an application repository backed by pool.
func NewApplicationRepository(pool *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{pool: pool}
}

// GetApplication returns an application by id.
func (r *ApplicationRepository) GetApplication(ctx context.Context, id string) (*domain.Application, error) {
	var app domain.Application
	err := r.pool.QueryRow(ctx,
		`SELECT id, offer_id, creator_id, tracking_code, status, created_at FROM applications WHERE id = $1`, id).
		Scan(&app.ID, &app.OfferID, &app.CreatorID, &app.TrackingCode, &app.Status, &app.CreatedAt)
	if err != nil {
		return nil, notFound(err, "application "+id)
	}
	return &app, nil
}

// GetOffer returns an offer by id.
func (r *ApplicationRepository) GetOffer(ctx context.Context, id string) (*domain.Offer, error) {
	var (
		o           domain.Offer
		amount, pct *string
	)
	err := r.pool.QueryRow(ctx, `
        SELECT id, company_id, title, destination_url, commission_type,
               commission_amount::text, commission_percentage::text, created_at
        FROM offers WHERE id = $1`, id).
		Scan(&o.ID, &o.CompanyID, &o.Title, &o.DestinationURL, &o.CommissionType, &amount, &pct, &o.CreatedAt)
	if err != nil {
		return nil, notFound(err, "offer "+id)
	}
	if o.CommissionAmount, err = parseOptionalDecimal(amount); err != nil {
		return nil, err
	}
	if o.CommissionPercentage, err = parseOptionalDecimal(pct); err != nil {
		return nil, err
	}
	return &o, nil
}

// ResolveTrackingCode returns the application and destination behind code.
func (r *ApplicationRepository) ResolveTrackingCode(ctx context.Context, code string) (*domain.TrackingLink, error) {
	var link domain.TrackingLink
	err := r.pool.QueryRow(ctx, `
        SELECT a.tracking_code, a.id, a.offer_id, a.creator_id, o.destination_url
        FROM applications a
        JOIN offers o ON o.id = a.offer_id
        WHERE a.tracking_code = $1`, code).
		Scan(&link.TrackingCode, &link.ApplicationID, &link.OfferID, &link.CreatorID, &link.DestinationURL)
	if err != nil {
		return nil, notFound(err, "tracking code "+code)
	}
	return &link, nil
}
