package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CommissionType selects how a conversion on an offer is paid.
type CommissionType string

const (
	CommissionPerSale         CommissionType = "per_sale"
	CommissionPerLead         CommissionType = "per_lead"
	CommissionPerClick        CommissionType = "per_click"
	CommissionMonthlyRetainer CommissionType = "monthly_retainer"
	CommissionHybrid          CommissionType = "hybrid"
)

// Offer is owned by the marketplace; the tracking core only reads it.
// CommissionAmount and CommissionPercentage are optional and their presence
// is validated per commission type when a conversion is recorded.
type Offer struct {
	ID                   string
	CompanyID            string
	Title                string
	DestinationURL       string
	CommissionType       CommissionType
	CommissionAmount     *decimal.Decimal
	CommissionPercentage *decimal.Decimal
	CreatedAt            time.Time
}

// Application links a creator to an offer and owns the tracking code used in
// affiliate links.
type Application struct {
	ID           string
	OfferID      string
	CreatorID    string
	TrackingCode string
	Status       string
	CreatedAt    time.Time
}

// TrackingLink is the resolved form of a tracking code.
type TrackingLink struct {
	TrackingCode   string `json:"tracking_code"`
	ApplicationID  string `json:"application_id"`
	OfferID        string `json:"offer_id"`
	CreatorID      string `json:"creator_id"`
	DestinationURL string `json:"destination_url"`
}
