package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const PaymentStatusPending = "pending"

// FeeSplit is the platform and payment-processor cut taken from every gross
// payment, in percent of gross. The creator receives the remainder.
type FeeSplit struct {
	PlatformPercent  decimal.Decimal
	ProcessorPercent decimal.Decimal
}

// DefaultFeeSplit is 4% platform, 3% processor, 93% net.
var DefaultFeeSplit = FeeSplit{
	PlatformPercent:  decimal.NewFromInt(4),
	ProcessorPercent: decimal.NewFromInt(3),
}

// Fees is a gross amount broken into its parts. Platform + Processor + Net
// equals Gross exactly.
type Fees struct {
	Gross     decimal.Decimal
	Platform  decimal.Decimal
	Processor decimal.Decimal
	Net       decimal.Decimal
}

// Apply splits gross into fees rounded to cents. Net absorbs the rounding
// remainder so the parts always sum to gross.
func (f FeeSplit) Apply(gross decimal.Decimal) Fees {
	gross = gross.Round(2)
	platform := percentOf(gross, f.PlatformPercent)
	processor := percentOf(gross, f.ProcessorPercent)
	return Fees{
		Gross:     gross,
		Platform:  platform,
		Processor: processor,
		Net:       gross.Sub(platform).Sub(processor),
	}
}

// Payment is emitted once per recorded conversion. Settlement is handled
// elsewhere; the tracking core only creates pending rows.
type Payment struct {
	ID                string
	ApplicationID     string
	OfferID           string
	CreatorID         string
	CompanyID         string
	GrossAmount       decimal.Decimal
	PlatformFeeAmount decimal.Decimal
	StripeFeeAmount   decimal.Decimal
	NetAmount         decimal.Decimal
	Status            string
	Description       string
	CreatedAt         time.Time
}

// NewPendingPayment builds a pending payment for earnings using split.
func NewPendingPayment(id string, app Application, offer Offer, earnings decimal.Decimal, split FeeSplit, at time.Time) Payment {
	fees := split.Apply(earnings)
	return Payment{
		ID:                id,
		ApplicationID:     app.ID,
		OfferID:           offer.ID,
		CreatorID:         app.CreatorID,
		CompanyID:         offer.CompanyID,
		GrossAmount:       fees.Gross,
		PlatformFeeAmount: fees.Platform,
		StripeFeeAmount:   fees.Processor,
		NetAmount:         fees.Net,
		Status:            PaymentStatusPending,
		Description:       "Conversion commission for " + offer.Title,
		CreatedAt:         at,
	}
}
