package domain

import (
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CalculateCommission returns the earnings for one conversion on offer,
// rounded to cents. saleAmount may be nil for flat-fee offers.
//
// Monthly retainers return ErrCommissionNotApplicable. Missing commission
// fields return an error wrapping ErrValidationGap.
func CalculateCommission(offer Offer, saleAmount *decimal.Decimal) (decimal.Decimal, error) {
	switch offer.CommissionType {
	case CommissionPerSale:
		if saleAmount == nil {
			return decimal.Zero, ErrMissingSaleAmount
		}
		if offer.CommissionPercentage == nil {
			return decimal.Zero, ErrMissingCommissionPercentage
		}
		return percentOf(*saleAmount, *offer.CommissionPercentage), nil
	case CommissionPerLead, CommissionPerClick:
		if offer.CommissionAmount == nil {
			return decimal.Zero, ErrMissingCommissionAmount
		}
		return offer.CommissionAmount.Round(2), nil
	case CommissionMonthlyRetainer:
		return decimal.Zero, ErrCommissionNotApplicable
	case CommissionHybrid:
		if offer.CommissionAmount != nil {
			return offer.CommissionAmount.Round(2), nil
		}
		if saleAmount != nil && offer.CommissionPercentage != nil {
			return percentOf(*saleAmount, *offer.CommissionPercentage), nil
		}
		return decimal.Zero, ErrHybridUnresolvable
	default:
		return decimal.Zero, ErrUnknownCommissionType
	}
}

func percentOf(amount, pct decimal.Decimal) decimal.Decimal {
	return amount.Mul(pct).Div(hundred).Round(2)
}
