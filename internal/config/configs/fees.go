package configs

import (
	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/core/domain"
)

// Fees is the platform and payment processor cut, in percent of gross.
type Fees struct {
	PlatformPercent  decimal.Decimal `env:"PLATFORM_PERCENT" envDefault:"4"`
	ProcessorPercent decimal.Decimal `env:"PROCESSOR_PERCENT" envDefault:"3"`
}

func (c Fees) Split() domain.FeeSplit {
	return domain.FeeSplit{
		PlatformPercent:  c.PlatformPercent,
		ProcessorPercent: c.ProcessorPercent,
	}
}
