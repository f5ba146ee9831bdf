package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"

	"affiliate-tracker/internal/config/configs"
)

var hundred = decimal.NewFromInt(100)

const (
	StoreDriverPostgres = "postgres"
	StoreDriverMemory   = "memory"
)

// Config aggregates all configuration sections for the tracker. Nested
// structs are tagged with envPrefix so their fields are parsed with that
// prefix. Use Load to construct a Config.
type Config struct {
	Env string `env:"ENV" envDefault:"prod"`

	// StoreDriver selects the repository backend: "postgres" or "memory".
	// The memory driver keeps nothing across restarts and exists for local
	// runs and demos.
	StoreDriver string `env:"STORE_DRIVER" envDefault:"postgres"`

	// SeedDemoData inserts a handful of offers and applications on startup.
	SeedDemoData bool `env:"SEED_DEMO_DATA" envDefault:"false"`

	HTTP      configs.HTTP      `envPrefix:"HTTP_"`
	Log       configs.Logger    `envPrefix:"LOG_"`
	Psql      configs.Postgres  `envPrefix:"PSQL_"`
	Redis     configs.Redis     `envPrefix:"REDIS_"`
	GeoIP     configs.GeoIP     `envPrefix:"GEOIP_"`
	Kafka     configs.Kafka     `envPrefix:"KAFKA_"`
	Fraud     configs.Fraud     `envPrefix:"FRAUD_"`
	Fees      configs.Fees      `envPrefix:"FEES_"`
	Retention configs.Retention `envPrefix:"RETENTION_"`
}

// Load reads configuration from environment variables into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, err
	}
	if err := cfg.validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.StoreDriver {
	case StoreDriverPostgres, StoreDriverMemory:
	default:
		return fmt.Errorf("unsupported STORE_DRIVER %q", c.StoreDriver)
	}
	if c.Fees.PlatformPercent.IsNegative() || c.Fees.ProcessorPercent.IsNegative() {
		return fmt.Errorf("fee percentages must not be negative")
	}
	if c.Fees.PlatformPercent.Add(c.Fees.ProcessorPercent).GreaterThan(hundred) {
		return fmt.Errorf("fee percentages exceed 100")
	}
	return nil
}
