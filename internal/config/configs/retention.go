package configs

import "time"

// Retention drives the background cleanup of old click events and fraud
// checks. An Interval of zero disables the worker; the admin endpoint still
// works.
type Retention struct {
	Interval  time.Duration `env:"INTERVAL" envDefault:"24h"`
	Days      int           `env:"DAYS" envDefault:"90"`
	BatchSize int           `env:"BATCH_SIZE" envDefault:"1000"`
}
