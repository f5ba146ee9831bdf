package configs

import "time"

// GeoIP points at a MaxMind City database. Without a path every click is
// recorded with an Unknown location.
type GeoIP struct {
	DBPath        string        `env:"DB_PATH" envDefault:""`
	LookupTimeout time.Duration `env:"LOOKUP_TIMEOUT" envDefault:"250ms"`
}
