package configs

import "time"

// Redis configures the tracking code cache. An empty Addr disables caching
// and every redirect resolves against the store.
type Redis struct {
	Addr     string        `env:"ADDR" envDefault:""`
	Password string        `env:"PASSWORD" envDefault:""`
	DB       int           `env:"DB" envDefault:"0"`
	TTL      time.Duration `env:"TTL" envDefault:"5m"`
}

func (c Redis) Enabled() bool {
	return c.Addr != ""
}
