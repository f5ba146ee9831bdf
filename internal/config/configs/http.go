package configs

import "time"

// HTTP defines configuration for the HTTP server and its per-IP API limiter.
type HTTP struct {
	// Port is the TCP port the HTTP server will listen on. Defaults to 8080.
	Port uint16 `env:"PORT" envDefault:"8080"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"5s"`

	// RateLimitRPS and RateLimitBurst bound /api requests per client IP.
	// A zero RPS disables the limiter. The redirect path is never limited.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"20"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"40"`

	// TrustedProxies lists CIDRs or addresses of reverse proxies whose
	// X-Forwarded-For entries are believed. Empty means RemoteAddr only.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}
