package configs

import "time"

// Fraud tunes the history based heuristics. Flag weights and the rejection
// threshold are fixed in the domain package.
type Fraud struct {
	RateLimitWindow    time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	RateLimitThreshold int64         `env:"RATE_LIMIT_THRESHOLD" envDefault:"10"`
	RepeatWindow       time.Duration `env:"REPEAT_WINDOW" envDefault:"1h"`
	RepeatThreshold    int64         `env:"REPEAT_THRESHOLD" envDefault:"5"`
}
