package configs

import "time"

// Kafka configures the domain event publisher. With no brokers events are
// dropped by a no-op publisher.
type Kafka struct {
	Brokers []string `env:"BROKERS" envSeparator:","`
	Topic   string   `env:"TOPIC" envDefault:"affiliate-tracking-events"`

	// BatchTimeout caps how long the writer waits to fill a batch. kafka-go
	// defaults to 1s, which every single-event write would pay.
	BatchTimeout time.Duration `env:"BATCH_TIMEOUT" envDefault:"5ms"`
	// PublishTimeout bounds one publish call made from a request path.
	PublishTimeout time.Duration `env:"PUBLISH_TIMEOUT" envDefault:"100ms"`
}

func (c Kafka) Enabled() bool {
	return len(c.Brokers) > 0
}
