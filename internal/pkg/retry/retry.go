package retry

import (
	"time"

	"github.com/avast/retry-go/v4"
)

const (
	defaultAttempts = 30
	defaultDelay    = 1 * time.Second
	defaultMaxDelay = 5 * time.Second
)

// PollConfig tunes the fixed-interval polling used while waiting for an async
// external operation (layout analysis) to finish. This is not a retry layer
// for failed calls: embedding, completion and search stay single round-trips.
type PollConfig struct {
	Attempts uint          `env:"ATTEMPTS" envDefault:"30"`
	Delay    time.Duration `env:"DELAY" envDefault:"1s"`
	MaxDelay time.Duration `env:"MAX_DELAY" envDefault:"5s"`
}

func (pc *PollConfig) ToRetryOptions() []retry.Option {
	return []retry.Option{
		retry.Attempts(pc.Attempts),
		retry.Delay(pc.Delay),
		retry.MaxDelay(pc.MaxDelay),
		retry.DelayType(retry.FixedDelay),
	}
}

func DefaultPollConfig() *PollConfig {
	return &PollConfig{
		Attempts: defaultAttempts,
		Delay:    defaultDelay,
		MaxDelay: defaultMaxDelay,
	}
}
