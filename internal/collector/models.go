package collector

import (
	"refstats/internal/referral"
	"time"
)

const (
	DefaultBatchSize    = 10
	DefaultBatchDelay   = 2 * time.Second
	DefaultFetchTimeout = 30 * time.Second
)

type Config struct {
	BatchSize    int
	BatchDelay   time.Duration
	FetchTimeout time.Duration
	// RequestsPerSecond paces individual fetches across the whole run. Zero disables pacing.
	RequestsPerSecond float64
	// Now stamps the snapshot and Sleep pauses between batches. Nil means time.Now and time.Sleep.
	Now   func() time.Time
	Sleep func(time.Duration)
}

func DefaultConfig() Config {
	return Config{
		BatchSize:    DefaultBatchSize,
		BatchDelay:   DefaultBatchDelay,
		FetchTimeout: DefaultFetchTimeout,
	}
}

// FetchResult is the outcome of one registry entry's fetch.
type FetchResult struct {
	Entry        referral.CodeEntry
	Transactions []referral.Transaction
	Error        error
}

func (r FetchResult) succeeded() bool {
	return r.Error == nil && len(r.Transactions) > 0
}
