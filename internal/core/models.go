package core

import (
	"refstats/internal/aggregate"
	"refstats/internal/referral"
	"time"

	"golang.org/x/text/language"
)

// RunStats are the counters of the collection run a view was computed from.
type RunStats struct {
	TotalCodes        int       `json:"totalCodes"`
	SuccessfulFetches int       `json:"successfulFetches"`
	FailedFetches     int       `json:"failedFetches"`
	TotalTransactions int       `json:"totalTransactions"`
	LastUpdated       time.Time `json:"lastUpdated"`
}

type AggregatedView struct {
	RunStats
	Rows []aggregate.Row
}

type DetailedView struct {
	RunStats
	Transactions []aggregate.EnrichedTransaction
}

type Options struct {
	Aggregate aggregate.Options
	Locale    language.Tag
	// CacheTTL bounds how long a loaded snapshot is served before the file is read again.
	// Zero or less keeps it until the next refresh.
	CacheTTL time.Duration
}

func statsOf(snap referral.Snapshot) RunStats {
	return RunStats{
		TotalCodes:        snap.TotalCodes,
		SuccessfulFetches: snap.SuccessfulFetches,
		FailedFetches:     snap.FailedFetches,
		TotalTransactions: snap.TotalTransactions,
		LastUpdated:       snap.LastUpdated,
	}
}
