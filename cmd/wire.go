package cmd

import (
	"refstats/internal/aggregate"
	"refstats/internal/collector"
	"refstats/internal/config"
	"refstats/internal/core"
	"refstats/internal/referral"
	"refstats/internal/snapshot"
	"refstats/internal/vending"

	"go.uber.org/zap"
	"golang.org/x/text/language"
)

func newReferralStats(logger *zap.SugaredLogger, cfg config.App, entries []referral.CodeEntry) *core.ReferralStats {
	// vending api client
	client := vending.NewClient(cfg.VendingURL, vending.DefaultHTTPClient(cfg.FetchTimeout))

	// collector
	coll := collector.NewCollector(logger, client, collector.Config{
		BatchSize:         cfg.BatchSize,
		BatchDelay:        cfg.BatchDelay,
		FetchTimeout:      cfg.FetchTimeout,
		RequestsPerSecond: cfg.FetchRPS,
	})

	store := snapshot.NewFileStore(cfg.SnapshotPath)

	return core.NewReferralStats(logger, store, coll, entries, core.Options{
		Aggregate: aggregate.Options{
			SkipEmpty:           cfg.SkipEmptyRows,
			MergeDuplicateCodes: cfg.MergeDuplicates,
		},
		Locale:   language.Make(cfg.CollationLocale),
		CacheTTL: cfg.SnapshotCacheTTL,
	})
}
