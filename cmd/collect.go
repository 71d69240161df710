package cmd

import (
	"context"
	"fmt"
	"refstats/internal/config"
	"refstats/internal/registry"
	"refstats/pkg/log"

	"github.com/spf13/pflag"
)

// Collect runs one collection over the registry and overwrites the snapshot file.
func Collect(args []string) error {
	flags := pflag.NewFlagSet("collect", pflag.ContinueOnError)
	registryPath := flags.String("registry", "", "code registry file, overrides REGISTRY_PATH")
	snapshotPath := flags.String("snapshot", "", "snapshot file, overrides SNAPSHOT_PATH")
	batchSize := flags.Int("batch-size", 0, "codes fetched concurrently per batch")
	batchDelay := flags.Duration("batch-delay", 0, "pause between batches")
	fetchTimeout := flags.Duration("fetch-timeout", 0, "timeout of a single fetch")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.NewApp(false)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if flags.Changed("registry") {
		cfg.RegistryPath = *registryPath
	}
	if flags.Changed("snapshot") {
		cfg.SnapshotPath = *snapshotPath
	}
	if flags.Changed("batch-size") {
		cfg.BatchSize = *batchSize
	}
	if flags.Changed("batch-delay") {
		cfg.BatchDelay = *batchDelay
	}
	if flags.Changed("fetch-timeout") {
		cfg.FetchTimeout = *fetchTimeout
	}

	logger := log.NewZapLogger("refstats", log.ParseLevel(cfg.LogLevel))
	defer logger.Sync()

	entries, err := registry.LoadFile(cfg.RegistryPath)
	if err != nil {
		logger.Errorw("failed to load code registry", "error", err, "path", cfg.RegistryPath)
		return err
	}

	stats, err := newReferralStats(logger, cfg, entries).Refresh(context.Background())
	if err != nil {
		logger.Errorw("collection failed", "error", err)
		return err
	}

	fmt.Printf("codes: %d, successful: %d, failed: %d, transactions: %d, snapshot: %s\n",
		stats.TotalCodes, stats.SuccessfulFetches, stats.FailedFetches, stats.TotalTransactions, cfg.SnapshotPath)
	return nil
}
