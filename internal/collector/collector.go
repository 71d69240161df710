package collector

import (
	"context"
	"fmt"
	"refstats/internal/referral"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Collector pulls transactions for every registry entry in sequential batches.
// Entries inside a batch are fetched concurrently and fail independently.
type Collector struct {
	logs    *zap.SugaredLogger
	source  TransactionSource
	config  Config
	limiter *rate.Limiter
}

func NewCollector(logger *zap.SugaredLogger, source TransactionSource, config Config) *Collector {
	if config.BatchSize <= 0 {
		config.BatchSize = DefaultBatchSize
	}
	if config.FetchTimeout <= 0 {
		config.FetchTimeout = DefaultFetchTimeout
	}
	if config.Now == nil {
		config.Now = time.Now
	}
	if config.Sleep == nil {
		config.Sleep = time.Sleep
	}

	var limiter *rate.Limiter
	if config.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.BatchSize)
	}

	return &Collector{
		logs:    logger,
		source:  source,
		config:  config,
		limiter: limiter,
	}
}

// Collect fetches every entry and returns the combined snapshot. A started run is not
// cancelled by ctx; per-entry failures only show up in the snapshot counters.
func (c *Collector) Collect(ctx context.Context, registry []referral.CodeEntry) referral.Snapshot {
	ctx = context.WithoutCancel(ctx)
	runID := uuid.NewString()

	batches := partition(registry, c.config.BatchSize)
	c.logs.Infow("collection started",
		"run_id", runID,
		"codes", len(registry),
		"batches", len(batches))

	transactions := make([]referral.Transaction, 0)
	var succeeded, failed int

	for i, batch := range batches {
		c.logs.Infow("processing batch",
			"run_id", runID,
			"batch", i+1,
			"of", len(batches),
			"size", len(batch))

		for _, res := range c.fetchBatch(ctx, batch) {
			if !res.succeeded() {
				failed++
				if res.Error != nil {
					c.logs.Errorw("fetch failed",
						"run_id", runID,
						"name", res.Entry.DisplayName,
						"code", res.Entry.Code,
						"error", res.Error)
				} else {
					c.logs.Infow("no transactions",
						"run_id", runID,
						"name", res.Entry.DisplayName,
						"code", res.Entry.Code)
				}
				continue
			}

			succeeded++
			transactions = append(transactions, res.Transactions...)
			c.logs.Infow("transactions fetched",
				"run_id", runID,
				"name", res.Entry.DisplayName,
				"code", res.Entry.Code,
				"count", len(res.Transactions))
		}

		if i < len(batches)-1 && c.config.BatchDelay > 0 {
			c.logs.Debugw("waiting before next batch", "run_id", runID, "delay", c.config.BatchDelay)
			c.config.Sleep(c.config.BatchDelay)
		}
	}

	snapshot := referral.Snapshot{
		LastUpdated:       c.config.Now().UTC(),
		TotalCodes:        len(registry),
		SuccessfulFetches: succeeded,
		FailedFetches:     failed,
		TotalTransactions: len(transactions),
		Transactions:      transactions,
	}

	c.logs.Infow("collection finished",
		"run_id", runID,
		"successful_fetches", snapshot.SuccessfulFetches,
		"failed_fetches", snapshot.FailedFetches,
		"transactions", snapshot.TotalTransactions)

	return snapshot
}

// fetchBatch runs one fetch per entry and waits for all of them to settle.
// Each goroutine owns its slot in results, so no locking is needed.
func (c *Collector) fetchBatch(ctx context.Context, batch []referral.CodeEntry) []FetchResult {
	results := make([]FetchResult, len(batch))

	var g errgroup.Group
	for i, entry := range batch {
		g.Go(func() error {
			results[i] = c.fetch(ctx, entry)
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// fetch waits for a limiter token on the run context. The fetch timeout starts once
// the token is granted.
func (c *Collector) fetch(ctx context.Context, entry referral.CodeEntry) FetchResult {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return FetchResult{Entry: entry, Error: fmt.Errorf("wait for rate limiter: %w", err)}
		}
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.FetchTimeout)
	defer cancel()

	txs, err := c.source.FetchTransactions(ctx, entry.Code)
	if err != nil {
		return FetchResult{Entry: entry, Error: fmt.Errorf("fetching code %q: %w", entry.Code, err)}
	}

	return FetchResult{Entry: entry, Transactions: txs}
}

func partition(registry []referral.CodeEntry, size int) [][]referral.CodeEntry {
	batches := make([][]referral.CodeEntry, 0, (len(registry)+size-1)/size)
	for start := 0; start < len(registry); start += size {
		end := min(start+size, len(registry))
		batches = append(batches, registry[start:end])
	}
	return batches
}
