package core

import (
	"context"
	"errors"
	"fmt"
	"refstats/internal/aggregate"
	"refstats/internal/referral"
	"refstats/internal/snapshot"
	"sync"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

var ErrNeedsRefresh error = errors.New("no snapshot available, refresh needed")
var ErrRefreshInProgress error = errors.New("refresh already in progress")

const snapshotCacheKey = "snapshot"

// ReferralStats serves aggregated and detailed views over the latest snapshot and
// replaces that snapshot on refresh. At most one refresh runs at a time.
type ReferralStats struct {
	logs      *zap.SugaredLogger
	store     SnapshotStore
	collector Collector
	registry  []referral.CodeEntry
	options   Options
	cache     *cache.Cache
	refreshMu sync.Mutex
}

// NewReferralStats is a constructor function for the ReferralStats type.
func NewReferralStats(logger *zap.SugaredLogger, store SnapshotStore, collector Collector, registry []referral.CodeEntry, options Options) *ReferralStats {
	ttl := options.CacheTTL
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}

	return &ReferralStats{
		logs:      logger,
		store:     store,
		collector: collector,
		registry:  registry,
		options:   options,
		cache:     cache.New(ttl, 2*options.CacheTTL),
	}
}

// Aggregated returns one row per registry code, filtered and sorted per q.
func (s *ReferralStats) Aggregated(ctx context.Context, q aggregate.Query) (AggregatedView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return AggregatedView{}, err
	}

	q.Locale = s.options.Locale
	rows := aggregate.ByCode(snap.Transactions, s.registry, s.options.Aggregate)

	return AggregatedView{
		RunStats: statsOf(snap),
		Rows:     q.Rows(rows),
	}, nil
}

// Detailed returns every transaction labelled with its code name, searched and sorted per q.
func (s *ReferralStats) Detailed(ctx context.Context, q aggregate.Query) (DetailedView, error) {
	snap, err := s.snapshot(ctx)
	if err != nil {
		return DetailedView{}, err
	}

	q.Locale = s.options.Locale
	transactions := aggregate.Enrich(snap.Transactions, s.registry)

	return DetailedView{
		RunStats:     statsOf(snap),
		Transactions: q.Transactions(transactions),
	}, nil
}

// Duplicates lists codes that more than one registry entry claims.
func (s *ReferralStats) Duplicates() map[string][]string {
	return aggregate.FindDuplicateCodes(s.registry)
}

// Refresh runs a collection, persists the result and returns its counters.
func (s *ReferralStats) Refresh(ctx context.Context) (RunStats, error) {
	if !s.refreshMu.TryLock() {
		return RunStats{}, ErrRefreshInProgress
	}
	defer s.refreshMu.Unlock()

	return s.refresh(ctx)
}

// StartRefresh starts a collection in the background and returns immediately.
// The run outlives ctx.
func (s *ReferralStats) StartRefresh(ctx context.Context) error {
	if !s.refreshMu.TryLock() {
		return ErrRefreshInProgress
	}

	go func() {
		defer s.refreshMu.Unlock()

		if _, err := s.refresh(context.WithoutCancel(ctx)); err != nil {
			s.logs.Errorw("background refresh failed", "error", err)
		}
	}()

	return nil
}

func (s *ReferralStats) refresh(ctx context.Context) (RunStats, error) {
	s.logs.Infow("refresh started", "codes", len(s.registry))

	snap := s.collector.Collect(ctx, s.registry)
	if err := s.store.Save(ctx, snap); err != nil {
		return RunStats{}, fmt.Errorf("save snapshot: %w", err)
	}

	s.cache.SetDefault(snapshotCacheKey, snap)

	stats := statsOf(snap)
	s.logs.Infow("refresh finished",
		"totalCodes", stats.TotalCodes,
		"successfulFetches", stats.SuccessfulFetches,
		"failedFetches", stats.FailedFetches,
		"totalTransactions", stats.TotalTransactions,
	)

	return stats, nil
}

func (s *ReferralStats) snapshot(ctx context.Context) (referral.Snapshot, error) {
	if cached, ok := s.cache.Get(snapshotCacheKey); ok {
		return cached.(referral.Snapshot), nil
	}

	snap, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, snapshot.ErrNotFound) {
			return referral.Snapshot{}, ErrNeedsRefresh
		}
		return referral.Snapshot{}, fmt.Errorf("load snapshot: %w", err)
	}

	s.cache.SetDefault(snapshotCacheKey, snap)
	return snap, nil
}
