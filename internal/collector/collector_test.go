package collector_test

import (
	"context"
	"errors"
	"fmt"
	"refstats/internal/collector"
	"refstats/internal/collector/fake"
	"refstats/internal/referral"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
)

func registryOf(n int) []referral.CodeEntry {
	entries := make([]referral.CodeEntry, n)
	for i := range entries {
		entries[i] = referral.CodeEntry{
			DisplayName: fmt.Sprintf("name-%d", i),
			Code:        fmt.Sprintf("code-%d", i),
		}
	}
	return entries
}

func txFor(code string) referral.Transaction {
	return referral.Transaction{ReferralCode: code, TransactionHash: "0x" + code}
}

var _ = Describe("Collector", func() {
	var (
		fakeSource *fake.TransactionSource
		config     collector.Config
		ctx        context.Context
		registry   []referral.CodeEntry
		snapshot   referral.Snapshot
		sleeps     []time.Duration
		sleepMu    sync.Mutex
		now        time.Time
	)

	BeforeEach(func() {
		fakeSource = new(fake.TransactionSource)
		fakeSource.FetchTransactionsStub = func(_ context.Context, code string) ([]referral.Transaction, error) {
			return []referral.Transaction{txFor(code)}, nil
		}
		sleeps = nil
		now = time.Date(2025, 9, 13, 10, 0, 0, 0, time.UTC)

		config = collector.Config{
			BatchSize:    3,
			BatchDelay:   2 * time.Second,
			FetchTimeout: time.Second,
			Now:          func() time.Time { return now },
			Sleep: func(d time.Duration) {
				sleepMu.Lock()
				defer sleepMu.Unlock()
				sleeps = append(sleeps, d)
			},
		}
		ctx = context.Background()
		registry = registryOf(7)
	})

	JustBeforeEach(func() {
		c := collector.NewCollector(zap.NewNop().Sugar(), fakeSource, config)
		snapshot = c.Collect(ctx, registry)
	})

	When("every fetch returns transactions", func() {
		It("fetches each code once and combines the results", func() {
			Expect(fakeSource.FetchTransactionsCallCount()).To(Equal(7))

			codes := make([]string, 0, 7)
			for i := 0; i < fakeSource.FetchTransactionsCallCount(); i++ {
				_, code := fakeSource.FetchTransactionsArgsForCall(i)
				codes = append(codes, code)
			}
			Expect(codes).To(ConsistOf("code-0", "code-1", "code-2", "code-3", "code-4", "code-5", "code-6"))

			Expect(snapshot.TotalCodes).To(Equal(7))
			Expect(snapshot.SuccessfulFetches).To(Equal(7))
			Expect(snapshot.FailedFetches).To(Equal(0))
			Expect(snapshot.TotalTransactions).To(Equal(7))
			Expect(snapshot.Transactions).To(HaveLen(7))
			Expect(snapshot.LastUpdated).To(Equal(now))
		})

		It("keeps batches in processing order", func() {
			batchOf := func(tx referral.Transaction) int {
				var idx int
				_, err := fmt.Sscanf(tx.ReferralCode, "code-%d", &idx)
				Expect(err).NotTo(HaveOccurred())
				return idx / 3
			}
			for i := 1; i < len(snapshot.Transactions); i++ {
				Expect(batchOf(snapshot.Transactions[i])).To(BeNumerically(">=", batchOf(snapshot.Transactions[i-1])))
			}
		})

		It("waits between batches but not after the last one", func() {
			Expect(sleeps).To(Equal([]time.Duration{2 * time.Second, 2 * time.Second}))
		})
	})

	When("the registry fits in one batch", func() {
		BeforeEach(func() {
			registry = registryOf(3)
		})

		It("does not wait at all", func() {
			Expect(sleeps).To(BeEmpty())
			Expect(snapshot.SuccessfulFetches).To(Equal(3))
		})
	})

	When("the registry is empty", func() {
		BeforeEach(func() {
			registry = nil
		})

		It("returns an empty snapshot", func() {
			Expect(fakeSource.FetchTransactionsCallCount()).To(Equal(0))
			Expect(snapshot.TotalCodes).To(Equal(0))
			Expect(snapshot.Transactions).NotTo(BeNil())
			Expect(snapshot.Transactions).To(BeEmpty())
		})
	})

	When("some fetches fail or come back empty", func() {
		BeforeEach(func() {
			fakeSource.FetchTransactionsStub = func(_ context.Context, code string) ([]referral.Transaction, error) {
				switch code {
				case "code-1":
					return nil, errors.New("API request failed: 404")
				case "code-4":
					return []referral.Transaction{}, nil
				case "code-5":
					return []referral.Transaction{txFor(code), txFor(code)}, nil
				}
				return []referral.Transaction{txFor(code)}, nil
			}
		})

		It("counts them as failed without aborting the run", func() {
			Expect(fakeSource.FetchTransactionsCallCount()).To(Equal(7))
			Expect(snapshot.TotalCodes).To(Equal(7))
			Expect(snapshot.SuccessfulFetches).To(Equal(5))
			Expect(snapshot.FailedFetches).To(Equal(2))
			Expect(snapshot.TotalTransactions).To(Equal(6))
			Expect(snapshot.Transactions).To(HaveLen(6))
		})
	})

	When("fetches are in flight", func() {
		var (
			inFlight    atomic.Int32
			maxInFlight atomic.Int32
			started     []int
			startedMu   sync.Mutex
		)

		BeforeEach(func() {
			inFlight.Store(0)
			maxInFlight.Store(0)
			started = nil
			registry = registryOf(8)
			fakeSource.FetchTransactionsStub = func(_ context.Context, code string) ([]referral.Transaction, error) {
				n := inFlight.Add(1)
				defer inFlight.Add(-1)
				for {
					cur := maxInFlight.Load()
					if n <= cur || maxInFlight.CompareAndSwap(cur, n) {
						break
					}
				}

				var idx int
				_, _ = fmt.Sscanf(code, "code-%d", &idx)
				startedMu.Lock()
				started = append(started, idx/3)
				startedMu.Unlock()

				time.Sleep(20 * time.Millisecond)
				return []referral.Transaction{txFor(code)}, nil
			}
		})

		It("never runs more than one batch at a time", func() {
			Expect(maxInFlight.Load()).To(BeNumerically("<=", 3))
			Expect(maxInFlight.Load()).To(BeNumerically(">", 1))
			for i := 1; i < len(started); i++ {
				Expect(started[i]).To(BeNumerically(">=", started[i-1]))
			}
			Expect(sleeps).To(HaveLen(2))
		})
	})

	When("a fetch outlives its timeout", func() {
		BeforeEach(func() {
			config.FetchTimeout = 20 * time.Millisecond
			registry = registryOf(2)
			fakeSource.FetchTransactionsStub = func(ctx context.Context, code string) ([]referral.Transaction, error) {
				if code == "code-0" {
					<-ctx.Done()
					return nil, ctx.Err()
				}
				return []referral.Transaction{txFor(code)}, nil
			}
		})

		It("counts it as failed and keeps its siblings", func() {
			Expect(snapshot.SuccessfulFetches).To(Equal(1))
			Expect(snapshot.FailedFetches).To(Equal(1))
			Expect(snapshot.Transactions).To(ConsistOf(txFor("code-1")))
		})
	})

	When("the caller's context is already cancelled", func() {
		BeforeEach(func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(ctx)
			cancel()

			fakeSource.FetchTransactionsStub = func(ctx context.Context, code string) ([]referral.Transaction, error) {
				if err := ctx.Err(); err != nil {
					return nil, err
				}
				return []referral.Transaction{txFor(code)}, nil
			}
		})

		It("still completes the run", func() {
			Expect(snapshot.SuccessfulFetches).To(Equal(7))
			Expect(snapshot.FailedFetches).To(Equal(0))
		})
	})

	When("a request rate is configured", func() {
		BeforeEach(func() {
			config.RequestsPerSecond = 1000
		})

		It("still fetches every code", func() {
			Expect(fakeSource.FetchTransactionsCallCount()).To(Equal(7))
			Expect(snapshot.SuccessfulFetches).To(Equal(7))
		})
	})

	When("the request rate makes a later batch wait longer than the fetch timeout", func() {
		var (
			budgets   []time.Duration
			budgetsMu sync.Mutex
		)

		BeforeEach(func() {
			budgets = nil
			registry = registryOf(6)
			config.FetchTimeout = 20 * time.Millisecond
			config.RequestsPerSecond = 20
			fakeSource.FetchTransactionsStub = func(ctx context.Context, code string) ([]referral.Transaction, error) {
				var budget time.Duration
				if deadline, ok := ctx.Deadline(); ok {
					budget = time.Until(deadline)
				}
				budgetsMu.Lock()
				budgets = append(budgets, budget)
				budgetsMu.Unlock()
				return []referral.Transaction{txFor(code)}, nil
			}
		})

		It("waits for the limiter and fetches every code", func() {
			Expect(fakeSource.FetchTransactionsCallCount()).To(Equal(6))
			Expect(snapshot.SuccessfulFetches).To(Equal(6))
			Expect(snapshot.FailedFetches).To(Equal(0))
		})

		It("starts each fetch timeout after the wait", func() {
			Expect(budgets).To(HaveLen(6))
			for _, budget := range budgets {
				Expect(budget).To(BeNumerically(">", 10*time.Millisecond))
			}
		})
	})

	When("no clock is configured", func() {
		BeforeEach(func() {
			config.Now = nil
			registry = registryOf(1)
		})

		It("stamps the snapshot with the current time", func() {
			Expect(snapshot.LastUpdated).To(BeTemporally("~", time.Now(), 5*time.Second))
			Expect(snapshot.LastUpdated.Location()).To(Equal(time.UTC))
		})
	})

	When("the batch size is not set", func() {
		BeforeEach(func() {
			config.BatchSize = 0
			config.BatchDelay = time.Second
			registry = registryOf(25)
		})

		It("falls back to batches of ten", func() {
			Expect(sleeps).To(HaveLen(2))
			Expect(snapshot.SuccessfulFetches).To(Equal(25))
		})
	})
})
