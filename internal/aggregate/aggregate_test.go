package aggregate_test

import (
	"refstats/internal/aggregate"
	"refstats/internal/referral"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	purchaserA = "0xfbc6343d934b922b3a60bbad2dd9ccc6a551caf6"
	purchaserB = "0xb42a0fd4fdde006b71f37af97c3a584f2bc871f6"
)

func sampleTransactions() []referral.Transaction {
	return []referral.Transaction{
		{
			Chain:           1,
			Purchaser:       purchaserA,
			Token:           "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
			ReferralCode:    "JLtKPde20yV",
			USDAmount:       1962.43,
			BlockNumber:     "23350396",
			BlockTimestamp:  1757721263,
			TransactionHash: "0xf149ac700cdd8c5f65aa78f7f56d3e7e3c0aaec2bcafb69cbe0a68dc57886ce3",
		},
		{
			Chain:           1,
			Purchaser:       purchaserB,
			Token:           "0xdac17f958d2ee523a2206206994597c13d831ec7",
			ReferralCode:    "JLtKPde20yV",
			USDAmount:       7417.72,
			BlockNumber:     "23351989",
			BlockTimestamp:  1757740499,
			TransactionHash: "0x16110b3ddeac59bbd95ce56ab2ef447bb9ba3adcf8b7931f7122ab5a60f9462d",
		},
		{
			Chain:           1,
			Purchaser:       purchaserA,
			Token:           "0xa0b86991c6218b36c1d19d4a2e9eb0ce3606eb48",
			ReferralCode:    "JLtKPde20yV",
			USDAmount:       1014,
			BlockNumber:     "23351117",
			BlockTimestamp:  1757729951,
			TransactionHash: "0xc4845c1ecfd3fd12bec6de9c3b82d9d91842f49e102e0c1407f8df0ac112e29c",
		},
	}
}

var _ = Describe("ByCode", func() {
	var (
		transactions []referral.Transaction
		registry     []referral.CodeEntry
		opts         aggregate.Options
		rows         []aggregate.Row
	)

	BeforeEach(func() {
		transactions = sampleTransactions()
		registry = []referral.CodeEntry{{DisplayName: "갱생코인", Code: "JLtKPde20yV"}}
		opts = aggregate.Options{}
	})

	JustBeforeEach(func() {
		rows = aggregate.ByCode(transactions, registry, opts)
	})

	It("sums usd amounts and counts distinct purchasers", func() {
		Expect(rows).To(Equal([]aggregate.Row{
			{Name: "갱생코인", TotalAmount: 10394.15, PurchaserCount: 2},
		}))
	})

	When("transaction order changes", func() {
		BeforeEach(func() {
			transactions = []referral.Transaction{transactions[2], transactions[0], transactions[1]}
		})

		It("produces the same totals", func() {
			Expect(rows).To(Equal([]aggregate.Row{
				{Name: "갱생코인", TotalAmount: 10394.15, PurchaserCount: 2},
			}))
		})
	})

	When("the same purchaser buys repeatedly", func() {
		BeforeEach(func() {
			transactions = append(transactions, transactions[0], transactions[0])
		})

		It("does not increase the purchaser count", func() {
			Expect(rows[0].PurchaserCount).To(Equal(2))
			Expect(rows[0].TotalAmount).To(Equal(14319.01))
		})
	})

	When("purchasers differ only by case", func() {
		BeforeEach(func() {
			upper := transactions[0]
			upper.Purchaser = "0xFBC6343D934B922B3A60BBAD2DD9CCC6A551CAF6"
			transactions = append(transactions, upper)
		})

		It("counts them as distinct purchasers", func() {
			Expect(rows[0].PurchaserCount).To(Equal(3))
		})
	})

	When("sums need rounding", func() {
		BeforeEach(func() {
			transactions = []referral.Transaction{
				{ReferralCode: "JLtKPde20yV", Purchaser: purchaserA, USDAmount: 0.125},
				{ReferralCode: "JLtKPde20yV", Purchaser: purchaserA, USDAmount: 0.1},
				{ReferralCode: "JLtKPde20yV", Purchaser: purchaserA, USDAmount: 0.2},
			}
		})

		It("rounds half up to cents", func() {
			Expect(rows[0].TotalAmount).To(Equal(0.43))
		})
	})

	When("a negative sum sits on a half cent", func() {
		BeforeEach(func() {
			transactions = []referral.Transaction{
				{ReferralCode: "JLtKPde20yV", Purchaser: purchaserA, USDAmount: -0.125},
			}
		})

		It("rounds toward positive infinity", func() {
			Expect(rows[0].TotalAmount).To(Equal(-0.12))
		})
	})

	When("a code differs only by case", func() {
		BeforeEach(func() {
			registry = []referral.CodeEntry{{DisplayName: "lower", Code: "jltkpde20yv"}}
		})

		It("does not match", func() {
			Expect(rows).To(Equal([]aggregate.Row{{Name: "lower"}}))
		})
	})

	When("an entry has no transactions", func() {
		BeforeEach(func() {
			registry = []referral.CodeEntry{
				{DisplayName: "피린이", Code: "aCV7H2MdNUN"},
				{DisplayName: "갱생코인", Code: "JLtKPde20yV"},
			}
		})

		It("emits a zero row in registry order", func() {
			Expect(rows).To(Equal([]aggregate.Row{
				{Name: "피린이", TotalAmount: 0, PurchaserCount: 0},
				{Name: "갱생코인", TotalAmount: 10394.15, PurchaserCount: 2},
			}))
		})

		When("empty rows are skipped", func() {
			BeforeEach(func() {
				opts.SkipEmpty = true
			})

			It("omits the entry", func() {
				Expect(rows).To(Equal([]aggregate.Row{
					{Name: "갱생코인", TotalAmount: 10394.15, PurchaserCount: 2},
				}))
			})
		})
	})

	When("there are no transactions", func() {
		BeforeEach(func() {
			transactions = nil
			registry = append(registry, referral.CodeEntry{DisplayName: "피린이", Code: "aCV7H2MdNUN"})
		})

		It("returns all-zero rows", func() {
			Expect(rows).To(Equal([]aggregate.Row{{Name: "갱생코인"}, {Name: "피린이"}}))
		})
	})

	When("the registry is empty", func() {
		BeforeEach(func() {
			registry = nil
		})

		It("returns no rows", func() {
			Expect(rows).To(BeEmpty())
		})
	})

	When("two entries share a code", func() {
		BeforeEach(func() {
			registry = []referral.CodeEntry{
				{DisplayName: "X", Code: "JLtKPde20yV"},
				{DisplayName: "other", Code: "aCV7H2MdNUN"},
				{DisplayName: "Y", Code: "JLtKPde20yV"},
			}
		})

		It("emits a full row for each entry", func() {
			Expect(rows).To(Equal([]aggregate.Row{
				{Name: "X", TotalAmount: 10394.15, PurchaserCount: 2},
				{Name: "other"},
				{Name: "Y", TotalAmount: 10394.15, PurchaserCount: 2},
			}))
		})

		When("duplicate codes are merged", func() {
			BeforeEach(func() {
				opts.MergeDuplicateCodes = true
			})

			It("emits one row at the first position named after the last entry", func() {
				Expect(rows).To(Equal([]aggregate.Row{
					{Name: "Y", TotalAmount: 10394.15, PurchaserCount: 2},
					{Name: "other"},
				}))
			})
		})
	})
})

var _ = Describe("Enrich", func() {
	var registry []referral.CodeEntry

	BeforeEach(func() {
		registry = []referral.CodeEntry{
			{DisplayName: "X", Code: "JLtKPde20yV"},
			{DisplayName: "Y", Code: "JLtKPde20yV"},
		}
	})

	It("resolves duplicate codes to the last registry entry", func() {
		enriched := aggregate.Enrich(sampleTransactions(), registry)
		Expect(enriched).To(HaveLen(3))
		for i, tx := range enriched {
			Expect(tx.CodeName).To(Equal("Y"))
			Expect(tx.Transaction).To(Equal(sampleTransactions()[i]))
		}
	})

	It("labels unknown codes", func() {
		orphan := referral.Transaction{ReferralCode: "nope", Purchaser: purchaserA}
		enriched := aggregate.Enrich([]referral.Transaction{orphan}, registry)
		Expect(enriched).To(ConsistOf(aggregate.EnrichedTransaction{
			Transaction: orphan,
			CodeName:    referral.UnknownCodeName,
		}))
	})

	It("is idempotent", func() {
		first := aggregate.Enrich(sampleTransactions(), registry)

		raw := make([]referral.Transaction, len(first))
		for i, tx := range first {
			raw[i] = tx.Transaction
		}
		second := aggregate.Enrich(raw, registry)

		Expect(second).To(Equal(first))
	})

	It("does not modify its input", func() {
		transactions := sampleTransactions()
		_ = aggregate.Enrich(transactions, registry)
		Expect(transactions).To(Equal(sampleTransactions()))
	})
})

var _ = Describe("FindDuplicateCodes", func() {
	It("groups names of shared codes in registry order", func() {
		dups := aggregate.FindDuplicateCodes([]referral.CodeEntry{
			{DisplayName: "X", Code: "c1"},
			{DisplayName: "Y", Code: "c1"},
			{DisplayName: "Z", Code: "c2"},
		})
		Expect(dups).To(Equal(map[string][]string{"c1": {"X", "Y"}}))
	})

	It("returns an empty map when codes are unique", func() {
		dups := aggregate.FindDuplicateCodes([]referral.CodeEntry{
			{DisplayName: "X", Code: "c1"},
			{DisplayName: "Z", Code: "c2"},
		})
		Expect(dups).NotTo(BeNil())
		Expect(dups).To(BeEmpty())
	})

	It("does not change aggregation", func() {
		registry := []referral.CodeEntry{
			{DisplayName: "X", Code: "JLtKPde20yV"},
			{DisplayName: "Y", Code: "JLtKPde20yV"},
		}
		before := aggregate.ByCode(sampleTransactions(), registry, aggregate.Options{})
		_ = aggregate.FindDuplicateCodes(registry)
		Expect(aggregate.ByCode(sampleTransactions(), registry, aggregate.Options{})).To(Equal(before))
	})
})
