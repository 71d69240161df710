package aggregate

import (
	"refstats/internal/referral"

	"github.com/shopspring/decimal"
)

var half = decimal.NewFromFloat(0.5)

type bucket struct {
	total      decimal.Decimal
	purchasers map[string]struct{}
}

// ByCode builds one row per registry entry, in registry order. Transactions match an
// entry when their referral code equals the entry code exactly.
func ByCode(transactions []referral.Transaction, registry []referral.CodeEntry, opts Options) []Row {
	entries := registry
	if opts.MergeDuplicateCodes {
		entries = mergeDuplicates(registry)
	}

	buckets := make(map[string]*bucket)
	for _, tx := range transactions {
		b, ok := buckets[tx.ReferralCode]
		if !ok {
			b = &bucket{purchasers: make(map[string]struct{})}
			buckets[tx.ReferralCode] = b
		}
		b.total = b.total.Add(decimal.NewFromFloat(tx.USDAmount))
		b.purchasers[tx.Purchaser] = struct{}{}
	}

	rows := make([]Row, 0, len(entries))
	for _, entry := range entries {
		b, ok := buckets[entry.Code]
		if !ok {
			if opts.SkipEmpty {
				continue
			}
			rows = append(rows, Row{Name: entry.DisplayName})
			continue
		}

		rows = append(rows, Row{
			Name:           entry.DisplayName,
			TotalAmount:    roundCents(b.total),
			PurchaserCount: len(b.purchasers),
		})
	}

	return rows
}

// roundCents rounds half up to two decimal places.
func roundCents(d decimal.Decimal) float64 {
	return d.Shift(2).Add(half).Floor().Shift(-2).InexactFloat64()
}

func mergeDuplicates(registry []referral.CodeEntry) []referral.CodeEntry {
	names := codeNames(registry)
	seen := make(map[string]struct{}, len(names))

	merged := make([]referral.CodeEntry, 0, len(names))
	for _, entry := range registry {
		if _, ok := seen[entry.Code]; ok {
			continue
		}
		seen[entry.Code] = struct{}{}
		merged = append(merged, referral.CodeEntry{
			DisplayName: names[entry.Code],
			Code:        entry.Code,
		})
	}
	return merged
}

// codeNames maps each code to a display name. Later entries overwrite earlier ones.
func codeNames(registry []referral.CodeEntry) map[string]string {
	names := make(map[string]string, len(registry))
	for _, entry := range registry {
		names[entry.Code] = entry.DisplayName
	}
	return names
}

// Enrich labels each transaction with the name of its referral code. When several
// entries share a code the last one in registry order wins; unmatched codes get
// referral.UnknownCodeName.
func Enrich(transactions []referral.Transaction, registry []referral.CodeEntry) []EnrichedTransaction {
	names := codeNames(registry)

	enriched := make([]EnrichedTransaction, len(transactions))
	for i, tx := range transactions {
		name, ok := names[tx.ReferralCode]
		if !ok {
			name = referral.UnknownCodeName
		}
		enriched[i] = EnrichedTransaction{
			Transaction: tx,
			CodeName:    name,
		}
	}
	return enriched
}

// FindDuplicateCodes groups display names by code, keeping only codes used by more
// than one entry. Names keep registry order.
func FindDuplicateCodes(registry []referral.CodeEntry) map[string][]string {
	groups := make(map[string][]string)
	for _, entry := range registry {
		groups[entry.Code] = append(groups[entry.Code], entry.DisplayName)
	}

	for code, names := range groups {
		if len(names) < 2 {
			delete(groups, code)
		}
	}
	return groups
}
