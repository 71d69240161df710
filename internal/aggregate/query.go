package aggregate

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query carries the view state a caller wants applied: search term first, then sort.
// An empty SortField leaves the filtered order untouched.
type Query struct {
	Search    string
	SortField string
	Direction Direction
	Locale    language.Tag
}

func (q Query) Rows(rows []Row) []Row {
	filtered := FilterRows(rows, q.Search)
	if q.SortField == "" {
		return filtered
	}
	return SortRows(filtered, RowSortField(q.SortField), q.Direction, q.Locale)
}

func (q Query) Transactions(transactions []EnrichedTransaction) []EnrichedTransaction {
	found := SearchTransactions(transactions, q.Search)
	if q.SortField == "" {
		return found
	}
	return SortTransactions(found, TransactionSortField(q.SortField), q.Direction, q.Locale)
}

// IsEthereumAddress reports whether s is "0x" followed by exactly 40 hex digits.
func IsEthereumAddress(s string) bool {
	return strings.HasPrefix(s, "0x") && common.IsHexAddress(s)
}

// FilterRows keeps rows whose name contains term (case-insensitive) or whose total,
// printed as a plain decimal, contains term verbatim. A blank term keeps every row.
func FilterRows(rows []Row, term string) []Row {
	if strings.TrimSpace(term) == "" {
		return rows
	}

	lower := strings.ToLower(term)
	filtered := make([]Row, 0, len(rows))
	for _, row := range rows {
		if strings.Contains(strings.ToLower(row.Name), lower) ||
			strings.Contains(formatAmount(row.TotalAmount), term) {
			filtered = append(filtered, row)
		}
	}
	return filtered
}

// SearchTransactions matches an address-shaped term exactly against the purchaser.
// Any other term is a case-insensitive substring search over purchaser, code name,
// USD amount and transaction hash.
func SearchTransactions(transactions []EnrichedTransaction, term string) []EnrichedTransaction {
	if strings.TrimSpace(term) == "" {
		return transactions
	}

	found := make([]EnrichedTransaction, 0)

	if address := strings.TrimSpace(term); IsEthereumAddress(address) {
		for _, tx := range transactions {
			if strings.EqualFold(tx.Purchaser, address) {
				found = append(found, tx)
			}
		}
		return found
	}

	lower := strings.ToLower(term)
	for _, tx := range transactions {
		if strings.Contains(strings.ToLower(tx.Purchaser), lower) ||
			strings.Contains(strings.ToLower(tx.CodeName), lower) ||
			strings.Contains(formatAmount(tx.USDAmount), lower) ||
			strings.Contains(strings.ToLower(tx.TransactionHash), lower) {
			found = append(found, tx)
		}
	}
	return found
}

// SortRows returns a sorted copy of rows. Equal keys keep their input order.
// Unknown fields return the copy unsorted.
func SortRows(rows []Row, field RowSortField, dir Direction, locale language.Tag) []Row {
	sorted := slices.Clone(rows)

	var compare func(a, b Row) int
	switch field {
	case SortByName:
		col := collate.New(locale)
		compare = func(a, b Row) int { return col.CompareString(a.Name, b.Name) }
	case SortByTotalAmount:
		compare = func(a, b Row) int { return cmp.Compare(a.TotalAmount, b.TotalAmount) }
	case SortByPurchaserCount:
		compare = func(a, b Row) int { return cmp.Compare(a.PurchaserCount, b.PurchaserCount) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, directed(compare, dir))
	return sorted
}

// SortTransactions returns a sorted copy of transactions. Sorting by referral orders by
// the resolved code name.
func SortTransactions(transactions []EnrichedTransaction, field TransactionSortField, dir Direction, locale language.Tag) []EnrichedTransaction {
	sorted := slices.Clone(transactions)

	var compare func(a, b EnrichedTransaction) int
	switch field {
	case SortByPurchaser:
		col := collate.New(locale)
		compare = func(a, b EnrichedTransaction) int { return col.CompareString(a.Purchaser, b.Purchaser) }
	case SortByReferral:
		col := collate.New(locale)
		compare = func(a, b EnrichedTransaction) int { return col.CompareString(a.CodeName, b.CodeName) }
	case SortByUSDAmount:
		compare = func(a, b EnrichedTransaction) int { return cmp.Compare(a.USDAmount, b.USDAmount) }
	case SortByBlockTimestamp:
		compare = func(a, b EnrichedTransaction) int { return cmp.Compare(a.BlockTimestamp, b.BlockTimestamp) }
	default:
		return sorted
	}

	slices.SortStableFunc(sorted, directed(compare, dir))
	return sorted
}

func directed[T any](compare func(a, b T) int, dir Direction) func(a, b T) int {
	if dir == Desc {
		return func(a, b T) int { return compare(b, a) }
	}
	return compare
}

func formatAmount(v float64) string {
	if v == 0 {
		return "0"
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
