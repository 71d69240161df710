package aggregate

import "refstats/internal/referral"

// Row is the aggregated view of one registry entry.
type Row struct {
	Name           string  `json:"name"`
	TotalAmount    float64 `json:"totalAmount"` // USD, rounded to cents
	PurchaserCount int     `json:"purchaserCount"`
}

// EnrichedTransaction is a transaction labelled with the display name of its referral code.
type EnrichedTransaction struct {
	referral.Transaction
	CodeName string `json:"codeName"`
}

// Options selects between the aggregation policies callers have relied on.
// The zero value emits one row per registry entry, zero rows included.
type Options struct {
	// SkipEmpty drops entries without any matching transaction.
	SkipEmpty bool
	// MergeDuplicateCodes emits one row per distinct code, placed at the code's first
	// registry position and named after its last entry, so a code's purchasers are
	// counted once instead of once per entry.
	MergeDuplicateCodes bool
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

type RowSortField string

const (
	SortByName           RowSortField = "name"
	SortByTotalAmount    RowSortField = "totalAmount"
	SortByPurchaserCount RowSortField = "purchaserCount"
)

type TransactionSortField string

const (
	SortByPurchaser      TransactionSortField = "purchaser"
	SortByUSDAmount      TransactionSortField = "usdAmount"
	SortByBlockTimestamp TransactionSortField = "blockTimestamp"
	SortByReferral       TransactionSortField = "referral"
)

var RowSortFields = []RowSortField{SortByName, SortByTotalAmount, SortByPurchaserCount}

var TransactionSortFields = []TransactionSortField{SortByPurchaser, SortByUSDAmount, SortByBlockTimestamp, SortByReferral}
