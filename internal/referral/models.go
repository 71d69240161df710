package referral

import "time"

// UnknownCodeName is the name given to transactions whose referral code is not in the registry.
const UnknownCodeName = "Unknown"

// CodeEntry is one registry line. Several entries may share the same Code.
type CodeEntry struct {
	DisplayName string `json:"name"`
	Code        string `json:"code"`
}

// Transaction is a single purchase made through a referral code.
type Transaction struct {
	Chain           int     `json:"chain"`
	Purchaser       string  `json:"purchaser"`          // 0x + 40 hex chars
	Token           string  `json:"token"`              // payment token address
	ReferralCode    string  `json:"referral"`           // matches CodeEntry.Code or nothing
	Price           float64 `json:"price"`
	Round           int     `json:"round"`
	Amount          float64 `json:"amount"`
	USDAmount       float64 `json:"usdAmount"`
	TokensSold      float64 `json:"tokensSold"`
	BlockNumber     string  `json:"blockNumber"` // string to keep full precision
	BlockTimestamp  int64   `json:"blockTimestamp"`
	TransactionHash string  `json:"transactionHash"`
	USDEarned       float64 `json:"usdearned"`
	TokensEarned    float64 `json:"tokensearned"`
}

// Snapshot is the result of one collection run. It is written wholesale and never merged.
type Snapshot struct {
	LastUpdated       time.Time     `json:"lastUpdated"`
	TotalCodes        int           `json:"totalCodes"`
	SuccessfulFetches int           `json:"successfulFetches"`
	FailedFetches     int           `json:"failedFetches"`
	TotalTransactions int           `json:"totalTransactions"`
	Transactions      []Transaction `json:"transactions"`
}
