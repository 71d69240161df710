package collector

import (
	"context"
	"refstats/internal/referral"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name TransactionSource . TransactionSource
type TransactionSource interface {
	FetchTransactions(ctx context.Context, code string) ([]referral.Transaction, error)
}
