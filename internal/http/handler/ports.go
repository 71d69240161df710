package handler

import (
	"context"
	"net/http"
	"refstats/internal/aggregate"
	"refstats/internal/core"
	"refstats/internal/http/payload"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name ReferralService . ReferralService
type ReferralService interface {
	Aggregated(ctx context.Context, q aggregate.Query) (core.AggregatedView, error)
	Detailed(ctx context.Context, q aggregate.Query) (core.DetailedView, error)
	Duplicates() map[string][]string
	StartRefresh(ctx context.Context) error
}

//counterfeiter:generate -o fake -fake-name RequestValidator . RequestValidator
type RequestValidator interface {
	DecodeAndValidateDataRequest(r *http.Request) (payload.DataRequest, error)
}
