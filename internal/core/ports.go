package core

import (
	"context"
	"refstats/internal/referral"
)

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name SnapshotStore . SnapshotStore
type SnapshotStore interface {
	Load(ctx context.Context) (referral.Snapshot, error)
	Save(ctx context.Context, snap referral.Snapshot) error
}

//counterfeiter:generate -o fake -fake-name Collector . Collector
type Collector interface {
	Collect(ctx context.Context, registry []referral.CodeEntry) referral.Snapshot
}
