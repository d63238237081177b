package baseline

import (
	"context"

	"github.com/ganot/teampulse/internal/domain/metric"
)

// Repository persists baseline snapshots.
type Repository interface {
	Create(ctx context.Context, b *Baseline) error
	GetCurrent(ctx context.Context, teamID string) (*Baseline, error)
	History(ctx context.Context, teamID string, limit int) ([]Baseline, error)
}

// AggregateRepository reads the aggregates a calibration window covers.
type AggregateRepository interface {
	ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error)
}
