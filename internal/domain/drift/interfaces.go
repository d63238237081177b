package drift

import (
	"context"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
)

// EventRepository persists the append-only drift event log.
type EventRepository interface {
	Append(ctx context.Context, events []Event) error
	List(ctx context.Context, teamID string, limit int) ([]Event, error)
}

// BaselineRepository reads the current baseline snapshot.
type BaselineRepository interface {
	GetCurrent(ctx context.Context, teamID string) (*baseline.Baseline, error)
}

// AggregateRepository reads the recent rolling window.
type AggregateRepository interface {
	ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error)
}
