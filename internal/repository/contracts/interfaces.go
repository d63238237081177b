// Package contracts holds the aggregate repository contracts. They live in
// their own package so the domain packages can import the shared repository
// error values without creating an import cycle.
package contracts

import (
	"context"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/recommend"
	"github.com/ganot/teampulse/internal/domain/team"
)

// TeamRepository manages team persistence
type TeamRepository interface {
	Create(ctx context.Context, t *team.Team) error
	Get(ctx context.Context, id string) (*team.Team, error)
	List(ctx context.Context) ([]team.Team, error)
}

// AggregateRepository manages the append-only metric aggregate store
type AggregateRepository interface {
	Append(ctx context.Context, agg *metric.Aggregate) error
	ListRange(ctx context.Context, teamID string, from, to time.Time) ([]metric.Aggregate, error)
	ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error)
}

// BaselineRepository manages versioned baseline snapshots
type BaselineRepository interface {
	Create(ctx context.Context, b *baseline.Baseline) error
	GetCurrent(ctx context.Context, teamID string) (*baseline.Baseline, error)
	History(ctx context.Context, teamID string, limit int) ([]baseline.Baseline, error)
}

// DriftEventRepository manages the append-only drift event log
type DriftEventRepository interface {
	Append(ctx context.Context, events []drift.Event) error
	List(ctx context.Context, teamID string, limit int) ([]drift.Event, error)
}

// RecommendationRepository manages per-run recommendation history
type RecommendationRepository interface {
	Append(ctx context.Context, recs []recommend.Recommendation) error
	List(ctx context.Context, teamID string, limit int) ([]recommend.Recommendation, error)
}

// MemberSampleRepository stores anonymized per-member workload samples
type MemberSampleRepository interface {
	Replace(ctx context.Context, teamID string, samples []metric.MemberSample) error
	ListSamples(ctx context.Context, teamID string) ([]metric.MemberSample, error)
}
