package metric

import (
	"context"
	"time"
)

// AggregateRepository reads team metric aggregates supplied by the upstream
// collection pipeline.
type AggregateRepository interface {
	ListRange(ctx context.Context, teamID string, from, to time.Time) ([]Aggregate, error)
	ListRecent(ctx context.Context, teamID string, periods int) ([]Aggregate, error)
}

// SampleSource supplies anonymized per-member workload samples. Production
// wiring reads captured samples; tests inject fixed distributions. Scoring
// code never generates sample data itself.
type SampleSource interface {
	ListSamples(ctx context.Context, teamID string) ([]MemberSample, error)
}
