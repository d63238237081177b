package scoring

import (
	"context"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/team"
)

// TeamRepository reads team records for privacy-floor checks.
type TeamRepository interface {
	Get(ctx context.Context, id string) (*team.Team, error)
}

// BaselineRepository reads the current baseline snapshot.
type BaselineRepository interface {
	GetCurrent(ctx context.Context, teamID string) (*baseline.Baseline, error)
}

// AggregateRepository reads the recent rolling window.
type AggregateRepository interface {
	ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error)
}
