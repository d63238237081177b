package mocks

import (
	"context"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/recommend"
	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/stretchr/testify/mock"
)

// TeamRepository is a mock for repository.TeamRepository.
type TeamRepository struct {
	mock.Mock
}

func (m *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

func (m *TeamRepository) Get(ctx context.Context, id string) (*team.Team, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*team.Team); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]team.Team); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// AggregateRepository is a mock for repository.AggregateRepository.
type AggregateRepository struct {
	mock.Mock
}

func (m *AggregateRepository) Append(ctx context.Context, agg *metric.Aggregate) error {
	args := m.Called(ctx, agg)
	return args.Error(0)
}

func (m *AggregateRepository) ListRange(ctx context.Context, teamID string, from, to time.Time) ([]metric.Aggregate, error) {
	args := m.Called(ctx, teamID, from, to)
	if list, ok := args.Get(0).([]metric.Aggregate); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *AggregateRepository) ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error) {
	args := m.Called(ctx, teamID, periods)
	if list, ok := args.Get(0).([]metric.Aggregate); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// BaselineRepository is a mock for repository.BaselineRepository.
type BaselineRepository struct {
	mock.Mock
}

func (m *BaselineRepository) Create(ctx context.Context, b *baseline.Baseline) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *BaselineRepository) GetCurrent(ctx context.Context, teamID string) (*baseline.Baseline, error) {
	args := m.Called(ctx, teamID)
	if b, ok := args.Get(0).(*baseline.Baseline); ok {
		return b, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *BaselineRepository) History(ctx context.Context, teamID string, limit int) ([]baseline.Baseline, error) {
	args := m.Called(ctx, teamID, limit)
	if list, ok := args.Get(0).([]baseline.Baseline); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// DriftEventRepository is a mock for repository.DriftEventRepository.
type DriftEventRepository struct {
	mock.Mock
}

func (m *DriftEventRepository) Append(ctx context.Context, events []drift.Event) error {
	args := m.Called(ctx, events)
	return args.Error(0)
}

func (m *DriftEventRepository) List(ctx context.Context, teamID string, limit int) ([]drift.Event, error) {
	args := m.Called(ctx, teamID, limit)
	if list, ok := args.Get(0).([]drift.Event); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// RecommendationRepository is a mock for repository.RecommendationRepository.
type RecommendationRepository struct {
	mock.Mock
}

func (m *RecommendationRepository) Append(ctx context.Context, recs []recommend.Recommendation) error {
	args := m.Called(ctx, recs)
	return args.Error(0)
}

func (m *RecommendationRepository) List(ctx context.Context, teamID string, limit int) ([]recommend.Recommendation, error) {
	args := m.Called(ctx, teamID, limit)
	if list, ok := args.Get(0).([]recommend.Recommendation); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// SampleSource is a mock for metric.SampleSource.
type SampleSource struct {
	mock.Mock
}

func (m *SampleSource) ListSamples(ctx context.Context, teamID string) ([]metric.MemberSample, error) {
	args := m.Called(ctx, teamID)
	if list, ok := args.Get(0).([]metric.MemberSample); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}
