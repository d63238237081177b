package scoring

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/ganot/teampulse/internal/repository"
)

// Params holds the configuration the composite calculators need.
type Params struct {
	MinGroupSize     int
	MinMemberSamples int
	RecentWindow     int
	Cost             CostParams
}

// Service computes the three composite indices for a team. The calculators
// themselves are pure; the service loads their inputs and enforces the
// privacy floor.
type Service struct {
	teams      TeamRepository
	baselines  BaselineRepository
	aggregates AggregateRepository
	samples    metric.SampleSource
	params     Params
	logger     *slog.Logger
}

// NewService creates a new scoring service.
func NewService(
	teams TeamRepository,
	baselines BaselineRepository,
	aggregates AggregateRepository,
	samples metric.SampleSource,
	params Params,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		teams:      teams,
		baselines:  baselines,
		aggregates: aggregates,
		samples:    samples,
		params:     params,
		logger:     logger,
	}
}

// EnsureScorable loads the team and checks the privacy floor.
func (s *Service) EnsureScorable(ctx context.Context, teamID string) (*team.Team, error) {
	t, err := s.teams.Get(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, fmt.Errorf("loading team: %w", err)
	}
	if !t.MeetsGroupFloor(s.params.MinGroupSize) {
		return nil, ErrInsufficientGroupSize
	}
	return t, nil
}

// Scores computes all three composite indices for one team. Teams below the
// privacy floor receive a full set of HasData=false scores, never numbers.
func (s *Service) Scores(ctx context.Context, teamID string) (*Set, error) {
	t, err := s.EnsureScorable(ctx, teamID)
	if errors.Is(err, ErrInsufficientGroupSize) {
		return s.noDataSet(teamID, "team below minimum group size; no signals computed"), nil
	}
	if err != nil {
		return nil, err
	}

	base, err := s.currentBaseline(ctx, teamID)
	if err != nil && !errors.Is(err, baseline.ErrNotFound) {
		return nil, err
	}

	recent, err := s.aggregates.ListRecent(ctx, teamID, s.params.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recent window: %w", err)
	}

	memberSamples, err := s.samples.ListSamples(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("loading member samples: %w", err)
	}

	set := &Set{
		TeamID:   teamID,
		Capacity: CapacityIndex(recent, base),
		Balance:  BalanceIndex(memberSamples, s.params.MinMemberSamples),
		Cost:     CostOfDrift(recent, base, t.MemberCount, s.params.Cost),
	}

	s.logger.Info("composite scores computed",
		"team", teamID,
		"capacity", set.Capacity.Index,
		"balance_state", set.Balance.State,
		"weekly_cost_mid", set.Cost.Weekly.Midpoint)

	return set, nil
}

// Capacity computes only the capacity/burn-down index.
func (s *Service) Capacity(ctx context.Context, teamID string) (CapacityScore, error) {
	if _, err := s.EnsureScorable(ctx, teamID); err != nil {
		if errors.Is(err, ErrInsufficientGroupSize) {
			return CapacityScore{Message: "team below minimum group size"}, nil
		}
		return CapacityScore{}, err
	}
	base, err := s.currentBaseline(ctx, teamID)
	if err != nil && !errors.Is(err, baseline.ErrNotFound) {
		return CapacityScore{}, err
	}
	recent, err := s.aggregates.ListRecent(ctx, teamID, s.params.RecentWindow)
	if err != nil {
		return CapacityScore{}, fmt.Errorf("loading recent window: %w", err)
	}
	return CapacityIndex(recent, base), nil
}

// Balance computes only the load-balance index.
func (s *Service) Balance(ctx context.Context, teamID string) (BalanceScore, error) {
	if _, err := s.EnsureScorable(ctx, teamID); err != nil {
		if errors.Is(err, ErrInsufficientGroupSize) {
			return BalanceScore{Index: 50, State: StateUnknown, Explanation: "team below minimum group size"}, nil
		}
		return BalanceScore{}, err
	}
	memberSamples, err := s.samples.ListSamples(ctx, teamID)
	if err != nil {
		return BalanceScore{}, fmt.Errorf("loading member samples: %w", err)
	}
	return BalanceIndex(memberSamples, s.params.MinMemberSamples), nil
}

// Cost computes only the cost-of-drift estimate.
func (s *Service) Cost(ctx context.Context, teamID string) (CostEstimate, error) {
	t, err := s.EnsureScorable(ctx, teamID)
	if err != nil {
		if errors.Is(err, ErrInsufficientGroupSize) {
			return CostEstimate{Message: "team below minimum group size"}, nil
		}
		return CostEstimate{}, err
	}
	base, err := s.currentBaseline(ctx, teamID)
	if err != nil && !errors.Is(err, baseline.ErrNotFound) {
		return CostEstimate{}, err
	}
	recent, err := s.aggregates.ListRecent(ctx, teamID, s.params.RecentWindow)
	if err != nil {
		return CostEstimate{}, fmt.Errorf("loading recent window: %w", err)
	}
	return CostOfDrift(recent, base, t.MemberCount, s.params.Cost), nil
}

func (s *Service) currentBaseline(ctx context.Context, teamID string) (*baseline.Baseline, error) {
	base, err := s.baselines.GetCurrent(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, baseline.ErrNotFound
		}
		return nil, fmt.Errorf("loading baseline: %w", err)
	}
	return base, nil
}

func (s *Service) noDataSet(teamID, message string) *Set {
	return &Set{
		TeamID:   teamID,
		Capacity: CapacityScore{Message: message},
		Balance:  BalanceScore{Index: 50, State: StateUnknown, Explanation: message},
		Cost:     CostEstimate{Message: message},
	}
}
