package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/recommend"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/ganot/teampulse/internal/domain/team"
)

// TeamLister enumerates teams for batch runs.
type TeamLister interface {
	List(ctx context.Context) ([]team.Team, error)
}

// Report is the full engine output for one team and one run.
type Report struct {
	TeamID          string                     `json:"team_id"`
	Baseline        *baseline.Baseline         `json:"baseline,omitempty"`
	Events          []drift.Event              `json:"events,omitempty"`
	Scores          *scoring.Set               `json:"scores,omitempty"`
	Recommendations []recommend.Recommendation `json:"recommendations,omitempty"`
	// NoData is set when the team could not be scored (below the privacy
	// floor or no aggregates); Reason says why. Distinguishes "healthy"
	// from "we don't know".
	NoData bool   `json:"no_data,omitempty"`
	Reason string `json:"reason,omitempty"`
}

// Options controls a run.
type Options struct {
	BaselineWindow int
	RecentWindow   int
}

// Service orchestrates calibrate → detect → score → recommend for teams.
// Runs for different teams are independent and safe to execute in parallel;
// within one team the stages run sequentially so detection always reads the
// snapshot calibration just committed.
type Service struct {
	teams       TeamLister
	baselines   *baseline.Service
	detector    *drift.Service
	scorer      *scoring.Service
	recommender *recommend.Service
	opts        Options
	logger      *slog.Logger
}

// NewService creates a new engine service.
func NewService(
	teams TeamLister,
	baselines *baseline.Service,
	detector *drift.Service,
	scorer *scoring.Service,
	recommender *recommend.Service,
	opts Options,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		teams:       teams,
		baselines:   baselines,
		detector:    detector,
		scorer:      scorer,
		recommender: recommender,
		opts:        opts,
		logger:      logger,
	}
}

// RunTeam executes the full pipeline for one team.
func (s *Service) RunTeam(ctx context.Context, teamID string) (*Report, error) {
	if teamID == "" {
		return nil, fmt.Errorf("team id is required")
	}

	if _, err := s.scorer.EnsureScorable(ctx, teamID); err != nil {
		if errors.Is(err, scoring.ErrInsufficientGroupSize) {
			return &Report{
				TeamID: teamID,
				NoData: true,
				Reason: "team below minimum group size; no signals computed",
			}, nil
		}
		return nil, err
	}

	base, err := s.baselines.Calibrate(ctx, teamID, s.opts.BaselineWindow)
	if err != nil {
		if errors.Is(err, baseline.ErrNoData) {
			return &Report{
				TeamID: teamID,
				NoData: true,
				Reason: "no aggregates in calibration window; team is uncalibrated",
			}, nil
		}
		return nil, fmt.Errorf("calibrating: %w", err)
	}

	events, err := s.detector.Detect(ctx, teamID, s.opts.RecentWindow)
	if err != nil {
		return nil, fmt.Errorf("detecting drift: %w", err)
	}

	scores, err := s.scorer.Scores(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("scoring: %w", err)
	}

	recs, err := s.recommender.Recommend(ctx, teamID, events, scores)
	if err != nil {
		return nil, fmt.Errorf("recommending: %w", err)
	}

	return &Report{
		TeamID:          teamID,
		Baseline:        base,
		Events:          events,
		Scores:          scores,
		Recommendations: recs,
	}, nil
}

// TeamResult pairs a team with its report or error from a batch run.
type TeamResult struct {
	TeamID string
	Report *Report
	Err    error
}

// RunAll fans out one worker per team and collects every result. A failing
// team never aborts the batch; each stage is idempotent, so rerunning a
// failed team is always safe.
func (s *Service) RunAll(ctx context.Context) ([]TeamResult, error) {
	teams, err := s.teams.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}

	results := make([]TeamResult, len(teams))
	var wg sync.WaitGroup
	for i, t := range teams {
		wg.Add(1)
		go func(i int, teamID string) {
			defer wg.Done()
			report, err := s.RunTeam(ctx, teamID)
			results[i] = TeamResult{TeamID: teamID, Report: report, Err: err}
			if err != nil {
				s.logger.Error("team run failed", "team", teamID, "error", err)
			}
		}(i, t.ID)
	}
	wg.Wait()

	return results, nil
}
