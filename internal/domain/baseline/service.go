package baseline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/repository"
	"github.com/google/uuid"
)

// Service calibrates team baselines from rolling aggregate windows.
type Service struct {
	baselines  Repository
	aggregates AggregateRepository
	logger     *slog.Logger
}

// NewService creates a new baseline service.
func NewService(baselines Repository, aggregates AggregateRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		baselines:  baselines,
		aggregates: aggregates,
		logger:     logger,
	}
}

// Calibrate learns a team's normal from the last windowLength periods and
// persists the result as a new snapshot. Per-signal values are arithmetic
// means over the rows that carry the signal; missing days are skipped.
// Calibration is deterministic: identical input rows yield identical values.
func (s *Service) Calibrate(ctx context.Context, teamID string, windowLength int) (*Baseline, error) {
	if teamID == "" || windowLength <= 0 {
		return nil, ErrInvalidInput
	}

	rows, err := s.aggregates.ListRecent(ctx, teamID, windowLength)
	if err != nil {
		return nil, fmt.Errorf("loading calibration window: %w", err)
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	b := &Baseline{
		ID:            uuid.NewString(),
		TeamID:        teamID,
		Values:        metric.Means(rows),
		Confidence:    GradeConfidence(len(rows), windowLength),
		SampleSize:    len(rows),
		WindowLength:  windowLength,
		EstablishedAt: time.Now(),
	}

	if err := s.baselines.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("persisting baseline: %w", err)
	}

	s.logger.Info("baseline calibrated",
		"team", teamID,
		"samples", b.SampleSize,
		"window", windowLength,
		"confidence", b.Confidence)

	return b, nil
}

// Current returns the team's latest baseline snapshot.
func (s *Service) Current(ctx context.Context, teamID string) (*Baseline, error) {
	b, err := s.baselines.GetCurrent(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("loading baseline: %w", err)
	}
	return b, nil
}

// History returns prior snapshots, newest first, for audit and trend views.
func (s *Service) History(ctx context.Context, teamID string, limit int) ([]Baseline, error) {
	return s.baselines.History(ctx, teamID, limit)
}
