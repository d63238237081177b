package drift

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/repository"
	"github.com/google/uuid"
)

// Service detects drift of recent metrics against a team's baseline.
type Service struct {
	events     EventRepository
	baselines  BaselineRepository
	aggregates AggregateRepository
	thresholds map[string]float64
	logger     *slog.Logger
}

// NewService creates a new drift detection service. thresholds maps signal
// name to the fractional change that triggers an event.
func NewService(
	events EventRepository,
	baselines BaselineRepository,
	aggregates AggregateRepository,
	thresholds map[string]float64,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		events:     events,
		baselines:  baselines,
		aggregates: aggregates,
		thresholds: thresholds,
		logger:     logger,
	}
}

// Detect compares the last recentWindow periods against the team's current
// baseline and appends an event per drifting signal. Signals with a zero
// baseline are skipped rather than divided by zero. If the baseline has low
// confidence, events are still computed but flagged provisional.
func (s *Service) Detect(ctx context.Context, teamID string, recentWindow int) ([]Event, error) {
	if teamID == "" || recentWindow <= 0 {
		return nil, ErrInvalidInput
	}

	base, err := s.baselines.GetCurrent(ctx, teamID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUncalibrated
		}
		return nil, fmt.Errorf("loading baseline: %w", err)
	}

	rows, err := s.aggregates.ListRecent(ctx, teamID, recentWindow)
	if err != nil {
		return nil, fmt.Errorf("loading recent window: %w", err)
	}

	events := s.Compare(teamID, rows, base)
	if len(events) == 0 {
		return nil, nil
	}

	if err := s.events.Append(ctx, events); err != nil {
		return nil, fmt.Errorf("appending drift events: %w", err)
	}

	s.logger.Info("drift detected",
		"team", teamID,
		"events", len(events),
		"provisional", base.Confidence == baseline.ConfidenceLow)

	return events, nil
}

// Compare evaluates rows against base without touching persistence. Pure over
// its inputs, so concurrent per-team runs are safe.
func (s *Service) Compare(teamID string, rows []metric.Aggregate, base *baseline.Baseline) []Event {
	provisional := base.Confidence == baseline.ConfidenceLow
	now := time.Now()

	var events []Event
	for _, signal := range metric.TrackedSignals {
		baseValue, ok := base.Value(signal)
		if !ok || baseValue == 0 {
			// A zero baseline has no meaningful percent change.
			continue
		}
		recentMean, ok := metric.Mean(rows, signal)
		if !ok {
			continue
		}

		change := (recentMean - baseValue) / baseValue
		threshold := s.thresholds[string(signal)]
		if threshold <= 0 || math.Abs(change) < threshold {
			continue
		}

		direction := DirectionIncrease
		if change < 0 {
			direction = DirectionDecrease
		}

		events = append(events, Event{
			ID:            uuid.NewString(),
			TeamID:        teamID,
			Signal:        signal,
			CurrentValue:  recentMean,
			BaselineValue: baseValue,
			PercentChange: change,
			Direction:     direction,
			Severity:      severityFor(math.Abs(change), threshold),
			Provisional:   provisional,
			DetectedAt:    now,
		})
	}

	return events
}

// Threshold returns the configured drift threshold for a signal.
func (s *Service) Threshold(signal metric.Signal) float64 {
	return s.thresholds[string(signal)]
}

// History returns recent drift events for a team, newest first.
func (s *Service) History(ctx context.Context, teamID string, limit int) ([]Event, error) {
	return s.events.List(ctx, teamID, limit)
}
