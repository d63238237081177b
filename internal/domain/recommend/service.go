package recommend

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"sort"
	"time"

	"github.com/ganot/teampulse/internal/domain/drift"
	"github.com/ganot/teampulse/internal/domain/scoring"
	"github.com/google/uuid"
)

// Repository persists per-run recommendations.
type Repository interface {
	Append(ctx context.Context, recs []Recommendation) error
	List(ctx context.Context, teamID string, limit int) ([]Recommendation, error)
}

// Service maps drift events and composite scores to ranked actions.
type Service struct {
	recs       Repository
	thresholds map[string]float64
	maxResults int
	logger     *slog.Logger
}

// NewService creates a new recommendation service. thresholds is the same
// per-signal drift threshold table the detector uses; it drives priority
// assignment.
func NewService(recs Repository, thresholds map[string]float64, maxResults int, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if maxResults <= 0 {
		maxResults = 4
	}
	return &Service{
		recs:       recs,
		thresholds: thresholds,
		maxResults: maxResults,
		logger:     logger,
	}
}

// Recommend produces the ranked action list for one run and persists it.
// Provisional events never fire actions. Topics are deduplicated, output is
// capped, and a healthy team still receives one low-priority recognition
// item so the result is never empty.
func (s *Service) Recommend(ctx context.Context, teamID string, events []drift.Event, scores *scoring.Set) ([]Recommendation, error) {
	recs := s.Build(teamID, events, scores)

	if err := s.recs.Append(ctx, recs); err != nil {
		return nil, fmt.Errorf("persisting recommendations: %w", err)
	}

	s.logger.Info("recommendations generated", "team", teamID, "count", len(recs))
	return recs, nil
}

// Build assembles the recommendation list without persistence.
func (s *Service) Build(teamID string, events []drift.Event, scores *scoring.Set) []Recommendation {
	now := time.Now()
	seen := make(map[string]bool)
	var recs []Recommendation

	add := func(tpl template, priority Priority, rationale string) {
		if seen[tpl.topic] {
			return
		}
		seen[tpl.topic] = true
		recs = append(recs, Recommendation{
			ID:        uuid.NewString(),
			TeamID:    teamID,
			Topic:     tpl.topic,
			Action:    tpl.action,
			Rationale: rationale,
			Priority:  priority,
			CreatedAt: now,
		})
	}

	for _, ev := range events {
		if ev.Provisional {
			continue
		}
		tpl, ok := patternTemplates[patternKey{ev.Signal, ev.Direction}]
		if !ok {
			continue
		}
		add(tpl, s.priorityFor(ev), eventRationale(ev))
	}

	if scores != nil {
		if scores.Balance.HasData && scores.Balance.State == scoring.StateSkewed {
			add(balanceTemplate, PriorityMedium, scores.Balance.Explanation)
		}
		if scores.Capacity.HasData && scores.Capacity.Index >= capacityActionFloor {
			add(capacityTemplate, PriorityHigh,
				fmt.Sprintf("capacity index at %.0f (floor %.0f)", scores.Capacity.Index, capacityActionFloor))
		}
	}

	// Stable sort: equal-priority items keep the order they were added in.
	sort.SliceStable(recs, func(i, j int) bool {
		return recs[i].Priority.rank() < recs[j].Priority.rank()
	})

	// The recognition item always survives the cap; drift-driven items are
	// truncated to make room so the output is never empty-handed.
	if len(recs) >= s.maxResults {
		recs = recs[:s.maxResults-1]
	}
	add(recognitionTemplate, PriorityLow, "periodic check-in; emitted every run regardless of drift")

	return recs
}

// priorityFor assigns high when the change clears 1.3x the signal's alert
// threshold, medium otherwise. Boundary values round up.
func (s *Service) priorityFor(ev drift.Event) Priority {
	threshold := s.thresholds[string(ev.Signal)]
	if threshold > 0 && math.Abs(ev.PercentChange) >= threshold*1.3 {
		return PriorityHigh
	}
	return PriorityMedium
}

func eventRationale(ev drift.Event) string {
	word := "above"
	if ev.Direction == drift.DirectionDecrease {
		word = "below"
	}
	return fmt.Sprintf("%s is %.0f%% %s baseline (%.2f vs %.2f, severity %s)",
		ev.Signal, math.Abs(ev.PercentChange)*100, word, ev.CurrentValue, ev.BaselineValue, ev.Severity)
}

// History returns recent recommendations for a team, newest first.
func (s *Service) History(ctx context.Context, teamID string, limit int) ([]Recommendation, error) {
	return s.recs.List(ctx, teamID, limit)
}
