package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/repository"
)

// AggregateRepository implements repository.AggregateRepository for SQLite
type AggregateRepository struct {
	db *DB
}

// NewAggregateRepository creates a new AggregateRepository
func NewAggregateRepository(db *DB) *AggregateRepository {
	return &AggregateRepository{db: db}
}

// Append inserts one immutable aggregate row. Duplicate (team, date) rows
// are rejected; aggregates are never rewritten.
func (r *AggregateRepository) Append(ctx context.Context, agg *metric.Aggregate) error {
	if agg.TeamID == "" || agg.Date.IsZero() {
		return repository.ErrInvalidInput
	}

	query := `
		INSERT INTO metric_aggregates (
			team_id, date, meeting_load_index, after_hours_rate,
			focus_time_ratio, response_median_mins, bdi
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		agg.TeamID,
		agg.Date,
		nullableSignal(agg, metric.SignalMeetingLoad),
		nullableSignal(agg, metric.SignalAfterHours),
		nullableSignal(agg, metric.SignalFocusTime),
		nullableSignal(agg, metric.SignalResponseMedian),
		nullableSignal(agg, metric.SignalBDI),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to append aggregate: %w", err)
	}

	return nil
}

// ListRange returns aggregates for a team within [from, to], oldest first.
func (r *AggregateRepository) ListRange(ctx context.Context, teamID string, from, to time.Time) ([]metric.Aggregate, error) {
	query := aggregateSelect + `
		WHERE team_id = ? AND date >= ? AND date <= ?
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to list aggregates: %w", err)
	}
	defer rows.Close()

	return scanAggregates(rows)
}

// ListRecent returns the newest `periods` aggregates for a team, oldest
// first so callers see the window in chronological order.
func (r *AggregateRepository) ListRecent(ctx context.Context, teamID string, periods int) ([]metric.Aggregate, error) {
	query := aggregateSelect + `
		WHERE team_id = ?
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, teamID, periods)
	if err != nil {
		return nil, fmt.Errorf("failed to list recent aggregates: %w", err)
	}
	defer rows.Close()

	aggs, err := scanAggregates(rows)
	if err != nil {
		return nil, err
	}

	// Reverse into ascending date order.
	for i, j := 0, len(aggs)-1; i < j; i, j = i+1, j-1 {
		aggs[i], aggs[j] = aggs[j], aggs[i]
	}
	return aggs, nil
}

const aggregateSelect = `
	SELECT team_id, date, meeting_load_index, after_hours_rate,
	       focus_time_ratio, response_median_mins, bdi
	FROM metric_aggregates
`

func scanAggregates(rows *sql.Rows) ([]metric.Aggregate, error) {
	var aggs []metric.Aggregate
	for rows.Next() {
		var agg metric.Aggregate
		var meeting, afterHours, focus, response, bdi sql.NullFloat64
		if err := rows.Scan(
			&agg.TeamID,
			&agg.Date,
			&meeting,
			&afterHours,
			&focus,
			&response,
			&bdi,
		); err != nil {
			return nil, fmt.Errorf("failed to scan aggregate: %w", err)
		}

		agg.Signals = make(map[metric.Signal]float64)
		setSignal(agg.Signals, metric.SignalMeetingLoad, meeting)
		setSignal(agg.Signals, metric.SignalAfterHours, afterHours)
		setSignal(agg.Signals, metric.SignalFocusTime, focus)
		setSignal(agg.Signals, metric.SignalResponseMedian, response)
		setSignal(agg.Signals, metric.SignalBDI, bdi)

		aggs = append(aggs, agg)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating aggregate rows: %w", err)
	}

	return aggs, nil
}

func nullableSignal(agg *metric.Aggregate, s metric.Signal) any {
	if v, ok := agg.Value(s); ok {
		return v
	}
	return nil
}

func setSignal(signals map[metric.Signal]float64, s metric.Signal, v sql.NullFloat64) {
	if v.Valid {
		signals[s] = v.Float64
	}
}
