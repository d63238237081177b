package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/teampulse/internal/domain/baseline"
	"github.com/ganot/teampulse/internal/domain/metric"
	"github.com/ganot/teampulse/internal/repository"
)

// BaselineRepository implements repository.BaselineRepository for SQLite
type BaselineRepository struct {
	db *DB
}

// NewBaselineRepository creates a new BaselineRepository
func NewBaselineRepository(db *DB) *BaselineRepository {
	return &BaselineRepository{db: db}
}

// Create inserts a new baseline snapshot. Prior snapshots are never touched;
// the insert is the atomic replace-snapshot operation detection relies on.
func (r *BaselineRepository) Create(ctx context.Context, b *baseline.Baseline) error {
	if b.ID == "" || b.TeamID == "" {
		return repository.ErrInvalidInput
	}

	query := `
		INSERT INTO baselines (
			id, team_id, meeting_load_index, after_hours_rate,
			focus_time_ratio, response_median_mins, bdi,
			confidence, sample_size, window_length, established_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		b.ID,
		b.TeamID,
		nullableValue(b, metric.SignalMeetingLoad),
		nullableValue(b, metric.SignalAfterHours),
		nullableValue(b, metric.SignalFocusTime),
		nullableValue(b, metric.SignalResponseMedian),
		nullableValue(b, metric.SignalBDI),
		b.Confidence,
		b.SampleSize,
		b.WindowLength,
		b.EstablishedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create baseline: %w", err)
	}

	return nil
}

// GetCurrent returns the newest baseline snapshot for a team.
func (r *BaselineRepository) GetCurrent(ctx context.Context, teamID string) (*baseline.Baseline, error) {
	query := baselineSelect + `
		WHERE team_id = ?
		ORDER BY established_at DESC, rowid DESC
		LIMIT 1
	`

	row := r.db.QueryRowContext(ctx, query, teamID)
	b, err := scanBaseline(row)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get current baseline: %w", err)
	}

	return b, nil
}

// History returns snapshots for a team, newest first.
func (r *BaselineRepository) History(ctx context.Context, teamID string, limit int) ([]baseline.Baseline, error) {
	query := baselineSelect + `
		WHERE team_id = ?
		ORDER BY established_at DESC, rowid DESC
	`
	args := []any{teamID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list baseline history: %w", err)
	}
	defer rows.Close()

	var history []baseline.Baseline
	for rows.Next() {
		b, err := scanBaseline(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan baseline: %w", err)
		}
		history = append(history, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating baseline rows: %w", err)
	}

	return history, nil
}

const baselineSelect = `
	SELECT id, team_id, meeting_load_index, after_hours_rate,
	       focus_time_ratio, response_median_mins, bdi,
	       confidence, sample_size, window_length, established_at
	FROM baselines
`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBaseline(row rowScanner) (*baseline.Baseline, error) {
	var b baseline.Baseline
	var meeting, afterHours, focus, response, bdi sql.NullFloat64
	if err := row.Scan(
		&b.ID,
		&b.TeamID,
		&meeting,
		&afterHours,
		&focus,
		&response,
		&bdi,
		&b.Confidence,
		&b.SampleSize,
		&b.WindowLength,
		&b.EstablishedAt,
	); err != nil {
		return nil, err
	}

	b.Values = make(map[metric.Signal]float64)
	setSignal(b.Values, metric.SignalMeetingLoad, meeting)
	setSignal(b.Values, metric.SignalAfterHours, afterHours)
	setSignal(b.Values, metric.SignalFocusTime, focus)
	setSignal(b.Values, metric.SignalResponseMedian, response)
	setSignal(b.Values, metric.SignalBDI, bdi)

	return &b, nil
}

func nullableValue(b *baseline.Baseline, s metric.Signal) any {
	if v, ok := b.Value(s); ok {
		return v
	}
	return nil
}
