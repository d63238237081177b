package sqlite

import (
	"context"
	"fmt"

	"github.com/ganot/teampulse/internal/domain/drift"
)

// DriftEventRepository implements repository.DriftEventRepository for SQLite
type DriftEventRepository struct {
	db *DB
}

// NewDriftEventRepository creates a new DriftEventRepository
func NewDriftEventRepository(db *DB) *DriftEventRepository {
	return &DriftEventRepository{db: db}
}

// Append inserts a batch of drift events in one transaction. The log is
// append-only; events are never updated or deleted here.
func (r *DriftEventRepository) Append(ctx context.Context, events []drift.Event) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO drift_events (
			id, team_id, signal, current_value, baseline_value,
			percent_change, direction, severity, provisional, detected_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	for _, ev := range events {
		if _, err := tx.ExecContext(ctx, query,
			ev.ID,
			ev.TeamID,
			ev.Signal,
			ev.CurrentValue,
			ev.BaselineValue,
			ev.PercentChange,
			ev.Direction,
			ev.Severity,
			ev.Provisional,
			ev.DetectedAt,
		); err != nil {
			return fmt.Errorf("failed to append drift event: %w", err)
		}
	}

	return tx.Commit()
}

// List returns events for a team, newest first.
func (r *DriftEventRepository) List(ctx context.Context, teamID string, limit int) ([]drift.Event, error) {
	query := `
		SELECT id, team_id, signal, current_value, baseline_value,
		       percent_change, direction, severity, provisional, detected_at
		FROM drift_events
		WHERE team_id = ?
		ORDER BY detected_at DESC, rowid DESC
	`
	args := []any{teamID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list drift events: %w", err)
	}
	defer rows.Close()

	var events []drift.Event
	for rows.Next() {
		var ev drift.Event
		if err := rows.Scan(
			&ev.ID,
			&ev.TeamID,
			&ev.Signal,
			&ev.CurrentValue,
			&ev.BaselineValue,
			&ev.PercentChange,
			&ev.Direction,
			&ev.Severity,
			&ev.Provisional,
			&ev.DetectedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan drift event: %w", err)
		}
		events = append(events, ev)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating drift event rows: %w", err)
	}

	return events, nil
}
