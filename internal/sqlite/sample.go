package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/ganot/teampulse/internal/domain/metric"
)

// MemberSampleRepository implements repository.MemberSampleRepository for
// SQLite. Samples are stored without any member identifiers; rows are keyed
// only by position within the most recent capture.
type MemberSampleRepository struct {
	db *DB
}

// NewMemberSampleRepository creates a new MemberSampleRepository
func NewMemberSampleRepository(db *DB) *MemberSampleRepository {
	return &MemberSampleRepository{db: db}
}

// Replace swaps the team's sample set for a fresh capture in one transaction.
func (r *MemberSampleRepository) Replace(ctx context.Context, teamID string, samples []metric.MemberSample) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM member_samples WHERE team_id = ?`, teamID); err != nil {
		return fmt.Errorf("failed to clear member samples: %w", err)
	}

	query := `
		INSERT INTO member_samples (team_id, position, meeting_hours, after_hours_hours, response_pressure, captured_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	now := time.Now()
	for i, sample := range samples {
		if _, err := tx.ExecContext(ctx, query,
			teamID,
			i,
			sample.MeetingHours,
			sample.AfterHoursHours,
			sample.ResponsePressure,
			now,
		); err != nil {
			return fmt.Errorf("failed to insert member sample: %w", err)
		}
	}

	return tx.Commit()
}

// ListSamples returns the team's current anonymized sample set.
func (r *MemberSampleRepository) ListSamples(ctx context.Context, teamID string) ([]metric.MemberSample, error) {
	query := `
		SELECT meeting_hours, after_hours_hours, response_pressure
		FROM member_samples
		WHERE team_id = ?
		ORDER BY position ASC
	`

	rows, err := r.db.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, fmt.Errorf("failed to list member samples: %w", err)
	}
	defer rows.Close()

	var samples []metric.MemberSample
	for rows.Next() {
		var sample metric.MemberSample
		if err := rows.Scan(
			&sample.MeetingHours,
			&sample.AfterHoursHours,
			&sample.ResponsePressure,
		); err != nil {
			return nil, fmt.Errorf("failed to scan member sample: %w", err)
		}
		samples = append(samples, sample)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating member sample rows: %w", err)
	}

	return samples, nil
}
