package sqlite

import (
	"context"
	"fmt"

	"github.com/ganot/teampulse/internal/domain/recommend"
)

// RecommendationRepository implements repository.RecommendationRepository for SQLite
type RecommendationRepository struct {
	db *DB
}

// NewRecommendationRepository creates a new RecommendationRepository
func NewRecommendationRepository(db *DB) *RecommendationRepository {
	return &RecommendationRepository{db: db}
}

// Append inserts one run's recommendations in a single transaction.
func (r *RecommendationRepository) Append(ctx context.Context, recs []recommend.Recommendation) error {
	if len(recs) == 0 {
		return nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO recommendations (id, team_id, topic, action, rationale, priority, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	for _, rec := range recs {
		if _, err := tx.ExecContext(ctx, query,
			rec.ID,
			rec.TeamID,
			rec.Topic,
			rec.Action,
			rec.Rationale,
			rec.Priority,
			rec.CreatedAt,
		); err != nil {
			return fmt.Errorf("failed to append recommendation: %w", err)
		}
	}

	return tx.Commit()
}

// List returns recommendations for a team, newest first.
func (r *RecommendationRepository) List(ctx context.Context, teamID string, limit int) ([]recommend.Recommendation, error) {
	query := `
		SELECT id, team_id, topic, action, rationale, priority, created_at
		FROM recommendations
		WHERE team_id = ?
		ORDER BY created_at DESC, rowid DESC
	`
	args := []any{teamID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list recommendations: %w", err)
	}
	defer rows.Close()

	var recs []recommend.Recommendation
	for rows.Next() {
		var rec recommend.Recommendation
		if err := rows.Scan(
			&rec.ID,
			&rec.TeamID,
			&rec.Topic,
			&rec.Action,
			&rec.Rationale,
			&rec.Priority,
			&rec.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan recommendation: %w", err)
		}
		recs = append(recs, rec)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating recommendation rows: %w", err)
	}

	return recs, nil
}
