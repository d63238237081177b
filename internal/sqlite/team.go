package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/ganot/teampulse/internal/domain/team"
	"github.com/ganot/teampulse/internal/repository"
)

// TeamRepository implements repository.TeamRepository for SQLite
type TeamRepository struct {
	db *DB
}

// NewTeamRepository creates a new TeamRepository
func NewTeamRepository(db *DB) *TeamRepository {
	return &TeamRepository{db: db}
}

// Create inserts a new team
func (r *TeamRepository) Create(ctx context.Context, t *team.Team) error {
	if t.ID == "" || t.OrgID == "" {
		return repository.ErrInvalidInput
	}
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	query := `
		INSERT INTO teams (id, org_id, name, member_count, manager_id, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		t.OrgID,
		t.Name,
		t.MemberCount,
		t.ManagerID,
		createdAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return repository.ErrDuplicate
		}
		return fmt.Errorf("failed to create team: %w", err)
	}

	t.CreatedAt = createdAt
	return nil
}

// Get retrieves a team by ID
func (r *TeamRepository) Get(ctx context.Context, id string) (*team.Team, error) {
	query := `
		SELECT id, org_id, name, member_count, manager_id, created_at
		FROM teams
		WHERE id = ?
	`

	var t team.Team
	var managerID sql.NullString
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID,
		&t.OrgID,
		&t.Name,
		&t.MemberCount,
		&managerID,
		&t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get team: %w", err)
	}
	if managerID.Valid {
		t.ManagerID = &managerID.String
	}

	return &t, nil
}

// List returns all teams ordered by creation time
func (r *TeamRepository) List(ctx context.Context) ([]team.Team, error) {
	query := `
		SELECT id, org_id, name, member_count, manager_id, created_at
		FROM teams
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list teams: %w", err)
	}
	defer rows.Close()

	var teams []team.Team
	for rows.Next() {
		var t team.Team
		var managerID sql.NullString
		if err := rows.Scan(
			&t.ID,
			&t.OrgID,
			&t.Name,
			&t.MemberCount,
			&managerID,
			&t.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan team: %w", err)
		}
		if managerID.Valid {
			t.ManagerID = &managerID.String
		}
		teams = append(teams, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating team rows: %w", err)
	}

	return teams, nil
}

func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
