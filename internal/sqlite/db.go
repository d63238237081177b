package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// DB wraps a SQLite database connection
type DB struct {
	*sql.DB
}

// New creates a new SQLite database connection
func New(dataSourceName string) (*DB, error) {
	db, err := sql.Open("sqlite", dataSourceName)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	return &DB{db}, nil
}

// RunMigrations applies the embedded schema.
func (db *DB) RunMigrations() error {
	migration := `
-- Teams table
CREATE TABLE IF NOT EXISTS teams (
    id TEXT PRIMARY KEY,
    org_id TEXT NOT NULL,
    name TEXT NOT NULL,
    member_count INTEGER NOT NULL,
    manager_id TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);
CREATE INDEX IF NOT EXISTS idx_org_teams ON teams(org_id);

-- Metric aggregates: one immutable row per team per period. Signal columns
-- are nullable; a missing signal is NULL, never zero.
CREATE TABLE IF NOT EXISTS metric_aggregates (
    team_id TEXT NOT NULL,
    date TIMESTAMP NOT NULL,
    meeting_load_index REAL,
    after_hours_rate REAL,
    focus_time_ratio REAL,
    response_median_mins REAL,
    bdi REAL,
    PRIMARY KEY (team_id, date),
    FOREIGN KEY (team_id) REFERENCES teams(id)
);
CREATE INDEX IF NOT EXISTS idx_team_aggregates ON metric_aggregates(team_id, date);

-- Baseline snapshots: append-only, versioned by established_at. The current
-- baseline for a team is the newest row.
CREATE TABLE IF NOT EXISTS baselines (
    id TEXT PRIMARY KEY,
    team_id TEXT NOT NULL,
    meeting_load_index REAL,
    after_hours_rate REAL,
    focus_time_ratio REAL,
    response_median_mins REAL,
    bdi REAL,
    confidence TEXT NOT NULL CHECK(confidence IN ('low', 'medium', 'high')),
    sample_size INTEGER NOT NULL,
    window_length INTEGER NOT NULL,
    established_at TIMESTAMP NOT NULL,
    FOREIGN KEY (team_id) REFERENCES teams(id)
);
CREATE INDEX IF NOT EXISTS idx_team_baselines ON baselines(team_id, established_at);

-- Drift event log: append-only, never updated or deleted by the engine.
CREATE TABLE IF NOT EXISTS drift_events (
    id TEXT PRIMARY KEY,
    team_id TEXT NOT NULL,
    signal TEXT NOT NULL,
    current_value REAL NOT NULL,
    baseline_value REAL NOT NULL,
    percent_change REAL NOT NULL,
    direction TEXT NOT NULL CHECK(direction IN ('increase', 'decrease')),
    severity TEXT NOT NULL CHECK(severity IN ('medium', 'high')),
    provisional INTEGER NOT NULL DEFAULT 0,
    detected_at TIMESTAMP NOT NULL,
    FOREIGN KEY (team_id) REFERENCES teams(id)
);
CREATE INDEX IF NOT EXISTS idx_team_events ON drift_events(team_id, detected_at);

-- Recommendation history per detection run.
CREATE TABLE IF NOT EXISTS recommendations (
    id TEXT PRIMARY KEY,
    team_id TEXT NOT NULL,
    topic TEXT NOT NULL,
    action TEXT NOT NULL,
    rationale TEXT NOT NULL,
    priority TEXT NOT NULL CHECK(priority IN ('high', 'medium', 'low')),
    created_at TIMESTAMP NOT NULL,
    FOREIGN KEY (team_id) REFERENCES teams(id)
);
CREATE INDEX IF NOT EXISTS idx_team_recommendations ON recommendations(team_id, created_at);

-- Anonymized per-member workload samples. No member identifiers, only a
-- positional index within the latest capture.
CREATE TABLE IF NOT EXISTS member_samples (
    team_id TEXT NOT NULL,
    position INTEGER NOT NULL,
    meeting_hours REAL NOT NULL,
    after_hours_hours REAL NOT NULL,
    response_pressure REAL NOT NULL,
    captured_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (team_id, position),
    FOREIGN KEY (team_id) REFERENCES teams(id)
);
`

	_, err := db.Exec(migration)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}
