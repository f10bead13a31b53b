package storages

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// RunStore is a SQLite-backed index of finished agent runs. The full
// record of each run lives in its trajectory file; the store only keeps
// enough to find and rank runs.
type RunStore struct {
	db *sql.DB
}

// Run is one indexed agent run.
type Run struct {
	ID             string
	TrajectoryPath string
	Task           string
	Provider       string
	Model          string
	Success        bool
	ExecutionTime  float64
	CreatedAt      time.Time
}

func NewRunStore(db *sql.DB) (*RunStore, error) {
	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS runs (
			id              TEXT    PRIMARY KEY,
			trajectory_path TEXT    NOT NULL,
			task            TEXT    NOT NULL,
			provider        TEXT    NOT NULL,
			model           TEXT    NOT NULL,
			success         INTEGER NOT NULL,
			execution_time  REAL    NOT NULL,
			created_at      INTEGER NOT NULL
		)
	`); err != nil {
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	if _, err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_runs_created_at
		ON runs (created_at)
	`); err != nil {
		return nil, fmt.Errorf("create runs index: %w", err)
	}

	return &RunStore{db: db}, nil
}

// Record inserts one run and returns its ID, generating one when the
// caller did not set it.
func (s *RunStore) Record(run Run) (string, error) {
	if run.ID == "" {
		run.ID = uuid.NewString()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(
		`INSERT INTO runs (id, trajectory_path, task, provider, model, success, execution_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		run.ID, run.TrajectoryPath, run.Task, run.Provider, run.Model,
		run.Success, run.ExecutionTime, run.CreatedAt.UnixNano(),
	)
	if err != nil {
		return "", fmt.Errorf("record run: %w", err)
	}
	return run.ID, nil
}

// Recent returns up to limit runs, most recent first.
func (s *RunStore) Recent(limit int) ([]Run, error) {
	rows, err := s.db.Query(
		`SELECT id, trajectory_path, task, provider, model, success, execution_time, created_at
		 FROM runs
		 ORDER BY created_at DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var createdAt int64
		if err := rows.Scan(
			&run.ID, &run.TrajectoryPath, &run.Task, &run.Provider,
			&run.Model, &run.Success, &run.ExecutionTime, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.CreatedAt = time.Unix(0, createdAt)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("query runs rows: %w", err)
	}
	return runs, nil
}

func (s *RunStore) Close() error {
	return s.db.Close()
}
