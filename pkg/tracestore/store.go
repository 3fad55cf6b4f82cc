// Package tracestore persists evaluation runs and their intermediate terms
// in a SQLite database so long reductions can be inspected after the fact.
package tracestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// Run statuses.
const (
	StatusRunning = "running"
	StatusNormal  = "normal"
	StatusStopped = "stopped"
)

// ErrNotFound is returned when a run id does not exist.
var ErrNotFound = errors.New("tracestore: run not found")

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          INTEGER PRIMARY KEY AUTOINCREMENT,
	input       TEXT    NOT NULL,
	result      TEXT    NOT NULL DEFAULT '',
	status      TEXT    NOT NULL,
	steps       INTEGER NOT NULL DEFAULT 0,
	started_at  TEXT    NOT NULL,
	finished_at TEXT    NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS steps (
	run_id INTEGER NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	step   INTEGER NOT NULL,
	depth  INTEGER NOT NULL,
	binder TEXT    NOT NULL,
	term   TEXT    NOT NULL,
	PRIMARY KEY (run_id, step)
);
`

// Run is one evaluation recorded in the store.
type Run struct {
	ID         int64
	Input      string
	Result     string
	Status     string
	Steps      uint64
	StartedAt  time.Time
	FinishedAt time.Time
}

// Step is one iteration of a run: the rendered term and the redex taken
// from it. Binder is empty for the final, normal, term.
type Step struct {
	Step   uint64
	Depth  int
	Binder string
	Term   string
}

// Store wraps a SQLite database holding runs and steps.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("tracestore: empty path")
	}
	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("tracestore: open %s: %w", path, err)
	}
	// One writer; keeps in-memory databases on a single connection too.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("tracestore: migrate %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// BeginRun records the start of an evaluation and returns its id.
func (s *Store) BeginRun(ctx context.Context, input string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (input, status, started_at) VALUES (?, ?, ?)`,
		input, StatusRunning, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("tracestore: begin run: %w", err)
	}
	return res.LastInsertId()
}

// RecordStep appends one step to a run.
func (s *Store) RecordStep(ctx context.Context, runID int64, st Step) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO steps (run_id, step, depth, binder, term) VALUES (?, ?, ?, ?, ?)`,
		runID, int64(st.Step), st.Depth, st.Binder, st.Term)
	if err != nil {
		return fmt.Errorf("tracestore: record step %d of run %d: %w", st.Step, runID, err)
	}
	return nil
}

// FinishRun stores the outcome of a run.
func (s *Store) FinishRun(ctx context.Context, runID int64, result, status string, steps uint64) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE runs SET result = ?, status = ?, steps = ?, finished_at = ? WHERE id = ?`,
		result, status, int64(steps), time.Now().UTC().Format(time.RFC3339Nano), runID)
	if err != nil {
		return fmt.Errorf("tracestore: finish run %d: %w", runID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("tracestore: finish run %d: %w", runID, ErrNotFound)
	}
	return nil
}

// Run loads a run by id.
func (s *Store) Run(ctx context.Context, id int64) (*Run, error) {
	var (
		r                 Run
		steps             int64
		started, finished string
	)
	err := s.db.QueryRowContext(ctx,
		`SELECT id, input, result, status, steps, started_at, finished_at FROM runs WHERE id = ?`, id,
	).Scan(&r.ID, &r.Input, &r.Result, &r.Status, &steps, &started, &finished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("tracestore: run %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("tracestore: run %d: %w", id, err)
	}
	r.Steps = uint64(steps)
	if r.StartedAt, err = time.Parse(time.RFC3339Nano, started); err != nil {
		return nil, fmt.Errorf("tracestore: run %d: started_at: %w", id, err)
	}
	if finished != "" {
		if r.FinishedAt, err = time.Parse(time.RFC3339Nano, finished); err != nil {
			return nil, fmt.Errorf("tracestore: run %d: finished_at: %w", id, err)
		}
	}
	return &r, nil
}

// Steps returns the recorded steps of a run in order.
func (s *Store) Steps(ctx context.Context, runID int64) ([]Step, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT step, depth, binder, term FROM steps WHERE run_id = ? ORDER BY step`, runID)
	if err != nil {
		return nil, fmt.Errorf("tracestore: steps of run %d: %w", runID, err)
	}
	defer rows.Close()

	var out []Step
	for rows.Next() {
		var (
			st   Step
			step int64
		)
		if err := rows.Scan(&step, &st.Depth, &st.Binder, &st.Term); err != nil {
			return nil, fmt.Errorf("tracestore: steps of run %d: %w", runID, err)
		}
		st.Step = uint64(step)
		out = append(out, st)
	}
	return out, rows.Err()
}
