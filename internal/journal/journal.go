// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package journal records organize runs and the moves they made in a SQLite
// database. The journal is a log for the operator to inspect; nothing reads
// it back to reverse a run.
package journal

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/file-organizer/pkg/types"
)

// timeFmt is fixed width so stored timestamps sort lexically.
const timeFmt = "2006-01-02T15:04:05.000000000Z07:00"

// ErrRunNotFound is returned when a run ID has no journal entry.
var ErrRunNotFound = errors.New("run not found")

// Run is one journal row describing an organize run.
type Run struct {
	ID         string    `json:"id" yaml:"id"`
	BaseDir    string    `json:"base_dir" yaml:"base_dir"`
	StartedAt  time.Time `json:"started_at" yaml:"started_at"`
	FinishedAt time.Time `json:"finished_at,omitempty" yaml:"finished_at,omitempty"`
	Moved      int       `json:"moved" yaml:"moved"`
	Skipped    int       `json:"skipped" yaml:"skipped"`
	Error      string    `json:"error,omitempty" yaml:"error,omitempty"`
}

// Journal manages the journal SQLite database.
type Journal struct {
	db *sql.DB
}

// Open opens or creates the journal database at path, creating its parent
// directory and schema as needed.
func Open(path string) (*Journal, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating journal directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", dsn(path)+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening journal: %w", err)
	}

	j := &Journal{db: db}
	if err := j.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating journal schema: %w", err)
	}
	return j, nil
}

// dsn turns a filesystem path into a SQLite URI so characters such as '?'
// and '#' in the path are not read as query or fragment separators.
func dsn(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	abs = filepath.ToSlash(abs)
	if !strings.HasPrefix(abs, "/") {
		abs = "/" + abs
	}
	u := url.URL{Scheme: "file", Path: abs}
	return u.String()
}

// Close releases the database connection.
func (j *Journal) Close() error {
	return j.db.Close()
}

func (j *Journal) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			base_dir TEXT NOT NULL,
			started_at TEXT NOT NULL,
			finished_at TEXT,
			moved INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0,
			error TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS moves (
			rowid INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id TEXT NOT NULL REFERENCES runs(id),
			source TEXT NOT NULL,
			category TEXT NOT NULL,
			destination TEXT NOT NULL,
			renamed INTEGER NOT NULL DEFAULT 0,
			moved_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_moves_run_id ON moves(run_id)`,
	}
	for _, stmt := range statements {
		if _, err := j.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun inserts a new run for baseDir and returns its ID.
func (j *Journal) BeginRun(ctx context.Context, baseDir string, startedAt time.Time) (string, error) {
	id := uuid.NewString()
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO runs (id, base_dir, started_at) VALUES (?, ?, ?)`,
		id, baseDir, startedAt.UTC().Format(timeFmt))
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}
	return id, nil
}

// RecordMove appends one move to a run.
func (j *Journal) RecordMove(ctx context.Context, runID string, m types.Move) error {
	_, err := j.db.ExecContext(ctx,
		`INSERT INTO moves (run_id, source, category, destination, renamed, moved_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, m.Source, m.Category, m.Destination, m.Renamed, m.MovedAt.UTC().Format(timeFmt))
	if err != nil {
		return fmt.Errorf("inserting move %s: %w", m.Source, err)
	}
	return nil
}

// FinishRun stores the final counts of a run and the error that ended it, if any.
func (j *Journal) FinishRun(ctx context.Context, summary types.RunSummary, runErr error) error {
	var errText sql.NullString
	if runErr != nil {
		errText = sql.NullString{String: runErr.Error(), Valid: true}
	}
	res, err := j.db.ExecContext(ctx,
		`UPDATE runs SET finished_at = ?, moved = ?, skipped = ?, error = ? WHERE id = ?`,
		summary.FinishedAt.UTC().Format(timeFmt), summary.Moved, summary.Skipped, errText, summary.RunID)
	if err != nil {
		return fmt.Errorf("updating run %s: %w", summary.RunID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("updating run %s: %w", summary.RunID, ErrRunNotFound)
	}
	return nil
}

// Runs returns the most recent runs, newest first. A limit <= 0 returns all runs.
func (j *Journal) Runs(ctx context.Context, limit int) ([]Run, error) {
	query := `SELECT id, base_dir, started_at, finished_at, moved, skipped, error
		FROM runs ORDER BY started_at DESC, rowid DESC`
	var args []any
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := j.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Run returns a single run by ID.
func (j *Journal) Run(ctx context.Context, id string) (Run, error) {
	row := j.db.QueryRowContext(ctx,
		`SELECT id, base_dir, started_at, finished_at, moved, skipped, error
		 FROM runs WHERE id = ?`, id)
	r, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Run{}, fmt.Errorf("run %s: %w", id, ErrRunNotFound)
	}
	return r, err
}

// Moves returns the moves of a run in the order they happened.
func (j *Journal) Moves(ctx context.Context, runID string) ([]types.Move, error) {
	rows, err := j.db.QueryContext(ctx,
		`SELECT source, category, destination, renamed, moved_at
		 FROM moves WHERE run_id = ? ORDER BY rowid`, runID)
	if err != nil {
		return nil, fmt.Errorf("querying moves: %w", err)
	}
	defer rows.Close()

	var moves []types.Move
	for rows.Next() {
		var (
			m       types.Move
			movedAt string
		)
		if err := rows.Scan(&m.Source, &m.Category, &m.Destination, &m.Renamed, &movedAt); err != nil {
			return nil, fmt.Errorf("scanning move: %w", err)
		}
		m.MovedAt, _ = time.Parse(timeFmt, movedAt)
		moves = append(moves, m)
	}
	return moves, rows.Err()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var (
		r          Run
		startedAt  string
		finishedAt sql.NullString
		errText    sql.NullString
	)
	if err := s.Scan(&r.ID, &r.BaseDir, &startedAt, &finishedAt, &r.Moved, &r.Skipped, &errText); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Run{}, err
		}
		return Run{}, fmt.Errorf("scanning run: %w", err)
	}
	r.StartedAt, _ = time.Parse(timeFmt, startedAt)
	if finishedAt.Valid {
		r.FinishedAt, _ = time.Parse(timeFmt, finishedAt.String)
	}
	r.Error = errText.String
	return r, nil
}
