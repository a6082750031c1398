// Package sqlitestore provides a SQLite implementation of StateRepository.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runoshun/pt/internal/domain"
)

//go:embed schema.sql
var schema string

const metaNextID = "next_id"

// Store implements domain.StateRepository on a SQLite database file.
// Each Save replaces every row inside one transaction.
type Store struct {
	path string
}

// New creates a new Store for the given database path.
// The database is created on first Save.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads every task. A missing database yields an empty state.
func (s *Store) Load() (*domain.State, error) {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.NewState(), nil
		}
		return nil, fmt.Errorf("stat database: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	state := domain.NewState()

	var next string
	err = db.QueryRow(`SELECT value FROM meta WHERE key = ?`, metaNextID).Scan(&next)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return nil, fmt.Errorf("read meta: %w", err)
	default:
		if n, convErr := strconv.Atoi(next); convErr == nil {
			state.NextID = n
		}
	}

	rows, err := db.Query(`
		SELECT id, description, checked, archived, accumulated_seconds, pomodoro_started, created
		FROM tasks
		ORDER BY id
	`)
	if err != nil {
		return nil, fmt.Errorf("query tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t domain.Task
		var started sql.NullString
		var created string
		if err := rows.Scan(&t.ID, &t.Description, &t.Checked, &t.Archived, &t.AccumulatedSeconds, &started, &created); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if t.Created, err = parseTime(created); err != nil {
			return nil, fmt.Errorf("task %d: created: %w", t.ID, err)
		}
		if started.Valid {
			ts, err := parseTime(started.String)
			if err != nil {
				return nil, fmt.Errorf("task %d: pomodoro_started: %w", t.ID, err)
			}
			t.PomodoroStarted = &ts
		}
		state.Tasks = append(state.Tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tasks: %w", err)
	}

	state.Normalize()
	return state, nil
}

// Save replaces all rows with the given state.
func (s *Store) Save(state *domain.State) (err error) {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	db, err := s.open()
	if err != nil {
		return err
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec(`DELETE FROM tasks`); err != nil {
		return fmt.Errorf("clear tasks: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO tasks (id, description, checked, archived, accumulated_seconds, pomodoro_started, created)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, t := range state.Tasks {
		var started sql.NullString
		if t.PomodoroStarted != nil {
			started = sql.NullString{String: formatTime(*t.PomodoroStarted), Valid: true}
		}
		if _, err = stmt.Exec(t.ID, t.Description, t.Checked, t.Archived, t.AccumulatedSeconds, started, formatTime(t.Created)); err != nil {
			return fmt.Errorf("insert task %d: %w", t.ID, err)
		}
	}

	if _, err = tx.Exec(`
		INSERT INTO meta (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, metaNextID, strconv.Itoa(state.NextID)); err != nil {
		return fmt.Errorf("write meta: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (s *Store) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite3", s.path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return db, nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// Ensure Store implements StateRepository.
var _ domain.StateRepository = (*Store)(nil)
