// Package store keeps landing-page cycle telemetry in sqlite for the admin dashboard.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("store: not found")

// Cycle is one fully revealed animation cycle.
type Cycle struct {
	ID        int64     `json:"id"`
	Cols      int       `json:"cols"`
	Rows      int       `json:"rows"`
	Walls     int       `json:"walls"`
	Obstacles int       `json:"obstacles"`
	Explored  int       `json:"explored"`
	PathLen   int       `json:"path_length"`
	Retries   int       `json:"retries"`
	Source    string    `json:"source"`
	CreatedAt time.Time `json:"created_at"`
}

// Stats aggregates recorded cycles.
type Stats struct {
	TotalCycles   int64   `json:"total_cycles"`
	CyclesToday   int64   `json:"cycles_today"`
	TotalRetries  int64   `json:"total_retries"`
	AvgExplored   float64 `json:"avg_explored"`
	AvgPathLength float64 `json:"avg_path_length"`
	LongestPath   int64   `json:"longest_path"`
	RecentCycles  []Cycle `json:"recent_cycles"`
}

type Store struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path. ":memory:" works for tests.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	// sqlite serialises writers anyway, and an in-memory database lives on one connection.
	db.SetMaxOpenConns(1)

	s := &Store{db: db}
	if err := s.migrate(context.Background()); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) migrate(ctx context.Context) error {
	const createCycles = `
	CREATE TABLE IF NOT EXISTS cycles (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		cols INTEGER NOT NULL,
		rows INTEGER NOT NULL,
		walls INTEGER NOT NULL,
		obstacles INTEGER NOT NULL,
		explored INTEGER NOT NULL,
		path_length INTEGER NOT NULL,
		retries INTEGER NOT NULL DEFAULT 0,
		source TEXT NOT NULL DEFAULT '',
		created_at DATETIME NOT NULL
	)`
	if _, err := s.db.ExecContext(ctx, createCycles); err != nil {
		return fmt.Errorf("create cycles table: %w", err)
	}
	if _, err := s.db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS cycles_created_at ON cycles (created_at)`); err != nil {
		return fmt.Errorf("create cycles index: %w", err)
	}
	return nil
}

// RecordCycle inserts c and returns its id. A zero CreatedAt is stamped with now.
func (s *Store) RecordCycle(ctx context.Context, c Cycle) (int64, error) {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	res, err := s.db.ExecContext(ctx, `
		INSERT INTO cycles (cols, rows, walls, obstacles, explored, path_length, retries, source, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, c.Cols, c.Rows, c.Walls, c.Obstacles, c.Explored, c.PathLen, c.Retries, c.Source, c.CreatedAt.UTC())
	if err != nil {
		return 0, fmt.Errorf("record cycle: %w", err)
	}
	return res.LastInsertId()
}

func (s *Store) Cycle(ctx context.Context, id int64) (Cycle, error) {
	row := s.db.QueryRowContext(ctx, selectCycles+` WHERE id = ?`, id)
	c, err := scanCycle(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Cycle{}, ErrNotFound
	}
	if err != nil {
		return Cycle{}, fmt.Errorf("load cycle %d: %w", id, err)
	}
	return c, nil
}

// RecentCycles returns up to limit cycles, newest first.
func (s *Store) RecentCycles(ctx context.Context, limit int) ([]Cycle, error) {
	rows, err := s.db.QueryContext(ctx, selectCycles+` ORDER BY created_at DESC, id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list cycles: %w", err)
	}
	defer rows.Close()

	var cycles []Cycle
	for rows.Next() {
		c, err := scanCycle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cycle: %w", err)
		}
		cycles = append(cycles, c)
	}
	return cycles, rows.Err()
}

func (s *Store) Stats(ctx context.Context, now time.Time, recent int) (*Stats, error) {
	stats := &Stats{}

	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(retries), 0), COALESCE(AVG(explored), 0),
		       COALESCE(AVG(path_length), 0), COALESCE(MAX(path_length), 0)
		FROM cycles
	`).Scan(&stats.TotalCycles, &stats.TotalRetries, &stats.AvgExplored, &stats.AvgPathLength, &stats.LongestPath)
	if err != nil {
		return nil, fmt.Errorf("aggregate cycles: %w", err)
	}

	dayStart := now.UTC().Truncate(24 * time.Hour)
	err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM cycles WHERE created_at >= ?`, dayStart).Scan(&stats.CyclesToday)
	if err != nil {
		return nil, fmt.Errorf("count today's cycles: %w", err)
	}

	stats.RecentCycles, err = s.RecentCycles(ctx, recent)
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// PurgeBefore deletes cycles recorded before cutoff and reports how many went.
func (s *Store) PurgeBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM cycles WHERE created_at < ?`, cutoff.UTC())
	if err != nil {
		return 0, fmt.Errorf("purge cycles: %w", err)
	}
	return res.RowsAffected()
}

const selectCycles = `
	SELECT id, cols, rows, walls, obstacles, explored, path_length, retries, source, created_at
	FROM cycles`

type scanner interface {
	Scan(dest ...any) error
}

func scanCycle(row scanner) (Cycle, error) {
	var c Cycle
	err := row.Scan(&c.ID, &c.Cols, &c.Rows, &c.Walls, &c.Obstacles, &c.Explored, &c.PathLen, &c.Retries, &c.Source, &c.CreatedAt)
	return c, err
}
