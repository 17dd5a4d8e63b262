// Package storage persists solve results in SQLite behind ports.Storage.
// Boards are stored as JSON columns, one row per solve attempt.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

// ErrNotFound is returned when no puzzle has the requested ID.
var ErrNotFound = errors.New("puzzle not found")

const schema = `
CREATE TABLE IF NOT EXISTS puzzles (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	initial_board TEXT      NOT NULL,
	solved_board  TEXT,
	is_solvable   TEXT      NOT NULL DEFAULT 'unknown',
	solve_time_ms INTEGER,
	created_at    TIMESTAMP NOT NULL
);`

// SQLite is a ports.Storage backed by a single SQLite database file.
type SQLite struct {
	db *sql.DB
}

// Open opens (creating if needed) the database at path and ensures the
// schema exists.
func Open(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating puzzles table: %w", err)
	}
	return &SQLite{db: db}, nil
}

func (s *SQLite) Close() error { return s.db.Close() }

func (s *SQLite) Create(ctx context.Context, p *domain.Puzzle) error {
	if p == nil {
		return errors.New("nil puzzle")
	}
	initial, err := json.Marshal(p.InitialBoard)
	if err != nil {
		return fmt.Errorf("encoding initial board: %w", err)
	}
	var solved any
	if p.SolvedBoard != nil {
		b, err := json.Marshal(p.SolvedBoard)
		if err != nil {
			return fmt.Errorf("encoding solved board: %w", err)
		}
		solved = string(b)
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC()
	}
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO puzzles (initial_board, solved_board, is_solvable, solve_time_ms, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		string(initial), solved, p.Solvability.String(), p.SolveTimeMs, p.CreatedAt.UTC())
	if err != nil {
		return fmt.Errorf("inserting puzzle: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading inserted id: %w", err)
	}
	p.ID = id
	return nil
}

func (s *SQLite) Get(ctx context.Context, id int64) (*domain.Puzzle, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT id, initial_board, solved_board, is_solvable, solve_time_ms, created_at
		 FROM puzzles WHERE id = ?`, id)
	p, err := scanPuzzle(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	return p, err
}

func (s *SQLite) List(ctx context.Context, skip, limit int) ([]domain.Puzzle, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, initial_board, solved_board, is_solvable, solve_time_ms, created_at
		 FROM puzzles ORDER BY id DESC LIMIT ? OFFSET ?`, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("listing puzzles: %w", err)
	}
	defer rows.Close()

	out := make([]domain.Puzzle, 0, limit)
	for rows.Next() {
		p, err := scanPuzzle(rows.Scan)
		if err != nil {
			return nil, err
		}
		out = append(out, *p)
	}
	return out, rows.Err()
}

func scanPuzzle(scan func(...any) error) (*domain.Puzzle, error) {
	var (
		p          domain.Puzzle
		initial    string
		solved     sql.NullString
		solvable   string
		createdRaw time.Time
	)
	if err := scan(&p.ID, &initial, &solved, &solvable, &p.SolveTimeMs, &createdRaw); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(initial), &p.InitialBoard); err != nil {
		return nil, fmt.Errorf("decoding initial board: %w", err)
	}
	if solved.Valid {
		var g domain.Grid
		if err := json.Unmarshal([]byte(solved.String), &g); err != nil {
			return nil, fmt.Errorf("decoding solved board: %w", err)
		}
		p.SolvedBoard = &g
	}
	sv, err := domain.ParseSolvability(solvable)
	if err != nil {
		return nil, err
	}
	p.Solvability = sv
	p.CreatedAt = createdRaw.UTC()
	return &p, nil
}
