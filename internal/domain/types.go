package domain

import (
	"fmt"
	"time"
)

// Grid is a 9x9 Sudoku board. Zero means an empty cell, 1-9 a placed digit.
// Rows and columns are 0-indexed.
type Grid [9][9]uint8

// CellCoord identifies a cell on the board.
type CellCoord struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Puzzle is a persisted solve attempt: the board as submitted, the solution
// (nil when none exists), and timing metadata.
type Puzzle struct {
	ID           int64       `json:"id"`
	InitialBoard Grid        `json:"initial_board"`
	SolvedBoard  *Grid       `json:"solved_board"`
	Solvability  Solvability `json:"is_solvable"`
	SolveTimeMs  int64       `json:"solve_time_ms"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Solvability records the outcome of a solve attempt.
type Solvability int

const (
	SolvabilityUnknown Solvability = iota
	SolvabilityYes
	SolvabilityNo
)

func (s Solvability) String() string {
	switch s {
	case SolvabilityYes:
		return "yes"
	case SolvabilityNo:
		return "no"
	default:
		return "unknown"
	}
}

func (s Solvability) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Solvability) UnmarshalText(b []byte) error {
	v, err := ParseSolvability(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// ParseSolvability maps the wire/storage form back to the enum.
func ParseSolvability(s string) (Solvability, error) {
	switch s {
	case "yes":
		return SolvabilityYes, nil
	case "no":
		return SolvabilityNo, nil
	case "unknown", "":
		return SolvabilityUnknown, nil
	}
	return SolvabilityUnknown, fmt.Errorf("unknown solvability %q", s)
}
