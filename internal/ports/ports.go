package ports

import (
	"context"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

// Stats captures performance characteristics of a solve.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver runs the backtracking search on its own copy of the board.
// A nil grid with a nil error means no solution exists for the given
// digits, which is a normal outcome and not an error. A non-nil error is
// only returned when the context expired before the search finished.
type Solver interface {
	Solve(ctx context.Context, g domain.Grid) (*domain.Grid, Stats, error)
}

// Storage persists solve results and serves history reads.
type Storage interface {
	Create(ctx context.Context, p *domain.Puzzle) error
	Get(ctx context.Context, id int64) (*domain.Puzzle, error)
	List(ctx context.Context, skip, limit int) ([]domain.Puzzle, error)
}
