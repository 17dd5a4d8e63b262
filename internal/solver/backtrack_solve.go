package solver

import (
	"context"
	"time"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
)

// Backtracking adapts the plain backtracking search to the service-facing
// Solver port. It works on its own copy of the board, checks the context
// deadline at each empty-cell-scan step, and counts visited nodes.
type Backtracking struct{}

func NewBacktracking() *Backtracking { return &Backtracking{} }

func (s *Backtracking) Solve(ctx context.Context, g domain.Grid) (*domain.Grid, ports.Stats, error) {
	start := time.Now()
	nodes := 0
	var dfs func() bool
	dfs = func() bool {
		if ctx.Err() != nil {
			return false
		}
		r, c, ok := FindEmpty(&g)
		if !ok {
			return true
		}
		for d := uint8(1); d <= 9; d++ {
			nodes++
			if IsValid(&g, r, c, d) {
				g[r][c] = d
				if dfs() {
					return true
				}
				g[r][c] = 0
			}
		}
		return false
	}
	solved := dfs()
	st := ports.Stats{Nodes: nodes, Duration: time.Since(start)}
	if err := ctx.Err(); err != nil {
		return nil, st, err
	}
	if !solved {
		return nil, st, nil
	}
	out := g
	return &out, st, nil
}
