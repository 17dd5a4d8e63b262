// Package validator enforces the grid representation contract at the edge:
// the solver assumes a well-shaped 9x9 board and does no range checks of
// its own, so every board coming off the wire passes through here first.
package validator

import (
	"fmt"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

// ParseBoard converts a wire-level board into a Grid, rejecting anything
// that is not exactly 9 rows of 9 columns with all values in [0,9].
func ParseBoard(rows [][]int) (domain.Grid, error) {
	var g domain.Grid
	if len(rows) != 9 {
		return g, fmt.Errorf("board must have exactly 9 rows, got %d", len(rows))
	}
	for r, row := range rows {
		if len(row) != 9 {
			return g, fmt.Errorf("row %d must have exactly 9 columns, got %d", r, len(row))
		}
		for c, v := range row {
			if v < 0 || v > 9 {
				return g, fmt.Errorf("cell (%d,%d) must be between 0 and 9, got %d", r, c, v)
			}
			g[r][c] = uint8(v)
		}
	}
	return g, nil
}

// Conflicts lists every cell whose digit collides with an earlier cell in
// the same row, column, or box. Empty means the given digits are mutually
// consistent.
func Conflicts(g *domain.Grid) []domain.CellCoord {
	conf := make([]domain.CellCoord, 0, 4)
	var rows, cols, boxes [9]int
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			v := g[r][c]
			if v == 0 {
				continue
			}
			bit := 1 << v
			b := (r/3)*3 + c/3
			if rows[r]&bit != 0 || cols[c]&bit != 0 || boxes[b]&bit != 0 {
				conf = append(conf, domain.CellCoord{Row: r, Col: c})
				continue
			}
			rows[r] |= bit
			cols[c] |= bit
			boxes[b] |= bit
		}
	}
	return conf
}
