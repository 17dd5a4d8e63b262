// Package solver implements exhaustive backtracking search for 9x9 Sudoku.
//
// The three operations are total boolean functions over structurally valid
// grids (9x9, values 0-9); shape and range checking is the caller's job and
// is not repeated here.
package solver

import "github.com/renitt0/Sudoku-Solver/internal/domain"

// IsValid reports whether digit d may occupy (row, col) without violating
// row, column, or box uniqueness. The target cell is excluded from its own
// scan, so the check holds whether the cell is currently empty or already
// contains d.
func IsValid(g *domain.Grid, row, col int, d uint8) bool {
	for i := 0; i < 9; i++ {
		if i != col && g[row][i] == d {
			return false
		}
		if i != row && g[i][col] == d {
			return false
		}
	}
	br, bc := (row/3)*3, (col/3)*3
	for r := br; r < br+3; r++ {
		for c := bc; c < bc+3; c++ {
			if (r != row || c != col) && g[r][c] == d {
				return false
			}
		}
	}
	return true
}

// FindEmpty scans row-major for the first empty cell.
func FindEmpty(g *domain.Grid) (int, int, bool) {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				return r, c, true
			}
		}
	}
	return 0, 0, false
}

// ValidatePuzzle reports whether the pre-filled digits are mutually
// consistent. It says nothing about solvability: a conflict-free grid may
// still have no solution. The grid is not mutated.
func ValidatePuzzle(g *domain.Grid) bool {
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if d := g[r][c]; d != 0 && !IsValid(g, r, c, d) {
				return false
			}
		}
	}
	return true
}

// Solve fills g in place by recursive backtracking: find the first empty
// cell, try digits 1 through 9 in order, recurse on each valid placement,
// and undo the placement when the recursion fails. It returns on the first
// solution found and makes no attempt to enumerate others.
//
// On failure every trial placement has been undone, leaving g identical to
// its state at the call.
func Solve(g *domain.Grid) bool {
	r, c, ok := FindEmpty(g)
	if !ok {
		return true
	}
	for d := uint8(1); d <= 9; d++ {
		if !IsValid(g, r, c, d) {
			continue
		}
		g[r][c] = d
		if Solve(g) {
			return true
		}
		g[r][c] = 0 // backtrack
	}
	return false
}
