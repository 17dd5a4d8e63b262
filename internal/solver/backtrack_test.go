package solver

import (
	"testing"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
)

// The classic published puzzle (0 = empty) and its unique solution.
var sample = domain.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

var sampleSolution = domain.Grid{
	{5, 3, 4, 6, 7, 8, 9, 1, 2},
	{6, 7, 2, 1, 9, 5, 3, 4, 8},
	{1, 9, 8, 3, 4, 2, 5, 6, 7},
	{8, 5, 9, 7, 6, 1, 4, 2, 3},
	{4, 2, 6, 8, 5, 3, 7, 9, 1},
	{7, 1, 3, 9, 2, 4, 8, 5, 6},
	{9, 6, 1, 5, 3, 7, 2, 8, 4},
	{2, 8, 7, 4, 1, 9, 6, 3, 5},
	{3, 4, 5, 2, 8, 6, 1, 7, 9},
}

func TestSolveClassicPuzzle(t *testing.T) {
	g := sample
	if !ValidatePuzzle(&g) {
		t.Fatal("ValidatePuzzle rejected a well-formed puzzle")
	}
	if !Solve(&g) {
		t.Fatal("Solve failed on a solvable puzzle")
	}
	if g != sampleSolution {
		t.Fatalf("wrong solution:\n%v", g)
	}
	if _, _, ok := FindEmpty(&g); ok {
		t.Fatal("FindEmpty reported an empty cell on a solved grid")
	}
}

func TestSolvedGridSatisfiesAllConstraints(t *testing.T) {
	g := sample
	if !Solve(&g) {
		t.Fatal("Solve failed")
	}
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			d := g[r][c]
			if d < 1 || d > 9 {
				t.Fatalf("cell (%d,%d) out of range: %d", r, c, d)
			}
			if !IsValid(&g, r, c, d) {
				t.Fatalf("cell (%d,%d)=%d conflicts in solved grid", r, c, d)
			}
		}
	}
}

func TestSolveIdempotentOnSolvedGrid(t *testing.T) {
	g := sampleSolution
	if !Solve(&g) {
		t.Fatal("Solve failed on an already-solved grid")
	}
	if g != sampleSolution {
		t.Fatal("Solve mutated an already-solved grid")
	}
}

func TestSolveRestoresGridOnFailure(t *testing.T) {
	// (0,8) has no candidate: 1-8 are taken by its row, 9 by its box.
	// Conflict-free, but unsolvable.
	var g domain.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = uint8(c + 1)
	}
	g[1][8] = 9
	if !ValidatePuzzle(&g) {
		t.Fatal("puzzle should be conflict-free")
	}
	before := g
	if Solve(&g) {
		t.Fatal("Solve succeeded on an unsolvable puzzle")
	}
	if g != before {
		t.Fatalf("grid not restored after failed solve:\n%v", g)
	}
}

func TestValidatePuzzle(t *testing.T) {
	tests := []struct {
		name string
		grid domain.Grid
		want bool
	}{
		{"empty grid", domain.Grid{}, true},
		{"partial valid", sample, true},
		{"complete solution", sampleSolution, true},
		{
			name: "duplicate in row",
			grid: domain.Grid{{5, 0, 0, 0, 5, 0, 0, 0, 0}},
			want: false,
		},
		{
			name: "duplicate in column",
			grid: domain.Grid{{7}, {}, {}, {}, {7}},
			want: false,
		},
		{
			name: "duplicate in box",
			grid: domain.Grid{{3, 0, 0}, {0, 0, 3}},
			want: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := tt.grid
			if got := ValidatePuzzle(&g); got != tt.want {
				t.Errorf("ValidatePuzzle() = %v, want %v", got, tt.want)
			}
			if g != tt.grid {
				t.Error("ValidatePuzzle mutated the grid")
			}
		})
	}
}

func TestIsValidBoxBoundary(t *testing.T) {
	// The box of (4,7) spans rows 3-5 and columns 6-8.
	var g domain.Grid
	g[3][6] = 2
	if IsValid(&g, 4, 7, 2) {
		t.Error("conflict at (3,6) not detected for cell (4,7)")
	}
	g[3][6] = 0
	g[5][8] = 2
	if IsValid(&g, 4, 7, 2) {
		t.Error("conflict at (5,8) not detected for cell (4,7)")
	}
	g[5][8] = 0
	// (2,6) and (5,5) sit outside the box and share no row or column
	// with (4,7).
	g[2][6] = 2
	g[5][5] = 2
	if !IsValid(&g, 4, 7, 2) {
		t.Error("cells outside row 4, column 7, and box (3,6) must not conflict")
	}
}

func TestIsValidIgnoresTargetCell(t *testing.T) {
	g := sampleSolution
	// Every filled cell must validate against its own current digit; the
	// scan skips the cell under test rather than detecting it as its own
	// duplicate.
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if !IsValid(&g, r, c, g[r][c]) {
				t.Fatalf("cell (%d,%d) detected itself as a conflict", r, c)
			}
		}
	}
}

func TestFindEmptyRowMajorOrder(t *testing.T) {
	var g domain.Grid
	if r, c, ok := FindEmpty(&g); !ok || r != 0 || c != 0 {
		t.Fatalf("FindEmpty(empty) = (%d,%d,%v), want (0,0,true)", r, c, ok)
	}
	g = sampleSolution
	g[2][5] = 0
	g[6][1] = 0
	if r, c, ok := FindEmpty(&g); !ok || r != 2 || c != 5 {
		t.Fatalf("FindEmpty = (%d,%d,%v), want (2,5,true)", r, c, ok)
	}
}

func TestSolveOnConflictedGridDoesNotPanic(t *testing.T) {
	// Callers gate on ValidatePuzzle first; a conflicted grid passed
	// anyway must not crash.
	var g domain.Grid
	g[0][0], g[0][4] = 5, 5
	if ValidatePuzzle(&g) {
		t.Fatal("ValidatePuzzle accepted a conflicted grid")
	}
	Solve(&g)
}
