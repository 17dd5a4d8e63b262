package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/renitt0/Sudoku-Solver/internal/domain"
	"github.com/renitt0/Sudoku-Solver/internal/ports"
	"github.com/renitt0/Sudoku-Solver/internal/solver"
)

// ErrConflicts is returned when the submitted digits already violate a
// row, column, or box constraint.
var ErrConflicts = errors.New("invalid puzzle: contains conflicts")

var errNotConfigured = errors.New("usecase dependency not configured")

const (
	defaultLimit = 20
	maxLimit     = 100
)

// Service orchestrates one solve request: gate on puzzle consistency, run
// the timed search, record the outcome.
type Service struct {
	Solver  ports.Solver
	Storage ports.Storage
	Timeout time.Duration
	Log     zerolog.Logger
}

func NewService(s ports.Solver, st ports.Storage, timeout time.Duration, log zerolog.Logger) *Service {
	return &Service{Solver: s, Storage: st, Timeout: timeout, Log: log}
}

// SolveAndRecord validates the given digits, solves the board, and persists
// the attempt. An unsolvable board is a normal outcome and is recorded with
// a null solution; only conflicts, timeouts, and storage failures error.
func (u *Service) SolveAndRecord(ctx context.Context, g domain.Grid) (*domain.Puzzle, ports.Stats, error) {
	if u.Solver == nil || u.Storage == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	if !solver.ValidatePuzzle(&g) {
		solveOutcomes.WithLabelValues("rejected").Inc()
		return nil, ports.Stats{}, ErrConflicts
	}

	solveCtx := ctx
	if u.Timeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(ctx, u.Timeout)
		defer cancel()
	}
	solved, st, err := u.Solver.Solve(solveCtx, g)
	solveDuration.Observe(st.Duration.Seconds())
	if err != nil {
		solveOutcomes.WithLabelValues("timeout").Inc()
		u.Log.Warn().Err(err).Dur("dur", st.Duration).Int("nodes", st.Nodes).Msg("solve aborted")
		return nil, st, err
	}

	p := &domain.Puzzle{
		InitialBoard: g,
		SolvedBoard:  solved,
		Solvability:  domain.SolvabilityNo,
		SolveTimeMs:  st.Duration.Milliseconds(),
		CreatedAt:    time.Now().UTC(),
	}
	if solved != nil {
		p.Solvability = domain.SolvabilityYes
	}
	solveOutcomes.WithLabelValues(p.Solvability.String()).Inc()

	if err := u.Storage.Create(ctx, p); err != nil {
		return nil, st, err
	}
	u.Log.Info().
		Int64("id", p.ID).
		Str("solvable", p.Solvability.String()).
		Int("nodes", st.Nodes).
		Dur("dur", st.Duration).
		Msg("puzzle solved")
	return p, st, nil
}

// Get returns one stored puzzle by ID.
func (u *Service) Get(ctx context.Context, id int64) (*domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	return u.Storage.Get(ctx, id)
}

// History returns stored puzzles, newest first, with offset pagination.
// Limit defaults to 20 and is capped at 100; a negative skip reads from
// the start.
func (u *Service) History(ctx context.Context, skip, limit int) ([]domain.Puzzle, error) {
	if u.Storage == nil {
		return nil, errNotConfigured
	}
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return u.Storage.List(ctx, skip, limit)
}
