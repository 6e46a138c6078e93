package ports

import (
	"context"
	"time"

	"svw.info/diagsudoku/internal/domain"
)

// Stats captures performance characteristics of an operation.
type Stats struct {
	Nodes    int
	Duration time.Duration
}

// Solver reduces a board to a solution and can test uniqueness. Solve also
// returns the assignment trace recorded along the way.
type Solver interface {
	Solve(ctx context.Context, g domain.Values) (domain.Values, *domain.Trace, Stats, error)
	Unique(ctx context.Context, g domain.Values) (bool, Stats, error)
}

// Generator creates new puzzles at a target difficulty.
type Generator interface {
	Generate(ctx context.Context, seed int64, difficulty domain.Difficulty) (*domain.Puzzle, Stats, error)
}

// Validator performs fast duplicate checks across all constraint units.
type Validator interface {
	Validate(ctx context.Context, g domain.Values) (ok bool, conflicts []domain.Cell, err error)
}

// Hinter returns the next logical step up to a max strategy tier.
type Hinter interface {
	Hint(ctx context.Context, g domain.Values, max domain.StrategyTier) (domain.Hint, bool, error)
}

// TraceStore persists and retrieves solve traces as JSON.
type TraceStore interface {
	Save(ctx context.Context, t *domain.TraceRecord) error
	Load(ctx context.Context, id string) (*domain.TraceRecord, error)
	List(ctx context.Context) ([]domain.TraceMeta, error)
}
