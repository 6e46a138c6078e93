package usecase

import (
	"context"
	"errors"

	"svw.info/diagsudoku/internal/domain"
	"svw.info/diagsudoku/internal/ports"
)

type Service struct {
	Solver    ports.Solver
	Generator ports.Generator
	Validator ports.Validator
	Hinter    ports.Hinter
	Traces    ports.TraceStore
}

func NewService(s ports.Solver, g ports.Generator, v ports.Validator, h ports.Hinter, tr ports.TraceStore) *Service {
	return &Service{Solver: s, Generator: g, Validator: v, Hinter: h, Traces: tr}
}

var errNotConfigured = errors.New("usecase dependency not configured")

func (u *Service) Solve(ctx context.Context, g domain.Values) (domain.Values, *domain.Trace, ports.Stats, error) {
	if u.Solver == nil {
		return nil, nil, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Solve(ctx, g)
}

func (u *Service) Unique(ctx context.Context, g domain.Values) (bool, ports.Stats, error) {
	if u.Solver == nil {
		return false, ports.Stats{}, errNotConfigured
	}
	return u.Solver.Unique(ctx, g)
}

func (u *Service) Generate(ctx context.Context, seed int64, d domain.Difficulty) (*domain.Puzzle, ports.Stats, error) {
	if u.Generator == nil {
		return nil, ports.Stats{}, errNotConfigured
	}
	return u.Generator.Generate(ctx, seed, d)
}

func (u *Service) Validate(ctx context.Context, g domain.Values) (bool, []domain.Cell, error) {
	if u.Validator == nil {
		return false, nil, errNotConfigured
	}
	return u.Validator.Validate(ctx, g)
}

func (u *Service) Hint(ctx context.Context, g domain.Values, max domain.StrategyTier) (domain.Hint, bool, error) {
	if u.Hinter == nil {
		return domain.Hint{}, false, errNotConfigured
	}
	return u.Hinter.Hint(ctx, g, max)
}

// Trace persistence is optional; a nil store is a configuration the caller
// may choose deliberately.
func (u *Service) SaveTrace(ctx context.Context, t *domain.TraceRecord) error {
	if u.Traces == nil {
		return errNotConfigured
	}
	return u.Traces.Save(ctx, t)
}

func (u *Service) LoadTrace(ctx context.Context, id string) (*domain.TraceRecord, error) {
	if u.Traces == nil {
		return nil, errNotConfigured
	}
	return u.Traces.Load(ctx, id)
}

func (u *Service) ListTraces(ctx context.Context) ([]domain.TraceMeta, error) {
	if u.Traces == nil {
		return nil, errNotConfigured
	}
	return u.Traces.List(ctx)
}
