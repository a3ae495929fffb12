package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"gtm-engine/internal/core/domain"
	"gtm-engine/internal/core/engine"
	"gtm-engine/internal/core/port"
)

// defaultCacheSize bounds the memoization cache. Dashboard sessions rarely
// touch more than a few dozen distinct input sets.
const defaultCacheSize = 256

// ModelUseCase implements port.ModelUseCase. Computation delegates to the
// pure engine; this layer adds input validation, result memoization and
// scenario persistence.
type ModelUseCase struct {
	repo  port.ScenarioRepository
	cache *computeCache
}

// NewModelUseCase creates a usecase backed by the given scenario repository.
func NewModelUseCase(repo port.ScenarioRepository) *ModelUseCase {
	return &ModelUseCase{repo: repo, cache: newComputeCache(defaultCacheSize)}
}

// Compute validates the inputs and runs the full model, serving repeated
// identical inputs from the cache. Validation warnings are attached to the
// result; validation errors abort with a *port.ValidationError.
func (u *ModelUseCase) Compute(_ context.Context, in domain.ModelInputs) (*domain.ModelResult, error) {
	computeTotal.Inc()
	errs, warns := engine.ValidateInputs(in)
	if len(errs) > 0 {
		return nil, &port.ValidationError{Issues: errs}
	}

	key, err := u.cache.key(in)
	if err != nil {
		return nil, fmt.Errorf("derive cache key: %w", err)
	}
	if res, ok := u.cache.get(key); ok {
		cacheHits.Inc()
		return res, nil
	}
	cacheMisses.Inc()

	res := engine.ComputeModel(in)
	res.Warnings = warns
	u.cache.put(key, &res)
	return &res, nil
}

// Validate reports issues without computing.
func (u *ModelUseCase) Validate(in domain.ModelInputs) port.ValidationReport {
	errs, warns := engine.ValidateInputs(in)
	return port.ValidationReport{Errors: errs, Warnings: warns}
}

// Reverse dispatches to the engine's inverse solvers by target type.
func (u *ModelUseCase) Reverse(req port.ReverseRequest) (*domain.ReverseResult, error) {
	var res domain.ReverseResult
	switch req.Target {
	case port.TargetSales:
		res = engine.ReverseFromSales(req.Value, req.Rates)
	case port.TargetMeetingsHeld:
		res = engine.ReverseFromMeetingsHeld(req.Value, req.Rates)
	case port.TargetEBITDA:
		if req.EBITDA == nil {
			return nil, &port.ValidationError{Issues: []string{"ebitda target requires the ebitda economics block"}}
		}
		res = engine.ReverseFromEBITDA(*req.EBITDA, req.Rates)
	default:
		return nil, &port.ValidationError{Issues: []string{fmt.Sprintf("unknown reverse target %q", req.Target)}}
	}
	return &res, nil
}

// Sensitivity computes elasticities of the named metric across all model
// drivers. Inputs must be structurally valid first: perturbing garbage
// yields misleadingly precise garbage.
func (u *ModelUseCase) Sensitivity(req port.SensitivityRequest) (map[string]*float64, error) {
	if errs, _ := engine.ValidateInputs(req.Inputs); len(errs) > 0 {
		return nil, &port.ValidationError{Issues: errs}
	}
	out, ok := engine.ModelSensitivity(req.Inputs, req.Metric, req.BumpPct)
	if !ok {
		return nil, &port.ValidationError{Issues: []string{fmt.Sprintf("unknown metric %q", req.Metric)}}
	}
	return out, nil
}

// Compare diffs the standard metric set between baseline and alternative.
func (u *ModelUseCase) Compare(req port.CompareRequest) (map[string]domain.MetricDelta, error) {
	for _, in := range []domain.ModelInputs{req.Baseline, req.Alternative} {
		if errs, _ := engine.ValidateInputs(in); len(errs) > 0 {
			return nil, &port.ValidationError{Issues: errs}
		}
	}
	deltas := engine.CompareScenarios(req.Baseline, req.Alternative, func(in domain.ModelInputs) map[string]float64 {
		return engine.ModelMetrics(engine.ComputeModel(in))
	})
	return deltas, nil
}

// SaveScenario validates and persists a named input set.
func (u *ModelUseCase) SaveScenario(ctx context.Context, name string, in domain.ModelInputs) (*domain.Scenario, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, &port.ValidationError{Issues: []string{"scenario name must not be empty"}}
	}
	if errs, _ := engine.ValidateInputs(in); len(errs) > 0 {
		return nil, &port.ValidationError{Issues: errs}
	}
	now := time.Now().UTC()
	s := domain.Scenario{
		ID:        uuid.New(),
		Name:      name,
		Inputs:    in,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.repo.Save(ctx, s); err != nil {
		return nil, err
	}
	return &s, nil
}

// ListScenarios returns all stored scenarios.
func (u *ModelUseCase) ListScenarios(ctx context.Context) ([]domain.Scenario, error) {
	return u.repo.List(ctx)
}

// GetScenario returns one stored scenario.
func (u *ModelUseCase) GetScenario(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	s, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, port.ErrScenarioNotFound
	}
	return s, nil
}

// DeleteScenario removes a stored scenario.
func (u *ModelUseCase) DeleteScenario(ctx context.Context, id uuid.UUID) error {
	return u.repo.Delete(ctx, id)
}
