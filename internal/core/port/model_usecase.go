package port

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"gtm-engine/internal/core/domain"
	"gtm-engine/internal/core/engine"
)

// ValidationError carries the structural issues that stopped a computation.
// It is an error value rather than a response field so transports can map
// it to their own failure shape (HTTP 422, exit code, ...).
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return "invalid model inputs: " + strings.Join(e.Issues, "; ")
}

// ValidationReport is the outcome of a validation-only call.
type ValidationReport struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

// Valid reports whether computation may proceed.
func (r ValidationReport) Valid() bool { return len(r.Errors) == 0 }

// ReverseTarget selects which downstream quantity a reverse solve aims at.
type ReverseTarget string

const (
	TargetSales        ReverseTarget = "sales"
	TargetMeetingsHeld ReverseTarget = "meetings_held"
	TargetEBITDA       ReverseTarget = "ebitda"
)

// ReverseRequest is the transport-agnostic input for reverse-engineering.
// Value is the target amount for sales and meetings-held targets; EBITDA
// targets carry their own economics.
type ReverseRequest struct {
	Target ReverseTarget        `json:"target"`
	Value  float64              `json:"value"`
	Rates  engine.FunnelRates   `json:"rates"`
	EBITDA *engine.EBITDATarget `json:"ebitda,omitempty"`
}

// SensitivityRequest asks for elasticities of one metric across all model
// drivers. BumpPct of 0 means the engine default.
type SensitivityRequest struct {
	Inputs  domain.ModelInputs `json:"inputs"`
	Metric  string             `json:"metric"`
	BumpPct float64            `json:"bump_pct"`
}

// CompareRequest holds the two scenarios to diff.
type CompareRequest struct {
	Baseline    domain.ModelInputs `json:"baseline"`
	Alternative domain.ModelInputs `json:"alternative"`
}

// ModelUseCase is the primary port into the modeling core. Computation
// methods are deterministic; only scenario persistence touches I/O.
type ModelUseCase interface {
	// Compute validates inputs and runs the full model. Structural
	// violations return a *ValidationError; warnings are attached to the
	// result.
	Compute(ctx context.Context, in domain.ModelInputs) (*domain.ModelResult, error)

	// Validate reports errors and warnings without computing.
	Validate(in domain.ModelInputs) ValidationReport

	// Reverse solves required upstream volumes for a downstream target.
	Reverse(req ReverseRequest) (*domain.ReverseResult, error)

	// Sensitivity computes per-driver elasticities for a named metric.
	// Unknown metric names return a *ValidationError.
	Sensitivity(req SensitivityRequest) (map[string]*float64, error)

	// Compare diffs the standard metric set between two scenarios.
	Compare(req CompareRequest) (map[string]domain.MetricDelta, error)

	// SaveScenario validates and persists a named input set.
	SaveScenario(ctx context.Context, name string, in domain.ModelInputs) (*domain.Scenario, error)
	// ListScenarios returns all stored scenarios.
	ListScenarios(ctx context.Context) ([]domain.Scenario, error)
	// GetScenario returns a stored scenario, ErrScenarioNotFound when absent.
	GetScenario(ctx context.Context, id uuid.UUID) (*domain.Scenario, error)
	// DeleteScenario removes a stored scenario.
	DeleteScenario(ctx context.Context, id uuid.UUID) error
}
