package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"gtm-engine/internal/core/domain"
)

// ErrDuplicateName is returned when saving a scenario whose name is taken.
var ErrDuplicateName = errors.New("scenario name already exists")

// ErrScenarioNotFound is returned for lookups and deletes of unknown ids.
var ErrScenarioNotFound = errors.New("scenario not found")

// ScenarioRepository defines persistence for named scenarios. It is an
// outbound port in hexagonal architecture; implementations must be safe for
// concurrent use.
type ScenarioRepository interface {
	// Save stores a new scenario. Name collisions return ErrDuplicateName.
	Save(ctx context.Context, s domain.Scenario) error
	// List returns all scenarios ordered by creation time.
	List(ctx context.Context) ([]domain.Scenario, error)
	// Get returns a scenario by id, or nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.Scenario, error)
	// Delete removes a scenario. Unknown ids return ErrScenarioNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
}
