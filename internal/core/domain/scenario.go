package domain

import (
	"time"

	"github.com/google/uuid"
)

// Scenario is a named, persisted set of model inputs. Inputs round-trip
// through JSON losslessly, so a stored scenario can be fed straight back
// into a compute call.
type Scenario struct {
	ID        uuid.UUID   `json:"id"`
	Name      string      `json:"name"`
	Inputs    ModelInputs `json:"inputs"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}
