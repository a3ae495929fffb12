package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"gtm-engine/internal/core/domain"
	"gtm-engine/internal/core/port"
)

// uniqueViolation is the PostgreSQL error code for unique constraint hits.
const uniqueViolation = "23505"

// ScenarioRepository implements port.ScenarioRepository using pgxpool.
// Model inputs are stored as a JSONB column holding the exact JSON form of
// domain.ModelInputs, so stored scenarios round-trip losslessly.
type ScenarioRepository struct {
	pool *pgxpool.Pool
}

// NewScenarioRepository returns a new repository instance.
func NewScenarioRepository(pool *pgxpool.Pool) *ScenarioRepository {
	return &ScenarioRepository{pool: pool}
}

// Save inserts a scenario. A name collision maps to port.ErrDuplicateName.
func (r *ScenarioRepository) Save(ctx context.Context, s domain.Scenario) error {
	raw, err := json.Marshal(s.Inputs)
	if err != nil {
		return fmt.Errorf("encode inputs: %w", err)
	}
	_, err = r.pool.Exec(ctx,
		`INSERT INTO scenarios (id, name, inputs, created_at, updated_at) VALUES ($1,$2,$3,$4,$5)`,
		s.ID, s.Name, raw, s.CreatedAt, s.UpdatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return port.ErrDuplicateName
	}
	return err
}

// List returns all scenarios ordered by creation time.
func (r *ScenarioRepository) List(ctx context.Context) ([]domain.Scenario, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, name, inputs, created_at, updated_at FROM scenarios ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Scenario, error) {
		return scanScenario(row)
	})
}

// Get returns a scenario by id, nil when it does not exist.
func (r *ScenarioRepository) Get(ctx context.Context, id uuid.UUID) (*domain.Scenario, error) {
	row, err := r.pool.Query(ctx,
		`SELECT id, name, inputs, created_at, updated_at FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return nil, err
	}
	s, err := pgx.CollectOneRow(row, func(row pgx.CollectableRow) (domain.Scenario, error) {
		return scanScenario(row)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// Delete removes a scenario by id.
func (r *ScenarioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM scenarios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return port.ErrScenarioNotFound
	}
	return nil
}

func scanScenario(row pgx.CollectableRow) (domain.Scenario, error) {
	var (
		s   domain.Scenario
		raw []byte
	)
	if err := row.Scan(&s.ID, &s.Name, &raw, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return s, err
	}
	if err := json.Unmarshal(raw, &s.Inputs); err != nil {
		return s, fmt.Errorf("decode inputs: %w", err)
	}
	return s, nil
}
