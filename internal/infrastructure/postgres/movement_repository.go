package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.MovementRepository = (*MovementRepo)(nil)

// MovementRepo implementación sobre PostgreSQL (usable con pool o tx).
type MovementRepo struct {
	q Querier
}

// NewMovementRepository construye el adaptador. Pasar pool o tx (Querier).
func NewMovementRepository(q Querier) *MovementRepo {
	return &MovementRepo{q: q}
}

// Create persiste un traslado.
func (r *MovementRepo) Create(movement *entity.Movement) error {
	if movement.ID == "" {
		movement.ID = uuid.New().String()
	}
	query := `
		INSERT INTO movements (id, name, variant_id, source_id, destination_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		movement.ID, movement.Name, movement.VariantID, movement.SourceID,
		movement.DestinationID, movement.Quantity, movement.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("create movement: %w", errors.New("referencia duplicada"))
		}
		return fmt.Errorf("create movement: %w", err)
	}
	return nil
}

// GetByID obtiene un traslado por ID.
func (r *MovementRepo) GetByID(id string) (*entity.Movement, error) {
	query := `
		SELECT id, name, variant_id, source_id, destination_id, quantity, created_at
		FROM movements WHERE id = $1`
	var m entity.Movement
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&m.ID, &m.Name, &m.VariantID, &m.SourceID, &m.DestinationID, &m.Quantity, &m.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get movement: %w", err)
	}
	return &m, nil
}

// NextReference reserva la siguiente referencia legible (TRF/00042) desde la secuencia.
func (r *MovementRepo) NextReference() (string, error) {
	var n int64
	err := r.q.QueryRow(context.Background(), `SELECT nextval('movement_ref_seq')`).Scan(&n)
	if err != nil {
		return "", fmt.Errorf("next movement reference: %w", err)
	}
	return fmt.Sprintf("TRF/%05d", n), nil
}
