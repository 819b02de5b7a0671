package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación de solo lectura de ubicaciones sobre PostgreSQL.
type LocationRepo struct {
	q Querier
}

// NewLocationRepository construye el adaptador de ubicaciones. Pasar pool o tx (Querier).
func NewLocationRepository(q Querier) *LocationRepo {
	return &LocationRepo{q: q}
}

// GetByIDAndKind obtiene una ubicación por id y tipo (WAREHOUSE/STORE).
func (r *LocationRepo) GetByIDAndKind(id, kind string) (*entity.Location, error) {
	query := `
		SELECT id, name, kind
		FROM locations WHERE id = $1 AND kind = $2`
	var l entity.Location
	err := r.q.QueryRow(context.Background(), query, id, kind).Scan(&l.ID, &l.Name, &l.Kind)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return &l, nil
}
