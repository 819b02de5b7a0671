package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.StockChangeRepository = (*StockChangeRepo)(nil)

// StockChangeRepo implementación de la bitácora de cambios sobre PostgreSQL (usable con pool o tx).
type StockChangeRepo struct {
	q Querier
}

// NewStockChangeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockChangeRepository(q Querier) *StockChangeRepo {
	return &StockChangeRepo{q: q}
}

// Create persiste una entrada de bitácora.
func (r *StockChangeRepo) Create(change *entity.StockChange) error {
	if change.ID == "" {
		change.ID = uuid.New().String()
	}
	query := `
		INSERT INTO stock_changes (id, variant_id, location_id, from_location_id, to_location_id,
			change_type, direction, on_hand_before, on_hand_after, available_before, available_after,
			ref, note, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	fromID := nullable(change.FromLocationID)
	toID := nullable(change.ToLocationID)
	_, err := r.q.Exec(context.Background(), query,
		change.ID, change.VariantID, change.LocationID, fromID, toID,
		change.ChangeType, change.Direction, change.OnHandBefore, change.OnHandAfter,
		change.AvailableBefore, change.AvailableAfter, change.Ref, change.Note, change.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create stock change: %w", err)
	}
	return nil
}

// List filtra por variante y/o ubicación (vacío = sin filtro), más reciente primero.
func (r *StockChangeRepo) List(variantID, locationID string, limit, offset int) ([]*entity.StockChange, error) {
	query := `
		SELECT id, variant_id, location_id, from_location_id, to_location_id,
			change_type, direction, on_hand_before, on_hand_after, available_before, available_after,
			ref, note, created_at
		FROM stock_changes WHERE 1=1`
	args := []any{}
	pos := 1
	if variantID != "" {
		query += fmt.Sprintf(" AND variant_id = $%d", pos)
		args = append(args, variantID)
		pos++
	}
	if locationID != "" {
		query += fmt.Sprintf(" AND location_id = $%d", pos)
		args = append(args, locationID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock changes: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockChange
	for rows.Next() {
		var c entity.StockChange
		var fromID, toID *string
		if err := rows.Scan(&c.ID, &c.VariantID, &c.LocationID, &fromID, &toID,
			&c.ChangeType, &c.Direction, &c.OnHandBefore, &c.OnHandAfter,
			&c.AvailableBefore, &c.AvailableAfter, &c.Ref, &c.Note, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan stock change: %w", err)
		}
		if fromID != nil {
			c.FromLocationID = *fromID
		}
		if toID != nil {
			c.ToLocationID = *toID
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
