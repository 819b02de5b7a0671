package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.StockLevelRepository = (*StockLevelRepo)(nil)

// StockLevelRepo implementación de StockLevelRepository sobre PostgreSQL (usable con pool o tx).
type StockLevelRepo struct {
	q Querier
}

// NewStockLevelRepository construye el adaptador de niveles de stock. Pasar pool o tx (Querier).
func NewStockLevelRepository(q Querier) *StockLevelRepo {
	return &StockLevelRepo{q: q}
}

// Get obtiene el nivel de una variante en una ubicación. Sin registro = nivel en cero.
func (r *StockLevelRepo) Get(variantID, locationID string) (*entity.StockLevel, error) {
	query := `
		SELECT variant_id, location_id, on_hand, reserved, updated_at
		FROM stock_levels WHERE variant_id = $1 AND location_id = $2`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, variantID, locationID).Scan(
		&s.VariantID, &s.LocationID, &s.OnHand, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroLevel(variantID, locationID), nil
		}
		return nil, fmt.Errorf("get stock level: %w", err)
	}
	return &s, nil
}

// GetForUpdate obtiene el nivel y bloquea la fila (SELECT FOR UPDATE) para serializar
// el check-then-write por (variante, ubicación).
func (r *StockLevelRepo) GetForUpdate(variantID, locationID string) (*entity.StockLevel, error) {
	query := `
		SELECT variant_id, location_id, on_hand, reserved, updated_at
		FROM stock_levels WHERE variant_id = $1 AND location_id = $2
		FOR UPDATE`
	var s entity.StockLevel
	err := r.q.QueryRow(context.Background(), query, variantID, locationID).Scan(
		&s.VariantID, &s.LocationID, &s.OnHand, &s.Reserved, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return zeroLevel(variantID, locationID), nil
		}
		return nil, fmt.Errorf("get stock level for update: %w", err)
	}
	return &s, nil
}

// Upsert inserta o actualiza el nivel (por variante y ubicación). Reserved se escribe
// tal cual viene en el entity; el motor nunca lo modifica.
func (r *StockLevelRepo) Upsert(level *entity.StockLevel) error {
	query := `
		INSERT INTO stock_levels (variant_id, location_id, on_hand, reserved, updated_at)
		VALUES ($1, $2, $3, $4, now())
		ON CONFLICT (variant_id, location_id)
		DO UPDATE SET on_hand = EXCLUDED.on_hand, reserved = EXCLUDED.reserved, updated_at = now()`
	_, err := r.q.Exec(context.Background(), query,
		level.VariantID, level.LocationID, level.OnHand, level.Reserved,
	)
	if err != nil {
		return fmt.Errorf("upsert stock level: %w", err)
	}
	return nil
}

func zeroLevel(variantID, locationID string) *entity.StockLevel {
	return &entity.StockLevel{
		VariantID:  variantID,
		LocationID: locationID,
		OnHand:     decimal.Zero,
		Reserved:   decimal.Zero,
	}
}
