package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// StockLevelRepository define el puerto para consultar/actualizar stock por variante+ubicación.
// La ausencia de registro significa stock cero, nunca error.
type StockLevelRepository interface {
	Get(variantID, locationID string) (*entity.StockLevel, error)
	Upsert(level *entity.StockLevel) error
	// GetForUpdate bloquea la fila para update (SELECT FOR UPDATE). Usar dentro de transacción.
	GetForUpdate(variantID, locationID string) (*entity.StockLevel, error)
}
