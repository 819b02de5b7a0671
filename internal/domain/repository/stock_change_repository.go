package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// StockChangeRepository define el puerto de la bitácora de cambios de stock.
type StockChangeRepository interface {
	Create(change *entity.StockChange) error
	// List filtra por variante y/o ubicación (vacío = sin filtro), ordenado por fecha descendente.
	List(variantID, locationID string, limit, offset int) ([]*entity.StockChange, error)
}
