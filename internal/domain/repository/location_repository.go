package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// LocationRepository define el puerto de lectura de ubicaciones de stock.
type LocationRepository interface {
	// GetByIDAndKind obtiene una ubicación por id y tipo (WAREHOUSE/STORE). nil si no existe.
	GetByIDAndKind(id, kind string) (*entity.Location, error)
}
