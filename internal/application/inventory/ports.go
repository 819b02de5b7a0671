package inventory

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando repositorios atados a esa tx.
// Garantiza atomicidad para el motor de mutación de stock: el par decremento/incremento de un
// traslado y su Movement se confirman juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		stockRepo repository.StockLevelRepository,
		movementRepo repository.MovementRepository,
		changeRepo repository.StockChangeRepository,
	) error) error
}
