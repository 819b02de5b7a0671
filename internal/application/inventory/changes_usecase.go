package inventory

import (
	"context"
	"time"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// ChangeLogUseCase consulta la bitácora de cambios de stock. Solo lectura.
type ChangeLogUseCase struct {
	resolver   *Resolver
	changeRepo repository.StockChangeRepository
}

// NewChangeLogUseCase construye el caso de uso de consulta de bitácora.
func NewChangeLogUseCase(resolver *Resolver, changeRepo repository.StockChangeRepository) *ChangeLogUseCase {
	return &ChangeLogUseCase{resolver: resolver, changeRepo: changeRepo}
}

// List devuelve las entradas de bitácora, filtrables por código de barras y/o bodega,
// ordenadas de más reciente a más antigua.
func (uc *ChangeLogUseCase) List(ctx context.Context, barcode, warehouseID string, page dto.PageRequest) (*dto.StockChangeListResponse, error) {
	page.DefaultPage()

	variantID := ""
	if barcode != "" {
		variant, err := uc.resolver.ResolveByBarcode(barcode)
		if err != nil {
			return nil, err
		}
		variantID = variant.ID
	}
	locationID := ""
	if warehouseID != "" {
		warehouse, err := uc.resolver.ResolveWarehouse(warehouseID)
		if err != nil {
			return nil, err
		}
		locationID = warehouse.ID
	}

	changes, err := uc.changeRepo.List(variantID, locationID, page.Limit, page.Offset)
	if err != nil {
		return nil, err
	}

	items := make([]dto.StockChangeDTO, 0, len(changes))
	for _, c := range changes {
		items = append(items, dto.StockChangeDTO{
			ID:              c.ID,
			VariantID:       c.VariantID,
			LocationID:      c.LocationID,
			FromLocationID:  c.FromLocationID,
			ToLocationID:    c.ToLocationID,
			ChangeType:      c.ChangeType,
			Direction:       c.Direction,
			OnHandBefore:    c.OnHandBefore,
			OnHandAfter:     c.OnHandAfter,
			AvailableBefore: c.AvailableBefore,
			AvailableAfter:  c.AvailableAfter,
			Ref:             c.Ref,
			Note:            c.Note,
			CreatedAt:       c.CreatedAt.Format(time.RFC3339),
		})
	}
	return &dto.StockChangeListResponse{Success: true, Total: len(items), Changes: items}, nil
}
