package inventory

import (
	"context"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// LookupUseCase arma la tabla de variantes con stock para la consulta por SKU.
// Solo lectura: resuelve identidades y consulta niveles, nunca muta.
type LookupUseCase struct {
	resolver  *Resolver
	stockRepo repository.StockLevelRepository
}

// NewLookupUseCase construye el caso de uso de consulta por SKU.
func NewLookupUseCase(resolver *Resolver, stockRepo repository.StockLevelRepository) *LookupUseCase {
	return &LookupUseCase{resolver: resolver, stockRepo: stockRepo}
}

// GetBySKU resuelve producto, variantes y ubicación, y devuelve la lista ordenada de
// variantes con quantity/available_quantity en esa ubicación. Exactamente uno de
// warehouseID/storeID debe venir informado. La ausencia de nivel de stock significa cero.
func (uc *LookupUseCase) GetBySKU(ctx context.Context, sku, warehouseID, storeID string) (*dto.BySKUResponse, error) {
	if sku == "" {
		return nil, domain.ErrInvalidInput
	}
	location, err := uc.resolver.ResolveLocation(warehouseID, storeID)
	if err != nil {
		return nil, err
	}
	product, variants, err := uc.resolver.ResolveBySKU(sku)
	if err != nil {
		return nil, err
	}

	rows := make([]dto.VariantStockDTO, 0, len(variants))
	for _, v := range variants {
		level, err := uc.stockRepo.Get(v.ID, location.ID)
		if err != nil {
			return nil, err
		}
		rows = append(rows, dto.VariantStockDTO{
			Barcode:           v.Barcode,
			Color:             v.Color,
			Size:              v.Size,
			Quantity:          level.OnHand,
			AvailableQuantity: level.Available(),
			VariantID:         v.ID,
			VariantName:       v.DisplayName,
		})
	}

	return &dto.BySKUResponse{
		Success:       true,
		SKU:           product.SKU,
		ProductName:   product.Name,
		LocationID:    location.ID,
		LocationName:  location.Name,
		Variants:      rows,
		TotalVariants: len(rows),
	}, nil
}
