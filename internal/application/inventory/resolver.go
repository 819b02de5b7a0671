package inventory

import (
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// Resolver traduce identificadores introducidos por humanos (SKU, código de barras,
// id de bodega/tienda) a identidades del catálogo. Solo lectura, nunca muta.
type Resolver struct {
	catalogRepo  repository.CatalogRepository
	locationRepo repository.LocationRepository
}

// NewResolver construye el resolutor de identidades.
func NewResolver(catalogRepo repository.CatalogRepository, locationRepo repository.LocationRepository) *Resolver {
	return &Resolver{catalogRepo: catalogRepo, locationRepo: locationRepo}
}

// ResolveBySKU busca el producto por SKU exacto y sus variantes.
// Un producto sin variantes es ErrNoVariants, nunca una lista vacía exitosa.
func (r *Resolver) ResolveBySKU(sku string) (*entity.Product, []*entity.Variant, error) {
	product, err := r.catalogRepo.GetProductBySKU(sku)
	if err != nil {
		return nil, nil, err
	}
	if product == nil {
		return nil, nil, domain.ErrProductNotFound
	}
	variants, err := r.catalogRepo.ListVariantsByProduct(product.ID)
	if err != nil {
		return nil, nil, err
	}
	if len(variants) == 0 {
		return nil, nil, domain.ErrNoVariants
	}
	return product, variants, nil
}

// ResolveByBarcode busca una variante por código de barras.
func (r *Resolver) ResolveByBarcode(barcode string) (*entity.Variant, error) {
	variant, err := r.catalogRepo.GetVariantByBarcode(barcode)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}
	return variant, nil
}

// ResolveLocation resuelve exactamente uno de warehouseID/storeID a su ubicación.
// Ambos o ninguno es ErrAmbiguousLocation; se decide antes de tocar el almacén de stock.
func (r *Resolver) ResolveLocation(warehouseID, storeID string) (*entity.Location, error) {
	if (warehouseID == "") == (storeID == "") {
		return nil, domain.ErrAmbiguousLocation
	}
	if warehouseID != "" {
		return r.ResolveWarehouse(warehouseID)
	}
	return r.ResolveStore(storeID)
}

// ResolveWarehouse resuelve un id de bodega a su ubicación de stock interno.
func (r *Resolver) ResolveWarehouse(warehouseID string) (*entity.Location, error) {
	loc, err := r.locationRepo.GetByIDAndKind(warehouseID, entity.LocationKindWarehouse)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationNotFound
	}
	return loc, nil
}

// ResolveStore resuelve un id de tienda a su ubicación.
func (r *Resolver) ResolveStore(storeID string) (*entity.Location, error) {
	loc, err := r.locationRepo.GetByIDAndKind(storeID, entity.LocationKindStore)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrLocationNotFound
	}
	return loc, nil
}
