package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// CatalogRepository define el puerto de lectura del catálogo (productos y variantes).
// El catálogo es propiedad del colaborador externo; este núcleo nunca lo muta.
type CatalogRepository interface {
	// GetProductBySKU busca por SKU exacto (sensible a mayúsculas). nil si no existe.
	GetProductBySKU(sku string) (*entity.Product, error)
	// GetVariantByBarcode busca una variante por código de barras. nil si no existe.
	GetVariantByBarcode(barcode string) (*entity.Variant, error)
	// ListVariantsByProduct lista las variantes de un producto en orden estable.
	ListVariantsByProduct(productID string) ([]*entity.Variant, error)
}
