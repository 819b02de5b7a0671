package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación de solo lectura del catálogo sobre PostgreSQL.
type CatalogRepo struct {
	q Querier
}

// NewCatalogRepository construye el adaptador de catálogo. Pasar pool o tx (Querier).
func NewCatalogRepository(q Querier) *CatalogRepo {
	return &CatalogRepo{q: q}
}

// GetProductBySKU busca por SKU exacto (sensible a mayúsculas).
func (r *CatalogRepo) GetProductBySKU(sku string) (*entity.Product, error) {
	query := `
		SELECT id, sku, name, created_at, updated_at
		FROM products WHERE sku = $1`
	var p entity.Product
	err := r.q.QueryRow(context.Background(), query, sku).Scan(
		&p.ID, &p.SKU, &p.Name, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product by sku: %w", err)
	}
	return &p, nil
}

// GetVariantByBarcode busca una variante por código de barras.
func (r *CatalogRepo) GetVariantByBarcode(barcode string) (*entity.Variant, error) {
	query := `
		SELECT id, product_id, barcode, color, size, display_name
		FROM variants WHERE barcode = $1`
	var v entity.Variant
	err := r.q.QueryRow(context.Background(), query, barcode).Scan(
		&v.ID, &v.ProductID, &v.Barcode, &v.Color, &v.Size, &v.DisplayName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variant by barcode: %w", err)
	}
	return &v, nil
}

// ListVariantsByProduct lista las variantes de un producto en orden estable de creación.
func (r *CatalogRepo) ListVariantsByProduct(productID string) ([]*entity.Variant, error) {
	query := `
		SELECT id, product_id, barcode, color, size, display_name
		FROM variants WHERE product_id = $1 ORDER BY id`
	rows, err := r.q.Query(context.Background(), query, productID)
	if err != nil {
		return nil, fmt.Errorf("list variants: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variant
	for rows.Next() {
		var v entity.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Barcode, &v.Color, &v.Size, &v.DisplayName); err != nil {
			return nil, fmt.Errorf("scan variant: %w", err)
		}
		list = append(list, &v)
	}
	return list, rows.Err()
}
