package inventory_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
)

func newLookupFixture() (*fakeStore, *inventory.LookupUseCase) {
	store := newFakeStore()
	store.addProduct("prod-1", "CAM-001", "Camiseta básica")
	store.addVariant("var-1", "prod-1", "7701234500011", "Negro", "S", "Camiseta básica (Negro, S)")
	store.addVariant("var-2", "prod-1", "7701234500028", "Negro", "M", "Camiseta básica (Negro, M)")
	store.addVariant("var-3", "prod-1", "7701234500035", "Blanco", "M", "Camiseta básica (Blanco, M)")
	store.addLocation("wh-1", "Bodega Central", entity.LocationKindWarehouse)
	store.addLocation("st-1", "Tienda Centro", entity.LocationKindStore)

	resolver := inventory.NewResolver(store, store)
	uc := inventory.NewLookupUseCase(resolver, store)
	return store, uc
}

func TestLookupBySKU(t *testing.T) {
	store, uc := newLookupFixture()
	store.setLevel("var-1", "wh-1", 50, 5)
	store.setLevel("var-2", "wh-1", 12, 0)
	// var-3 sin nivel: debe salir con cero

	resp, err := uc.GetBySKU(context.Background(), "CAM-001", "wh-1", "")
	require.NoError(t, err)

	assert.True(t, resp.Success)
	assert.Equal(t, "CAM-001", resp.SKU)
	assert.Equal(t, "Camiseta básica", resp.ProductName)
	assert.Equal(t, "wh-1", resp.LocationID)
	assert.Equal(t, "Bodega Central", resp.LocationName)
	assert.Equal(t, 3, resp.TotalVariants)
	require.Len(t, resp.Variants, 3)

	first := resp.Variants[0]
	assert.Equal(t, "7701234500011", first.Barcode)
	assert.Equal(t, "Negro", first.Color)
	assert.Equal(t, "S", first.Size)
	assert.True(t, first.Quantity.Equal(decimal.NewFromInt(50)))
	assert.True(t, first.AvailableQuantity.Equal(decimal.NewFromInt(45)))

	third := resp.Variants[2]
	assert.True(t, third.Quantity.IsZero())
	assert.True(t, third.AvailableQuantity.IsZero())
}

func TestLookupPorTienda(t *testing.T) {
	store, uc := newLookupFixture()
	store.setLevel("var-1", "st-1", 4, 0)

	resp, err := uc.GetBySKU(context.Background(), "CAM-001", "", "st-1")
	require.NoError(t, err)
	assert.Equal(t, "st-1", resp.LocationID)
	assert.Equal(t, "Tienda Centro", resp.LocationName)
	assert.True(t, resp.Variants[0].Quantity.Equal(decimal.NewFromInt(4)))
}

func TestLookupUbicacionAmbigua(t *testing.T) {
	store, uc := newLookupFixture()
	ctx := context.Background()

	// ambos selectores
	_, err := uc.GetBySKU(ctx, "CAM-001", "wh-1", "st-1")
	assert.ErrorIs(t, err, domain.ErrAmbiguousLocation)

	// ninguno
	_, err = uc.GetBySKU(ctx, "CAM-001", "", "")
	assert.ErrorIs(t, err, domain.ErrAmbiguousLocation)

	// la ambigüedad se decide antes de tocar el almacén de stock
	assert.Zero(t, store.stockReads)
}

func TestLookupProductoNoEncontrado(t *testing.T) {
	_, uc := newLookupFixture()

	_, err := uc.GetBySKU(context.Background(), "NOPE-999", "wh-1", "")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLookupSKUDistingueMayusculas(t *testing.T) {
	_, uc := newLookupFixture()

	_, err := uc.GetBySKU(context.Background(), "cam-001", "wh-1", "")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestLookupProductoSinVariantes(t *testing.T) {
	store, uc := newLookupFixture()
	store.addProduct("prod-2", "VACIO-001", "Producto sin variantes")

	_, err := uc.GetBySKU(context.Background(), "VACIO-001", "wh-1", "")
	assert.ErrorIs(t, err, domain.ErrNoVariants)
}

func TestLookupUbicacionNoEncontrada(t *testing.T) {
	_, uc := newLookupFixture()
	ctx := context.Background()

	_, err := uc.GetBySKU(ctx, "CAM-001", "wh-404", "")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)

	// id de tienda en el selector de bodega: los tipos no se cruzan
	_, err = uc.GetBySKU(ctx, "CAM-001", "st-1", "")
	assert.ErrorIs(t, err, domain.ErrLocationNotFound)
}

func TestLookupSKUVacio(t *testing.T) {
	_, uc := newLookupFixture()

	_, err := uc.GetBySKU(context.Background(), "", "wh-1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
