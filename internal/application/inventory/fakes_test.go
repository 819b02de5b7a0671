package inventory_test

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// fakeStore implementa en memoria los puertos de catálogo, ubicaciones, stock,
// traslados y bitácora, más el TxRunner. Run restaura el estado si fn falla,
// emulando el rollback de la transacción real.
type fakeStore struct {
	products   map[string]*entity.Product // por SKU
	variants   map[string]*entity.Variant // por barcode
	byProduct  map[string][]*entity.Variant
	locations  map[string]*entity.Location // por id
	levels     map[string]*entity.StockLevel
	movements  []*entity.Movement
	changes    []*entity.StockChange
	refSeq     int64
	stockReads int // llamadas de lectura de stock (Get/GetForUpdate)
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products:  map[string]*entity.Product{},
		variants:  map[string]*entity.Variant{},
		byProduct: map[string][]*entity.Variant{},
		locations: map[string]*entity.Location{},
		levels:    map[string]*entity.StockLevel{},
	}
}

func levelKey(variantID, locationID string) string { return variantID + "|" + locationID }

func (f *fakeStore) addProduct(id, sku, name string) *entity.Product {
	p := &entity.Product{ID: id, SKU: sku, Name: name}
	f.products[sku] = p
	return p
}

func (f *fakeStore) addVariant(id, productID, barcode, color, size, name string) *entity.Variant {
	v := &entity.Variant{ID: id, ProductID: productID, Barcode: barcode, Color: color, Size: size, DisplayName: name}
	f.variants[barcode] = v
	f.byProduct[productID] = append(f.byProduct[productID], v)
	return v
}

func (f *fakeStore) addLocation(id, name, kind string) *entity.Location {
	l := &entity.Location{ID: id, Name: name, Kind: kind}
	f.locations[id] = l
	return l
}

func (f *fakeStore) setLevel(variantID, locationID string, onHand, reserved int64) {
	f.levels[levelKey(variantID, locationID)] = &entity.StockLevel{
		VariantID:  variantID,
		LocationID: locationID,
		OnHand:     decimal.NewFromInt(onHand),
		Reserved:   decimal.NewFromInt(reserved),
	}
}

func (f *fakeStore) onHand(variantID, locationID string) decimal.Decimal {
	if l, ok := f.levels[levelKey(variantID, locationID)]; ok {
		return l.OnHand
	}
	return decimal.Zero
}

// CatalogRepository

func (f *fakeStore) GetProductBySKU(sku string) (*entity.Product, error) {
	return f.products[sku], nil
}

func (f *fakeStore) GetVariantByBarcode(barcode string) (*entity.Variant, error) {
	return f.variants[barcode], nil
}

func (f *fakeStore) ListVariantsByProduct(productID string) ([]*entity.Variant, error) {
	return f.byProduct[productID], nil
}

// LocationRepository

func (f *fakeStore) GetByIDAndKind(id, kind string) (*entity.Location, error) {
	l, ok := f.locations[id]
	if !ok || l.Kind != kind {
		return nil, nil
	}
	return l, nil
}

// StockLevelRepository (las lecturas devuelven copia, como el adaptador real)

func (f *fakeStore) Get(variantID, locationID string) (*entity.StockLevel, error) {
	f.stockReads++
	if l, ok := f.levels[levelKey(variantID, locationID)]; ok {
		cp := *l
		return &cp, nil
	}
	return &entity.StockLevel{VariantID: variantID, LocationID: locationID, OnHand: decimal.Zero, Reserved: decimal.Zero}, nil
}

func (f *fakeStore) GetForUpdate(variantID, locationID string) (*entity.StockLevel, error) {
	return f.Get(variantID, locationID)
}

func (f *fakeStore) Upsert(level *entity.StockLevel) error {
	cp := *level
	f.levels[levelKey(level.VariantID, level.LocationID)] = &cp
	return nil
}

// MovementRepository

func (f *fakeStore) Create(movement *entity.Movement) error {
	cp := *movement
	f.movements = append(f.movements, &cp)
	return nil
}

func (f *fakeStore) GetByID(id string) (*entity.Movement, error) {
	for _, m := range f.movements {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (f *fakeStore) NextReference() (string, error) {
	f.refSeq++
	return fmt.Sprintf("TRF/%05d", f.refSeq), nil
}

// changeRepo separado para no chocar con Create de MovementRepository.
type fakeChangeRepo struct{ store *fakeStore }

func (r *fakeChangeRepo) Create(change *entity.StockChange) error {
	cp := *change
	r.store.changes = append(r.store.changes, &cp)
	return nil
}

func (r *fakeChangeRepo) List(variantID, locationID string, limit, offset int) ([]*entity.StockChange, error) {
	var out []*entity.StockChange
	for i := len(r.store.changes) - 1; i >= 0; i-- {
		c := r.store.changes[i]
		if variantID != "" && c.VariantID != variantID {
			continue
		}
		if locationID != "" && c.LocationID != locationID {
			continue
		}
		out = append(out, c)
	}
	if offset < len(out) {
		out = out[offset:]
	} else {
		out = nil
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// TxRunner: ejecuta fn sobre el propio fake y restaura el estado si falla.
type fakeTxRunner struct{ store *fakeStore }

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	stockRepo repository.StockLevelRepository,
	movementRepo repository.MovementRepository,
	changeRepo repository.StockChangeRepository,
) error) error {
	snapshot := map[string]*entity.StockLevel{}
	for k, v := range r.store.levels {
		cp := *v
		snapshot[k] = &cp
	}
	movCount := len(r.store.movements)
	chCount := len(r.store.changes)
	seq := r.store.refSeq

	if err := fn(r.store, r.store, &fakeChangeRepo{store: r.store}); err != nil {
		r.store.levels = snapshot
		r.store.movements = r.store.movements[:movCount]
		r.store.changes = r.store.changes[:chCount]
		r.store.refSeq = seq
		return err
	}
	return nil
}
