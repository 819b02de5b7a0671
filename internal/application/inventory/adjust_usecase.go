package inventory

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/domain/repository"
)

// AdjustUseCase aplica ajustes de stock (set/add/subtract) de forma transaccional,
// con bloqueo de fila (SELECT FOR UPDATE) sobre el nivel de la variante en la bodega.
// La validación ocurre completa antes de escribir: el invariante on_hand >= 0
// no puede observarse violado ni transitoriamente.
type AdjustUseCase struct {
	txRunner TxRunner
	resolver *Resolver
}

// NewAdjustUseCase construye el caso de uso.
func NewAdjustUseCase(txRunner TxRunner, resolver *Resolver) *AdjustUseCase {
	return &AdjustUseCase{txRunner: txRunner, resolver: resolver}
}

// AdjustInput entrada para un ajuste de stock. Operation ya viene parseada al enum.
type AdjustInput struct {
	Barcode     string
	WarehouseID string
	Operation   Operation
	Quantity    decimal.Decimal
}

// AdjustResult resultado transitorio de un ajuste aceptado; no se persiste.
type AdjustResult struct {
	Product          string
	Barcode          string
	Operation        Operation
	Quantity         decimal.Decimal
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
	Warehouse        string
}

// Adjust valida, resuelve identidades, lee el nivel actual bajo bloqueo y escribe
// on_hand = nueva cantidad dejando reserved intacto. Un subtract que dejaría el
// on_hand negativo se rechaza con InsufficientStockError sin mutar nada.
func (uc *AdjustUseCase) Adjust(ctx context.Context, input AdjustInput) (*AdjustResult, error) {
	if input.Barcode == "" || input.WarehouseID == "" {
		return nil, domain.ErrInvalidInput
	}
	switch input.Operation {
	case OperationSet:
		// set 0 es válido (no-op); negativo no, el invariante ya lo prohíbe
		if input.Quantity.IsNegative() {
			return nil, domain.ErrInvalidInput
		}
	case OperationAdd, OperationSubtract:
		if !input.Quantity.GreaterThan(decimal.Zero) {
			return nil, domain.ErrInvalidInput
		}
	default:
		return nil, domain.ErrInvalidInput
	}

	variant, err := uc.resolver.ResolveByBarcode(input.Barcode)
	if err != nil {
		return nil, err
	}
	warehouse, err := uc.resolver.ResolveWarehouse(input.WarehouseID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result *AdjustResult

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLevelRepository,
		_ repository.MovementRepository,
		changeRepo repository.StockChangeRepository,
	) error {
		// Bloquea la fila del nivel para serializar el check-then-write por (variante, ubicación)
		level, err := stockRepo.GetForUpdate(variant.ID, warehouse.ID)
		if err != nil {
			return err
		}
		previous := level.OnHand
		availableBefore := level.Available()

		var newQuantity decimal.Decimal
		switch input.Operation {
		case OperationSet:
			newQuantity = input.Quantity
		case OperationAdd:
			newQuantity = previous.Add(input.Quantity)
		case OperationSubtract:
			newQuantity = previous.Sub(input.Quantity)
		}
		if newQuantity.IsNegative() {
			return &domain.InsufficientStockError{Available: previous, Requested: input.Quantity}
		}

		level.OnHand = newQuantity
		level.UpdatedAt = now
		if err := stockRepo.Upsert(level); err != nil {
			return err
		}

		change := &entity.StockChange{
			ID:              uuid.New().String(),
			VariantID:       variant.ID,
			LocationID:      warehouse.ID,
			ChangeType:      input.Operation.ChangeType(),
			OnHandBefore:    previous,
			OnHandAfter:     newQuantity,
			AvailableBefore: availableBefore,
			AvailableAfter:  newQuantity.Sub(level.Reserved),
			Ref:             variant.Barcode,
			CreatedAt:       now,
		}
		change.Direction = change.ComputeDirection()
		if err := changeRepo.Create(change); err != nil {
			return err
		}

		result = &AdjustResult{
			Product:          variant.DisplayName,
			Barcode:          variant.Barcode,
			Operation:        input.Operation,
			Quantity:         input.Quantity,
			PreviousQuantity: previous,
			NewQuantity:      newQuantity,
			Warehouse:        warehouse.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
