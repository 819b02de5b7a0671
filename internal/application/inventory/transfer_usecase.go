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

// TransferUseCase traslada cantidad de una variante de bodega a tienda como una sola
// unidad atómica: decremento en origen, incremento en destino y Movement se confirman
// juntos o ninguno (misma transacción, fila de origen bloqueada).
type TransferUseCase struct {
	txRunner TxRunner
	resolver *Resolver
}

// NewTransferUseCase construye el caso de uso.
func NewTransferUseCase(txRunner TxRunner, resolver *Resolver) *TransferUseCase {
	return &TransferUseCase{txRunner: txRunner, resolver: resolver}
}

// TransferInput entrada para un traslado bodega → tienda.
type TransferInput struct {
	Barcode            string
	SourceWarehouseID  string
	DestinationStoreID string
	Quantity           decimal.Decimal
}

// TransferResult resultado transitorio de un traslado aceptado.
type TransferResult struct {
	MovementID   string
	MovementName string
	Product      string
	Barcode      string
	Quantity     decimal.Decimal
	Source       string
	Destination  string
}

// Transfer valida, resuelve variante y ubicaciones, verifica la cantidad disponible
// (on_hand - reserved) en origen bajo bloqueo y aplica el par decremento/incremento
// junto con el registro de Movement. Si no alcanza el disponible se rechaza con
// InsufficientStockError sin mutar nada.
func (uc *TransferUseCase) Transfer(ctx context.Context, input TransferInput) (*TransferResult, error) {
	if input.Barcode == "" || input.SourceWarehouseID == "" || input.DestinationStoreID == "" {
		return nil, domain.ErrInvalidInput
	}
	if !input.Quantity.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	variant, err := uc.resolver.ResolveByBarcode(input.Barcode)
	if err != nil {
		return nil, err
	}
	source, err := uc.resolver.ResolveWarehouse(input.SourceWarehouseID)
	if err != nil {
		return nil, err
	}
	destination, err := uc.resolver.ResolveStore(input.DestinationStoreID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	var result *TransferResult

	err = uc.txRunner.Run(ctx, func(
		stockRepo repository.StockLevelRepository,
		movementRepo repository.MovementRepository,
		changeRepo repository.StockChangeRepository,
	) error {
		// Bloquea la fila de origen; el destino se crea/actualiza en la misma transacción
		origin, err := stockRepo.GetForUpdate(variant.ID, source.ID)
		if err != nil {
			return err
		}
		available := origin.Available()
		if available.LessThan(input.Quantity) {
			return &domain.InsufficientStockError{Available: available, Requested: input.Quantity}
		}
		dest, err := stockRepo.GetForUpdate(variant.ID, destination.ID)
		if err != nil {
			return err
		}

		originBefore := origin.OnHand
		destBefore := dest.OnHand
		origin.OnHand = origin.OnHand.Sub(input.Quantity)
		dest.OnHand = dest.OnHand.Add(input.Quantity)
		origin.UpdatedAt = now
		dest.UpdatedAt = now
		if err := stockRepo.Upsert(origin); err != nil {
			return err
		}
		if err := stockRepo.Upsert(dest); err != nil {
			return err
		}

		name, err := movementRepo.NextReference()
		if err != nil {
			return err
		}
		movement := &entity.Movement{
			ID:            uuid.New().String(),
			Name:          name,
			VariantID:     variant.ID,
			SourceID:      source.ID,
			DestinationID: destination.ID,
			Quantity:      input.Quantity,
			CreatedAt:     now,
		}
		if err := movementRepo.Create(movement); err != nil {
			return err
		}

		// Bitácora: una entrada por cada lado del traslado
		outChange := &entity.StockChange{
			ID:              uuid.New().String(),
			VariantID:       variant.ID,
			LocationID:      source.ID,
			FromLocationID:  source.ID,
			ToLocationID:    destination.ID,
			ChangeType:      entity.ChangeTypeTransfer,
			OnHandBefore:    originBefore,
			OnHandAfter:     origin.OnHand,
			AvailableBefore: originBefore.Sub(origin.Reserved),
			AvailableAfter:  origin.Available(),
			Ref:             movement.Name,
			CreatedAt:       now,
		}
		outChange.Direction = outChange.ComputeDirection()
		if err := changeRepo.Create(outChange); err != nil {
			return err
		}
		inChange := &entity.StockChange{
			ID:              uuid.New().String(),
			VariantID:       variant.ID,
			LocationID:      destination.ID,
			FromLocationID:  source.ID,
			ToLocationID:    destination.ID,
			ChangeType:      entity.ChangeTypeTransfer,
			OnHandBefore:    destBefore,
			OnHandAfter:     dest.OnHand,
			AvailableBefore: destBefore.Sub(dest.Reserved),
			AvailableAfter:  dest.Available(),
			Ref:             movement.Name,
			CreatedAt:       now,
		}
		inChange.Direction = inChange.ComputeDirection()
		if err := changeRepo.Create(inChange); err != nil {
			return err
		}

		result = &TransferResult{
			MovementID:   movement.ID,
			MovementName: movement.Name,
			Product:      variant.DisplayName,
			Barcode:      variant.Barcode,
			Quantity:     input.Quantity,
			Source:       source.Name,
			Destination:  destination.Name,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
