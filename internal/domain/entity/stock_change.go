package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de cambio de stock para la bitácora.
const (
	ChangeTypeTransfer       = "transfer"
	ChangeTypeAdjustSet      = "adjust_set"
	ChangeTypeAdjustAdd      = "adjust_add"
	ChangeTypeAdjustSubtract = "adjust_subtract"
)

// Direcciones de un cambio de stock.
const (
	DirectionIncrease = "increase"
	DirectionDecrease = "decrease"
	DirectionNeutral  = "neutral"
)

// StockChange es una entrada inmutable de la bitácora de cambios de stock.
// Se escribe en la misma transacción que la mutación que describe.
type StockChange struct {
	ID              string
	VariantID       string
	LocationID      string
	FromLocationID  string // solo traslados
	ToLocationID    string // solo traslados
	ChangeType      string
	Direction       string
	OnHandBefore    decimal.Decimal
	OnHandAfter     decimal.Decimal
	AvailableBefore decimal.Decimal
	AvailableAfter  decimal.Decimal
	Ref             string // referencia: nombre de movimiento o barcode
	Note            string
	CreatedAt       time.Time
}

// ComputeDirection deriva la dirección a partir de los deltas de on_hand/available.
func (c *StockChange) ComputeDirection() string {
	deltaOnHand := c.OnHandAfter.Sub(c.OnHandBefore)
	deltaAvailable := c.AvailableAfter.Sub(c.AvailableBefore)
	switch {
	case deltaOnHand.IsPositive() || deltaAvailable.IsPositive():
		return DirectionIncrease
	case deltaOnHand.IsNegative() || deltaAvailable.IsNegative():
		return DirectionDecrease
	default:
		return DirectionNeutral
	}
}
