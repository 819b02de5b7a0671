package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockLevel representa el stock de una variante en una ubicación.
// Única entidad mutable del núcleo; invariante: OnHand >= 0 y Reserved >= 0.
// Available se deriva, nunca se escribe.
type StockLevel struct {
	VariantID  string
	LocationID string
	OnHand     decimal.Decimal
	Reserved   decimal.Decimal
	UpdatedAt  time.Time
}

// Available devuelve la cantidad elegible para nuevos movimientos de salida.
func (s *StockLevel) Available() decimal.Decimal {
	return s.OnHand.Sub(s.Reserved)
}
