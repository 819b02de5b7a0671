package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Movement representa un traslado de cantidad entre dos ubicaciones,
// creado atómicamente junto con el par decremento/incremento de StockLevel.
// Inmutable una vez creado; nunca se aplica parcialmente.
type Movement struct {
	ID            string
	Name          string // referencia legible, ej. TRF/00042
	VariantID     string
	SourceID      string
	DestinationID string
	Quantity      decimal.Decimal // siempre > 0
	CreatedAt     time.Time
}
