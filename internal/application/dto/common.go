package dto

import "github.com/shopspring/decimal"

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"min=1,max=100"`
	Offset int `query:"offset" validate:"min=0"`
}

// DefaultPage aplica valores por defecto si Limit/Offset son cero.
func (p *PageRequest) DefaultPage() {
	if p.Limit <= 0 {
		p.Limit = 20
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
}

// FailureResponse envelope de error de la API: success siempre false,
// error con la categoría corta y message con el detalle legible.
// Los campos de contexto de stock solo se incluyen cuando el fallo es de stock.
type FailureResponse struct {
	Success           bool             `json:"success"`
	Error             string           `json:"error"`
	Message           string           `json:"message"`
	AvailableQuantity *decimal.Decimal `json:"available_quantity,omitempty"`
	RequestedQuantity *decimal.Decimal `json:"requested_quantity,omitempty"`
	CurrentQuantity   *decimal.Decimal `json:"current_quantity,omitempty"`
	RequestedSubtract *decimal.Decimal `json:"requested_subtract,omitempty"`
}
