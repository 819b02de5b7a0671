package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrProductNotFound   = errors.New("producto no encontrado")
	ErrVariantNotFound   = errors.New("variante no encontrada")
	ErrLocationNotFound  = errors.New("ubicación no encontrada")
	ErrNoVariants        = errors.New("el producto no tiene variantes")
	ErrAmbiguousLocation = errors.New("selector de ubicación ambiguo")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// InsufficientStockError lleva el contexto de un rechazo por stock insuficiente:
// cantidad actual/disponible vs. solicitada, para que el llamador pueda corregir la petición.
// Unwrap devuelve ErrInsufficientStock, así errors.Is sigue funcionando.
type InsufficientStockError struct {
	Available decimal.Decimal // on_hand en ajustes; on_hand - reserved en traslados
	Requested decimal.Decimal
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("stock insuficiente: disponible %s, solicitado %s", e.Available, e.Requested)
}

func (e *InsufficientStockError) Unwrap() error { return ErrInsufficientStock }
