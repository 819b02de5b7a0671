package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// MovementRepository define el puerto de persistencia para traslados.
type MovementRepository interface {
	Create(movement *entity.Movement) error
	GetByID(id string) (*entity.Movement, error)
	// NextReference reserva la siguiente referencia legible (ej. TRF/00042).
	NextReference() (string, error)
}
