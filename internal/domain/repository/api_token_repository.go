package repository

import "github.com/jhoicas/Bodega-api/internal/domain/entity"

// APITokenRepository define el puerto de persistencia para tokens de API.
type APITokenRepository interface {
	Create(token *entity.APIToken) error
	// GetActiveByToken busca un token activo por su valor. nil si no existe o está inactivo.
	GetActiveByToken(token string) (*entity.APIToken, error)
	// TouchUsage actualiza last_used y suma uno al contador de uso.
	TouchUsage(id string) error
}
