package entity

import "time"

// APIToken representa un token opaco para clientes de la API (app móvil, POS).
// El token es único; los inactivos no pueden usarse.
type APIToken struct {
	ID         string
	Name       string // nombre descriptivo del cliente
	Token      string
	Active     bool
	LastUsed   *time.Time
	UsageCount int
	CreatedAt  time.Time
}
