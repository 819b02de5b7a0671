package entity

import "time"

// Product representa un producto del catálogo, identificado por su SKU.
// El catálogo es propiedad del colaborador externo; este núcleo solo lo lee.
type Product struct {
	ID        string
	SKU       string // referencia interna única
	Name      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Variant representa una configuración vendible/almacenable de un producto
// (combinación color/talla), identificada por código de barras.
// Identidad inmutable; los atributos son de solo lectura para este núcleo.
type Variant struct {
	ID          string
	ProductID   string
	Barcode     string
	Color       string
	Size        string
	DisplayName string
}
