package entity

// Tipos de ubicación de stock.
const (
	LocationKindWarehouse = "WAREHOUSE" // stock interno de bodega
	LocationKindStore     = "STORE"     // punto de venta
)

// Location representa una ubicación de stock: bodega (stock interno) o tienda.
// En un traslado participan dos ubicaciones: origen bodega, destino tienda.
type Location struct {
	ID   string
	Name string
	Kind string
}
