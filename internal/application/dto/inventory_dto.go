package dto

import "github.com/shopspring/decimal"

// AdjustRequest body para POST /api/inventory/adjust.
// Operation se parsea a enum cerrado en la frontera HTTP (set/add/subtract).
// Quantity es puntero para distinguir "ausente" de cero (set 0 es válido).
type AdjustRequest struct {
	Barcode     string           `json:"barcode"`
	WarehouseID string           `json:"warehouse_id"`
	Operation   string           `json:"operation"`
	Quantity    *decimal.Decimal `json:"quantity"`
}

// TransferRequest body para POST /api/inventory/transfer.
type TransferRequest struct {
	Barcode            string           `json:"barcode"`
	SourceWarehouseID  string           `json:"source_warehouse_id"`
	DestinationStoreID string           `json:"destination_store_id"`
	Quantity           *decimal.Decimal `json:"quantity"`
}

// VariantStockDTO una fila de la tabla de variantes para la consulta por SKU.
type VariantStockDTO struct {
	Barcode           string          `json:"barcode"`
	Color             string          `json:"color"`
	Size              string          `json:"size"`
	Quantity          decimal.Decimal `json:"quantity"`
	AvailableQuantity decimal.Decimal `json:"available_quantity"`
	VariantID         string          `json:"variant_id"`
	VariantName       string          `json:"variant_name"`
}

// BySKUResponse salida de GET /api/inventory/by-sku.
// Contrato: en éxito variants nunca es vacío (cero variantes es error NoVariants).
type BySKUResponse struct {
	Success       bool              `json:"success"`
	SKU           string            `json:"sku"`
	ProductName   string            `json:"product_name"`
	LocationID    string            `json:"location_id"`
	LocationName  string            `json:"location_name"`
	Variants      []VariantStockDTO `json:"variants"`
	TotalVariants int               `json:"total_variants"`
}

// TransferResponse salida de POST /api/inventory/transfer.
type TransferResponse struct {
	Success     bool            `json:"success"`
	Message     string          `json:"message"`
	PickingID   string          `json:"picking_id"`
	PickingName string          `json:"picking_name"`
	Product     string          `json:"product"`
	Barcode     string          `json:"barcode"`
	Quantity    decimal.Decimal `json:"quantity"`
	Source      string          `json:"source"`
	Destination string          `json:"destination"`
}

// AdjustResponse salida de POST /api/inventory/adjust.
type AdjustResponse struct {
	Success          bool            `json:"success"`
	Message          string          `json:"message"`
	Product          string          `json:"product"`
	Barcode          string          `json:"barcode"`
	Operation        string          `json:"operation"`
	Quantity         decimal.Decimal `json:"quantity"`
	PreviousQuantity decimal.Decimal `json:"previous_quantity"`
	NewQuantity      decimal.Decimal `json:"new_quantity"`
	Warehouse        string          `json:"warehouse"`
}

// StockChangeDTO una entrada de la bitácora de cambios de stock.
type StockChangeDTO struct {
	ID              string          `json:"id"`
	VariantID       string          `json:"variant_id"`
	LocationID      string          `json:"location_id"`
	FromLocationID  string          `json:"from_location_id,omitempty"`
	ToLocationID    string          `json:"to_location_id,omitempty"`
	ChangeType      string          `json:"change_type"`
	Direction       string          `json:"direction"`
	OnHandBefore    decimal.Decimal `json:"on_hand_before"`
	OnHandAfter     decimal.Decimal `json:"on_hand_after"`
	AvailableBefore decimal.Decimal `json:"available_before"`
	AvailableAfter  decimal.Decimal `json:"available_after"`
	Ref             string          `json:"ref,omitempty"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       string          `json:"created_at"`
}

// StockChangeListResponse salida de GET /api/inventory/changes.
type StockChangeListResponse struct {
	Success bool             `json:"success"`
	Total   int              `json:"total"`
	Changes []StockChangeDTO `json:"changes"`
}
