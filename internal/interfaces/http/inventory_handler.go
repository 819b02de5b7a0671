package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/dto"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/domain"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// InventoryHandler maneja las peticiones HTTP de consulta y mutación de stock.
type InventoryHandler struct {
	lookupUC   *inventory.LookupUseCase
	adjustUC   *inventory.AdjustUseCase
	transferUC *inventory.TransferUseCase
	changesUC  *inventory.ChangeLogUseCase
	log        *logger.Logger
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	lookupUC *inventory.LookupUseCase,
	adjustUC *inventory.AdjustUseCase,
	transferUC *inventory.TransferUseCase,
	changesUC *inventory.ChangeLogUseCase,
	log *logger.Logger,
) *InventoryHandler {
	return &InventoryHandler{
		lookupUC:   lookupUC,
		adjustUC:   adjustUC,
		transferUC: transferUC,
		changesUC:  changesUC,
		log:        log,
	}
}

// GetBySKU godoc
// @Summary      Tabla de variantes con stock por SKU
// @Tags         inventory
// @Produce      json
// @Param        sku           query  string  true   "SKU del producto"
// @Param        warehouse_id  query  string  false  "Id de bodega (excluyente con store_id)"
// @Param        store_id      query  string  false  "Id de tienda (excluyente con warehouse_id)"
// @Success      200  {object}  dto.BySKUResponse
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/inventory/by-sku [get]
func (h *InventoryHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Query("sku")
	warehouseID := c.Query("warehouse_id")
	storeID := c.Query("store_id")

	if sku == "" {
		return fail(c, fiber.StatusBadRequest, "Missing SKU parameter", "sku parameter is required")
	}
	if warehouseID == "" && storeID == "" {
		return fail(c, fiber.StatusBadRequest, "Missing location parameter", "warehouse_id or store_id is required")
	}
	if warehouseID != "" && storeID != "" {
		return fail(c, fiber.StatusBadRequest, "Ambiguous location", "provide exactly one of warehouse_id or store_id")
	}

	resp, err := h.lookupUC.GetBySKU(c.Context(), sku, warehouseID, storeID)
	if err != nil {
		return h.failFromError(c, err, "Failed to get inventory by SKU")
	}

	h.log.Info().
		Str("sku", sku).
		Str("location", resp.LocationName).
		Int("variants", resp.TotalVariants).
		Msg("consulta de inventario por SKU")
	return c.JSON(resp)
}

// Transfer godoc
// @Summary      Traslado de stock bodega → tienda
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.TransferRequest  true  "barcode, source_warehouse_id, destination_store_id, quantity"
// @Success      200  {object}  dto.TransferResponse
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/inventory/transfer [post]
func (h *InventoryHandler) Transfer(c *fiber.Ctx) error {
	var in dto.TransferRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON", "Request body must be valid JSON")
	}
	if in.Barcode == "" {
		return fail(c, fiber.StatusBadRequest, "Missing barcode", "barcode is required")
	}
	if in.SourceWarehouseID == "" {
		return fail(c, fiber.StatusBadRequest, "Missing source_warehouse_id", "source_warehouse_id is required")
	}
	if in.DestinationStoreID == "" {
		return fail(c, fiber.StatusBadRequest, "Missing destination_store_id", "destination_store_id is required")
	}
	if in.Quantity == nil || !in.Quantity.GreaterThan(decimal.Zero) {
		return fail(c, fiber.StatusBadRequest, "Invalid quantity", "quantity must be greater than 0")
	}

	result, err := h.transferUC.Transfer(c.Context(), inventory.TransferInput{
		Barcode:            in.Barcode,
		SourceWarehouseID:  in.SourceWarehouseID,
		DestinationStoreID: in.DestinationStoreID,
		Quantity:           *in.Quantity,
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{
				Success: false,
				Error:   "Insufficient stock",
				Message: fmt.Sprintf("Available quantity (%s) is less than requested (%s)",
					insufficient.Available, insufficient.Requested),
				AvailableQuantity: &insufficient.Available,
				RequestedQuantity: &insufficient.Requested,
			})
		}
		return h.failFromError(c, err, "Failed to transfer inventory")
	}

	h.log.Info().
		Str("barcode", result.Barcode).
		Str("movement", result.MovementName).
		Str("source", result.Source).
		Str("destination", result.Destination).
		Str("quantity", result.Quantity.String()).
		Msg("traslado de inventario completado")
	return c.JSON(dto.TransferResponse{
		Success:     true,
		Message:     "Inventory transfer completed",
		PickingID:   result.MovementID,
		PickingName: result.MovementName,
		Product:     result.Product,
		Barcode:     result.Barcode,
		Quantity:    result.Quantity,
		Source:      result.Source,
		Destination: result.Destination,
	})
}

// Adjust godoc
// @Summary      Ajuste de stock (set/add/subtract) en bodega
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustRequest  true  "barcode, warehouse_id, operation, quantity"
// @Success      200  {object}  dto.AdjustResponse
// @Failure      400  {object}  dto.FailureResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/inventory/adjust [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustRequest
	if err := c.BodyParser(&in); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid JSON", "Request body must be valid JSON")
	}
	if in.Barcode == "" {
		return fail(c, fiber.StatusBadRequest, "Missing barcode", "barcode is required")
	}
	if in.WarehouseID == "" {
		return fail(c, fiber.StatusBadRequest, "Missing warehouse_id", "warehouse_id is required")
	}
	operation, err := inventory.ParseOperation(in.Operation)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid operation", `operation must be "set", "add", or "subtract"`)
	}
	if in.Quantity == nil {
		return fail(c, fiber.StatusBadRequest, "Missing quantity", "quantity is required")
	}

	result, err := h.adjustUC.Adjust(c.Context(), inventory.AdjustInput{
		Barcode:     in.Barcode,
		WarehouseID: in.WarehouseID,
		Operation:   operation,
		Quantity:    *in.Quantity,
	})
	if err != nil {
		var insufficient *domain.InsufficientStockError
		if errors.As(err, &insufficient) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.FailureResponse{
				Success: false,
				Error:   "Insufficient stock",
				Message: fmt.Sprintf("Cannot subtract %s from current quantity %s",
					insufficient.Requested, insufficient.Available),
				CurrentQuantity:   &insufficient.Available,
				RequestedSubtract: &insufficient.Requested,
			})
		}
		return h.failFromError(c, err, "Failed to adjust inventory")
	}

	h.log.Info().
		Str("barcode", result.Barcode).
		Str("operation", result.Operation.String()).
		Str("warehouse", result.Warehouse).
		Str("previous", result.PreviousQuantity.String()).
		Str("new", result.NewQuantity.String()).
		Msg("ajuste de inventario completado")
	return c.JSON(dto.AdjustResponse{
		Success:          true,
		Message:          "Inventory adjustment completed",
		Product:          result.Product,
		Barcode:          result.Barcode,
		Operation:        result.Operation.String(),
		Quantity:         result.Quantity,
		PreviousQuantity: result.PreviousQuantity,
		NewQuantity:      result.NewQuantity,
		Warehouse:        result.Warehouse,
	})
}

// ListChanges godoc
// @Summary      Bitácora de cambios de stock
// @Tags         inventory
// @Produce      json
// @Param        barcode       query  string  false  "Filtrar por código de barras"
// @Param        warehouse_id  query  string  false  "Filtrar por bodega"
// @Param        limit         query  int     false  "Máximo de entradas (default 20)"
// @Param        offset        query  int     false  "Desplazamiento"
// @Success      200  {object}  dto.StockChangeListResponse
// @Failure      404  {object}  dto.FailureResponse
// @Router       /api/inventory/changes [get]
func (h *InventoryHandler) ListChanges(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid pagination", "limit/offset must be integers")
	}
	resp, err := h.changesUC.List(c.Context(), c.Query("barcode"), c.Query("warehouse_id"), page)
	if err != nil {
		return h.failFromError(c, err, "Failed to list stock changes")
	}
	return c.JSON(resp)
}

// fail responde el envelope de error con la categoría y el mensaje dados.
func fail(c *fiber.Ctx, status int, errCode, message string) error {
	return c.Status(status).JSON(dto.FailureResponse{Success: false, Error: errCode, Message: message})
}

// failFromError mapea errores de dominio al envelope y status HTTP.
// Conflictos y fallos del colaborador se loguean con detalle y se reportan genéricos.
func (h *InventoryHandler) failFromError(c *fiber.Ctx, err error, genericMessage string) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return fail(c, fiber.StatusNotFound, "Product not found", "No product found with that SKU")
	case errors.Is(err, domain.ErrVariantNotFound):
		return fail(c, fiber.StatusNotFound, "Product not found", "No product found with that barcode")
	case errors.Is(err, domain.ErrLocationNotFound):
		return fail(c, fiber.StatusNotFound, "Location not found", "No warehouse or store found with that id")
	case errors.Is(err, domain.ErrNoVariants):
		return fail(c, fiber.StatusNotFound, "No variants", "The product has no variants")
	case errors.Is(err, domain.ErrAmbiguousLocation):
		return fail(c, fiber.StatusBadRequest, "Ambiguous location", "provide exactly one of warehouse_id or store_id")
	case errors.Is(err, domain.ErrInvalidInput):
		return fail(c, fiber.StatusBadRequest, "Invalid input", "missing or malformed parameters")
	case errors.Is(err, domain.ErrConflict):
		h.log.Error().Err(err).Msg("conflicto con el colaborador de stock")
		return fail(c, fiber.StatusInternalServerError, "Conflict", genericMessage)
	default:
		h.log.Error().Err(err).Msg("error inesperado del colaborador de stock")
		return fail(c, fiber.StatusInternalServerError, "Internal error", genericMessage)
	}
}
