package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	LookupUC    *inventory.LookupUseCase
	AdjustUC    *inventory.AdjustUseCase
	TransferUC  *inventory.TransferUseCase
	ChangesUC   *inventory.ChangeLogUseCase
	TokenUC     *auth.TokenUseCase
	AuthEnabled bool
	Log         *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	inv := api.Group("/inventory")
	if deps.AuthEnabled {
		inv.Use(APITokenMiddleware(deps.TokenUC))
	}

	handler := NewInventoryHandler(deps.LookupUC, deps.AdjustUC, deps.TransferUC, deps.ChangesUC, deps.Log)
	inv.Get("/by-sku", handler.GetBySKU)
	inv.Post("/transfer", handler.Transfer)
	inv.Post("/adjust", handler.Adjust)
	inv.Get("/changes", handler.ListChanges)
}
