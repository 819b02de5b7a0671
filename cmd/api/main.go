package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/application/inventory"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	httpRouter "github.com/jhoicas/Bodega-api/internal/interfaces/http"
	"github.com/jhoicas/Bodega-api/pkg/config"
	"github.com/jhoicas/Bodega-api/pkg/logger"
)

func main() {
	// Las cantidades viajan como números JSON, no como strings
	decimal.MarshalJSONWithoutQuotes = true

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	catalogRepo := postgres.NewCatalogRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	stockRepo := postgres.NewStockLevelRepository(pool)
	changeRepo := postgres.NewStockChangeRepository(pool)
	tokenRepo := postgres.NewAPITokenRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	resolver := inventory.NewResolver(catalogRepo, locationRepo)
	lookupUC := inventory.NewLookupUseCase(resolver, stockRepo)
	adjustUC := inventory.NewAdjustUseCase(txRunner, resolver)
	transferUC := inventory.NewTransferUseCase(txRunner, resolver)
	changesUC := inventory.NewChangeLogUseCase(resolver, changeRepo)
	tokenUC := auth.NewTokenUseCase(tokenRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// CORS permisivo: la API la consumen apps externas (POS, app móvil)
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, PUT, DELETE, OPTIONS",
		AllowHeaders: "Content-Type, Authorization, X-Requested-With",
		MaxAge:       3600,
	}))

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Bodega API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		LookupUC:    lookupUC,
		AdjustUC:    adjustUC,
		TransferUC:  transferUC,
		ChangesUC:   changesUC,
		TokenUC:     tokenUC,
		AuthEnabled: cfg.Auth.Enabled,
		Log:         log,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
