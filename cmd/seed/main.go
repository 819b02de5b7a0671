// seed puebla la base con un catálogo de demostración (producto con variantes,
// bodega, tienda y niveles de stock iniciales) y emite un token de API.
//
// Uso: go run ./cmd/seed
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/Bodega-api/internal/application/auth"
	"github.com/jhoicas/Bodega-api/internal/domain/entity"
	"github.com/jhoicas/Bodega-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Bodega-api/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cargar configuración: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "conexión a PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	now := time.Now()
	productID := uuid.New().String()
	warehouseID := uuid.New().String()
	storeID := uuid.New().String()

	_, err = pool.Exec(ctx,
		`INSERT INTO products (id, sku, name, created_at, updated_at) VALUES ($1, $2, $3, $4, $4)`,
		productID, "CAM-001", "Camiseta básica", now,
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "insertar producto: %v\n", err)
		os.Exit(1)
	}

	variants := []entity.Variant{
		{ID: uuid.New().String(), ProductID: productID, Barcode: "7701234500011", Color: "Negro", Size: "S", DisplayName: "Camiseta básica (Negro, S)"},
		{ID: uuid.New().String(), ProductID: productID, Barcode: "7701234500028", Color: "Negro", Size: "M", DisplayName: "Camiseta básica (Negro, M)"},
		{ID: uuid.New().String(), ProductID: productID, Barcode: "7701234500035", Color: "Blanco", Size: "M", DisplayName: "Camiseta básica (Blanco, M)"},
	}
	for _, v := range variants {
		_, err = pool.Exec(ctx,
			`INSERT INTO variants (id, product_id, barcode, color, size, display_name) VALUES ($1, $2, $3, $4, $5, $6)`,
			v.ID, v.ProductID, v.Barcode, v.Color, v.Size, v.DisplayName,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar variante %s: %v\n", v.Barcode, err)
			os.Exit(1)
		}
	}

	locations := []entity.Location{
		{ID: warehouseID, Name: "Bodega Central", Kind: entity.LocationKindWarehouse},
		{ID: storeID, Name: "Tienda Centro", Kind: entity.LocationKindStore},
	}
	for _, l := range locations {
		_, err = pool.Exec(ctx,
			`INSERT INTO locations (id, name, kind) VALUES ($1, $2, $3)`,
			l.ID, l.Name, l.Kind,
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "insertar ubicación %s: %v\n", l.Name, err)
			os.Exit(1)
		}
	}

	stockRepo := postgres.NewStockLevelRepository(pool)
	for _, v := range variants {
		level := &entity.StockLevel{
			VariantID:  v.ID,
			LocationID: warehouseID,
			OnHand:     decimal.NewFromInt(50),
			Reserved:   decimal.Zero,
			UpdatedAt:  now,
		}
		if err := stockRepo.Upsert(level); err != nil {
			fmt.Fprintf(os.Stderr, "insertar stock de %s: %v\n", v.Barcode, err)
			os.Exit(1)
		}
	}

	tokenUC := auth.NewTokenUseCase(postgres.NewAPITokenRepository(pool))
	token, err := tokenUC.Issue(ctx, "seed-demo-client")
	if err != nil {
		fmt.Fprintf(os.Stderr, "emitir token: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Datos de demostración creados:")
	fmt.Printf("  SKU:        CAM-001\n")
	fmt.Printf("  Bodega:     %s\n", warehouseID)
	fmt.Printf("  Tienda:     %s\n", storeID)
	fmt.Printf("  Token API:  %s\n", token.Token)
}
