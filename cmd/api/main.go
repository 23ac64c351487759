package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/orders"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	httpRouter "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/config"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

func main() {
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

	// Estado en memoria: se pierde al reiniciar (exclusión deliberada).
	catalogRepo := memory.NewCatalogRepository()
	ruleRepo := memory.NewPricingRuleRepository()
	invRepo := memory.NewInventoryRepository()
	orderRepo := memory.NewOrderRepository()
	supplierRepo := memory.NewSupplierRepository()
	locker := memory.NewKeyMutex()

	source := feed.NewStaticSource()

	catalogUC := catalog.NewMergeUseCase(catalogRepo, locker, catalog.FirstSupplierWins)
	pricingUC := pricing.NewUseCase(ruleRepo, catalogRepo)
	inventoryUC := inventory.NewUseCase(invRepo, catalogRepo, locker, inventory.Config{
		Warehouse:     cfg.Sync.Warehouse,
		ReorderFloor:  cfg.Sync.ReorderFloor,
		ReorderFactor: cfg.Sync.ReorderFactor,
	})
	ordersUC := orders.NewUseCase(orderRepo, catalogRepo, inventoryUC, log)
	syncerUC := syncer.NewUseCase(
		supplierRepo, catalogUC, inventoryUC, source, log,
		time.Duration(cfg.Sync.FetchTimeoutSeconds)*time.Second,
	)

	if cfg.App.Env == "development" {
		seedSampleData(syncerUC, pricingUC, source, log)
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		count, _ := catalogUC.ProductCount()
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name, "products": count})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		CatalogUC:   catalogUC,
		PricingUC:   pricingUC,
		InventoryUC: inventoryUC,
		OrdersUC:    ordersUC,
		SyncerUC:    syncerUC,
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
