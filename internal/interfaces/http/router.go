package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/orders"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CatalogUC   *catalog.MergeUseCase
	PricingUC   *pricing.UseCase
	InventoryUC *inventory.UseCase
	OrdersUC    *orders.UseCase
	SyncerUC    *syncer.UseCase
}

// Router registra las rutas de la API. Las rutas estáticas van antes que las
// de parámetro para que fiber no las capture como :sku/:number.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Catálogo unificado (solo lectura) + precios
	products := api.Group("/products")
	productHandler := NewProductHandler(deps.CatalogUC, deps.PricingUC)
	products.Get("/prices", productHandler.ListPrices)
	products.Get("/", productHandler.List)
	products.Get("/:sku", productHandler.GetBySKU)
	products.Get("/:sku/price", productHandler.GetPrice)

	// Reglas de margen
	rules := api.Group("/pricing/rules")
	pricingHandler := NewPricingHandler(deps.PricingUC)
	rules.Post("/", pricingHandler.Create)
	rules.Get("/", pricingHandler.List)
	rules.Get("/:id", pricingHandler.GetByID)
	rules.Put("/:id", pricingHandler.Update)
	rules.Delete("/:id", pricingHandler.Delete)

	// Inventario
	inv := api.Group("/inventory")
	inventoryHandler := NewInventoryHandler(deps.InventoryUC)
	inv.Get("/low-stock", inventoryHandler.LowStock)
	inv.Get("/adjustments", inventoryHandler.Adjustments)
	inv.Get("/", inventoryHandler.List)
	inv.Get("/:sku", inventoryHandler.GetBySKU)
	inv.Post("/:sku/adjustments", inventoryHandler.Adjust)

	// Órdenes
	ord := api.Group("/orders")
	orderHandler := NewOrderHandler(deps.OrdersUC)
	ord.Post("/purchase", orderHandler.CreatePurchase)
	ord.Post("/sales", orderHandler.CreateSales)
	ord.Get("/", orderHandler.List)
	ord.Get("/:number", orderHandler.GetByNumber)
	ord.Patch("/:number/status", orderHandler.UpdateStatus)

	// Proveedores y sincronización
	sup := api.Group("/suppliers")
	supplierHandler := NewSupplierHandler(deps.SyncerUC)
	sup.Post("/sync", supplierHandler.Sync)
	sup.Post("/", supplierHandler.Register)
	sup.Get("/", supplierHandler.List)
	sup.Get("/:id", supplierHandler.GetByID)
}
