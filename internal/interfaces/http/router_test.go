package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/orders"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Catalogo-api/internal/interfaces/http"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp arma la aplicación completa con adaptadores en memoria y un lote
// estático de un proveedor, igual que el arranque real.
func newTestApp(t *testing.T) (*fiber.App, *feed.StaticSource) {
	t.Helper()

	catRepo := memory.NewCatalogRepository()
	locker := memory.NewKeyMutex()
	log := logger.New(logger.Config{Env: "production", Level: "error"})
	source := feed.NewStaticSource()

	mergeUC := catalog.NewMergeUseCase(catRepo, locker, nil)
	pricingUC := pricing.NewUseCase(memory.NewPricingRuleRepository(), catRepo)
	inventoryUC := inventory.NewUseCase(memory.NewInventoryRepository(), catRepo, locker, inventory.DefaultConfig())
	ordersUC := orders.NewUseCase(memory.NewOrderRepository(), catRepo, inventoryUC, log)
	syncerUC := syncer.NewUseCase(memory.NewSupplierRepository(), mergeUC, inventoryUC, source, log, 5*time.Second)

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CatalogUC:   mergeUC,
		PricingUC:   pricingUC,
		InventoryUC: inventoryUC,
		OrdersUC:    ordersUC,
		SyncerUC:    syncerUC,
	})
	return app, source
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *nethttp.Response {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *nethttp.Response) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

// seedCatalog registra un proveedor con dos productos y sincroniza.
func seedCatalog(t *testing.T, app *fiber.App, source *feed.StaticSource) {
	t.Helper()
	resp := doJSON(t, app, fiber.MethodPost, "/api/suppliers/", dto.RegisterSupplierRequest{Name: "TechCorp", Category: "Electronics"})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	source.SetBatch("TechCorp", []entity.NormalizedRecord{
		{
			SKU: "TC-1001", Name: "Laptop Pro", Category: "Electronics",
			Price: decimal.NewFromInt(100), Stock: 50,
			SupplierID: "sup-1", SupplierName: "TechCorp",
			Status: entity.ProductStatusActive, Timestamp: time.Now(),
		},
		{
			SKU: "TC-1002", Name: "Mouse", Category: "Electronics",
			Price: decimal.NewFromInt(20), Stock: 200,
			SupplierID: "sup-1", SupplierName: "TechCorp",
			Status: entity.ProductStatusActive, Timestamp: time.Now(),
		},
	})

	resp = doJSON(t, app, fiber.MethodPost, "/api/suppliers/sync", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	results := decode[[]dto.SupplierSyncResultResponse](t, resp)
	require.Len(t, results, 1)
	require.Equal(t, entity.SupplierStatusActive, results[0].Status)
}

func TestAPI_CatalogoYPrecios(t *testing.T) {
	app, source := newTestApp(t)
	seedCatalog(t, app, source)

	resp := doJSON(t, app, fiber.MethodGet, "/api/products/", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	list := decode[dto.ProductListResponse](t, resp)
	assert.Equal(t, 2, list.Page.Total)
	assert.Len(t, list.Items, 2)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/TC-1001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	product := decode[dto.ProductResponse](t, resp)
	assert.Equal(t, "Laptop Pro", product.Name)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/NO-EXISTE", nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// Regla de margen del 10% y precio calculado.
	resp = doJSON(t, app, fiber.MethodPost, "/api/pricing/rules/", dto.CreateRuleRequest{
		Name:             "Margen Electronics",
		Supplier:         "TechCorp",
		Category:         "Electronics",
		MarkupPercentage: decimal.NewFromInt(10),
		Priority:         1,
		IsActive:         true,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	rule := decode[dto.RuleResponse](t, resp)
	assert.NotEmpty(t, rule.ID)

	resp = doJSON(t, app, fiber.MethodGet, "/api/products/TC-1001/price", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	priced := decode[dto.PricedProductResponse](t, resp)
	assert.True(t, priced.FinalPrice.Equal(decimal.NewFromInt(110)),
		"100 con 10%% de margen debe dar 110, se obtuvo %s", priced.FinalPrice)
	require.Len(t, priced.AppliedRules, 1)

	// La ruta estática /prices no debe ser capturada por /:sku.
	resp = doJSON(t, app, fiber.MethodGet, "/api/products/prices", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	allPriced := decode[[]dto.PricedProductResponse](t, resp)
	assert.Len(t, allPriced, 2)
}

func TestAPI_InventarioYAjustes(t *testing.T) {
	app, source := newTestApp(t)
	seedCatalog(t, app, source)

	resp := doJSON(t, app, fiber.MethodGet, "/api/inventory/TC-1001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, 50, item.StockQuantity)
	assert.Equal(t, 50, item.Available)

	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/TC-1001/adjustments", dto.AdjustStockRequest{
		Quantity: -5, Reason: "merma",
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	item = decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, 45, item.StockQuantity)

	resp = doJSON(t, app, fiber.MethodGet, "/api/inventory/adjustments?sku=TC-1001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	history := decode[[]dto.StockAdjustmentResponse](t, resp)
	require.Len(t, history, 1)
	assert.Equal(t, -5, history[0].Quantity)

	resp = doJSON(t, app, fiber.MethodPost, "/api/inventory/NO-EXISTE/adjustments", dto.AdjustStockRequest{
		Quantity: 1, Reason: "x",
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestAPI_CicloDeOrdenes(t *testing.T) {
	app, source := newTestApp(t)
	seedCatalog(t, app, source)

	resp := doJSON(t, app, fiber.MethodPost, "/api/orders/sales", dto.CreateSalesOrderRequest{
		CustomerID:   "cust-1",
		CustomerName: "Cliente Uno",
		Items: []dto.OrderItemRequest{{
			SKU: "TC-1001", ProductName: "Laptop Pro", Quantity: 5, UnitPrice: decimal.NewFromInt(110),
		}},
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	order := decode[dto.OrderResponse](t, resp)
	assert.Equal(t, "SO-001", order.OrderNumber)
	assert.Equal(t, entity.OrderStatusPending, order.Status)

	// La reserva ya es visible en el inventario.
	resp = doJSON(t, app, fiber.MethodGet, "/api/inventory/TC-1001", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	item := decode[dto.InventoryItemResponse](t, resp)
	assert.Equal(t, 5, item.Allocated)
	assert.Equal(t, 45, item.Available)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/orders/SO-001/status", dto.UpdateOrderStatusRequest{
		Status: entity.OrderStatusCompleted,
	})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Una transición desde un estado terminal se rechaza con 409.
	resp = doJSON(t, app, fiber.MethodPatch, "/api/orders/SO-001/status", dto.UpdateOrderStatusRequest{
		Status: entity.OrderStatusCancelled,
	})
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	errBody := decode[dto.ErrorResponse](t, resp)
	assert.Equal(t, "INVALID_TRANSITION", errBody.Code)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/orders/SO-001/status", dto.UpdateOrderStatusRequest{
		Status: "shipped",
	})
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodPatch, "/api/orders/PO-999/status", dto.UpdateOrderStatusRequest{
		Status: entity.OrderStatusCompleted,
	})
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = doJSON(t, app, fiber.MethodGet, "/api/orders/?kind=sales", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	ordersList := decode[[]dto.OrderResponse](t, resp)
	require.Len(t, ordersList, 1)
	assert.Equal(t, entity.OrderStatusCompleted, ordersList[0].Status)
}
