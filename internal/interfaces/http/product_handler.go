package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// ProductHandler maneja las peticiones HTTP del catálogo unificado (solo lectura).
type ProductHandler struct {
	catalogUC *catalog.MergeUseCase
	pricingUC *pricing.UseCase
}

// NewProductHandler construye el handler.
func NewProductHandler(catalogUC *catalog.MergeUseCase, pricingUC *pricing.UseCase) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, pricingUC: pricingUC}
}

// List devuelve los productos del catálogo con paginación.
// GET /api/products?limit=&offset=&category=
func (h *ProductHandler) List(c *fiber.Ctx) error {
	page := dto.PageRequest{Limit: c.QueryInt("limit", 0), Offset: c.QueryInt("offset", 0)}
	page.DefaultPage()
	category := c.Query("category")

	all, err := h.catalogUC.AllProducts()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}

	filtered := all[:0:0]
	for _, p := range all {
		if category == "" || p.Category == category {
			filtered = append(filtered, p)
		}
	}
	total := len(filtered)
	start := page.Offset
	if start > total {
		start = total
	}
	end := start + page.Limit
	if end > total {
		end = total
	}

	items := make([]dto.ProductResponse, 0, end-start)
	for _, p := range filtered[start:end] {
		items = append(items, *dto.FromMasterProduct(p))
	}
	return c.JSON(dto.ProductListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	})
}

// GetBySKU devuelve un producto por SKU.
// GET /api/products/:sku
func (h *ProductHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	product, err := h.catalogUC.ProductBySKU(sku)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromMasterProduct(product))
}

// GetPrice devuelve el precio calculado de un producto.
// GET /api/products/:sku/price
func (h *ProductHandler) GetPrice(c *fiber.Ctx) error {
	sku := c.Params("sku")
	priced, err := h.pricingUC.PriceBySKU(sku)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		case errors.Is(err, domain.ErrNoSupplierAvailable):
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "NO_SUPPLIER", Message: "el producto no tiene proveedores disponibles"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromPricedProduct(priced))
}

// ListPrices devuelve los precios calculados de todos los productos activos.
// GET /api/products/prices
func (h *ProductHandler) ListPrices(c *fiber.Ctx) error {
	priced, err := h.pricingUC.PriceAll()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.PricedProductResponse, 0, len(priced))
	for i := range priced {
		out = append(out, *dto.FromPricedProduct(&priced[i]))
	}
	return c.JSON(out)
}
