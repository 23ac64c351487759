package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// InventoryHandler maneja las peticiones HTTP del libro de inventario.
type InventoryHandler struct {
	uc *inventory.UseCase
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(uc *inventory.UseCase) *InventoryHandler {
	return &InventoryHandler{uc: uc}
}

// List devuelve todos los registros de inventario.
// GET /api/inventory
func (h *InventoryHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.AllItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *dto.FromInventoryItem(item))
	}
	return c.JSON(out)
}

// LowStock devuelve los registros con disponible bajo el punto de reorden.
// GET /api/inventory/low-stock
func (h *InventoryHandler) LowStock(c *fiber.Ctx) error {
	items, err := h.uc.LowStockItems()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.InventoryItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, *dto.FromInventoryItem(item))
	}
	return c.JSON(out)
}

// GetBySKU devuelve el registro de inventario de un SKU.
// GET /api/inventory/:sku
func (h *InventoryHandler) GetBySKU(c *fiber.Ctx) error {
	sku := c.Params("sku")
	item, err := h.uc.ItemBySKU(sku)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInventoryItem(item))
}

// Adjust aplica un ajuste manual de stock (cantidad con signo).
// POST /api/inventory/:sku/adjustments
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	// Copia el parámetro: AdjustStock lo retiene en el historial y la cadena
	// de fiber referencia el búfer de la petición, que se reutiliza.
	sku := utils.CopyString(c.Params("sku"))
	var in dto.AdjustStockRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Quantity == 0 || in.Reason == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "quantity y reason son requeridos"})
	}
	if err := h.uc.AdjustStock(sku, in.Quantity, in.Reason); err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "producto no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	item, err := h.uc.ItemBySKU(sku)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromInventoryItem(item))
}

// Adjustments devuelve el historial de ajustes, opcionalmente por SKU.
// GET /api/inventory/adjustments?sku=
func (h *InventoryHandler) Adjustments(c *fiber.Ctx) error {
	sku := c.Query("sku")
	history, err := h.uc.Adjustments(sku)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.StockAdjustmentResponse, 0, len(history))
	for _, adj := range history {
		out = append(out, dto.FromAdjustment(adj))
	}
	return c.JSON(out)
}
