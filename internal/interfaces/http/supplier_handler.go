package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// SupplierHandler maneja proveedores registrados y el disparo manual de
// sincronización.
type SupplierHandler struct {
	uc *syncer.UseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(uc *syncer.UseCase) *SupplierHandler {
	return &SupplierHandler{uc: uc}
}

// Register registra un proveedor en estado pending.
// POST /api/suppliers
func (h *SupplierHandler) Register(c *fiber.Ctx) error {
	var in dto.RegisterSupplierRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	supplier, err := h.uc.RegisterSupplier(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name es requerido"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromSupplier(supplier))
}

// List devuelve los proveedores registrados.
// GET /api/suppliers
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	suppliers, err := h.uc.ListSuppliers()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SupplierResponse, 0, len(suppliers))
	for _, s := range suppliers {
		out = append(out, *dto.FromSupplier(s))
	}
	return c.JSON(out)
}

// GetByID devuelve un proveedor registrado.
// GET /api/suppliers/:id
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	supplier, err := h.uc.SupplierByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrSupplierNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "proveedor no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromSupplier(supplier))
}

// Sync dispara una sincronización completa de todos los proveedores. Los
// fallos por proveedor viajan en el resultado, nunca tumban la operación.
// POST /api/suppliers/sync
func (h *SupplierHandler) Sync(c *fiber.Ctx) error {
	results, err := h.uc.SyncAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.SupplierSyncResultResponse, 0, len(results))
	for _, r := range results {
		out = append(out, dto.SupplierSyncResultResponse{
			SupplierID:   r.SupplierID,
			SupplierName: r.SupplierName,
			Status:       r.Status,
			Merged:       r.Merged,
			Skipped:      r.Skipped,
			Error:        r.Error,
		})
	}
	return c.JSON(out)
}
