package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/domain"
)

// PricingHandler maneja las peticiones HTTP de reglas de margen.
type PricingHandler struct {
	uc *pricing.UseCase
}

// NewPricingHandler construye el handler.
func NewPricingHandler(uc *pricing.UseCase) *PricingHandler {
	return &PricingHandler{uc: uc}
}

// Create crea una regla de margen.
// POST /api/pricing/rules
func (h *PricingHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rule, err := h.uc.AddRule(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name, supplier y category son requeridos"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(dto.FromRule(rule))
}

// Update actualiza una regla y refresca su última modificación.
// PUT /api/pricing/rules/:id
func (h *PricingHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateRuleRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	rule, err := h.uc.UpdateRule(id, in)
	if err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromRule(rule))
}

// Delete elimina una regla.
// DELETE /api/pricing/rules/:id
func (h *PricingHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.DeleteRule(id); err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// GetByID devuelve una regla por ID.
// GET /api/pricing/rules/:id
func (h *PricingHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	rule, err := h.uc.GetRule(id)
	if err != nil {
		if errors.Is(err, domain.ErrRuleNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "regla no encontrada"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.FromRule(rule))
}

// List devuelve todas las reglas.
// GET /api/pricing/rules
func (h *PricingHandler) List(c *fiber.Ctx) error {
	rules, err := h.uc.ListRules()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	out := make([]dto.RuleResponse, 0, len(rules))
	for _, r := range rules {
		out = append(out, *dto.FromRule(r))
	}
	return c.JSON(out)
}
