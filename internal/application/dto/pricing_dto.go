package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// CreateRuleRequest entrada para crear una regla de margen.
type CreateRuleRequest struct {
	Name             string          `json:"name" validate:"required"`
	Supplier         string          `json:"supplier" validate:"required"`
	Category         string          `json:"category" validate:"required"`
	ProductSKU       string          `json:"product_sku"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Priority         int             `json:"priority"`
	IsActive         bool            `json:"is_active"`
}

// UpdateRuleRequest entrada para actualizar una regla (campos opcionales).
type UpdateRuleRequest struct {
	Name             *string          `json:"name"`
	Supplier         *string          `json:"supplier"`
	Category         *string          `json:"category"`
	ProductSKU       *string          `json:"product_sku"`
	MarkupPercentage *decimal.Decimal `json:"markup_percentage"`
	Priority         *int             `json:"priority"`
	IsActive         *bool            `json:"is_active"`
}

// RuleResponse salida de una regla de margen.
type RuleResponse struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Supplier         string          `json:"supplier"`
	Category         string          `json:"category"`
	ProductSKU       string          `json:"product_sku,omitempty"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Priority         int             `json:"priority"`
	IsActive         bool            `json:"is_active"`
	CreatedAt        time.Time       `json:"created_at"`
	LastModified     time.Time       `json:"last_modified"`
}

// AppliedRuleDTO regla aplicada durante el cálculo de un precio.
type AppliedRuleDTO struct {
	RuleID           string          `json:"rule_id"`
	RuleName         string          `json:"rule_name"`
	MarkupPercentage decimal.Decimal `json:"markup_percentage"`
	Priority         int             `json:"priority"`
}

// PricedProductResponse salida del motor de precios para un producto.
type PricedProductResponse struct {
	SKU               string           `json:"sku"`
	Name              string           `json:"name"`
	BasePrice         decimal.Decimal  `json:"base_price"`
	FinalPrice        decimal.Decimal  `json:"final_price"`
	AppliedRules      []AppliedRuleDTO `json:"applied_rules"`
	PreferredSupplier string           `json:"preferred_supplier"`
	Margin            decimal.Decimal  `json:"margin"`
	MarginPercentage  decimal.Decimal  `json:"margin_percentage"`
}

// FromRule mapea la entidad a su DTO de salida.
func FromRule(r *entity.PricingRule) *RuleResponse {
	if r == nil {
		return nil
	}
	return &RuleResponse{
		ID:               r.ID,
		Name:             r.Name,
		Supplier:         r.Supplier,
		Category:         r.Category,
		ProductSKU:       r.ProductSKU,
		MarkupPercentage: r.MarkupPercentage,
		Priority:         r.Priority,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
		LastModified:     r.LastModified,
	}
}

// FromPricedProduct mapea el resultado del motor de precios a su DTO.
func FromPricedProduct(p *entity.PricedProduct) *PricedProductResponse {
	if p == nil {
		return nil
	}
	applied := make([]AppliedRuleDTO, 0, len(p.AppliedRules))
	for _, a := range p.AppliedRules {
		applied = append(applied, AppliedRuleDTO{
			RuleID:           a.RuleID,
			RuleName:         a.RuleName,
			MarkupPercentage: a.MarkupPercentage,
			Priority:         a.Priority,
		})
	}
	return &PricedProductResponse{
		SKU:               p.SKU,
		Name:              p.Name,
		BasePrice:         p.BasePrice,
		FinalPrice:        p.FinalPrice,
		AppliedRules:      applied,
		PreferredSupplier: p.PreferredSupplier,
		Margin:            p.Margin,
		MarginPercentage:  p.MarginPercentage,
	}
}
