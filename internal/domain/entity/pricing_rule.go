package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// PricingRule regla de margen sobre el precio base de un producto.
// Aplica cuando coinciden proveedor preferido y categoría (y SKU si se indica).
// Priority menor = se aplica antes; los márgenes se componen secuencialmente.
type PricingRule struct {
	ID               string
	Name             string
	Supplier         string // nombre del proveedor a emparejar
	Category         string
	ProductSKU       string // vacío = aplica a toda la categoría/proveedor
	MarkupPercentage decimal.Decimal
	Priority         int
	IsActive         bool
	CreatedAt        time.Time
	LastModified     time.Time
}

// AppliedRule regla efectivamente aplicada durante el cálculo de un precio.
type AppliedRule struct {
	RuleID           string
	RuleName         string
	MarkupPercentage decimal.Decimal
	Priority         int
}

// PricedProduct resultado del motor de precios para un producto maestro.
type PricedProduct struct {
	SKU               string
	Name              string
	BasePrice         decimal.Decimal
	FinalPrice        decimal.Decimal
	AppliedRules      []AppliedRule
	PreferredSupplier string
	Margin            decimal.Decimal
	MarginPercentage  decimal.Decimal
}
