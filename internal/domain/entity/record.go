package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// NormalizedRecord registro ya normalizado de un feed de proveedor, tal como
// lo entrega el normalizador externo. Es la unidad de ingesta del catálogo:
// el orden dentro de un lote y entre proveedores es irrelevante.
type NormalizedRecord struct {
	SKU          string
	Name         string
	Category     string
	Price        decimal.Decimal
	Stock        int
	SupplierID   string
	SupplierName string
	Status       string
	Timestamp    time.Time
}
