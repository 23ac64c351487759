package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// InventoryItem registro de inventario de un producto maestro (uno por SKU).
// Invariante tras cada mutación: Available == StockQuantity - Allocated.
type InventoryItem struct {
	SKU               string
	ProductName       string
	Category          string
	StockQuantity     int
	Allocated         int
	Available         int
	ReorderLevel      int
	Warehouse         string
	SupplierBreakdown []SupplierStock
	LastUpdated       time.Time
}

// SupplierStock desglose de stock/precio por proveedor dentro de un InventoryItem.
type SupplierStock struct {
	SupplierID   string
	SupplierName string
	Stock        int
	Price        decimal.Decimal
	LastSync     time.Time
}

// StockAdjustment ajuste manual u operativo de stock, con cantidad con signo.
// Se conserva como historial append-only.
type StockAdjustment struct {
	SKU       string
	Quantity  int // positivo = entrada, negativo = salida
	Reason    string
	Timestamp time.Time
}
