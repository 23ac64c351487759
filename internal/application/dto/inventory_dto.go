package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SupplierStockDTO desglose de stock por proveedor.
type SupplierStockDTO struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Stock        int             `json:"stock"`
	Price        decimal.Decimal `json:"price"`
	LastSync     time.Time       `json:"last_sync"`
}

// InventoryItemResponse salida de un registro de inventario.
type InventoryItemResponse struct {
	SKU               string             `json:"sku"`
	ProductName       string             `json:"product_name"`
	Category          string             `json:"category"`
	StockQuantity     int                `json:"stock_quantity"`
	Allocated         int                `json:"allocated"`
	Available         int                `json:"available"`
	ReorderLevel      int                `json:"reorder_level"`
	Warehouse         string             `json:"warehouse"`
	SupplierBreakdown []SupplierStockDTO `json:"supplier_breakdown"`
	LastUpdated       time.Time          `json:"last_updated"`
}

// AdjustStockRequest entrada para un ajuste manual de stock. La cantidad lleva
// el signo: positiva para entrada, negativa para salida.
type AdjustStockRequest struct {
	Quantity int    `json:"quantity" validate:"required"`
	Reason   string `json:"reason" validate:"required"`
}

// StockAdjustmentResponse salida de un ajuste del historial.
type StockAdjustmentResponse struct {
	SKU       string    `json:"sku"`
	Quantity  int       `json:"quantity"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}

// FromInventoryItem mapea la entidad a su DTO de salida.
func FromInventoryItem(item *entity.InventoryItem) *InventoryItemResponse {
	if item == nil {
		return nil
	}
	breakdown := make([]SupplierStockDTO, 0, len(item.SupplierBreakdown))
	for _, s := range item.SupplierBreakdown {
		breakdown = append(breakdown, SupplierStockDTO{
			SupplierID:   s.SupplierID,
			SupplierName: s.SupplierName,
			Stock:        s.Stock,
			Price:        s.Price,
			LastSync:     s.LastSync,
		})
	}
	return &InventoryItemResponse{
		SKU:               item.SKU,
		ProductName:       item.ProductName,
		Category:          item.Category,
		StockQuantity:     item.StockQuantity,
		Allocated:         item.Allocated,
		Available:         item.Available,
		ReorderLevel:      item.ReorderLevel,
		Warehouse:         item.Warehouse,
		SupplierBreakdown: breakdown,
		LastUpdated:       item.LastUpdated,
	}
}

// FromAdjustment mapea un ajuste del historial a su DTO.
func FromAdjustment(adj entity.StockAdjustment) StockAdjustmentResponse {
	return StockAdjustmentResponse{
		SKU:       adj.SKU,
		Quantity:  adj.Quantity,
		Reason:    adj.Reason,
		Timestamp: adj.Timestamp,
	}
}
