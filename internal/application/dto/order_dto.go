package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// OrderItemRequest línea de una orden a crear. El precio unitario lo entrega
// el llamador (la UI toma el precio calculado por el motor de precios).
type OrderItemRequest struct {
	SKU         string          `json:"sku" validate:"required"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity" validate:"required,min=1"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// CreatePurchaseOrderRequest entrada para crear una orden de compra.
type CreatePurchaseOrderRequest struct {
	SupplierID   string             `json:"supplier_id" validate:"required"`
	SupplierName string             `json:"supplier_name"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1"`
	Notes        string             `json:"notes"`
}

// CreateSalesOrderRequest entrada para crear una orden de venta.
type CreateSalesOrderRequest struct {
	CustomerID   string             `json:"customer_id" validate:"required"`
	CustomerName string             `json:"customer_name"`
	Items        []OrderItemRequest `json:"items" validate:"required,min=1"`
	Notes        string             `json:"notes"`
}

// UpdateOrderStatusRequest entrada para una transición de estado.
type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// OrderItemResponse línea de una orden.
type OrderItemResponse struct {
	SKU         string          `json:"sku"`
	ProductName string          `json:"product_name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	SupplierID  string          `json:"supplier_id,omitempty"`
}

// OrderResponse salida de una orden.
type OrderResponse struct {
	OrderNumber  string              `json:"order_number"`
	Kind         string              `json:"kind"`
	Counterparty string              `json:"counterparty"`
	PartyName    string              `json:"party_name"`
	Status       string              `json:"status"`
	Items        []OrderItemResponse `json:"items"`
	TotalValue   decimal.Decimal     `json:"total_value"`
	Notes        string              `json:"notes,omitempty"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}

// FromOrder mapea la entidad a su DTO de salida.
func FromOrder(o *entity.Order) *OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, OrderItemResponse{
			SKU:         it.SKU,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.TotalPrice,
			SupplierID:  it.SupplierID,
		})
	}
	return &OrderResponse{
		OrderNumber:  o.OrderNumber,
		Kind:         o.Kind,
		Counterparty: o.Counterparty,
		PartyName:    o.PartyName,
		Status:       o.Status,
		Items:        items,
		TotalValue:   o.TotalValue,
		Notes:        o.Notes,
		CreatedAt:    o.CreatedAt,
		UpdatedAt:    o.UpdatedAt,
	}
}
