package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de orden.
const (
	OrderKindPurchase = "purchase"
	OrderKindSales    = "sales"
)

// Estados del ciclo de vida de una orden.
const (
	OrderStatusPending    = "pending"
	OrderStatusInProgress = "in_progress"
	OrderStatusCompleted  = "completed"
	OrderStatusCancelled  = "cancelled"
)

// allowedTransitions tabla de transiciones permitidas del ciclo de vida.
// completed y cancelled son terminales.
var allowedTransitions = map[string][]string{
	OrderStatusPending:    {OrderStatusInProgress, OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusInProgress: {OrderStatusCompleted, OrderStatusCancelled},
	OrderStatusCompleted:  {},
	OrderStatusCancelled:  {},
}

// CanTransition indica si el cambio de estado from → to está permitido.
func CanTransition(from, to string) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// ValidStatus indica si s es un estado conocido del ciclo de vida.
func ValidStatus(s string) bool {
	_, ok := allowedTransitions[s]
	return ok
}

// Order orden de compra (a proveedor) o de venta (de cliente). Las órdenes se
// crean una vez, transitan por estados y nunca se eliminan; cada transición
// puede disparar una mutación del inventario.
type Order struct {
	OrderNumber  string
	Kind         string // purchase | sales
	Counterparty string // SupplierID en compras, CustomerID en ventas
	PartyName    string
	Status       string
	Items        []OrderItem
	TotalValue   decimal.Decimal
	Notes        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// OrderItem línea de una orden. SupplierID registra el proveedor de origen:
// en compras el destinatario de la orden, en ventas el proveedor de
// aprovisionamiento resuelto al crear (solo contabilidad).
type OrderItem struct {
	SKU         string
	ProductName string
	Quantity    int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	SupplierID  string
}
