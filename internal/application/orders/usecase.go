package orders

import (
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// UseCase ciclo de vida de órdenes: crea órdenes de compra y de venta y aplica
// el efecto de inventario que corresponde a cada transición de estado.
//   - compra completada: por línea, AdjustStock(+cantidad) vía el libro.
//   - venta completada: por línea, stock y asignado bajan juntos (ruta directa).
//   - venta cancelada (antes no cancelada): se libera la reserva por línea.
//
// Ninguna otra combinación tiene efecto. Las transiciones se validan contra la
// tabla del ciclo de vida; un salto no permitido devuelve ErrInvalidTransition.
type UseCase struct {
	orderRepo   repository.OrderRepository
	catalogRepo repository.CatalogRepository
	ledger      *inventory.UseCase
	log         *logger.Logger
}

// NewUseCase construye el gestor de órdenes.
func NewUseCase(orderRepo repository.OrderRepository, catalogRepo repository.CatalogRepository, ledger *inventory.UseCase, log *logger.Logger) *UseCase {
	return &UseCase{orderRepo: orderRepo, catalogRepo: catalogRepo, ledger: ledger, log: log}
}

// CreatePurchaseOrder crea una orden de compra a un proveedor. Calcula totales
// de línea y de orden; estado inicial pending. Sin efecto de inventario al
// crear: el stock entra solo cuando la orden se completa.
func (uc *UseCase) CreatePurchaseOrder(in dto.CreatePurchaseOrderRequest) (*entity.Order, error) {
	if in.SupplierID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.OrderItem{
			SKU:         it.SKU,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
			SupplierID:  in.SupplierID,
		})
	}

	order, err := uc.newOrder(entity.OrderKindPurchase, in.SupplierID, in.SupplierName, items, in.Notes)
	if err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", order.OrderNumber).Str("supplier", in.SupplierName).Msg("orden de compra creada")
	return order, nil
}

// CreateSalesOrder crea una orden de venta de un cliente. Para cada línea se
// resuelve el proveedor de aprovisionamiento (variante preferida, si no la
// primera) solo para contabilidad, y la reserva de inventario ocurre
// inmediatamente al crear: allocated += cantidad, available -= cantidad.
// No se verifica que el disponible quede no negativo; la sobre-asignación se
// permite y se registra en el log.
func (uc *UseCase) CreateSalesOrder(in dto.CreateSalesOrderRequest) (*entity.Order, error) {
	if in.CustomerID == "" || len(in.Items) == 0 {
		return nil, domain.ErrInvalidInput
	}
	items := make([]entity.OrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, entity.OrderItem{
			SKU:         it.SKU,
			ProductName: it.ProductName,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			TotalPrice:  it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Quantity))),
			SupplierID:  uc.sourcingSupplier(it.SKU),
		})
	}

	order, err := uc.newOrder(entity.OrderKindSales, in.CustomerID, in.CustomerName, items, in.Notes)
	if err != nil {
		return nil, err
	}

	for _, it := range order.Items {
		uc.warnOverAllocation(order.OrderNumber, it)
		if err := uc.ledger.Reserve(it.SKU, it.Quantity); err != nil {
			return nil, fmt.Errorf("reservar %s: %w", it.SKU, err)
		}
	}
	uc.log.Info().Str("order", order.OrderNumber).Str("customer", in.CustomerName).Msg("orden de venta creada")
	return order, nil
}

// UpdateOrderStatus registra el estado anterior, valida la transición contra
// la tabla del ciclo de vida y aplica exactamente el efecto de inventario que
// corresponde a (tipo, nuevo estado, estado anterior).
func (uc *UseCase) UpdateOrderStatus(number, newStatus string) (*entity.Order, error) {
	if !entity.ValidStatus(newStatus) {
		return nil, domain.ErrInvalidInput
	}
	order, err := uc.orderRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	if order.Kind != entity.OrderKindPurchase && order.Kind != entity.OrderKindSales {
		return nil, domain.ErrInvalidOrderKind
	}
	previous := order.Status
	if !entity.CanTransition(previous, newStatus) {
		return nil, fmt.Errorf("%s → %s: %w", previous, newStatus, domain.ErrInvalidTransition)
	}

	order.Status = newStatus
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("guardar orden %s: %w", number, err)
	}

	if err := uc.applyInventoryEffect(order, previous, newStatus); err != nil {
		return nil, err
	}
	uc.log.Info().Str("order", number).Str("from", previous).Str("to", newStatus).Msg("estado de orden actualizado")
	return order, nil
}

func (uc *UseCase) applyInventoryEffect(order *entity.Order, previous, newStatus string) error {
	switch {
	case order.Kind == entity.OrderKindPurchase && newStatus == entity.OrderStatusCompleted:
		for _, it := range order.Items {
			reason := fmt.Sprintf("recepción orden de compra %s", order.OrderNumber)
			if err := uc.ledger.AdjustStock(it.SKU, it.Quantity, reason); err != nil {
				return fmt.Errorf("recibir %s: %w", it.SKU, err)
			}
		}
	case order.Kind == entity.OrderKindSales && newStatus == entity.OrderStatusCompleted:
		for _, it := range order.Items {
			if err := uc.ledger.Fulfill(it.SKU, it.Quantity); err != nil {
				return fmt.Errorf("despachar %s: %w", it.SKU, err)
			}
		}
	case order.Kind == entity.OrderKindSales && newStatus == entity.OrderStatusCancelled && previous != entity.OrderStatusCancelled:
		for _, it := range order.Items {
			if err := uc.ledger.Release(it.SKU, it.Quantity); err != nil {
				return fmt.Errorf("liberar %s: %w", it.SKU, err)
			}
		}
	}
	return nil
}

// AllOrders devuelve todas las órdenes (solo lectura).
func (uc *UseCase) AllOrders() ([]*entity.Order, error) {
	return uc.orderRepo.List()
}

// OrderByNumber devuelve la orden por número o ErrOrderNotFound.
func (uc *UseCase) OrderByNumber(number string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByNumber(number)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, domain.ErrOrderNotFound
	}
	return order, nil
}

// OrdersByKind devuelve las órdenes del tipo indicado (purchase | sales).
func (uc *UseCase) OrdersByKind(kind string) ([]*entity.Order, error) {
	if kind != entity.OrderKindPurchase && kind != entity.OrderKindSales {
		return nil, domain.ErrInvalidOrderKind
	}
	return uc.orderRepo.ListByKind(kind)
}

func (uc *UseCase) newOrder(kind, counterparty, partyName string, items []entity.OrderItem, notes string) (*entity.Order, error) {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.TotalPrice)
	}
	seq, err := uc.orderRepo.NextSequence()
	if err != nil {
		return nil, err
	}
	prefix := "PO"
	if kind == entity.OrderKindSales {
		prefix = "SO"
	}
	now := time.Now()
	order := &entity.Order{
		OrderNumber:  fmt.Sprintf("%s-%03d", prefix, seq),
		Kind:         kind,
		Counterparty: counterparty,
		PartyName:    partyName,
		Status:       entity.OrderStatusPending,
		Items:        items,
		TotalValue:   total,
		Notes:        notes,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.orderRepo.Save(order); err != nil {
		return nil, fmt.Errorf("guardar orden %s: %w", order.OrderNumber, err)
	}
	return order, nil
}

// sourcingSupplier resuelve el proveedor de aprovisionamiento de una línea de
// venta: la variante preferida del producto, o la primera disponible. Vacío si
// el SKU no está en el catálogo.
func (uc *UseCase) sourcingSupplier(sku string) string {
	product, err := uc.catalogRepo.GetBySKU(sku)
	if err != nil || product == nil {
		return ""
	}
	if v := product.PreferredVariant(); v != nil {
		return v.SupplierID
	}
	return ""
}

// warnOverAllocation deja rastro cuando una reserva va a dejar el disponible
// negativo. La reserva procede de todos modos.
func (uc *UseCase) warnOverAllocation(orderNumber string, it entity.OrderItem) {
	item, err := uc.ledger.ItemBySKU(it.SKU)
	if err != nil || item == nil {
		return
	}
	if item.Available < it.Quantity {
		uc.log.Warn().
			Str("order", orderNumber).
			Str("sku", it.SKU).
			Int("available", item.Available).
			Int("requested", it.Quantity).
			Msg("sobre-asignación: la reserva deja el disponible negativo")
	}
}
