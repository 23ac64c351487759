package inventory

import (
	"fmt"
	"math"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// Config parámetros del libro de inventario.
type Config struct {
	Warehouse     string  // etiqueta de bodega por defecto
	ReorderFloor  int     // mínimo del punto de reorden
	ReorderFactor float64 // fracción del stock inicial para el punto de reorden
}

// DefaultConfig bodega única y punto de reorden max(10, floor(stock*0.2)).
func DefaultConfig() Config {
	return Config{Warehouse: "Main Warehouse", ReorderFloor: 10, ReorderFactor: 0.2}
}

// UseCase libro de inventario: deriva el stock por SKU desde el catálogo y
// aplica las mutaciones operativas (ajustes, reservas, despachos, recepciones).
// Toda mutación se serializa por SKU y mantiene el invariante
// Available == StockQuantity - Allocated.
type UseCase struct {
	invRepo     repository.InventoryRepository
	catalogRepo repository.CatalogRepository
	locker      ports.KeyLocker
	cfg         Config
}

// NewUseCase construye el libro de inventario.
func NewUseCase(invRepo repository.InventoryRepository, catalogRepo repository.CatalogRepository, locker ports.KeyLocker, cfg Config) *UseCase {
	if cfg.Warehouse == "" {
		cfg = DefaultConfig()
	}
	return &UseCase{invRepo: invRepo, catalogRepo: catalogRepo, locker: locker, cfg: cfg}
}

// SyncFromCatalog recalcula el inventario de cada producto del catálogo:
// stock total = suma del stock de todas las variantes. Si el SKU no tiene
// registro se crea con allocated = 0 y punto de reorden
// max(floor, floor(total*factor)); si ya existe se sobreescribe el stock y se
// recalcula el disponible preservando lo asignado.
func (uc *UseCase) SyncFromCatalog() error {
	products, err := uc.catalogRepo.List()
	if err != nil {
		return fmt.Errorf("listar catálogo: %w", err)
	}
	for _, p := range products {
		if err := uc.syncProduct(p); err != nil {
			return err
		}
	}
	return nil
}

func (uc *UseCase) syncProduct(p *entity.MasterProduct) error {
	uc.locker.Lock(p.SKU)
	defer uc.locker.Unlock(p.SKU)

	total := p.TotalStock()
	breakdown := make([]entity.SupplierStock, 0, len(p.Suppliers))
	for _, v := range p.Suppliers {
		breakdown = append(breakdown, entity.SupplierStock{
			SupplierID:   v.SupplierID,
			SupplierName: v.SupplierName,
			Stock:        v.Stock,
			Price:        v.Price,
			LastSync:     v.LastUpdated,
		})
	}

	item, err := uc.invRepo.GetBySKU(p.SKU)
	if err != nil {
		return fmt.Errorf("buscar inventario %s: %w", p.SKU, err)
	}
	now := time.Now()
	if item == nil {
		item = &entity.InventoryItem{
			SKU:           p.SKU,
			ProductName:   p.Name,
			Category:      p.Category,
			StockQuantity: total,
			Allocated:     0,
			Available:     total,
			ReorderLevel:  uc.reorderLevel(total),
			Warehouse:     uc.cfg.Warehouse,
		}
	} else {
		item.StockQuantity = total
		item.Available = total - item.Allocated
	}
	item.SupplierBreakdown = breakdown
	item.LastUpdated = now
	if err := uc.invRepo.Save(item); err != nil {
		return fmt.Errorf("guardar inventario %s: %w", p.SKU, err)
	}
	return nil
}

func (uc *UseCase) reorderLevel(total int) int {
	level := int(math.Floor(float64(total) * uc.cfg.ReorderFactor))
	if level < uc.cfg.ReorderFloor {
		return uc.cfg.ReorderFloor
	}
	return level
}

// AdjustStock aplica un delta con signo al stock y al disponible, y lo
// registra en el historial. El llamador entrega el signo correcto; el libro
// no recorta a cero: un resultado negativo es posible y queda visible.
func (uc *UseCase) AdjustStock(sku string, delta int, reason string) error {
	uc.locker.Lock(sku)
	defer uc.locker.Unlock(sku)

	item, err := uc.invRepo.GetBySKU(sku)
	if err != nil {
		return err
	}
	if item == nil {
		return domain.ErrProductNotFound
	}
	item.StockQuantity += delta
	item.Available += delta
	item.LastUpdated = time.Now()
	if err := uc.invRepo.Save(item); err != nil {
		return fmt.Errorf("guardar inventario %s: %w", sku, err)
	}
	return uc.invRepo.AppendAdjustment(entity.StockAdjustment{
		SKU:       sku,
		Quantity:  delta,
		Reason:    reason,
		Timestamp: time.Now(),
	})
}

// Reserve asigna cantidad contra una orden de venta: allocated += qty,
// available -= qty. No hay verificación de disponible no negativo; el SKU sin
// registro de inventario se omite en silencio.
func (uc *UseCase) Reserve(sku string, qty int) error {
	return uc.mutate(sku, func(item *entity.InventoryItem) {
		item.Allocated += qty
		item.Available -= qty
	})
}

// Release libera una reserva: allocated -= qty, available += qty.
func (uc *UseCase) Release(sku string, qty int) error {
	return uc.mutate(sku, func(item *entity.InventoryItem) {
		item.Allocated -= qty
		item.Available += qty
	})
}

// Fulfill despacha una venta completada: el stock y lo asignado bajan juntos,
// por lo que el disponible no cambia. Ruta directa, separada de AdjustStock,
// para que el historial de ajustes solo registre recepciones y correcciones.
func (uc *UseCase) Fulfill(sku string, qty int) error {
	return uc.mutate(sku, func(item *entity.InventoryItem) {
		item.StockQuantity -= qty
		item.Allocated -= qty
	})
}

// mutate aplica fn bajo el candado del SKU; sin registro de inventario no hay
// efecto.
func (uc *UseCase) mutate(sku string, fn func(*entity.InventoryItem)) error {
	uc.locker.Lock(sku)
	defer uc.locker.Unlock(sku)

	item, err := uc.invRepo.GetBySKU(sku)
	if err != nil {
		return err
	}
	if item == nil {
		return nil
	}
	fn(item)
	item.LastUpdated = time.Now()
	return uc.invRepo.Save(item)
}

// AllItems devuelve todos los registros de inventario (solo lectura).
func (uc *UseCase) AllItems() ([]*entity.InventoryItem, error) {
	return uc.invRepo.List()
}

// ItemBySKU devuelve el registro por SKU o ErrProductNotFound.
func (uc *UseCase) ItemBySKU(sku string) (*entity.InventoryItem, error) {
	item, err := uc.invRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrProductNotFound
	}
	return item, nil
}

// LowStockItems devuelve los registros con disponible ≤ punto de reorden.
func (uc *UseCase) LowStockItems() ([]*entity.InventoryItem, error) {
	all, err := uc.invRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.InventoryItem, 0)
	for _, item := range all {
		if item.Available <= item.ReorderLevel {
			out = append(out, item)
		}
	}
	return out, nil
}

// Adjustments devuelve el historial de ajustes; sku vacío = todos.
func (uc *UseCase) Adjustments(sku string) ([]entity.StockAdjustment, error) {
	return uc.invRepo.ListAdjustments(sku)
}
