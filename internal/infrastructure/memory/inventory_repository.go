package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.InventoryRepository = (*InventoryRepo)(nil)

// InventoryRepo implementación en memoria del puerto InventoryRepository.
// Un registro por SKU más el historial de ajustes append-only.
type InventoryRepo struct {
	mu          sync.RWMutex
	items       map[string]*entity.InventoryItem // SKU → registro
	adjustments []entity.StockAdjustment
}

// NewInventoryRepository construye el adaptador en memoria de inventario.
func NewInventoryRepository() *InventoryRepo {
	return &InventoryRepo{items: make(map[string]*entity.InventoryItem)}
}

// Save inserta o reemplaza el registro de inventario por SKU.
func (r *InventoryRepo) Save(item *entity.InventoryItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.SKU] = copyItem(item)
	return nil
}

// GetBySKU devuelve una copia del registro, o (nil, nil) si no existe.
func (r *InventoryRepo) GetBySKU(sku string) (*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[sku]
	if !ok {
		return nil, nil
	}
	return copyItem(item), nil
}

// List devuelve copias de todos los registros de inventario.
func (r *InventoryRepo) List() ([]*entity.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.InventoryItem, 0, len(r.items))
	for _, item := range r.items {
		out = append(out, copyItem(item))
	}
	return out, nil
}

// AppendAdjustment agrega un ajuste al historial.
func (r *InventoryRepo) AppendAdjustment(adj entity.StockAdjustment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.adjustments = append(r.adjustments, adj)
	return nil
}

// ListAdjustments devuelve el historial de ajustes; sku vacío = todos.
func (r *InventoryRepo) ListAdjustments(sku string) ([]entity.StockAdjustment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.StockAdjustment, 0, len(r.adjustments))
	for _, adj := range r.adjustments {
		if sku == "" || adj.SKU == sku {
			out = append(out, adj)
		}
	}
	return out, nil
}

func copyItem(item *entity.InventoryItem) *entity.InventoryItem {
	cp := *item
	cp.SupplierBreakdown = make([]entity.SupplierStock, len(item.SupplierBreakdown))
	copy(cp.SupplierBreakdown, item.SupplierBreakdown)
	return &cp
}
