package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.SupplierRepository = (*SupplierRepo)(nil)

// SupplierRepo implementación en memoria del puerto SupplierRepository.
type SupplierRepo struct {
	mu        sync.RWMutex
	suppliers map[string]*entity.Supplier
}

// NewSupplierRepository construye el adaptador en memoria de proveedores.
func NewSupplierRepository() *SupplierRepo {
	return &SupplierRepo{suppliers: make(map[string]*entity.Supplier)}
}

// Save inserta o reemplaza el proveedor por ID.
func (r *SupplierRepo) Save(supplier *entity.Supplier) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *supplier
	r.suppliers[supplier.ID] = &cp
	return nil
}

// GetByID devuelve una copia del proveedor, o (nil, nil) si no existe.
func (r *SupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[id]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// List devuelve copias de todos los proveedores.
func (r *SupplierRepo) List() ([]*entity.Supplier, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Supplier, 0, len(r.suppliers))
	for _, s := range r.suppliers {
		cp := *s
		out = append(out, &cp)
	}
	return out, nil
}
