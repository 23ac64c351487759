package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepo)(nil)

// CatalogRepo implementación en memoria del puerto CatalogRepository.
// Todo el estado vive en el proceso y se pierde al reiniciar (exclusión
// deliberada: la persistencia durable es una capa externa).
// Se guardan y devuelven copias para que las lecturas concurrentes no
// compartan slices con los escritores.
type CatalogRepo struct {
	mu       sync.RWMutex
	products map[string]*entity.MasterProduct // SKU → producto maestro
}

// NewCatalogRepository construye el adaptador en memoria del catálogo.
func NewCatalogRepository() *CatalogRepo {
	return &CatalogRepo{products: make(map[string]*entity.MasterProduct)}
}

// Save inserta o reemplaza el producto maestro por SKU.
func (r *CatalogRepo) Save(product *entity.MasterProduct) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.SKU] = copyProduct(product)
	return nil
}

// GetBySKU devuelve una copia del producto, o (nil, nil) si no existe.
func (r *CatalogRepo) GetBySKU(sku string) (*entity.MasterProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.products[sku]
	if !ok {
		return nil, nil
	}
	return copyProduct(p), nil
}

// List devuelve copias de todos los productos del catálogo.
func (r *CatalogRepo) List() ([]*entity.MasterProduct, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.MasterProduct, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, copyProduct(p))
	}
	return out, nil
}

// Count devuelve el número de productos maestros.
func (r *CatalogRepo) Count() (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.products), nil
}

func copyProduct(p *entity.MasterProduct) *entity.MasterProduct {
	cp := *p
	cp.Suppliers = make([]entity.SupplierVariant, len(p.Suppliers))
	copy(cp.Suppliers, p.Suppliers)
	return &cp
}
