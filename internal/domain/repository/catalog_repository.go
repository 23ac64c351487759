package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// CatalogRepository define el puerto de estado para el catálogo maestro (DIP).
// GetBySKU devuelve (nil, nil) si el SKU no existe.
type CatalogRepository interface {
	Save(product *entity.MasterProduct) error
	GetBySKU(sku string) (*entity.MasterProduct, error)
	List() ([]*entity.MasterProduct, error)
	Count() (int, error)
}
