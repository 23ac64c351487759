package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// SupplierRepository define el puerto de estado para proveedores registrados (DIP).
type SupplierRepository interface {
	Save(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}
