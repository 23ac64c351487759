package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// InventoryRepository define el puerto de estado para el inventario (DIP).
// Un registro por SKU; GetBySKU devuelve (nil, nil) si no existe.
// Los ajustes se conservan como historial append-only.
type InventoryRepository interface {
	Save(item *entity.InventoryItem) error
	GetBySKU(sku string) (*entity.InventoryItem, error)
	List() ([]*entity.InventoryItem, error)
	AppendAdjustment(adj entity.StockAdjustment) error
	ListAdjustments(sku string) ([]entity.StockAdjustment, error)
}
