package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// OrderRepository define el puerto de estado para órdenes (DIP).
// Las órdenes nunca se eliminan. NextSequence reserva atómicamente el
// consecutivo para numerar la siguiente orden; un número reservado no se
// vuelve a entregar aunque la orden no llegue a guardarse.
type OrderRepository interface {
	Save(order *entity.Order) error
	GetByNumber(number string) (*entity.Order, error)
	List() ([]*entity.Order, error)
	ListByKind(kind string) ([]*entity.Order, error)
	NextSequence() (int, error)
}
