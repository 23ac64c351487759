package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación en memoria del puerto OrderRepository.
type OrderRepo struct {
	mu     sync.RWMutex
	orders map[string]*entity.Order // OrderNumber → orden
	seq    int
}

// NewOrderRepository construye el adaptador en memoria de órdenes.
func NewOrderRepository() *OrderRepo {
	return &OrderRepo{orders: make(map[string]*entity.Order)}
}

// Save inserta o reemplaza la orden por número.
func (r *OrderRepo) Save(order *entity.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.orders[order.OrderNumber] = copyOrder(order)
	return nil
}

// GetByNumber devuelve una copia de la orden, o (nil, nil) si no existe.
func (r *OrderRepo) GetByNumber(number string) (*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	o, ok := r.orders[number]
	if !ok {
		return nil, nil
	}
	return copyOrder(o), nil
}

// List devuelve copias de todas las órdenes.
func (r *OrderRepo) List() ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Order, 0, len(r.orders))
	for _, o := range r.orders {
		out = append(out, copyOrder(o))
	}
	return out, nil
}

// ListByKind devuelve copias de las órdenes del tipo indicado.
func (r *OrderRepo) ListByKind(kind string) ([]*entity.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.Order, 0)
	for _, o := range r.orders {
		if o.Kind == kind {
			out = append(out, copyOrder(o))
		}
	}
	return out, nil
}

// NextSequence reserva y devuelve el consecutivo de la siguiente orden.
// El incremento ocurre bajo el candado de escritura: dos llamadores
// concurrentes nunca reciben el mismo número.
func (r *OrderRepo) NextSequence() (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

func copyOrder(o *entity.Order) *entity.Order {
	cp := *o
	cp.Items = make([]entity.OrderItem, len(o.Items))
	copy(cp.Items, o.Items)
	return &cp
}
