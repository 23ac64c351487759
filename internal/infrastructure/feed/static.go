package feed

import (
	"context"
	"fmt"
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

var _ syncer.FeedSource = (*StaticSource)(nil)

// StaticSource implementación de FeedSource respaldada por lotes fijos en
// memoria, indexados por nombre de proveedor. Sirve para desarrollo y pruebas;
// el adaptador real del normalizador se conecta por el mismo puerto.
type StaticSource struct {
	mu      sync.RWMutex
	batches map[string][]entity.NormalizedRecord
}

// NewStaticSource construye la fuente vacía.
func NewStaticSource() *StaticSource {
	return &StaticSource{batches: make(map[string][]entity.NormalizedRecord)}
}

// SetBatch fija el lote que se entregará para el proveedor indicado.
func (s *StaticSource) SetBatch(supplierName string, records []entity.NormalizedRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[supplierName] = records
}

// Fetch entrega el lote completo del proveedor. Respeta la cancelación del
// contexto y falla si el proveedor no tiene lote configurado.
func (s *StaticSource) Fetch(ctx context.Context, supplier entity.Supplier) ([]entity.NormalizedRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	batch, ok := s.batches[supplier.Name]
	if !ok {
		return nil, fmt.Errorf("proveedor %s sin lote configurado", supplier.Name)
	}
	out := make([]entity.NormalizedRecord, len(batch))
	copy(out, batch)
	return out, nil
}
