package syncer

import (
	"context"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// FeedSource puerto hacia el normalizador de feeds: entrega el lote completo
// de registros ya normalizados de un proveedor. El transporte (HTTP, archivo,
// cola) y las credenciales viven del otro lado del puerto.
type FeedSource interface {
	Fetch(ctx context.Context, supplier entity.Supplier) ([]entity.NormalizedRecord, error)
}
