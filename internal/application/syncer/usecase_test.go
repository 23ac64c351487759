package syncer_test

import (
	"context"
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type syncFixture struct {
	uc     *syncer.UseCase
	merge  *catalog.MergeUseCase
	ledger *inventory.UseCase
	source *feed.StaticSource
}

func newSyncFixture(t *testing.T, source syncer.FeedSource, fetchTimeout time.Duration) *syncFixture {
	t.Helper()
	catRepo := memory.NewCatalogRepository()
	locker := memory.NewKeyMutex()
	merge := catalog.NewMergeUseCase(catRepo, locker, nil)
	ledger := inventory.NewUseCase(memory.NewInventoryRepository(), catRepo, locker, inventory.DefaultConfig())
	log := logger.New(logger.Config{Env: "production", Level: "error"})

	static, _ := source.(*feed.StaticSource)
	return &syncFixture{
		uc:     syncer.NewUseCase(memory.NewSupplierRepository(), merge, ledger, source, log, fetchTimeout),
		merge:  merge,
		ledger: ledger,
		source: static,
	}
}

func feedRecord(sku, supplierID, supplierName string, stock int) entity.NormalizedRecord {
	return entity.NormalizedRecord{
		SKU:          sku,
		Name:         "Producto " + sku,
		Category:     "Electronics",
		Price:        decimal.NewFromInt(100),
		Stock:        stock,
		SupplierID:   supplierID,
		SupplierName: supplierName,
		Status:       entity.ProductStatusActive,
		Timestamp:    time.Now(),
	}
}

// blockedSource fuente que nunca responde: espera la cancelación del contexto.
type blockedSource struct{}

func (blockedSource) Fetch(ctx context.Context, _ entity.Supplier) ([]entity.NormalizedRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestRegisterSupplier_QuedaPendiente(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	s, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp", Category: "Electronics"})
	require.NoError(t, err)
	assert.NotEmpty(t, s.ID)
	assert.Equal(t, entity.SupplierStatusPending, s.Status)
	assert.True(t, s.LastSync.IsZero(), "sin sincronizar aún no hay marca de tiempo")

	_, err = f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Category: "Electronics"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "el nombre es obligatorio")

	found, err := f.uc.SupplierByID(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "TechCorp", found.Name)

	_, err = f.uc.SupplierByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrSupplierNotFound)
}

func TestSyncAll_FusionaYRecalculaInventario(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp"})
	require.NoError(t, err)
	f.source.SetBatch("TechCorp", []entity.NormalizedRecord{
		feedRecord("TC-1001", "sup-1", "TechCorp", 50),
		feedRecord("TC-1002", "sup-1", "TechCorp", 200),
	})

	results, err := f.uc.SyncAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.SupplierStatusActive, results[0].Status)
	assert.Equal(t, 2, results[0].Merged)
	assert.Zero(t, results[0].Skipped)

	// El catálogo y el inventario quedan poblados en la misma pasada.
	all, err := f.merge.AllProducts()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 50, item.StockQuantity)

	suppliers, err := f.uc.ListSuppliers()
	require.NoError(t, err)
	require.Len(t, suppliers, 1)
	assert.Equal(t, entity.SupplierStatusActive, suppliers[0].Status)
	assert.False(t, suppliers[0].LastSync.IsZero())
}

func TestSyncAll_FalloDeUnProveedorNoContagiaALosDemas(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp"})
	require.NoError(t, err)
	_, err = f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "Roto"})
	require.NoError(t, err)

	// Solo TechCorp tiene lote: "Roto" falla al traer su feed.
	f.source.SetBatch("TechCorp", []entity.NormalizedRecord{
		feedRecord("TC-1001", "sup-1", "TechCorp", 50),
	})

	results, err := f.uc.SyncAll(context.Background())
	require.NoError(t, err, "el fallo de un proveedor no es un fallo de la sincronización")
	require.Len(t, results, 2)

	byName := make(map[string]syncer.SupplierSyncResult, len(results))
	for _, r := range results {
		byName[r.SupplierName] = r
	}
	assert.Equal(t, entity.SupplierStatusActive, byName["TechCorp"].Status)
	assert.Equal(t, 1, byName["TechCorp"].Merged)
	assert.Equal(t, entity.SupplierStatusError, byName["Roto"].Status)
	assert.NotEmpty(t, byName["Roto"].Error)

	// Los datos del proveedor sano sí se aplicaron.
	_, err = f.merge.ProductBySKU("TC-1001")
	assert.NoError(t, err)
}

func TestSyncAll_RegistrosMalformadosSeOmitenSinAbortarElLote(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp"})
	require.NoError(t, err)
	f.source.SetBatch("TechCorp", []entity.NormalizedRecord{
		feedRecord("TC-1001", "sup-1", "TechCorp", 50),
		feedRecord("", "sup-1", "TechCorp", 10), // sin SKU
		feedRecord("TC-1002", "sup-1", "TechCorp", 200),
	})

	results, err := f.uc.SyncAll(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, entity.SupplierStatusActive, results[0].Status, "registros malformados no marcan al proveedor en error")
	assert.Equal(t, 2, results[0].Merged)
	assert.Equal(t, 1, results[0].Skipped)

	all, err := f.merge.AllProducts()
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestSyncAll_TimeoutDeFetchAislaAlProveedorLento(t *testing.T) {
	f := newSyncFixture(t, blockedSource{}, 20*time.Millisecond)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "Lento"})
	require.NoError(t, err)

	results, err := f.uc.SyncAll(context.Background())
	require.NoError(t, err, "el timeout de un proveedor no tumba la pasada")
	require.Len(t, results, 1)
	assert.Equal(t, entity.SupplierStatusError, results[0].Status)
	assert.Contains(t, results[0].Error, context.DeadlineExceeded.Error())

	suppliers, err := f.uc.ListSuppliers()
	require.NoError(t, err)
	assert.Equal(t, entity.SupplierStatusError, suppliers[0].Status)
}

func TestSyncAll_ContextoCanceladoDescartaSinAplicar(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp"})
	require.NoError(t, err)
	f.source.SetBatch("TechCorp", []entity.NormalizedRecord{
		feedRecord("TC-1001", "sup-1", "TechCorp", 50),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = f.uc.SyncAll(ctx)
	assert.ErrorIs(t, err, context.Canceled)

	all, err := f.merge.AllProducts()
	require.NoError(t, err)
	assert.Empty(t, all, "un lote descartado no deja efectos parciales en el catálogo")

	items, err := f.ledger.AllItems()
	require.NoError(t, err)
	assert.Empty(t, items, "el inventario no se recalcula en una pasada cancelada")
}

func TestSyncAll_ResincronizarEsIdempotente(t *testing.T) {
	f := newSyncFixture(t, feed.NewStaticSource(), time.Second)

	_, err := f.uc.RegisterSupplier(dto.RegisterSupplierRequest{Name: "TechCorp"})
	require.NoError(t, err)
	f.source.SetBatch("TechCorp", []entity.NormalizedRecord{
		feedRecord("TC-1001", "sup-1", "TechCorp", 50),
	})

	_, err = f.uc.SyncAll(context.Background())
	require.NoError(t, err)
	_, err = f.uc.SyncAll(context.Background())
	require.NoError(t, err)

	all, err := f.merge.AllProducts()
	require.NoError(t, err)
	assert.Len(t, all, 1, "dos pasadas idénticas no duplican productos")

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 50, item.StockQuantity)
	assert.Equal(t, 50, item.Available)
}
