package inventory_test

import (
	"testing"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/memory"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ledgerFixture struct {
	ledger *inventory.UseCase
	merge  *catalog.MergeUseCase
}

func newLedgerFixture(t *testing.T) *ledgerFixture {
	t.Helper()
	catRepo := memory.NewCatalogRepository()
	locker := memory.NewKeyMutex()
	return &ledgerFixture{
		ledger: inventory.NewUseCase(memory.NewInventoryRepository(), catRepo, locker, inventory.DefaultConfig()),
		merge:  catalog.NewMergeUseCase(catRepo, locker, nil),
	}
}

func (f *ledgerFixture) mergeStock(t *testing.T, sku, supplierID string, stock int) {
	t.Helper()
	require.NoError(t, f.merge.Merge(entity.NormalizedRecord{
		SKU:          sku,
		Name:         "Producto " + sku,
		Category:     "Electronics",
		Price:        decimal.NewFromInt(100),
		Stock:        stock,
		SupplierID:   supplierID,
		SupplierName: "Proveedor " + supplierID,
		Status:       entity.ProductStatusActive,
		Timestamp:    time.Now(),
	}))
}

func TestSyncFromCatalog_CreaRegistroConReordenDerivado(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100)

	require.NoError(t, f.ledger.SyncFromCatalog())

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 100, item.StockQuantity)
	assert.Equal(t, 0, item.Allocated)
	assert.Equal(t, 100, item.Available)
	assert.Equal(t, 20, item.ReorderLevel, "reorden = floor(100*0.2)")
	assert.Equal(t, "Main Warehouse", item.Warehouse)
	require.Len(t, item.SupplierBreakdown, 1)
	assert.Equal(t, "sup-1", item.SupplierBreakdown[0].SupplierID)
}

func TestSyncFromCatalog_ReordenNoBajaDelPiso(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 20)

	require.NoError(t, f.ledger.SyncFromCatalog())

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 10, item.ReorderLevel, "floor(20*0.2)=4 queda por debajo del piso de 10")
}

func TestSyncFromCatalog_SumaStockDeTodasLasVariantes(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 60)
	f.mergeStock(t, "TC-1001", "sup-2", 40)

	require.NoError(t, f.ledger.SyncFromCatalog())

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 100, item.StockQuantity)
	assert.Len(t, item.SupplierBreakdown, 2)
}

func TestSyncFromCatalog_ResincronizarPreservaLoAsignado(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100)
	require.NoError(t, f.ledger.SyncFromCatalog())
	require.NoError(t, f.ledger.Reserve("TC-1001", 30))

	// El proveedor reporta un stock nuevo y se resincroniza.
	f.mergeStock(t, "TC-1001", "sup-1", 50)
	require.NoError(t, f.ledger.SyncFromCatalog())

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 50, item.StockQuantity)
	assert.Equal(t, 30, item.Allocated, "resincronizar no debe pisar lo asignado")
	assert.Equal(t, 20, item.Available, "disponible = stock - asignado tras la resincronización")
}

func TestAdjustStock_DeltaConSignoYHistorial(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100)
	require.NoError(t, f.ledger.SyncFromCatalog())

	require.NoError(t, f.ledger.AdjustStock("TC-1001", -15, "merma de bodega"))
	require.NoError(t, f.ledger.AdjustStock("TC-1001", 5, "conteo físico"))

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 90, item.StockQuantity)
	assert.Equal(t, 90, item.Available)
	assert.Equal(t, item.StockQuantity-item.Allocated, item.Available)

	history, err := f.ledger.Adjustments("TC-1001")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, -15, history[0].Quantity)
	assert.Equal(t, "merma de bodega", history[0].Reason)
	assert.Equal(t, 5, history[1].Quantity)
}

func TestAdjustStock_PermiteResultadoNegativo(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 10)
	require.NoError(t, f.ledger.SyncFromCatalog())

	require.NoError(t, f.ledger.AdjustStock("TC-1001", -25, "corrección"))

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, -15, item.StockQuantity, "el libro no recorta a cero: el negativo queda visible")
	assert.Equal(t, -15, item.Available)
}

func TestAdjustStock_SKUSinRegistro(t *testing.T) {
	f := newLedgerFixture(t)

	err := f.ledger.AdjustStock("NO-EXISTE", 10, "recepción")
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestReserveReleaseFulfill_MantienenElInvariante(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100)
	require.NoError(t, f.ledger.SyncFromCatalog())

	require.NoError(t, f.ledger.Reserve("TC-1001", 30))
	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 30, item.Allocated)
	assert.Equal(t, 70, item.Available)
	assert.Equal(t, 100, item.StockQuantity, "reservar no toca el stock físico")

	require.NoError(t, f.ledger.Release("TC-1001", 10))
	item, err = f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 20, item.Allocated)
	assert.Equal(t, 80, item.Available)

	require.NoError(t, f.ledger.Fulfill("TC-1001", 20))
	item, err = f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, 80, item.StockQuantity, "despachar baja stock y asignado juntos")
	assert.Equal(t, 0, item.Allocated)
	assert.Equal(t, 80, item.Available, "el disponible no cambia al despachar")
	assert.Equal(t, item.StockQuantity-item.Allocated, item.Available)
}

func TestReserve_SobreAsignacionDejaDisponibleNegativo(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 5)
	require.NoError(t, f.ledger.SyncFromCatalog())

	require.NoError(t, f.ledger.Reserve("TC-1001", 8))

	item, err := f.ledger.ItemBySKU("TC-1001")
	require.NoError(t, err)
	assert.Equal(t, -3, item.Available, "la sobre-asignación se permite y queda visible")
	assert.Equal(t, item.StockQuantity-item.Allocated, item.Available)
}

func TestReserve_SKUSinRegistroSeOmite(t *testing.T) {
	f := newLedgerFixture(t)

	assert.NoError(t, f.ledger.Reserve("NO-EXISTE", 5))
	assert.NoError(t, f.ledger.Release("NO-EXISTE", 5))
	assert.NoError(t, f.ledger.Fulfill("NO-EXISTE", 5))
}

func TestLowStockItems_UmbralInclusivo(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100) // reorden 20, disponible 100
	f.mergeStock(t, "TC-1002", "sup-1", 50)  // reorden 10
	require.NoError(t, f.ledger.SyncFromCatalog())

	// Deja TC-1002 exactamente en su punto de reorden.
	require.NoError(t, f.ledger.Reserve("TC-1002", 40))

	low, err := f.ledger.LowStockItems()
	require.NoError(t, err)
	require.Len(t, low, 1, "disponible == reorden ya cuenta como stock bajo")
	assert.Equal(t, "TC-1002", low[0].SKU)
}

func TestAdjustments_FiltraPorSKU(t *testing.T) {
	f := newLedgerFixture(t)
	f.mergeStock(t, "TC-1001", "sup-1", 100)
	f.mergeStock(t, "TC-1002", "sup-1", 100)
	require.NoError(t, f.ledger.SyncFromCatalog())

	require.NoError(t, f.ledger.AdjustStock("TC-1001", 1, "a"))
	require.NoError(t, f.ledger.AdjustStock("TC-1002", 2, "b"))

	soloUno, err := f.ledger.Adjustments("TC-1001")
	require.NoError(t, err)
	require.Len(t, soloUno, 1)
	assert.Equal(t, "TC-1001", soloUno[0].SKU)

	todos, err := f.ledger.Adjustments("")
	require.NoError(t, err)
	assert.Len(t, todos, 2)
}
