package syncer

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/catalog"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/inventory"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
)

// SupplierSyncResult resultado por proveedor de una sincronización. Los fallos
// de un proveedor se reportan aquí, nunca se propagan a los demás.
type SupplierSyncResult struct {
	SupplierID   string
	SupplierName string
	Status       string // active | error
	Merged       int
	Skipped      int // registros malformados rechazados
	Error        string
}

// UseCase orquestador de sincronización: por cada proveedor registrado trae el
// feed completo (acotado por timeout), lo materializa y recién entonces lo
// fusiona al catálogo; al final recalcula el inventario desde el catálogo.
// El fallo de un proveedor se aísla: se registra y los demás continúan.
type UseCase struct {
	supplierRepo repository.SupplierRepository
	merge        *catalog.MergeUseCase
	ledger       *inventory.UseCase
	source       FeedSource
	log          *logger.Logger
	fetchTimeout time.Duration
}

// NewUseCase construye el orquestador. fetchTimeout acota cada fetch de feed.
func NewUseCase(
	supplierRepo repository.SupplierRepository,
	merge *catalog.MergeUseCase,
	ledger *inventory.UseCase,
	source FeedSource,
	log *logger.Logger,
	fetchTimeout time.Duration,
) *UseCase {
	return &UseCase{
		supplierRepo: supplierRepo,
		merge:        merge,
		ledger:       ledger,
		source:       source,
		log:          log,
		fetchTimeout: fetchTimeout,
	}
}

// RegisterSupplier registra un proveedor en estado pending; pasa a active o
// error según el resultado de su primera sincronización.
func (uc *UseCase) RegisterSupplier(in dto.RegisterSupplierRequest) (*entity.Supplier, error) {
	if in.Name == "" {
		return nil, domain.ErrInvalidInput
	}
	supplier := &entity.Supplier{
		ID:       uuid.New().String(),
		Name:     in.Name,
		Category: in.Category,
		Status:   entity.SupplierStatusPending,
	}
	if err := uc.supplierRepo.Save(supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// ListSuppliers devuelve los proveedores registrados.
func (uc *UseCase) ListSuppliers() ([]*entity.Supplier, error) {
	return uc.supplierRepo.List()
}

// SupplierByID devuelve el proveedor por ID o ErrSupplierNotFound.
func (uc *UseCase) SupplierByID(id string) (*entity.Supplier, error) {
	s, err := uc.supplierRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if s == nil {
		return nil, domain.ErrSupplierNotFound
	}
	return s, nil
}

// SyncAll sincroniza todos los proveedores registrados y luego recalcula el
// inventario desde el catálogo. Cancelar ctx detiene la fusión antes del
// siguiente proveedor cuyo lote aún no empezó a aplicarse; un lote que ya
// empezó se aplica completo (aplicar-o-descartar por proveedor).
func (uc *UseCase) SyncAll(ctx context.Context) ([]SupplierSyncResult, error) {
	suppliers, err := uc.supplierRepo.List()
	if err != nil {
		return nil, err
	}

	results := make([]SupplierSyncResult, len(suppliers))
	var wg sync.WaitGroup
	for i, s := range suppliers {
		wg.Add(1)
		go func(i int, s *entity.Supplier) {
			defer wg.Done()
			results[i] = uc.syncSupplier(ctx, s)
		}(i, s)
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if err := uc.ledger.SyncFromCatalog(); err != nil {
		return results, err
	}
	return results, nil
}

// syncSupplier trae, materializa y fusiona el feed de un proveedor. Cualquier
// error queda contenido en el resultado de ese proveedor.
func (uc *UseCase) syncSupplier(ctx context.Context, supplier *entity.Supplier) SupplierSyncResult {
	result := SupplierSyncResult{
		SupplierID:   supplier.ID,
		SupplierName: supplier.Name,
	}

	fetchCtx, cancel := context.WithTimeout(ctx, uc.fetchTimeout)
	defer cancel()

	records, err := uc.source.Fetch(fetchCtx, *supplier)
	if err != nil {
		uc.log.Error().Err(err).Str("supplier", supplier.Name).Msg("fallo al traer el feed del proveedor")
		return uc.finishSupplier(supplier, result, err)
	}

	// El lote está completo en memoria: si ctx ya se canceló se descarta
	// entero, si no se aplica entero.
	if err := ctx.Err(); err != nil {
		return uc.finishSupplier(supplier, result, err)
	}

	for _, record := range records {
		if err := uc.merge.Merge(record); err != nil {
			if errors.Is(err, domain.ErrMalformedRecord) {
				result.Skipped++
				uc.log.Warn().Str("supplier", supplier.Name).Str("sku", record.SKU).Msg("registro malformado rechazado")
				continue
			}
			return uc.finishSupplier(supplier, result, err)
		}
		result.Merged++
	}
	return uc.finishSupplier(supplier, result, nil)
}

// finishSupplier actualiza estado y última sincronización del proveedor y
// cierra su resultado.
func (uc *UseCase) finishSupplier(supplier *entity.Supplier, result SupplierSyncResult, err error) SupplierSyncResult {
	if err != nil {
		supplier.Status = entity.SupplierStatusError
		result.Status = entity.SupplierStatusError
		result.Error = err.Error()
	} else {
		supplier.Status = entity.SupplierStatusActive
		supplier.LastSync = time.Now()
		result.Status = entity.SupplierStatusActive
		uc.log.Info().Str("supplier", supplier.Name).Int("merged", result.Merged).Msg("proveedor sincronizado")
	}
	if saveErr := uc.supplierRepo.Save(supplier); saveErr != nil {
		uc.log.Error().Err(saveErr).Str("supplier", supplier.Name).Msg("guardar estado del proveedor")
	}
	return result
}
