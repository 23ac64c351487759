package catalog

import (
	"fmt"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/ports"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

// MergeUseCase motor de fusión del catálogo: mantiene la fuente única de
// verdad SKU → producto maestro multi-proveedor. El merge es total sobre
// entradas bien formadas; un registro malformado se rechaza sin mutar estado.
type MergeUseCase struct {
	repo   repository.CatalogRepository
	locker ports.KeyLocker
	policy PreferredPolicy
}

// NewMergeUseCase construye el motor de fusión. policy nil = FirstSupplierWins.
func NewMergeUseCase(repo repository.CatalogRepository, locker ports.KeyLocker, policy PreferredPolicy) *MergeUseCase {
	if policy == nil {
		policy = FirstSupplierWins
	}
	return &MergeUseCase{repo: repo, locker: locker, policy: policy}
}

// Merge incorpora un registro normalizado al catálogo maestro:
//   - SKU nuevo: crea el producto con una única variante marcada preferida.
//   - SKU existente, proveedor conocido: sobreescribe precio/stock/timestamp
//     de la variante en sitio (el flag de preferido no se toca).
//   - SKU existente, proveedor nuevo: agrega la variante con preferido=false.
//
// UpdatedAt se refresca en cualquiera de los tres casos. Las variantes de un
// proveedor que deja de reportar el SKU no se eliminan.
func (uc *MergeUseCase) Merge(record entity.NormalizedRecord) error {
	if record.SKU == "" || record.SupplierID == "" {
		return domain.ErrMalformedRecord
	}

	uc.locker.Lock(record.SKU)
	defer uc.locker.Unlock(record.SKU)

	product, err := uc.repo.GetBySKU(record.SKU)
	if err != nil {
		return fmt.Errorf("buscar producto %s: %w", record.SKU, err)
	}

	now := time.Now()
	if product == nil {
		product = newMasterProduct(record, now)
	} else {
		applyVariant(product, record)
		product.UpdatedAt = now
	}

	markPreferred(product, uc.policy(product))

	if err := uc.repo.Save(product); err != nil {
		return fmt.Errorf("guardar producto %s: %w", record.SKU, err)
	}
	return nil
}

// AllProducts devuelve todos los productos del catálogo (solo lectura).
func (uc *MergeUseCase) AllProducts() ([]*entity.MasterProduct, error) {
	return uc.repo.List()
}

// ActiveProducts devuelve los productos activos, los únicos que entran al
// motor de precios.
func (uc *MergeUseCase) ActiveProducts() ([]*entity.MasterProduct, error) {
	all, err := uc.repo.List()
	if err != nil {
		return nil, err
	}
	out := make([]*entity.MasterProduct, 0, len(all))
	for _, p := range all {
		if p.Status == entity.ProductStatusActive {
			out = append(out, p)
		}
	}
	return out, nil
}

// ProductCount devuelve el número de productos maestros distintos.
func (uc *MergeUseCase) ProductCount() (int, error) {
	return uc.repo.Count()
}

// ProductBySKU devuelve el producto por SKU o ErrProductNotFound.
func (uc *MergeUseCase) ProductBySKU(sku string) (*entity.MasterProduct, error) {
	p, err := uc.repo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrProductNotFound
	}
	return p, nil
}

func newMasterProduct(record entity.NormalizedRecord, now time.Time) *entity.MasterProduct {
	status := record.Status
	if status == "" {
		status = entity.ProductStatusActive
	}
	return &entity.MasterProduct{
		SKU:      record.SKU,
		Name:     record.Name,
		Category: record.Category,
		Suppliers: []entity.SupplierVariant{{
			SupplierID:   record.SupplierID,
			SupplierName: record.SupplierName,
			Price:        record.Price,
			Stock:        record.Stock,
			LastUpdated:  record.Timestamp,
			IsPreferred:  true,
		}},
		PrimarySupplier: record.SupplierID,
		Status:          status,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

func applyVariant(product *entity.MasterProduct, record entity.NormalizedRecord) {
	if v := product.VariantBySupplier(record.SupplierID); v != nil {
		v.SupplierName = record.SupplierName
		v.Price = record.Price
		v.Stock = record.Stock
		v.LastUpdated = record.Timestamp
		return
	}
	product.Suppliers = append(product.Suppliers, entity.SupplierVariant{
		SupplierID:   record.SupplierID,
		SupplierName: record.SupplierName,
		Price:        record.Price,
		Stock:        record.Stock,
		LastUpdated:  record.Timestamp,
		IsPreferred:  false,
	})
}

// markPreferred deja exactamente una variante preferida: la del proveedor
// elegido por la política.
func markPreferred(product *entity.MasterProduct, supplierID string) {
	if supplierID == "" {
		return
	}
	for i := range product.Suppliers {
		product.Suppliers[i].IsPreferred = product.Suppliers[i].SupplierID == supplierID
	}
	product.PrimarySupplier = supplierID
}
