package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// SupplierVariantDTO variante de proveedor dentro de un producto maestro.
type SupplierVariantDTO struct {
	SupplierID   string          `json:"supplier_id"`
	SupplierName string          `json:"supplier_name"`
	Price        decimal.Decimal `json:"price"`
	Stock        int             `json:"stock"`
	LastUpdated  time.Time       `json:"last_updated"`
	IsPreferred  bool            `json:"is_preferred"`
}

// ProductResponse salida de un producto del catálogo unificado.
type ProductResponse struct {
	SKU             string               `json:"sku"`
	Name            string               `json:"name"`
	Category        string               `json:"category"`
	Suppliers       []SupplierVariantDTO `json:"suppliers"`
	PrimarySupplier string               `json:"primary_supplier"`
	Status          string               `json:"status"`
	CreatedAt       time.Time            `json:"created_at"`
	UpdatedAt       time.Time            `json:"updated_at"`
}

// ProductListResponse lista paginada de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Page  PageResponse      `json:"page"`
}

// FromMasterProduct mapea la entidad a su DTO de salida.
func FromMasterProduct(p *entity.MasterProduct) *ProductResponse {
	if p == nil {
		return nil
	}
	suppliers := make([]SupplierVariantDTO, 0, len(p.Suppliers))
	for _, v := range p.Suppliers {
		suppliers = append(suppliers, SupplierVariantDTO{
			SupplierID:   v.SupplierID,
			SupplierName: v.SupplierName,
			Price:        v.Price,
			Stock:        v.Stock,
			LastUpdated:  v.LastUpdated,
			IsPreferred:  v.IsPreferred,
		})
	}
	return &ProductResponse{
		SKU:             p.SKU,
		Name:            p.Name,
		Category:        p.Category,
		Suppliers:       suppliers,
		PrimarySupplier: p.PrimarySupplier,
		Status:          p.Status,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
