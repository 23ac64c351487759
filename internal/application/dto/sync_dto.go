package dto

import (
	"time"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
)

// RegisterSupplierRequest entrada para registrar un proveedor.
type RegisterSupplierRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category"`
}

// SupplierResponse salida de un proveedor registrado.
type SupplierResponse struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Category string    `json:"category"`
	Status   string    `json:"status"`
	LastSync time.Time `json:"last_sync,omitempty"`
}

// SupplierSyncResultResponse resultado por proveedor de una sincronización.
type SupplierSyncResultResponse struct {
	SupplierID   string `json:"supplier_id"`
	SupplierName string `json:"supplier_name"`
	Status       string `json:"status"`
	Merged       int    `json:"merged"`
	Skipped      int    `json:"skipped,omitempty"`
	Error        string `json:"error,omitempty"`
}

// FromSupplier mapea la entidad a su DTO de salida.
func FromSupplier(s *entity.Supplier) *SupplierResponse {
	if s == nil {
		return nil
	}
	return &SupplierResponse{
		ID:       s.ID,
		Name:     s.Name,
		Category: s.Category,
		Status:   s.Status,
		LastSync: s.LastSync,
	}
}
