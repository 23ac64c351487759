package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un producto maestro.
const (
	ProductStatusActive   = "active"
	ProductStatusInactive = "inactive"
)

// MasterProduct representa un producto del catálogo unificado, consolidado
// a partir de los feeds de uno o más proveedores. El SKU es la identidad:
// exactamente un producto maestro por SKU, inmutable una vez creado.
type MasterProduct struct {
	SKU             string
	Name            string
	Category        string
	Description     string
	Suppliers       []SupplierVariant
	PrimarySupplier string // SupplierID de la variante preferida
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// SupplierVariant datos de precio/stock de un proveedor para un producto maestro.
// Pertenece exclusivamente a su MasterProduct; a lo sumo una variante por proveedor.
type SupplierVariant struct {
	SupplierID   string
	SupplierName string
	Price        decimal.Decimal
	Stock        int
	LastUpdated  time.Time
	IsPreferred  bool
}

// PreferredVariant devuelve la variante marcada como preferida, o la primera
// si ninguna lo está. nil si el producto no tiene variantes.
func (p *MasterProduct) PreferredVariant() *SupplierVariant {
	for i := range p.Suppliers {
		if p.Suppliers[i].IsPreferred {
			return &p.Suppliers[i]
		}
	}
	if len(p.Suppliers) > 0 {
		return &p.Suppliers[0]
	}
	return nil
}

// VariantBySupplier devuelve la variante del proveedor indicado, o nil.
func (p *MasterProduct) VariantBySupplier(supplierID string) *SupplierVariant {
	for i := range p.Suppliers {
		if p.Suppliers[i].SupplierID == supplierID {
			return &p.Suppliers[i]
		}
	}
	return nil
}

// TotalStock suma el stock de todas las variantes.
func (p *MasterProduct) TotalStock() int {
	total := 0
	for i := range p.Suppliers {
		total += p.Suppliers[i].Stock
	}
	return total
}
