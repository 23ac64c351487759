package entity

import "time"

// Estados de un proveedor registrado.
const (
	SupplierStatusPending = "pending"
	SupplierStatusActive  = "active"
	SupplierStatusError   = "error"
)

// Supplier proveedor registrado en el orquestador de sincronización.
// Las credenciales y el transporte del feed viven fuera de este núcleo;
// aquí solo se rastrea identidad y resultado de la última sincronización.
type Supplier struct {
	ID       string
	Name     string
	Category string
	Status   string
	LastSync time.Time
}
