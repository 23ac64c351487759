package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrMalformedRecord     = errors.New("registro de proveedor malformado")
	ErrProductNotFound     = errors.New("producto no encontrado")
	ErrOrderNotFound       = errors.New("orden no encontrada")
	ErrRuleNotFound        = errors.New("regla de precios no encontrada")
	ErrSupplierNotFound    = errors.New("proveedor no encontrado")
	ErrNoSupplierAvailable = errors.New("el producto no tiene proveedores disponibles")
	ErrInvalidOrderKind    = errors.New("tipo de orden inválido")
	ErrInvalidTransition   = errors.New("transición de estado no permitida")
	ErrInvalidInput        = errors.New("entrada inválida")
)
