package ports

// KeyLocker serializa las mutaciones que tocan una misma clave (SKU).
// Merge, sincronización de inventario, ajustes y reservas comparten una sola
// instancia para que ningún par de rutas de escritura se intercale por producto.
type KeyLocker interface {
	Lock(key string)
	Unlock(key string)
}
