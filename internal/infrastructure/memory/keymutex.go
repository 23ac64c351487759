package memory

import "sync"

// KeyMutex mutex por clave para serializar todas las mutaciones que tocan un
// mismo SKU (merge, sincronización de inventario, ajustes, reservas y
// liberaciones). La secuencia merge→sync→price→reserve asume que no hay
// intercalado por producto.
type KeyMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

// NewKeyMutex construye el mutex por clave.
func NewKeyMutex() *KeyMutex {
	return &KeyMutex{locks: make(map[string]*sync.Mutex)}
}

// Lock bloquea la clave indicada, creándola si es la primera vez.
// Los mutex por clave no se liberan nunca: el universo de SKUs es acotado.
func (k *KeyMutex) Lock(key string) {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()
	m.Lock()
}

// Unlock desbloquea la clave indicada.
func (k *KeyMutex) Unlock(key string) {
	k.mu.Lock()
	m := k.locks[key]
	k.mu.Unlock()
	if m != nil {
		m.Unlock()
	}
}
