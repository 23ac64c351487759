package catalog

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// PreferredPolicy decide qué proveedor queda marcado como preferido después de
// cada merge. Recibe el producto ya fusionado y devuelve el SupplierID elegido.
// Es inyectable para poder sustituir la estrategia sin tocar la lógica de merge.
type PreferredPolicy func(p *entity.MasterProduct) string

// FirstSupplierWins conserva el preferido vigente: el primer proveedor fusionado
// para un SKU sigue siendo preferido indefinidamente, aunque otro ofrezca luego
// mejor precio o más stock.
func FirstSupplierWins(p *entity.MasterProduct) string {
	if p.PrimarySupplier != "" {
		return p.PrimarySupplier
	}
	if len(p.Suppliers) > 0 {
		return p.Suppliers[0].SupplierID
	}
	return ""
}

// LowestPrice marca como preferido al proveedor con el menor precio unitario.
// Estrategia alternativa; en empate gana la variante que aparece primero.
func LowestPrice(p *entity.MasterProduct) string {
	if len(p.Suppliers) == 0 {
		return ""
	}
	best := p.Suppliers[0]
	for _, v := range p.Suppliers[1:] {
		if v.Price.LessThan(best.Price) {
			best = v
		}
	}
	return best.SupplierID
}
