package repository

import "github.com/jhoicas/Catalogo-api/internal/domain/entity"

// PricingRuleRepository define el puerto de estado para reglas de precios (DIP).
// GetByID devuelve (nil, nil) si la regla no existe; Delete no falla si no existe.
type PricingRuleRepository interface {
	Save(rule *entity.PricingRule) error
	GetByID(id string) (*entity.PricingRule, error)
	Delete(id string) error
	List() ([]*entity.PricingRule, error)
}
