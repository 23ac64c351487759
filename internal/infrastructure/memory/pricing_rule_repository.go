package memory

import (
	"sync"

	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
)

var _ repository.PricingRuleRepository = (*PricingRuleRepo)(nil)

// PricingRuleRepo implementación en memoria del puerto PricingRuleRepository.
type PricingRuleRepo struct {
	mu    sync.RWMutex
	rules map[string]*entity.PricingRule
}

// NewPricingRuleRepository construye el adaptador en memoria de reglas.
func NewPricingRuleRepository() *PricingRuleRepo {
	return &PricingRuleRepo{rules: make(map[string]*entity.PricingRule)}
}

// Save inserta o reemplaza una regla por ID.
func (r *PricingRuleRepo) Save(rule *entity.PricingRule) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *rule
	r.rules[rule.ID] = &cp
	return nil
}

// GetByID devuelve una copia de la regla, o (nil, nil) si no existe.
func (r *PricingRuleRepo) GetByID(id string) (*entity.PricingRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rule, ok := r.rules[id]
	if !ok {
		return nil, nil
	}
	cp := *rule
	return &cp, nil
}

// Delete elimina la regla; no falla si no existe.
func (r *PricingRuleRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.rules, id)
	return nil
}

// List devuelve copias de todas las reglas.
func (r *PricingRuleRepo) List() ([]*entity.PricingRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*entity.PricingRule, 0, len(r.rules))
	for _, rule := range r.rules {
		cp := *rule
		out = append(out, &cp)
	}
	return out, nil
}
