package pricing

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/domain"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// UseCase motor de precios: CRUD de reglas de margen y cálculo del precio de
// venta por producto. Los márgenes aplicables se componen secuencialmente en
// orden de prioridad ascendente sobre el precio del proveedor preferido.
type UseCase struct {
	ruleRepo    repository.PricingRuleRepository
	catalogRepo repository.CatalogRepository
}

// NewUseCase construye el motor de precios.
func NewUseCase(ruleRepo repository.PricingRuleRepository, catalogRepo repository.CatalogRepository) *UseCase {
	return &UseCase{ruleRepo: ruleRepo, catalogRepo: catalogRepo}
}

// AddRule crea una regla de margen.
func (uc *UseCase) AddRule(in dto.CreateRuleRequest) (*entity.PricingRule, error) {
	if in.Name == "" || in.Supplier == "" || in.Category == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rule := &entity.PricingRule{
		ID:               uuid.New().String(),
		Name:             in.Name,
		Supplier:         in.Supplier,
		Category:         in.Category,
		ProductSKU:       in.ProductSKU,
		MarkupPercentage: in.MarkupPercentage,
		Priority:         in.Priority,
		IsActive:         in.IsActive,
		CreatedAt:        now,
		LastModified:     now,
	}
	if err := uc.ruleRepo.Save(rule); err != nil {
		return nil, fmt.Errorf("guardar regla: %w", err)
	}
	return rule, nil
}

// UpdateRule actualiza los campos presentes y refresca LastModified.
func (uc *UseCase) UpdateRule(id string, in dto.UpdateRuleRequest) (*entity.PricingRule, error) {
	rule, err := uc.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrRuleNotFound
	}
	if in.Name != nil {
		rule.Name = *in.Name
	}
	if in.Supplier != nil {
		rule.Supplier = *in.Supplier
	}
	if in.Category != nil {
		rule.Category = *in.Category
	}
	if in.ProductSKU != nil {
		rule.ProductSKU = *in.ProductSKU
	}
	if in.MarkupPercentage != nil {
		rule.MarkupPercentage = *in.MarkupPercentage
	}
	if in.Priority != nil {
		rule.Priority = *in.Priority
	}
	if in.IsActive != nil {
		rule.IsActive = *in.IsActive
	}
	rule.LastModified = time.Now()
	if err := uc.ruleRepo.Save(rule); err != nil {
		return nil, fmt.Errorf("guardar regla %s: %w", id, err)
	}
	return rule, nil
}

// DeleteRule elimina una regla por ID.
func (uc *UseCase) DeleteRule(id string) error {
	rule, err := uc.ruleRepo.GetByID(id)
	if err != nil {
		return err
	}
	if rule == nil {
		return domain.ErrRuleNotFound
	}
	return uc.ruleRepo.Delete(id)
}

// GetRule devuelve una regla por ID o ErrRuleNotFound.
func (uc *UseCase) GetRule(id string) (*entity.PricingRule, error) {
	rule, err := uc.ruleRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rule == nil {
		return nil, domain.ErrRuleNotFound
	}
	return rule, nil
}

// ListRules devuelve todas las reglas.
func (uc *UseCase) ListRules() ([]*entity.PricingRule, error) {
	return uc.ruleRepo.List()
}

// PriceFor calcula el precio de venta de un producto maestro:
//
//  1. El precio base es el de la variante preferida (o la primera si ninguna
//     está marcada). Sin variantes → ErrNoSupplierAvailable.
//  2. Aplican las reglas activas cuyo proveedor coincide con el de la variante
//     preferida, cuya categoría coincide con la del producto y cuyo SKU es
//     vacío o igual al del producto.
//  3. Se ordenan por prioridad ascendente y se componen secuencialmente:
//     price = price + price * markup/100. Cero reglas aplicables no es error.
//  4. El precio final se redondea a dos decimales; margen = final - base y
//     margen porcentual = margen/base*100 (0 si base es 0).
func (uc *UseCase) PriceFor(product *entity.MasterProduct) (*entity.PricedProduct, error) {
	preferred := product.PreferredVariant()
	if preferred == nil {
		return nil, domain.ErrNoSupplierAvailable
	}

	base := preferred.Price
	price := base
	rules, err := uc.applicableRules(product, preferred.SupplierName)
	if err != nil {
		return nil, err
	}

	applied := make([]entity.AppliedRule, 0, len(rules))
	for _, rule := range rules {
		price = price.Add(price.Mul(rule.MarkupPercentage).Div(hundred))
		applied = append(applied, entity.AppliedRule{
			RuleID:           rule.ID,
			RuleName:         rule.Name,
			MarkupPercentage: rule.MarkupPercentage,
			Priority:         rule.Priority,
		})
	}

	final := price.Round(2)
	margin := final.Sub(base)
	marginPct := decimal.Zero
	if base.GreaterThan(decimal.Zero) {
		marginPct = margin.Div(base).Mul(hundred)
	}

	return &entity.PricedProduct{
		SKU:               product.SKU,
		Name:              product.Name,
		BasePrice:         base,
		FinalPrice:        final,
		AppliedRules:      applied,
		PreferredSupplier: preferred.SupplierName,
		Margin:            margin,
		MarginPercentage:  marginPct,
	}, nil
}

// PriceBySKU calcula el precio del producto indicado.
func (uc *UseCase) PriceBySKU(sku string) (*entity.PricedProduct, error) {
	product, err := uc.catalogRepo.GetBySKU(sku)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrProductNotFound
	}
	return uc.PriceFor(product)
}

// PriceAll calcula precios para todos los productos activos del catálogo.
// Los productos sin variantes se omiten del resultado.
func (uc *UseCase) PriceAll() ([]entity.PricedProduct, error) {
	products, err := uc.catalogRepo.List()
	if err != nil {
		return nil, err
	}
	out := make([]entity.PricedProduct, 0, len(products))
	for _, p := range products {
		if p.Status != entity.ProductStatusActive {
			continue
		}
		priced, err := uc.PriceFor(p)
		if err != nil {
			continue
		}
		out = append(out, *priced)
	}
	return out, nil
}

// applicableRules filtra y ordena las reglas que aplican al producto con el
// proveedor preferido indicado, por prioridad ascendente (menor = primero).
func (uc *UseCase) applicableRules(product *entity.MasterProduct, supplierName string) ([]*entity.PricingRule, error) {
	all, err := uc.ruleRepo.List()
	if err != nil {
		return nil, err
	}
	rules := make([]*entity.PricingRule, 0, len(all))
	for _, rule := range all {
		if !rule.IsActive {
			continue
		}
		if rule.Supplier != supplierName {
			continue
		}
		if rule.Category != product.Category {
			continue
		}
		if rule.ProductSKU != "" && rule.ProductSKU != product.SKU {
			continue
		}
		rules = append(rules, rule)
	}
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].Priority < rules[j].Priority
	})
	return rules, nil
}
