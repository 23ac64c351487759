package main

import (
	"context"
	"time"

	"github.com/jhoicas/Catalogo-api/internal/application/dto"
	"github.com/jhoicas/Catalogo-api/internal/application/pricing"
	"github.com/jhoicas/Catalogo-api/internal/application/syncer"
	"github.com/jhoicas/Catalogo-api/internal/domain/entity"
	"github.com/jhoicas/Catalogo-api/internal/infrastructure/feed"
	"github.com/jhoicas/Catalogo-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// seedSampleData carga proveedores, lotes y reglas de demostración y corre una
// sincronización inicial. Solo en development.
func seedSampleData(syncerUC *syncer.UseCase, pricingUC *pricing.UseCase, source *feed.StaticSource, log *logger.Logger) {
	now := time.Now()

	suppliers := []struct {
		name     string
		category string
		records  []entity.NormalizedRecord
	}{
		{
			name: "TechCorp", category: "Electronics",
			records: []entity.NormalizedRecord{
				{SKU: "TC-1001", Name: "Auriculares inalámbricos", Category: "Electronics", Price: decimal.NewFromFloat(45.90), Stock: 120, SupplierName: "TechCorp", Timestamp: now},
				{SKU: "TC-1002", Name: "Teclado mecánico", Category: "Electronics", Price: decimal.NewFromFloat(78.50), Stock: 60, SupplierName: "TechCorp", Timestamp: now},
			},
		},
		{
			name: "Fashion Hub", category: "Apparel",
			records: []entity.NormalizedRecord{
				{SKU: "FH-2001", Name: "Camiseta básica", Category: "Apparel", Price: decimal.NewFromFloat(9.99), Stock: 400, SupplierName: "Fashion Hub", Timestamp: now},
			},
		},
		{
			name: "Home Goods Plus", category: "Home & Garden",
			records: []entity.NormalizedRecord{
				{SKU: "HG-3001", Name: "Lámpara de escritorio", Category: "Home & Garden", Price: decimal.NewFromFloat(24.00), Stock: 85, SupplierName: "Home Goods Plus", Timestamp: now},
			},
		},
	}

	for _, s := range suppliers {
		registered, err := syncerUC.RegisterSupplier(dto.RegisterSupplierRequest{Name: s.name, Category: s.category})
		if err != nil {
			log.Error().Err(err).Str("supplier", s.name).Msg("registrar proveedor de demo")
			continue
		}
		for i := range s.records {
			s.records[i].SupplierID = registered.ID
		}
		source.SetBatch(s.name, s.records)
	}

	rules := []dto.CreateRuleRequest{
		{Name: "Electronics Premium Markup", Supplier: "TechCorp", Category: "Electronics", MarkupPercentage: decimal.NewFromInt(25), Priority: 1, IsActive: true},
		{Name: "Fashion Standard Markup", Supplier: "Fashion Hub", Category: "Apparel", MarkupPercentage: decimal.NewFromInt(40), Priority: 2, IsActive: true},
		{Name: "Home Goods Competitive", Supplier: "Home Goods Plus", Category: "Home & Garden", MarkupPercentage: decimal.NewFromInt(15), Priority: 3, IsActive: true},
	}
	for _, r := range rules {
		if _, err := pricingUC.AddRule(r); err != nil {
			log.Error().Err(err).Str("rule", r.Name).Msg("crear regla de demo")
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if _, err := syncerUC.SyncAll(ctx); err != nil {
		log.Error().Err(err).Msg("sincronización inicial de demo")
		return
	}
	log.Info().Msg("datos de demostración cargados")
}
