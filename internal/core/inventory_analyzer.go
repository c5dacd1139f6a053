package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// defaultMinStock is the low-stock threshold for products without an
// explicit stockMinimo field.
const defaultMinStock = 5

// ProductValue is one product with its computed stock value.
type ProductValue struct {
	ID       string          `json:"id"`
	Name     string          `json:"name"`
	Stock    float64         `json:"stock"`
	UnitCost decimal.Decimal `json:"unit_cost"`
	Value    decimal.Decimal `json:"value"`
}

// InventoryReport is the validated inventory analysis.
type InventoryReport struct {
	Total           int             `json:"total"`
	TotalStockValue decimal.Decimal `json:"total_stock_value"`
	LowStock        []ProductValue  `json:"low_stock"`
	OutOfStock      []ProductValue  `json:"out_of_stock"`
	TopByValue      []ProductValue  `json:"top_by_value"`
	DataQuality     DataQuality     `json:"data_quality"`
}

// validProduct requires a defined stock figure (explicit zero counts) and
// active not explicitly false.
func validProduct(r store.Record) bool {
	_, ok := r.NumOK("stock")
	return ok && r.Bool("activo", true)
}

func (s *analysisService) AnalyzeInventory(ctx context.Context) (*InventoryReport, error) {
	products, err := s.store.FetchAll(ctx, colProducts)
	if err != nil {
		return nil, fmt.Errorf("analyze inventory: %w", err)
	}

	valid := filterRecords(products, validProduct)

	report := &InventoryReport{
		Total:       len(valid),
		DataQuality: newDataQuality(len(products), len(valid)),
	}

	totalValue := decimal.Zero
	values := make([]ProductValue, 0, len(valid))

	for _, p := range valid {
		stock := p.Num("stock")
		unitCost := decimal.NewFromFloat(p.Num("costoUnitario"))
		value := decimal.NewFromFloat(stock).Mul(unitCost)
		totalValue = totalValue.Add(value)

		pv := ProductValue{
			ID:       p.ID(),
			Name:     p.Str("nombre"),
			Stock:    stock,
			UnitCost: Round2(unitCost),
			Value:    Round2(value),
		}
		values = append(values, pv)

		minStock := float64(defaultMinStock)
		if n, ok := p.NumOK("stockMinimo"); ok {
			minStock = n
		}
		switch {
		case stock == 0:
			report.OutOfStock = append(report.OutOfStock, pv)
		case stock <= minStock:
			report.LowStock = append(report.LowStock, pv)
		}
	}

	// Top 10 by computed value, descending; stable sort keeps original
	// order for ties.
	sort.SliceStable(values, func(i, j int) bool {
		return values[i].Value.GreaterThan(values[j].Value)
	})
	if len(values) > 10 {
		values = values[:10]
	}
	report.TopByValue = values

	report.TotalStockValue = Round2(totalValue)
	return report, nil
}
