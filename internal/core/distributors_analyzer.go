package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// DistributorDebt is one distributor with its derived debt position.
type DistributorDebt struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Debt          decimal.Decimal `json:"debt"`
	PendingOrders int             `json:"pending_orders"`
}

// DistributorsReport is the validated distributor analysis. Debt is derived,
// not stored: each distributor's debt is the sum of pending balances across
// its purchase orders with status pending.
type DistributorsReport struct {
	Total        int               `json:"total"`
	WithDebt     int               `json:"with_debt"`
	DebtFree     int               `json:"debt_free"`
	TotalDebt    decimal.Decimal   `json:"total_debt"`
	Distributors []DistributorDebt `json:"distributors"`
	DataQuality  DataQuality       `json:"data_quality"`
}

// validDistributor requires a non-blank name and active not explicitly false.
func validDistributor(r store.Record) bool {
	return IsValid(r["nombre"]) && r.Bool("activo", true)
}

func (s *analysisService) AnalyzeDistributors(ctx context.Context) (*DistributorsReport, error) {
	distributors, err := s.store.FetchAll(ctx, colDistributors)
	if err != nil {
		return nil, fmt.Errorf("analyze distributors: %w", err)
	}
	purchases, err := s.store.FetchAll(ctx, colPurchases)
	if err != nil {
		return nil, fmt.Errorf("analyze distributors: %w", err)
	}

	valid := filterRecords(distributors, validDistributor)

	report := &DistributorsReport{
		Total:       len(valid),
		DataQuality: newDataQuality(len(distributors), len(valid)),
	}

	totalDebt := decimal.Zero
	for _, d := range valid {
		entry := DistributorDebt{
			ID:   d.ID(),
			Name: d.Str("nombre"),
			Debt: decimal.Zero,
		}

		// Join: this distributor's purchase orders with status pending.
		// Received and cancelled orders carry no payable balance.
		for _, po := range purchases {
			if po.Str("distribuidorId") != entry.ID || po.Str("estado") != purchaseStatusPending {
				continue
			}
			entry.PendingOrders++
			if n, ok := po.NumOK("saldoPendiente"); ok {
				entry.Debt = entry.Debt.Add(decimal.NewFromFloat(n))
			}
		}

		totalDebt = totalDebt.Add(entry.Debt)
		if entry.Debt.GreaterThan(decimal.Zero) {
			report.WithDebt++
		} else {
			report.DebtFree++
		}

		entry.Debt = Round2(entry.Debt)
		report.Distributors = append(report.Distributors, entry)
	}

	report.TotalDebt = Round2(totalDebt)
	return report, nil
}
