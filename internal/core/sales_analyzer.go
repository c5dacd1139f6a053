package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// Payment status values as stored on sale documents.
const (
	saleStatusPending   = "pendiente"
	saleStatusPartial   = "parcial"
	saleStatusSettled   = "pagado"
	saleStatusCancelled = "cancelado"
)

// SalesByStatus buckets valid sales by payment status. Unrecognized status
// strings are counted in the totals but not in any bucket.
type SalesByStatus struct {
	Pending   int `json:"pending"`
	Partial   int `json:"partial"`
	Settled   int `json:"settled"`
	Cancelled int `json:"cancelled"`
}

// SalesReport is the validated sales analysis.
type SalesReport struct {
	Total        int             `json:"total"`
	ByStatus     SalesByStatus   `json:"by_status"`
	TotalAmount  decimal.Decimal `json:"total_amount"`
	TotalPaid    decimal.Decimal `json:"total_paid"`
	TotalPending decimal.Decimal `json:"total_pending"`
	AverageSale  decimal.Decimal `json:"average_sale"`
	DataQuality  DataQuality     `json:"data_quality"`
}

func validSale(r store.Record) bool {
	return r.Num("total") > 0
}

func (s *analysisService) AnalyzeSales(ctx context.Context) (*SalesReport, error) {
	sales, err := s.store.FetchAll(ctx, colSales)
	if err != nil {
		return nil, fmt.Errorf("analyze sales: %w", err)
	}

	valid := filterRecords(sales, validSale)

	report := &SalesReport{
		Total:       len(valid),
		AverageSale: decimal.Zero,
		DataQuality: newDataQuality(len(sales), len(valid)),
	}

	totalAmount := decimal.Zero
	for _, sale := range valid {
		totalAmount = totalAmount.Add(decimal.NewFromFloat(sale.Num("total")))
		switch sale.Str("estadoPago") {
		case saleStatusPending:
			report.ByStatus.Pending++
		case saleStatusPartial:
			report.ByStatus.Partial++
		case saleStatusSettled:
			report.ByStatus.Settled++
		case saleStatusCancelled:
			report.ByStatus.Cancelled++
		}
	}

	report.TotalAmount = Round2(totalAmount)
	report.TotalPaid = Round2(SumValid(valid, "montoPagado"))
	report.TotalPending = Round2(SumValid(valid, "saldoPendiente"))
	if len(valid) > 0 {
		// Guard against a zero divisor: no valid sales means average 0.
		report.AverageSale = totalAmount.DivRound(decimal.NewFromInt(int64(len(valid))), 2)
	}

	return report, nil
}
