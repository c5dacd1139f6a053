package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// Purchase order status values as stored on purchase documents.
const (
	purchaseStatusPending   = "pendiente"
	purchaseStatusReceived  = "recibida"
	purchaseStatusCancelled = "cancelada"
)

// NoDistributor is the sentinel bucket for purchase orders without a
// distributor reference.
const NoDistributor = "sin_distribuidor"

// PurchasesByStatus buckets valid purchase orders by status.
type PurchasesByStatus struct {
	Pending   int `json:"pending"`
	Received  int `json:"received"`
	Cancelled int `json:"cancelled"`
}

// DistributorGroup accumulates orders and totals for one distributor
// reference.
type DistributorGroup struct {
	DistributorID string          `json:"distributor_id"`
	Orders        int             `json:"orders"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
}

// PurchaseOrdersReport is the validated purchase order analysis.
type PurchaseOrdersReport struct {
	Total         int                `json:"total"`
	ByStatus      PurchasesByStatus  `json:"by_status"`
	TotalAmount   decimal.Decimal    `json:"total_amount"`
	TotalPending  decimal.Decimal    `json:"total_pending"`
	ByDistributor []DistributorGroup `json:"by_distributor"`
	DataQuality   DataQuality        `json:"data_quality"`
}

// validPurchaseOrder requires a positive total and a non-empty line-item list.
func validPurchaseOrder(r store.Record) bool {
	return r.Num("total") > 0 && IsValid(r["productos"])
}

func (s *analysisService) AnalyzePurchaseOrders(ctx context.Context) (*PurchaseOrdersReport, error) {
	purchases, err := s.store.FetchAll(ctx, colPurchases)
	if err != nil {
		return nil, fmt.Errorf("analyze purchase orders: %w", err)
	}

	valid := filterRecords(purchases, validPurchaseOrder)

	report := &PurchaseOrdersReport{
		Total:       len(valid),
		DataQuality: newDataQuality(len(purchases), len(valid)),
	}

	totalAmount := decimal.Zero
	totalPending := decimal.Zero
	groups := make(map[string]*DistributorGroup)
	var groupOrder []string

	for _, po := range valid {
		amount := decimal.NewFromFloat(po.Num("total"))
		totalAmount = totalAmount.Add(amount)

		switch po.Str("estado") {
		case purchaseStatusPending:
			report.ByStatus.Pending++
			totalPending = totalPending.Add(decimal.NewFromFloat(po.Num("saldoPendiente")))
		case purchaseStatusReceived:
			report.ByStatus.Received++
		case purchaseStatusCancelled:
			report.ByStatus.Cancelled++
		}

		distributorID := po.Str("distribuidorId")
		if distributorID == "" {
			distributorID = NoDistributor
		}
		g, ok := groups[distributorID]
		if !ok {
			g = &DistributorGroup{DistributorID: distributorID}
			groups[distributorID] = g
			groupOrder = append(groupOrder, distributorID)
		}
		g.Orders++
		g.TotalAmount = g.TotalAmount.Add(amount)
	}

	report.TotalAmount = Round2(totalAmount)
	report.TotalPending = Round2(totalPending)

	// Emit groups in first-seen order so the report is deterministic.
	for _, id := range groupOrder {
		g := groups[id]
		g.TotalAmount = Round2(g.TotalAmount)
		report.ByDistributor = append(report.ByDistributor, *g)
	}

	return report, nil
}
