package core

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// ClientDebtor is one entry in the top-debtor ranking.
type ClientDebtor struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	PendingBalance decimal.Decimal `json:"pending_balance"`
}

// ClientsReport is the validated client base analysis.
type ClientsReport struct {
	Total       int             `json:"total"`
	Active      int             `json:"active"`
	WithCredit  int             `json:"with_credit"`
	WithDebt    int             `json:"with_debt"`
	TotalDebt   decimal.Decimal `json:"total_debt"`
	TopDebtors  []ClientDebtor  `json:"top_debtors"`
	DataQuality DataQuality     `json:"data_quality"`
}

// validClient requires a non-blank name and at least one non-zero monetary
// field. A client with a name but all-zero figures is a placeholder record,
// not a client.
func validClient(r store.Record) bool {
	if !IsValid(r["nombre"]) {
		return false
	}
	return IsValid(r["limiteCredito"]) || IsValid(r["saldoPendiente"]) || IsValid(r["totalCompras"])
}

func (s *analysisService) AnalyzeClients(ctx context.Context) (*ClientsReport, error) {
	clients, err := s.store.FetchAll(ctx, colClients)
	if err != nil {
		return nil, fmt.Errorf("analyze clients: %w", err)
	}

	valid := filterRecords(clients, validClient)

	report := &ClientsReport{
		Total: len(valid),
		Active: CountWhere(valid, func(r store.Record) bool {
			return r.Num("saldoPendiente") > 0 || r.Num("totalCompras") > 0
		}),
		WithCredit: CountWhere(valid, func(r store.Record) bool {
			return r.Num("limiteCredito") > 0
		}),
		TotalDebt:   Round2(SumValid(valid, "saldoPendiente")),
		DataQuality: newDataQuality(len(clients), len(valid)),
	}

	debtors := filterRecords(valid, func(r store.Record) bool {
		return r.Num("saldoPendiente") > 0
	})
	report.WithDebt = len(debtors)

	// Rank descending by pending balance; stable sort keeps original order
	// for ties.
	sort.SliceStable(debtors, func(i, j int) bool {
		return debtors[i].Num("saldoPendiente") > debtors[j].Num("saldoPendiente")
	})
	if len(debtors) > 5 {
		debtors = debtors[:5]
	}
	for _, d := range debtors {
		report.TopDebtors = append(report.TopDebtors, ClientDebtor{
			ID:             d.ID(),
			Name:           d.Str("nombre"),
			PendingBalance: Round2(decimal.NewFromFloat(d.Num("saldoPendiente"))),
		})
	}

	return report, nil
}
