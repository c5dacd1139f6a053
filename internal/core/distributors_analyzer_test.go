package core_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/core"
	"chronos-analytics/internal/store"
)

func TestAnalyzeDistributors_DebtDerivation(t *testing.T) {
	ms := store.NewMemStore()
	ms.Put("distribuidores",
		store.Record{"id": "D1", "nombre": "Dist Uno", "activo": true},
	)
	ms.Put("compras",
		store.Record{"id": "po1", "distribuidorId": "D1", "estado": "pendiente", "saldoPendiente": 500.0},
		// Received orders carry no payable balance, whatever their field says.
		store.Record{"id": "po2", "distribuidorId": "D1", "estado": "recibida", "saldoPendiente": 999.0},
		store.Record{"id": "po3", "distribuidorId": "otra", "estado": "pendiente", "saldoPendiente": 250.0},
	)

	report, err := core.NewAnalysisService(ms).AnalyzeDistributors(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeDistributors failed: %v", err)
	}

	if report.Total != 1 {
		t.Fatalf("Total = %d, want 1", report.Total)
	}
	d := report.Distributors[0]
	if !d.Debt.Equal(decimal.NewFromInt(500)) {
		t.Errorf("D1 debt = %s, want 500 (received order must not count)", d.Debt)
	}
	if d.PendingOrders != 1 {
		t.Errorf("D1 pending orders = %d, want 1", d.PendingOrders)
	}
	if report.WithDebt != 1 || report.DebtFree != 0 {
		t.Errorf("WithDebt/DebtFree = %d/%d, want 1/0", report.WithDebt, report.DebtFree)
	}
	if !report.TotalDebt.Equal(decimal.NewFromInt(500)) {
		t.Errorf("TotalDebt = %s, want 500", report.TotalDebt)
	}
}

func TestAnalyzeDistributors_ValidityAndSplits(t *testing.T) {
	ms := store.NewMemStore()
	ms.Put("distribuidores",
		store.Record{"id": "D1", "nombre": "Uno", "activo": true},
		store.Record{"id": "D2", "nombre": "Dos"},                   // active absent: not explicitly false, valid
		store.Record{"id": "D3", "nombre": "Tres", "activo": false}, // inactive: invalid
		store.Record{"id": "D4", "nombre": "  "},                    // blank name: invalid
	)
	ms.Put("compras",
		store.Record{"id": "po1", "distribuidorId": "D1", "estado": "pendiente", "saldoPendiente": 120.0},
	)

	report, err := core.NewAnalysisService(ms).AnalyzeDistributors(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeDistributors failed: %v", err)
	}

	if report.Total != 2 {
		t.Fatalf("Total = %d, want 2", report.Total)
	}
	if report.WithDebt != 1 || report.DebtFree != 1 {
		t.Errorf("WithDebt/DebtFree = %d/%d, want 1/1", report.WithDebt, report.DebtFree)
	}
	dq := report.DataQuality
	if dq.TotalRecords != 4 || dq.ValidRecords != 2 {
		t.Errorf("DataQuality = %+v, want 4 total / 2 valid", dq)
	}
}
