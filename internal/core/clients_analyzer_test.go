package core_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/core"
	"chronos-analytics/internal/store"
)

func TestAnalyzeClients_ValidityRule(t *testing.T) {
	ms := store.NewMemStore()
	ms.Put("clientes",
		// All monetary fields zero: placeholder record, invalid.
		store.Record{"id": "a", "nombre": "A", "limiteCredito": 0.0, "saldoPendiente": 0.0, "totalCompras": 0.0},
		// Blank name: invalid regardless of monetary fields.
		store.Record{"id": "x", "nombre": "", "limiteCredito": 100.0},
		// Valid: named with a non-zero balance.
		store.Record{"id": "b", "nombre": "B", "saldoPendiente": 50.0},
	)

	report, err := core.NewAnalysisService(ms).AnalyzeClients(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeClients failed: %v", err)
	}

	if report.Total != 1 {
		t.Fatalf("Total = %d, want 1", report.Total)
	}
	if report.WithDebt != 1 {
		t.Errorf("WithDebt = %d, want 1", report.WithDebt)
	}
	if !report.TotalDebt.Equal(decimal.NewFromInt(50)) {
		t.Errorf("TotalDebt = %s, want 50", report.TotalDebt)
	}
	if len(report.TopDebtors) != 1 || report.TopDebtors[0].Name != "B" {
		t.Errorf("TopDebtors = %+v, want single entry B", report.TopDebtors)
	}

	dq := report.DataQuality
	if dq.TotalRecords != 3 || dq.ValidRecords != 1 || dq.InvalidRecords != 2 {
		t.Errorf("DataQuality = %+v, want 3/1/2", dq)
	}
	if dq.ValidityRate != 33.33 {
		t.Errorf("ValidityRate = %v, want 33.33", dq.ValidityRate)
	}
}

func TestAnalyzeClients_TopDebtorRanking(t *testing.T) {
	ms := store.NewMemStore()
	ms.Put("clientes",
		store.Record{"id": "c1", "nombre": "C1", "saldoPendiente": 100.0},
		store.Record{"id": "c2", "nombre": "C2", "saldoPendiente": 500.0},
		store.Record{"id": "c3", "nombre": "C3", "saldoPendiente": 500.0}, // tie with c2
		store.Record{"id": "c4", "nombre": "C4", "saldoPendiente": 50.0},
		store.Record{"id": "c5", "nombre": "C5", "saldoPendiente": 300.0},
		store.Record{"id": "c6", "nombre": "C6", "saldoPendiente": 200.0},
		store.Record{"id": "c7", "nombre": "C7", "saldoPendiente": 75.0},
		// No debt: counted as valid via totalCompras but never ranked.
		store.Record{"id": "c8", "nombre": "C8", "totalCompras": 900.0},
	)

	report, err := core.NewAnalysisService(ms).AnalyzeClients(context.Background())
	if err != nil {
		t.Fatalf("AnalyzeClients failed: %v", err)
	}

	if report.Total != 8 {
		t.Errorf("Total = %d, want 8", report.Total)
	}
	if report.WithDebt != 7 {
		t.Errorf("WithDebt = %d, want 7", report.WithDebt)
	}
	if report.Active != 8 {
		t.Errorf("Active = %d, want 8", report.Active)
	}

	wantOrder := []string{"c2", "c3", "c5", "c6", "c1"}
	if len(report.TopDebtors) != len(wantOrder) {
		t.Fatalf("TopDebtors length = %d, want %d", len(report.TopDebtors), len(wantOrder))
	}
	for i, id := range wantOrder {
		if report.TopDebtors[i].ID != id {
			t.Errorf("TopDebtors[%d] = %s, want %s (ties must keep original order)", i, report.TopDebtors[i].ID, id)
		}
	}
}
