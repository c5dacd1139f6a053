package core_test

import (
	"context"
	"testing"

	"chronos-analytics/internal/core"
)

func fabricatedReport(clients, purchases, distributors, debtFree, sales, transactions int) *core.CompleteReport {
	return &core.CompleteReport{
		Clients:      &core.ClientsReport{Total: clients},
		Purchases:    &core.PurchaseOrdersReport{Total: purchases},
		Distributors: &core.DistributorsReport{Total: distributors, DebtFree: debtFree},
		Sales:        &core.SalesReport{Total: sales},
		Expenses:     &core.ExpensesPaymentsReport{TransactionCount: transactions},
	}
}

func checkByName(t *testing.T, qr *core.QualityReport, name string) core.QualityCheck {
	t.Helper()
	for _, c := range qr.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q not found in %+v", name, qr.Checks)
	return core.QualityCheck{}
}

func TestEvaluateBaselines_AllWithinTolerance(t *testing.T) {
	b := core.DefaultBaselines()

	cases := []struct {
		name    string
		clients int
	}{
		{"exact", 31},
		{"lower edge", 30},
		{"upper edge", 32},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qr := core.EvaluateBaselines(fabricatedReport(tc.clients, 9, 4, 2, 96, 306), b)
			if !qr.AllCorrect {
				t.Fatalf("AllCorrect = false, checks: %+v", qr.Checks)
			}
			if len(qr.Checks) != 5 {
				t.Fatalf("got %d checks, want 5", len(qr.Checks))
			}
			for _, c := range qr.Checks {
				if c.Status != core.StatusCorrect {
					t.Errorf("check %s = %s, want %s", c.Name, c.Status, core.StatusCorrect)
				}
			}
		})
	}
}

func TestEvaluateBaselines_OutOfTolerance(t *testing.T) {
	b := core.DefaultBaselines()

	qr := core.EvaluateBaselines(fabricatedReport(25, 9, 4, 2, 96, 306), b)
	if qr.AllCorrect {
		t.Error("AllCorrect = true with clients far off baseline")
	}
	if c := checkByName(t, qr, "clients"); c.Status != core.StatusNeedsReview || c.Observed != 25 {
		t.Errorf("clients check = %+v, want NEEDS-REVIEW at 25", c)
	}
	// One failing check must not contaminate the others.
	if c := checkByName(t, qr, "sales"); c.Status != core.StatusCorrect {
		t.Errorf("sales check = %+v, want CORRECT", c)
	}

	// Transactions tolerance is the wide one: ±10.
	qr = core.EvaluateBaselines(fabricatedReport(31, 9, 4, 2, 96, 316), b)
	if c := checkByName(t, qr, "expense_payment_transactions"); c.Status != core.StatusCorrect {
		t.Errorf("transactions at 316 = %s, want CORRECT (within ±10)", c.Status)
	}
	qr = core.EvaluateBaselines(fabricatedReport(31, 9, 4, 2, 96, 317), b)
	if c := checkByName(t, qr, "expense_payment_transactions"); c.Status != core.StatusNeedsReview {
		t.Errorf("transactions at 317 = %s, want NEEDS-REVIEW", c.Status)
	}
}

func TestEvaluateBaselines_DistributorCheck(t *testing.T) {
	b := core.DefaultBaselines()

	cases := []struct {
		name     string
		total    int
		debtFree int
		want     core.CheckStatus
	}{
		{"in range, exact debt-free", 4, 2, core.StatusCorrect},
		{"range minimum", 2, 2, core.StatusCorrect},
		{"range maximum", 6, 2, core.StatusCorrect},
		{"over range even with exact debt-free", 7, 2, core.StatusNeedsReview},
		{"under range", 1, 2, core.StatusNeedsReview},
		{"in range, wrong debt-free", 4, 3, core.StatusNeedsReview},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			qr := core.EvaluateBaselines(fabricatedReport(31, 9, tc.total, tc.debtFree, 96, 306), b)
			if c := checkByName(t, qr, "distributors"); c.Status != tc.want {
				t.Errorf("distributors check = %s, want %s", c.Status, tc.want)
			}
		})
	}
}

func TestDataQualityReport_OverStore(t *testing.T) {
	ms := seedStore()

	// Baselines matching the seeded dataset exactly.
	b := core.Baselines{
		Clients:              2,
		PurchaseOrders:       1,
		DistributorsMin:      1,
		DistributorsMax:      3,
		DebtFreeDistributors: 1,
		Sales:                2,
		Transactions:         2,
	}
	analysis := core.NewAnalysisService(ms)
	qr, err := core.NewQualityService(analysis, b).DataQualityReport(context.Background())
	if err != nil {
		t.Fatalf("DataQualityReport failed: %v", err)
	}
	if !qr.AllCorrect {
		t.Errorf("AllCorrect = false, checks: %+v", qr.Checks)
	}
	if qr.GeneratedAt.IsZero() {
		t.Error("GeneratedAt not set")
	}
}

func TestDataQualityReport_PropagatesAnalysisFailure(t *testing.T) {
	ms := seedStore()
	ms.FailWith("clientes", context.DeadlineExceeded)

	analysis := core.NewAnalysisService(ms)
	_, err := core.NewQualityService(analysis, core.DefaultBaselines()).DataQualityReport(context.Background())
	if err == nil {
		t.Fatal("expected error when the underlying analysis fails")
	}
}

func TestBaselinesFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUALITY_EXPECTED_CLIENTS", "40")
	t.Setenv("QUALITY_EXPECTED_TRANSACTIONS", "not-a-number")

	b := core.BaselinesFromEnv()
	if b.Clients != 40 {
		t.Errorf("Clients = %d, want env override 40", b.Clients)
	}
	if b.Transactions != 306 {
		t.Errorf("Transactions = %d, want default 306 on unparsable override", b.Transactions)
	}
	if b.Sales != 96 {
		t.Errorf("Sales = %d, want untouched default 96", b.Sales)
	}
}
