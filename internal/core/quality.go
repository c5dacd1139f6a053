package core

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
)

// CheckStatus is the outcome of one baseline reconciliation check.
type CheckStatus string

const (
	StatusCorrect     CheckStatus = "CORRECT"
	StatusNeedsReview CheckStatus = "NEEDS-REVIEW"
)

// QualityCheck compares one observed count against its expected baseline.
type QualityCheck struct {
	Name     string      `json:"name"`
	Observed int         `json:"observed"`
	Expected string      `json:"expected"`
	Status   CheckStatus `json:"status"`
}

// QualityReport is the read-only diagnostic comparing a complete analysis
// against the expected baselines. No remediation is performed.
type QualityReport struct {
	GeneratedAt time.Time      `json:"generated_at"`
	Checks      []QualityCheck `json:"checks"`
	AllCorrect  bool           `json:"all_correct"`
}

// Baselines are the expected record counts and tolerance bands for one
// tenant's dataset. The defaults match the production CHRONOS dataset;
// inject different values for other tenants.
type Baselines struct {
	Clients                 int
	ClientsTolerance        int
	PurchaseOrders          int
	PurchaseOrdersTolerance int
	DistributorsMin         int
	DistributorsMax         int
	DebtFreeDistributors    int
	Sales                   int
	SalesTolerance          int
	Transactions            int
	TransactionsTolerance   int
}

// DefaultBaselines returns the production dataset expectations.
func DefaultBaselines() Baselines {
	return Baselines{
		Clients:                 31,
		ClientsTolerance:        1,
		PurchaseOrders:          9,
		PurchaseOrdersTolerance: 1,
		DistributorsMin:         2,
		DistributorsMax:         6,
		DebtFreeDistributors:    2,
		Sales:                   96,
		SalesTolerance:          1,
		Transactions:            306,
		TransactionsTolerance:   10,
	}
}

// BaselinesFromEnv returns DefaultBaselines with any QUALITY_EXPECTED_*
// environment overrides applied.
func BaselinesFromEnv() Baselines {
	b := DefaultBaselines()
	envInt("QUALITY_EXPECTED_CLIENTS", &b.Clients)
	envInt("QUALITY_EXPECTED_PURCHASE_ORDERS", &b.PurchaseOrders)
	envInt("QUALITY_EXPECTED_SALES", &b.Sales)
	envInt("QUALITY_EXPECTED_TRANSACTIONS", &b.Transactions)
	envInt("QUALITY_EXPECTED_DEBT_FREE_DISTRIBUTORS", &b.DebtFreeDistributors)
	return b
}

func envInt(name string, dst *int) {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// ── Service ───────────────────────────────────────────────────────────────────

// QualityService reconciles a complete analysis against expected baselines.
type QualityService interface {
	// DataQualityReport runs a complete analysis and checks the five
	// reconciliation counts. Read-only: a NEEDS-REVIEW status is reported,
	// never acted on.
	DataQualityReport(ctx context.Context) (*QualityReport, error)
}

type qualityService struct {
	analysis  AnalysisService
	baselines Baselines
	now       func() time.Time
}

// NewQualityService constructs a QualityService over an AnalysisService.
func NewQualityService(analysis AnalysisService, baselines Baselines) QualityService {
	return &qualityService{analysis: analysis, baselines: baselines, now: time.Now}
}

func (s *qualityService) DataQualityReport(ctx context.Context) (*QualityReport, error) {
	report, err := s.analysis.CompleteAnalysis(ctx)
	if err != nil {
		return nil, fmt.Errorf("data quality report: %w", err)
	}
	qr := EvaluateBaselines(report, s.baselines)
	qr.GeneratedAt = s.now().UTC()
	return qr, nil
}

// EvaluateBaselines compares a complete analysis against the baselines.
// Split out as a pure function so tolerance logic is testable without a
// store.
func EvaluateBaselines(report *CompleteReport, b Baselines) *QualityReport {
	qr := &QualityReport{AllCorrect: true}

	add := func(name string, observed int, expected string, ok bool) {
		status := StatusCorrect
		if !ok {
			status = StatusNeedsReview
			qr.AllCorrect = false
		}
		qr.Checks = append(qr.Checks, QualityCheck{
			Name:     name,
			Observed: observed,
			Expected: expected,
			Status:   status,
		})
	}

	clients := report.Clients.Total
	add("clients", clients,
		fmt.Sprintf("%d ±%d", b.Clients, b.ClientsTolerance),
		within(clients, b.Clients, b.ClientsTolerance))

	purchases := report.Purchases.Total
	add("purchase_orders", purchases,
		fmt.Sprintf("%d ±%d", b.PurchaseOrders, b.PurchaseOrdersTolerance),
		within(purchases, b.PurchaseOrders, b.PurchaseOrdersTolerance))

	// The distributor check reconciles both the count range and the exact
	// debt-free count; either miss flags the check.
	distributors := report.Distributors.Total
	add("distributors", distributors,
		fmt.Sprintf("between %d and %d with exactly %d debt-free",
			b.DistributorsMin, b.DistributorsMax, b.DebtFreeDistributors),
		distributors >= b.DistributorsMin && distributors <= b.DistributorsMax &&
			report.Distributors.DebtFree == b.DebtFreeDistributors)

	sales := report.Sales.Total
	add("sales", sales,
		fmt.Sprintf("%d ±%d", b.Sales, b.SalesTolerance),
		within(sales, b.Sales, b.SalesTolerance))

	transactions := report.Expenses.TransactionCount
	add("expense_payment_transactions", transactions,
		fmt.Sprintf("%d ±%d", b.Transactions, b.TransactionsTolerance),
		within(transactions, b.Transactions, b.TransactionsTolerance))

	return qr
}

func within(observed, expected, tolerance int) bool {
	diff := observed - expected
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
