package app

import (
	"context"

	"chronos-analytics/internal/core"
)

// ApplicationService is the single interface all adapters (CLI, Web) call.
// It decouples presentation from the analysis engine. Implementations must
// contain no fmt.Println, no ANSI codes, and no display logic of any kind.
type ApplicationService interface {
	// GetCompleteAnalysis runs all seven analyzers and merges their reports.
	GetCompleteAnalysis(ctx context.Context) (*core.CompleteReport, error)

	// GetDataQualityReport reconciles a complete analysis against the
	// configured baselines.
	GetDataQualityReport(ctx context.Context) (*core.QualityReport, error)

	// GetClientAnalysis returns the client base analysis.
	GetClientAnalysis(ctx context.Context) (*core.ClientsReport, error)

	// GetSalesAnalysis returns the sales analysis.
	GetSalesAnalysis(ctx context.Context) (*core.SalesReport, error)

	// GetPurchaseOrderAnalysis returns the purchase order analysis.
	GetPurchaseOrderAnalysis(ctx context.Context) (*core.PurchaseOrdersReport, error)

	// GetDistributorAnalysis returns the distributor analysis with derived debt.
	GetDistributorAnalysis(ctx context.Context) (*core.DistributorsReport, error)

	// GetExpenseAnalysis returns the combined expense and payment analysis.
	GetExpenseAnalysis(ctx context.Context) (*core.ExpensesPaymentsReport, error)

	// GetBankAnalysis returns per-bank balances, movement totals, and history.
	GetBankAnalysis(ctx context.Context) (*core.BanksReport, error)

	// GetInventoryAnalysis returns the inventory valuation analysis.
	GetInventoryAnalysis(ctx context.Context) (*core.InventoryReport, error)
}
