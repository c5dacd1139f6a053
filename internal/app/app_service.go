package app

import (
	"context"

	"chronos-analytics/internal/core"
)

type appService struct {
	analysis core.AnalysisService
	quality  core.QualityService
}

// NewAppService wires the analysis and quality services behind the
// ApplicationService interface.
func NewAppService(analysis core.AnalysisService, quality core.QualityService) ApplicationService {
	return &appService{analysis: analysis, quality: quality}
}

func (s *appService) GetCompleteAnalysis(ctx context.Context) (*core.CompleteReport, error) {
	return s.analysis.CompleteAnalysis(ctx)
}

func (s *appService) GetDataQualityReport(ctx context.Context) (*core.QualityReport, error) {
	return s.quality.DataQualityReport(ctx)
}

func (s *appService) GetClientAnalysis(ctx context.Context) (*core.ClientsReport, error) {
	return s.analysis.AnalyzeClients(ctx)
}

func (s *appService) GetSalesAnalysis(ctx context.Context) (*core.SalesReport, error) {
	return s.analysis.AnalyzeSales(ctx)
}

func (s *appService) GetPurchaseOrderAnalysis(ctx context.Context) (*core.PurchaseOrdersReport, error) {
	return s.analysis.AnalyzePurchaseOrders(ctx)
}

func (s *appService) GetDistributorAnalysis(ctx context.Context) (*core.DistributorsReport, error) {
	return s.analysis.AnalyzeDistributors(ctx)
}

func (s *appService) GetExpenseAnalysis(ctx context.Context) (*core.ExpensesPaymentsReport, error) {
	return s.analysis.AnalyzeExpensesAndPayments(ctx)
}

func (s *appService) GetBankAnalysis(ctx context.Context) (*core.BanksReport, error) {
	return s.analysis.AnalyzeBankBalances(ctx)
}

func (s *appService) GetInventoryAnalysis(ctx context.Context) (*core.InventoryReport, error) {
	return s.analysis.AnalyzeInventory(ctx)
}
