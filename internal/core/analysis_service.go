package core

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"chronos-analytics/internal/store"
)

// Collection names as written by the CHRONOS front end.
const (
	colClients       = "clientes"
	colSales         = "ventas"
	colPurchases     = "compras"
	colDistributors  = "distribuidores"
	colBanks         = "bancos"
	colBankMovements = "movimientosBancarios"
	colProducts      = "productos"
	colExpenses      = "gastos"
)

// DataQuality summarizes how much of a collection survived validity
// filtering. ValidityRate is a percentage rounded to 2 decimals, 0 for an
// empty collection.
type DataQuality struct {
	TotalRecords   int     `json:"total_records"`
	ValidRecords   int     `json:"valid_records"`
	InvalidRecords int     `json:"invalid_records"`
	ValidityRate   float64 `json:"validity_rate"`
}

func newDataQuality(total, valid int) DataQuality {
	dq := DataQuality{
		TotalRecords:   total,
		ValidRecords:   valid,
		InvalidRecords: total - valid,
	}
	if total > 0 {
		dq.ValidityRate = decimal.NewFromInt(int64(valid) * 100).
			DivRound(decimal.NewFromInt(int64(total)), 2).
			InexactFloat64()
	}
	return dq
}

// ── Interface ─────────────────────────────────────────────────────────────────

// AnalysisService produces validated aggregate reports over the CHRONOS
// collections. Every call is a one-shot read-compute-return: the service
// holds no state between calls and never writes to the store, so it is safe
// to invoke concurrently from multiple callers.
type AnalysisService interface {
	// AnalyzeClients filters to valid clients (non-blank name plus at least
	// one non-zero monetary field) and reports activity splits, total
	// outstanding debt, and the top-5 debtor ranking.
	AnalyzeClients(ctx context.Context) (*ClientsReport, error)

	// AnalyzeSales filters to sales with a positive total, buckets them by
	// payment status, and sums total/paid/pending amounts.
	AnalyzeSales(ctx context.Context) (*SalesReport, error)

	// AnalyzePurchaseOrders filters to orders with a positive total and a
	// non-empty line-item list, buckets by status, and groups count and
	// total per distributor reference.
	AnalyzePurchaseOrders(ctx context.Context) (*PurchaseOrdersReport, error)

	// AnalyzeDistributors filters to named, active distributors and derives
	// each one's debt by joining against its pending purchase orders.
	AnalyzeDistributors(ctx context.Context) (*DistributorsReport, error)

	// AnalyzeExpensesAndPayments filters expenses with a positive amount,
	// buckets them by category, scans every sale's embedded payment list,
	// and reports the combined transaction count and amount.
	AnalyzeExpensesAndPayments(ctx context.Context) (*ExpensesPaymentsReport, error)

	// AnalyzeBankBalances reports each bank's stored balance, entry/exit
	// totals from its movements, and up to 3 trailing monthly cuts, plus a
	// consolidated summary across banks.
	AnalyzeBankBalances(ctx context.Context) (*BanksReport, error)

	// AnalyzeInventory filters to active products with a defined stock
	// (zero included), values the stock, and flags low/out-of-stock subsets.
	AnalyzeInventory(ctx context.Context) (*InventoryReport, error)

	// CompleteAnalysis runs all seven analyzers concurrently and merges
	// their reports. The join waits for all and fails fast: one failing
	// fetch fails the whole call, with no partial results.
	CompleteAnalysis(ctx context.Context) (*CompleteReport, error)
}

// ── Implementation ────────────────────────────────────────────────────────────

type analysisService struct {
	store store.Store
	now   func() time.Time
}

// NewAnalysisService constructs an AnalysisService backed by the given store.
func NewAnalysisService(st store.Store) AnalysisService {
	return &analysisService{store: st, now: time.Now}
}

// ── CompleteAnalysis ──────────────────────────────────────────────────────────

// CompleteReport merges the seven entity reports plus the headline summary.
type CompleteReport struct {
	GeneratedAt   time.Time               `json:"generated_at"`
	Clients       *ClientsReport          `json:"clients"`
	Sales         *SalesReport            `json:"sales"`
	Purchases     *PurchaseOrdersReport   `json:"purchase_orders"`
	Distributors  *DistributorsReport     `json:"distributors"`
	Expenses      *ExpensesPaymentsReport `json:"expenses_payments"`
	Banks         *BanksReport            `json:"banks"`
	Inventory     *InventoryReport        `json:"inventory"`
	Summary       Summary                 `json:"summary"`
}

// Summary is the headline projection each analyzer exposes, assembled for
// dashboard consumption.
type Summary struct {
	TotalClients        int             `json:"total_clients"`
	ClientDebt          decimal.Decimal `json:"client_debt"`
	TotalSales          int             `json:"total_sales"`
	SalesAmount         decimal.Decimal `json:"sales_amount"`
	SalesPending        decimal.Decimal `json:"sales_pending"`
	TotalPurchaseOrders int             `json:"total_purchase_orders"`
	PurchasesAmount     decimal.Decimal `json:"purchases_amount"`
	TotalDistributors   int             `json:"total_distributors"`
	DistributorDebt     decimal.Decimal `json:"distributor_debt"`
	TotalBankBalance    decimal.Decimal `json:"total_bank_balance"`
	TotalProducts       int             `json:"total_products"`
	InventoryValue      decimal.Decimal `json:"inventory_value"`
	TransactionCount    int             `json:"transaction_count"`
	TransactionAmount   decimal.Decimal `json:"transaction_amount"`
}

func (s *analysisService) CompleteAnalysis(ctx context.Context) (*CompleteReport, error) {
	report := &CompleteReport{GeneratedAt: s.now().UTC()}

	// Fan-out/fan-in: the analyzers are independent, side-effect-free reads.
	// Each goroutine writes a distinct report field, so no lock is needed.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { report.Clients, err = s.AnalyzeClients(gctx); return })
	g.Go(func() (err error) { report.Sales, err = s.AnalyzeSales(gctx); return })
	g.Go(func() (err error) { report.Purchases, err = s.AnalyzePurchaseOrders(gctx); return })
	g.Go(func() (err error) { report.Distributors, err = s.AnalyzeDistributors(gctx); return })
	g.Go(func() (err error) { report.Expenses, err = s.AnalyzeExpensesAndPayments(gctx); return })
	g.Go(func() (err error) { report.Banks, err = s.AnalyzeBankBalances(gctx); return })
	g.Go(func() (err error) { report.Inventory, err = s.AnalyzeInventory(gctx); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report.Summary = Summary{
		TotalClients:        report.Clients.Total,
		ClientDebt:          report.Clients.TotalDebt,
		TotalSales:          report.Sales.Total,
		SalesAmount:         report.Sales.TotalAmount,
		SalesPending:        report.Sales.TotalPending,
		TotalPurchaseOrders: report.Purchases.Total,
		PurchasesAmount:     report.Purchases.TotalAmount,
		TotalDistributors:   report.Distributors.Total,
		DistributorDebt:     report.Distributors.TotalDebt,
		TotalBankBalance:    report.Banks.TotalBalance,
		TotalProducts:       report.Inventory.Total,
		InventoryValue:      report.Inventory.TotalStockValue,
		TransactionCount:    report.Expenses.TransactionCount,
		TransactionAmount:   report.Expenses.TransactionAmount,
	}
	return report, nil
}
