package core

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"chronos-analytics/internal/store"
)

// NoCategory is the bucket for expenses without a category.
const NoCategory = "sin_categoria"

// CategoryTotal accumulates valid expenses for one category.
type CategoryTotal struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Amount   decimal.Decimal `json:"amount"`
}

// ExpensesPaymentsReport combines the expense analysis with the payments
// embedded in sale documents. TransactionCount (valid expenses + positive
// payments) is the figure reconciled against the system-wide baseline.
type ExpensesPaymentsReport struct {
	ValidExpenses     int             `json:"valid_expenses"`
	ExpenseAmount     decimal.Decimal `json:"expense_amount"`
	ByCategory        []CategoryTotal `json:"by_category"`
	Payments          int             `json:"payments"`
	PaymentAmount     decimal.Decimal `json:"payment_amount"`
	TransactionCount  int             `json:"transaction_count"`
	TransactionAmount decimal.Decimal `json:"transaction_amount"`
	DataQuality       DataQuality     `json:"data_quality"`
}

// expenseAmount resolves the amount field, preferring the current name over
// the legacy one.
func expenseAmount(r store.Record) float64 {
	return r.NumFirst("monto", "total")
}

func validExpense(r store.Record) bool {
	return expenseAmount(r) > 0
}

func (s *analysisService) AnalyzeExpensesAndPayments(ctx context.Context) (*ExpensesPaymentsReport, error) {
	expenses, err := s.store.FetchAll(ctx, colExpenses)
	if err != nil {
		return nil, fmt.Errorf("analyze expenses: %w", err)
	}
	sales, err := s.store.FetchAll(ctx, colSales)
	if err != nil {
		return nil, fmt.Errorf("analyze expenses: %w", err)
	}

	valid := filterRecords(expenses, validExpense)

	report := &ExpensesPaymentsReport{
		ValidExpenses: len(valid),
		DataQuality:   newDataQuality(len(expenses), len(valid)),
	}

	expenseTotal := decimal.Zero
	categories := make(map[string]*CategoryTotal)
	var categoryOrder []string

	for _, e := range valid {
		amount := decimal.NewFromFloat(expenseAmount(e))
		expenseTotal = expenseTotal.Add(amount)

		category := e.Str("categoria")
		if category == "" {
			category = NoCategory
		}
		c, ok := categories[category]
		if !ok {
			c = &CategoryTotal{Category: category}
			categories[category] = c
			categoryOrder = append(categoryOrder, category)
		}
		c.Count++
		c.Amount = c.Amount.Add(amount)
	}

	for _, name := range categoryOrder {
		c := categories[name]
		c.Amount = Round2(c.Amount)
		report.ByCategory = append(report.ByCategory, *c)
	}

	// Every sale's embedded payment list counts toward the combined
	// transaction figure, regardless of the sale's own validity.
	paymentTotal := decimal.Zero
	for _, sale := range sales {
		for _, p := range sale.Maps("pagos") {
			if n, ok := p.NumOK("monto"); ok && n > 0 {
				report.Payments++
				paymentTotal = paymentTotal.Add(decimal.NewFromFloat(n))
			}
		}
	}

	report.ExpenseAmount = Round2(expenseTotal)
	report.PaymentAmount = Round2(paymentTotal)
	report.TransactionCount = report.ValidExpenses + report.Payments
	report.TransactionAmount = Round2(expenseTotal.Add(paymentTotal))

	return report, nil
}
