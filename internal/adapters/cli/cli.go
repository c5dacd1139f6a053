package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	"chronos-analytics/internal/app"
	"chronos-analytics/internal/core"
)

// Run executes a one-shot CLI command and exits.
// args is os.Args[1:] — the first element is the subcommand name.
func Run(ctx context.Context, svc app.ApplicationService, args []string) {
	switch args[0] {
	case "analyze", "full", "a":
		report, err := svc.GetCompleteAnalysis(ctx)
		if err != nil {
			log.Fatalf("Analysis failed: %v", err)
		}
		printJSON(report)

	case "quality", "q":
		report, err := svc.GetDataQualityReport(ctx)
		if err != nil {
			log.Fatalf("Quality report failed: %v", err)
		}
		printQuality(report)
		if !report.AllCorrect {
			os.Exit(1)
		}

	case "clients":
		run(ctx, svc.GetClientAnalysis)
	case "sales":
		run(ctx, svc.GetSalesAnalysis)
	case "purchases", "purchase-orders":
		run(ctx, svc.GetPurchaseOrderAnalysis)
	case "distributors":
		run(ctx, svc.GetDistributorAnalysis)
	case "expenses":
		run(ctx, svc.GetExpenseAnalysis)
	case "banks":
		run(ctx, svc.GetBankAnalysis)
	case "inventory":
		run(ctx, svc.GetInventoryAnalysis)

	default:
		log.Fatalf("Unknown command: %s\nAvailable: analyze, quality, clients, sales, purchases, distributors, expenses, banks, inventory", args[0])
	}
}

func run[T any](ctx context.Context, fetch func(context.Context) (T, error)) {
	report, err := fetch(ctx)
	if err != nil {
		log.Fatalf("Analysis failed: %v", err)
	}
	printJSON(report)
}

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

func printQuality(report *core.QualityReport) {
	fmt.Println()
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-74s\n", "DATA QUALITY REPORT")
	fmt.Printf("  Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST"))
	fmt.Println(strings.Repeat("=", 78))
	fmt.Printf("  %-30s %10s  %-20s %12s\n", "CHECK", "OBSERVED", "EXPECTED", "STATUS")
	fmt.Println(strings.Repeat("-", 78))
	for _, c := range report.Checks {
		fmt.Printf("  %-30s %10d  %-20s %12s\n", c.Name, c.Observed, c.Expected, c.Status)
	}
	fmt.Println(strings.Repeat("=", 78))
	if report.AllCorrect {
		fmt.Println("  All checks CORRECT.")
	} else {
		fmt.Println("  One or more checks need review.")
	}
}
