package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"chronos-analytics/internal/adapters/cli"
	"chronos-analytics/internal/app"
	"chronos-analytics/internal/core"
	"chronos-analytics/internal/db"
	"chronos-analytics/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "Usage: app <command>")
		fmt.Fprintln(os.Stderr, "Commands: analyze, quality, clients, sales, purchases, distributors, expenses, banks, inventory")
		os.Exit(2)
	}

	ctx := context.Background()
	client, err := db.NewClient(ctx)
	if err != nil {
		log.Fatalf("firestore: %v", err)
	}
	defer client.Close()

	st := store.NewFirestoreStore(client)
	analysis := core.NewAnalysisService(st)
	quality := core.NewQualityService(analysis, core.BaselinesFromEnv())
	svc := app.NewAppService(analysis, quality)

	cli.Run(ctx, svc, os.Args[1:])
}
