package main

import (
	"context"
	"log"
	"net/http"
	"os"

	webAdapter "chronos-analytics/internal/adapters/web"
	"chronos-analytics/internal/app"
	"chronos-analytics/internal/core"
	"chronos-analytics/internal/db"
	"chronos-analytics/internal/store"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

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

	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	allowedOrigins := os.Getenv("ALLOWED_ORIGINS")
	handler := webAdapter.NewHandler(svc, allowedOrigins)

	log.Printf("server starting on :%s", port)
	if err := http.ListenAndServe(":"+port, handler); err != nil {
		log.Fatalf("server: %v", err)
	}
}
