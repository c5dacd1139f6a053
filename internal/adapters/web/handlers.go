package web

import (
	"net/http"

	"chronos-analytics/internal/app"

	"github.com/go-chi/chi/v5"
)

// Handler holds the ApplicationService and the chi router.
type Handler struct {
	svc    app.ApplicationService
	router chi.Router
}

// NewHandler creates and wires the chi router with all routes. The API is
// read-only: every analysis endpoint is a GET over a fresh store snapshot.
func NewHandler(svc app.ApplicationService, allowedOrigins string) http.Handler {
	h := &Handler{svc: svc}

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(Logger)
	r.Use(Recoverer)
	r.Use(CORS(allowedOrigins))

	r.Get("/api/health", h.health)

	r.Route("/api/analysis", func(r chi.Router) {
		r.Get("/", h.completeAnalysis)
		r.Get("/quality", h.qualityReport)
		r.Get("/clients", h.clients)
		r.Get("/sales", h.sales)
		r.Get("/purchase-orders", h.purchaseOrders)
		r.Get("/distributors", h.distributors)
		r.Get("/expenses", h.expenses)
		r.Get("/banks", h.banks)
		r.Get("/inventory", h.inventory)
	})

	h.router = r
	return r
}

// health returns service status.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	type response struct {
		Status string `json:"status"`
	}
	writeJSON(w, response{Status: "ok"})
}
