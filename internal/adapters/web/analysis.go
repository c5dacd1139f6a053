package web

import (
	"context"
	"log"
	"net/http"
)

// serveReport runs one analysis call and writes the result. Fetch failures
// are logged with the request ID and surfaced as 502: the store, not this
// service, is the failing party.
func serveReport[T any](w http.ResponseWriter, r *http.Request, fetch func(context.Context) (T, error)) {
	report, err := fetch(r.Context())
	if err != nil {
		log.Printf("analysis failed (request %s): %v", requestIDFromContext(r.Context()), err)
		writeError(w, r, err.Error(), "ANALYSIS_FAILED", http.StatusBadGateway)
		return
	}
	writeJSON(w, report)
}

func (h *Handler) completeAnalysis(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetCompleteAnalysis)
}

func (h *Handler) qualityReport(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetDataQualityReport)
}

func (h *Handler) clients(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetClientAnalysis)
}

func (h *Handler) sales(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetSalesAnalysis)
}

func (h *Handler) purchaseOrders(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetPurchaseOrderAnalysis)
}

func (h *Handler) distributors(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetDistributorAnalysis)
}

func (h *Handler) expenses(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetExpenseAnalysis)
}

func (h *Handler) banks(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetBankAnalysis)
}

func (h *Handler) inventory(w http.ResponseWriter, r *http.Request) {
	serveReport(w, r, h.svc.GetInventoryAnalysis)
}
