package market

import (
	"encoding/json"
	"net/http"

	coremarket "hospital_intelligence/pkg/core/market"
)

// Handler serves city market context lookups backed by the directory fetcher.
type Handler struct {
	Fetcher *coremarket.DirectoryFetcher
}

// NewHandler creates a new market handler.
func NewHandler(fetcher *coremarket.DirectoryFetcher) *Handler {
	return &Handler{Fetcher: fetcher}
}

// HandleCity returns competitor density and market maturity for one city.
func (h *Handler) HandleCity(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Fetcher == nil {
		http.Error(w, "market directory not configured", http.StatusServiceUnavailable)
		return
	}

	city := r.URL.Query().Get("city")
	if city == "" {
		http.Error(w, "city query parameter is required", http.StatusBadRequest)
		return
	}

	data, err := h.Fetcher.FetchCity(r.Context(), city)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadGateway)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}
