package analysis

import (
	"encoding/json"
	"errors"
	"net/http"

	coreanalysis "hospital_intelligence/pkg/core/analysis"
	"hospital_intelligence/pkg/core/report"
	"hospital_intelligence/pkg/core/store"
	"hospital_intelligence/pkg/models"
)

// Handler holds dependencies for the analysis endpoints. Hospitals is
// optional: without a database the by-name endpoint reports unavailable.
type Handler struct {
	Engine    *coreanalysis.BenchmarkingEngine
	Hospitals *store.HospitalRepo
}

// NewHandler creates a new analysis handler.
func NewHandler(engine *coreanalysis.BenchmarkingEngine) *Handler {
	return &Handler{Engine: engine}
}

// HandleAnalyze runs the benchmarking pipeline for the posted hospital
// metrics. Validation errors map to 400; pipeline failures come back as a
// 200 with a FAILED result record, matching the engine's fallback policy.
func (h *Handler) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	// CORS headers for local dev
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var metrics models.HospitalMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, err := coreanalysis.NewRequest(&metrics)
	if err != nil {
		var vErr *coreanalysis.ValidationError
		if errors.As(err, &vErr) {
			http.Error(w, vErr.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	result := h.Engine.AnalyzeHospital(req)
	result.ReportText = report.Generate(result)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleAnalyzeByName loads a hospital's stored metrics by name and runs the
// pipeline on them. Requires a configured database.
func (h *Handler) HandleAnalyzeByName(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Hospitals == nil {
		http.Error(w, "hospital database not configured", http.StatusServiceUnavailable)
		return
	}

	name := r.URL.Query().Get("name")
	if name == "" {
		http.Error(w, "name query parameter is required", http.StatusBadRequest)
		return
	}

	metrics, err := h.Hospitals.GetHospital(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	req, err := coreanalysis.NewRequest(metrics)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.Engine.AnalyzeHospital(req)
	result.ReportText = report.Generate(result)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// HandleReport renders the analysis report as HTML for browser display.
func (h *Handler) HandleReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var metrics models.HospitalMetrics
	if err := json.NewDecoder(r.Body).Decode(&metrics); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	req, err := coreanalysis.NewRequest(&metrics)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	result := h.Engine.AnalyzeHospital(req)
	markdown := report.Generate(result)

	html, err := report.RenderHTML(markdown)
	if err != nil {
		http.Error(w, "failed to render report", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}
