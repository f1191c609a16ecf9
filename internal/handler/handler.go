package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"

	"github.com/cameronehrlich/deals-sub001/internal/engine"
	"github.com/cameronehrlich/deals-sub001/internal/models"
)

// RateSource supplies the current market mortgage rate for requests that
// omit one.
type RateSource interface {
	CurrentRate() float64
}

// Handler exposes the deal-analysis engine over JSON HTTP. It owns the
// parse/validate boundary: inputs arrive as untyped strings or numbers
// and are rejected with a 400 before the engine ever sees them.
type Handler struct {
	defaults models.ExpenseAssumptions
	rates    RateSource
	log      *logrus.Logger
}

// New initializes a handler with the configured default assumptions.
func New(defaults models.ExpenseAssumptions, rates RateSource, log *logrus.Logger) *Handler {
	return &Handler{defaults: defaults, rates: rates, log: log}
}

// Routes registers all API routes on the router.
func (h *Handler) Routes(r *mux.Router) {
	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/analyze", h.Analyze).Methods("POST")
	api.HandleFunc("/metrics", h.Metrics).Methods("POST")
	api.HandleFunc("/sensitivity", h.Sensitivity).Methods("POST")
	api.HandleFunc("/score", h.ScoreDeal).Methods("POST")
	api.HandleFunc("/offer", h.Offer).Methods("POST")
	api.HandleFunc("/rates/current", h.CurrentRate).Methods("GET")
	r.HandleFunc("/ws/offer", h.OfferStream)
	r.HandleFunc("/health", h.Health).Methods("GET")
}

// parseRequest decodes and validates an evaluation request, responding
// with a 400 on failure. The boolean reports whether to proceed.
func (h *Handler) parseRequest(w http.ResponseWriter, r *http.Request) (*analyzeRequest, models.FinancingInput, models.ExpenseAssumptions, bool) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return nil, models.FinancingInput{}, models.ExpenseAssumptions{}, false
	}

	f := req.financing(h.rates.CurrentRate())
	a := req.assumptions(h.defaults)

	if err := engine.ValidateFinancing(f); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return nil, models.FinancingInput{}, models.ExpenseAssumptions{}, false
	}
	if err := engine.ValidateAssumptions(a); err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return nil, models.FinancingInput{}, models.ExpenseAssumptions{}, false
	}
	return &req, f, a, true
}

type analyzeResponse struct {
	AnalysisID  string                   `json:"analysis_id"`
	GeneratedAt time.Time                `json:"generated_at"`
	Metrics     models.ReturnMetrics     `json:"metrics"`
	Sensitivity models.SensitivityResult `json:"sensitivity"`
	Score       models.DealScore         `json:"score"`
	Offer       *models.OfferSolution    `json:"offer,omitempty"`
}

// Analyze runs the full pipeline: metrics, stress test, score, and the
// offer solver when a target return is supplied.
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	req, f, a, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	var metrics models.ReturnMetrics
	if req.MinDSCR != nil {
		metrics = engine.ComputeReturnsWithLenderCheck(f, a, float64(*req.MinDSCR))
	} else {
		metrics = engine.ComputeReturns(f, a)
	}

	sens := engine.RunSensitivity(f, a)

	ctx := req.Context
	if ctx == nil {
		ctx = &models.MarketContext{}
	}
	if ctx.RiskRating == "" {
		ctx.RiskRating = sens.RiskRating
	}
	score := engine.Score(metrics, ctx)

	resp := analyzeResponse{
		AnalysisID:  uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		Metrics:     metrics,
		Sensitivity: sens,
		Score:       score,
	}

	if req.TargetCashOnCash != nil {
		sol, err := engine.SolveOfferPrice(float64(*req.TargetCashOnCash), f, a, req.OfferFloor.Float(0))
		if err != nil {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.Offer = &sol
	}

	h.log.WithFields(logrus.Fields{
		"analysis_id": resp.AnalysisID,
		"price":       f.PurchasePrice,
		"rent":        f.MonthlyRent,
		"verdict":     score.Verdict,
	}).Info("Deal analyzed")

	h.respondJSON(w, http.StatusOK, resp)
}

// Metrics computes the return profile alone, for breakdown tables.
func (h *Handler) Metrics(w http.ResponseWriter, r *http.Request) {
	req, f, a, ok := h.parseRequest(w, r)
	if !ok {
		return
	}

	var metrics models.ReturnMetrics
	if req.MinDSCR != nil {
		metrics = engine.ComputeReturnsWithLenderCheck(f, a, float64(*req.MinDSCR))
	} else {
		metrics = engine.ComputeReturns(f, a)
	}

	h.respondJSON(w, http.StatusOK, map[string]any{
		"analysis_id": uuid.New().String(),
		"metrics":     metrics,
	})
}

// Sensitivity runs the stress-test table alone.
func (h *Handler) Sensitivity(w http.ResponseWriter, r *http.Request) {
	_, f, a, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"analysis_id": uuid.New().String(),
		"sensitivity": engine.RunSensitivity(f, a),
	})
}

// ScoreDeal computes metrics and the headline score card.
func (h *Handler) ScoreDeal(w http.ResponseWriter, r *http.Request) {
	req, f, a, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	metrics := engine.ComputeReturns(f, a)
	h.respondJSON(w, http.StatusOK, map[string]any{
		"analysis_id": uuid.New().String(),
		"metrics":     metrics,
		"score":       engine.Score(metrics, req.Context),
	})
}

// Offer solves for the purchase price that achieves the requested
// cash-on-cash return.
func (h *Handler) Offer(w http.ResponseWriter, r *http.Request) {
	req, f, a, ok := h.parseRequest(w, r)
	if !ok {
		return
	}
	if req.TargetCashOnCash == nil {
		h.respondError(w, http.StatusBadRequest, "target_cash_on_cash is required")
		return
	}

	sol, err := engine.SolveOfferPrice(float64(*req.TargetCashOnCash), f, a, req.OfferFloor.Float(0))
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	h.respondJSON(w, http.StatusOK, map[string]any{
		"analysis_id": uuid.New().String(),
		"offer":       sol,
	})
}

// CurrentRate reports the market mortgage rate in use for defaults.
func (h *Handler) CurrentRate(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]float64{
		"interest_rate": h.rates.CurrentRate(),
	})
}

// Health is a liveness probe.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.log.Errorf("Failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, msg string) {
	h.respondJSON(w, status, map[string]string{"error": msg})
}
