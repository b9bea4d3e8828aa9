package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/Abubakar-88/jugjiggasha/internal/zakat"
)

// ZakatHandler handles the Zakat calculator endpoints.
type ZakatHandler struct {
	prices zakat.PriceSource
}

// NewZakatHandler creates a new ZakatHandler.
func NewZakatHandler(prices zakat.PriceSource) *ZakatHandler {
	return &ZakatHandler{prices: prices}
}

// CalculateRequest is the calculator input. SilverPerTola overrides the
// current market price when positive, so clients can pin a price.
type CalculateRequest struct {
	Assets        zakat.Assets      `json:"assets"`
	Liabilities   zakat.Liabilities `json:"liabilities"`
	SilverPerTola float64           `json:"silverPerTola,omitempty"`
}

// Calculate handles a calculation request. The computation is pure; nothing
// is persisted.
func (h *ZakatHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	silver := req.SilverPerTola
	if silver <= 0 {
		silver = h.prices.Current().SilverPerTola
	}

	result := zakat.Calculate(req.Assets, req.Liabilities, silver)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

// Prices handles the market price snapshot request.
func (h *ZakatHandler) Prices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.prices.Current())
}

// RefreshPrices advances the price source one tick and returns the result.
func (h *ZakatHandler) RefreshPrices(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(h.prices.Refresh())
}
