package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Abubakar-88/jugjiggasha/internal/zakat"
)

func newZakatHandler() *ZakatHandler {
	return NewZakatHandler(&zakat.FixedPriceSource{Prices: zakat.Prices{
		GoldPerTola:   209000,
		SilverPerTola: 4000,
	}})
}

func TestCalculateUsesCurrentSilverPrice(t *testing.T) {
	handler := newZakatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(`{
		"assets": {"cash": 500000},
		"liabilities": {"personalLoan": 100000}
	}`))
	rec := httptest.NewRecorder()
	handler.Calculate(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var result zakat.Calculation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 400000.0, result.NetWorth)
	assert.Equal(t, 52.5*4000, result.Nisab)
	assert.True(t, result.IsZakatApplicable)
	assert.InDelta(t, 10000.0, result.ZakatAmount, 1e-9)
}

func TestCalculateHonorsPinnedSilverPrice(t *testing.T) {
	handler := newZakatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader(`{
		"assets": {"cash": 100000},
		"liabilities": {},
		"silverPerTola": 10000
	}`))
	rec := httptest.NewRecorder()
	handler.Calculate(rec, req)

	var result zakat.Calculation
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, 52.5*10000, result.Nisab)
	assert.False(t, result.IsZakatApplicable)
	assert.Equal(t, 0.0, result.ZakatAmount)
}

func TestCalculateRejectsMalformedBody(t *testing.T) {
	handler := newZakatHandler()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/zakat/calculate", strings.NewReader("not json"))
	rec := httptest.NewRecorder()
	handler.Calculate(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestPricesSnapshot(t *testing.T) {
	handler := newZakatHandler()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/zakat/prices", nil)
	rec := httptest.NewRecorder()
	handler.Prices(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var prices zakat.Prices
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &prices))
	assert.Equal(t, 209000.0, prices.GoldPerTola)
	assert.Equal(t, 4000.0, prices.SilverPerTola)
}
