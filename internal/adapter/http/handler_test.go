package httpadapter

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gtm-engine/internal/adapter/usecase"
	"gtm-engine/internal/core/domain"
)

func newTestHandler() *Handler {
	svc := usecase.NewModelUseCase(nil) // compute paths never touch the repository
	logger := slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), nil))
	return NewHandler(svc, logger, []string{"*"})
}

func computeBody() map[string]any {
	return map[string]any{
		"channels": []map[string]any{{
			"id":            "outbound",
			"name":          "Outbound SDR",
			"monthly_leads": 1000,
			"contact_rate":  0.65,
			"meeting_rate":  0.40,
			"show_up_rate":  0.70,
			"close_rate":    0.30,
			"cost_method":   "per_meeting",
			"price":         200,
			"enabled":       true,
		}},
		"deal": map[string]any{
			"avg_deal_value":    50000,
			"upfront_pct":       70,
			"deferred_pct":      30,
			"grr":               0.9,
			"commission_policy": "upfront_only",
			"gov_cost_pct":      5,
			"contract_months":   12,
		},
		"team": map[string]any{
			"closer": map[string]any{"count": 4, "base_annual": 60000, "variable_annual": 90000, "commission_pct": 20},
		},
		"other_opex_monthly": 25000,
	}
}

func postJSON(t *testing.T, h *Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestComputeEndpoint(t *testing.T) {
	rec := postJSON(t, newTestHandler(), "/api/v1/model/compute", computeBody())
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.ModelResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.InDelta(t, 54.6, res.Total.Sales, 1e-9)
	assert.InDelta(t, 1_911_000, res.Total.Revenue, 1e-6)
	assert.InDelta(t, 36_400, res.Total.Spend, 1e-9)
}

func TestComputeEndpointValidationFailure(t *testing.T) {
	body := computeBody()
	body["channels"].([]map[string]any)[0]["close_rate"] = 1.5

	rec := postJSON(t, newTestHandler(), "/api/v1/model/compute", body)
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	var out struct {
		Errors []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out.Errors, 1)
	assert.Contains(t, out.Errors[0], "close_rate")
}

func TestComputeEndpointBadJSON(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/model/compute", bytes.NewBufferString("{"))
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReverseEndpoint(t *testing.T) {
	body := map[string]any{
		"target": "sales",
		"value":  54.6,
		"rates": map[string]any{
			"contact_rate": 0.65, "meeting_rate": 0.40, "show_up_rate": 0.70, "close_rate": 0.30,
		},
	}
	rec := postJSON(t, newTestHandler(), "/api/v1/model/reverse", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var res domain.ReverseResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.True(t, res.Feasible)
	assert.InDelta(t, 1000, res.LeadsNeeded, 1e-9)
}

func TestValidateEndpoint(t *testing.T) {
	body := computeBody()
	body["deal"].(map[string]any)["deferred_pct"] = 50

	rec := postJSON(t, newTestHandler(), "/api/v1/model/validate", body)
	require.Equal(t, http.StatusOK, rec.Code)

	var out struct {
		Errors   []string `json:"errors"`
		Warnings []string `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Empty(t, out.Errors)
	assert.NotEmpty(t, out.Warnings)
}

func TestHealthz(t *testing.T) {
	h := newTestHandler()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
}
