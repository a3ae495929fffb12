package httpadapter

import (
	"encoding/json"
	"net/http"

	"gtm-engine/internal/core/domain"
	"gtm-engine/internal/core/port"
)

// handleCompute runs the full model on the posted inputs. Structural
// validation failures produce HTTP 422 with the issue list; a valid run
// returns the complete result including any warnings.
func (h *Handler) handleCompute(w http.ResponseWriter, r *http.Request) {
	var in domain.ModelInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Compute(r.Context(), in)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleValidate reports errors and warnings without computing.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	var in domain.ModelInputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	h.writeJSON(w, http.StatusOK, h.svc.Validate(in))
}

// handleReverse solves required upstream volumes for a downstream target.
// Infeasible targets are a 200 with feasible=false, not an error: the
// answer "you cannot get there with a zero rate" is a valid answer.
func (h *Handler) handleReverse(w http.ResponseWriter, r *http.Request) {
	var req port.ReverseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Reverse(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleSensitivity returns per-driver elasticities for a named metric.
// Undefined elasticities (zero baseline) serialize as null.
func (h *Handler) handleSensitivity(w http.ResponseWriter, r *http.Request) {
	var req port.SensitivityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Sensitivity(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// handleCompare diffs the standard metric set between two scenarios.
func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	var req port.CompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	res, err := h.svc.Compare(req)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}
