package httpadapter

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"gtm-engine/internal/core/domain"
)

// saveScenarioRequest is the body for creating a named scenario.
type saveScenarioRequest struct {
	Name   string             `json:"name"`
	Inputs domain.ModelInputs `json:"inputs"`
}

// handleSaveScenario validates and stores a named input set. Duplicate
// names are a 409.
func (h *Handler) handleSaveScenario(w http.ResponseWriter, r *http.Request) {
	var req saveScenarioRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	s, err := h.svc.SaveScenario(r.Context(), req.Name, req.Inputs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusCreated, s)
}

// handleListScenarios returns all stored scenarios.
func (h *Handler) handleListScenarios(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.ListScenarios(r.Context())
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, list)
}

// handleGetScenario returns one scenario by id.
func (h *Handler) handleGetScenario(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid scenario id", http.StatusBadRequest)
		return
	}
	s, err := h.svc.GetScenario(r.Context(), id)
	if err != nil {
		h.writeError(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}

// handleDeleteScenario removes a scenario by id.
func (h *Handler) handleDeleteScenario(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		http.Error(w, "invalid scenario id", http.StatusBadRequest)
		return
	}
	if err := h.svc.DeleteScenario(r.Context(), id); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
