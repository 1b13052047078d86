package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"civicswipe/internal/blueprint"
	"civicswipe/internal/model"
	"civicswipe/internal/service"
	"civicswipe/internal/transport/rest/middleware"
)

// BlueprintHandler handles blueprint read/edit endpoints
type BlueprintHandler struct {
	blueprintSvc *service.BlueprintService
}

// NewBlueprintHandler creates a new blueprint handler
func NewBlueprintHandler(blueprintSvc *service.BlueprintService) *BlueprintHandler {
	return &BlueprintHandler{blueprintSvc: blueprintSvc}
}

// GetProfile handles GET /v1/blueprint
func (h *BlueprintHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.blueprintSvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateAxis handles PUT /v1/blueprint/axes/{axisId}
func (h *BlueprintHandler) UpdateAxis(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	axisID := mux.Vars(r)["axisId"]

	var req model.UpdateAxisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.blueprintSvc.UpdateAxis(r.Context(), userID, axisID, req.Value)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// LockAxis handles PUT /v1/blueprint/axes/{axisId}/lock
func (h *BlueprintHandler) LockAxis(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	axisID := mux.Vars(r)["axisId"]

	var req model.LockAxisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.blueprintSvc.LockAxis(r.Context(), userID, axisID, req.Locked)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// ResetAxis handles POST /v1/blueprint/axes/{axisId}/reset
func (h *BlueprintHandler) ResetAxis(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	axisID := mux.Vars(r)["axisId"]

	profile, err := h.blueprintSvc.ResetAxis(r.Context(), userID, axisID)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// UpdateImportance handles PUT /v1/blueprint/domains/{domainId}/importance
func (h *BlueprintHandler) UpdateImportance(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	domainID := mux.Vars(r)["domainId"]

	var req model.UpdateImportanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	profile, err := h.blueprintSvc.UpdateImportance(r.Context(), userID, domainID, req.Importance)
	if err != nil {
		writeEditError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, profile)
}

// GetArchetype handles GET /v1/blueprint/archetype
func (h *BlueprintHandler) GetArchetype(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	result, err := h.blueprintSvc.Archetype(r.Context(), userID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func writeEditError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, blueprint.ErrUnknownAxis), errors.Is(err, blueprint.ErrUnknownDomain):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, blueprint.ErrValueRange):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
