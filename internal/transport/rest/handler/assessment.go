package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"civicswipe/internal/model"
	"civicswipe/internal/service"
	"civicswipe/internal/transport/rest/middleware"
)

// AssessmentHandler handles the swipe loop endpoints
type AssessmentHandler struct {
	assessSvc *service.AssessmentService
	specSvc   *service.SpecService
}

// NewAssessmentHandler creates a new assessment handler
func NewAssessmentHandler(assessSvc *service.AssessmentService, specSvc *service.SpecService) *AssessmentHandler {
	return &AssessmentHandler{
		assessSvc: assessSvc,
		specSvc:   specSvc,
	}
}

// GetSpec handles GET /v1/spec
func (h *AssessmentHandler) GetSpec(w http.ResponseWriter, r *http.Request) {
	spec, err := h.specSvc.Get(r.Context())
	if err != nil {
		if errors.Is(err, service.ErrSpecNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, spec)
}

// SubmitSwipe handles POST /v1/assessment/swipes
func (h *AssessmentHandler) SubmitSwipe(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var req model.SubmitSwipeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := h.assessSvc.SubmitSwipe(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResponse), errors.Is(err, service.ErrUnknownItem):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrSpecNotFound):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// NextQuestion handles GET /v1/assessment/next?domains=a,b&strategy=linear
func (h *AssessmentHandler) NextQuestion(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var domainFilter []string
	if raw := r.URL.Query().Get("domains"); raw != "" {
		domainFilter = strings.Split(raw, ",")
	}
	strategy := r.URL.Query().Get("strategy")

	resp, err := h.assessSvc.NextQuestion(r.Context(), userID, domainFilter, strategy)
	if err != nil {
		if errors.Is(err, service.ErrSpecNotFound) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// Restart handles POST /v1/assessment/restart
func (h *AssessmentHandler) Restart(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.assessSvc.Restart(r.Context(), userID); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "restarted"})
}
