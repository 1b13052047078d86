package handler

import (
	"encoding/json"
	"net/http"

	"civicswipe/internal/model"
	"civicswipe/internal/service"
)

// AuthHandler handles session endpoints
type AuthHandler struct {
	authSvc *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authSvc *service.AuthService) *AuthHandler {
	return &AuthHandler{authSvc: authSvc}
}

// StartSession handles POST /v1/session
func (h *AuthHandler) StartSession(w http.ResponseWriter, r *http.Request) {
	var req model.StartSessionRequest
	// Empty body is fine; the device id is optional
	_ = json.NewDecoder(r.Body).Decode(&req)

	resp, err := h.authSvc.StartSession(&req)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
