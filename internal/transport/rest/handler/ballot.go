package handler

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"civicswipe/internal/service"
	"civicswipe/internal/transport/rest/middleware"
)

// BallotHandler handles election and recommendation endpoints
type BallotHandler struct {
	ballotSvc *service.BallotService
}

// NewBallotHandler creates a new ballot handler
func NewBallotHandler(ballotSvc *service.BallotService) *BallotHandler {
	return &BallotHandler{ballotSvc: ballotSvc}
}

// ListElections handles GET /v1/elections
func (h *BallotHandler) ListElections(w http.ResponseWriter, r *http.Request) {
	elections, err := h.ballotSvc.Elections(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, elections)
}

// ListItems handles GET /v1/elections/{electionId}/items
func (h *BallotHandler) ListItems(w http.ResponseWriter, r *http.Request) {
	electionID := mux.Vars(r)["electionId"]

	items, err := h.ballotSvc.Items(r.Context(), electionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// GetRecommendation handles GET /v1/ballot/{itemId}/recommendation
func (h *BallotHandler) GetRecommendation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	rec, err := h.ballotSvc.Recommendation(r.Context(), userID, itemID)
	if err != nil {
		writeBallotError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rec)
}

// GetMatches handles GET /v1/ballot/{itemId}/matches
func (h *BallotHandler) GetMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	itemID := mux.Vars(r)["itemId"]

	matches, err := h.ballotSvc.Matches(r.Context(), userID, itemID)
	if err != nil {
		writeBallotError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func writeBallotError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrBallotItemNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrWrongItemType):
		writeError(w, http.StatusBadRequest, err.Error())
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}
