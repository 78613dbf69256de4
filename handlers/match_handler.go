package handlers

import (
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(ms services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: ms}
}

func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	matches := h.matchService.ListMatches(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GenerateFixtures creates the round-robin schedule. Calling it when
// fixtures already exist returns the existing set unchanged.
func (h *MatchHandler) GenerateFixtures(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.GenerateFixtures(r.Context())
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"matches": matches}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) SetScore(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	var input struct {
		Side  models.TeamSide `json:"side"`
		Score int             `json:"score"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.SetScore(r.Context(), matchID, input.Side, input.Score)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) EndMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	// winnerId is optional: the engine derives the winner from the score and
	// only checks a supplied id for agreement.
	var input struct {
		WinnerID string `json:"winnerId"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.EndMatch(r.Context(), matchID, input.WinnerID)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *MatchHandler) ReopenMatch(w http.ResponseWriter, r *http.Request) {
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	match, err := h.matchService.ReopenMatch(r.Context(), matchID)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"match": match}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
