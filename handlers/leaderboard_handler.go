package handlers

import (
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

type LeaderboardHandler struct {
	leaderboardService services.LeaderboardService
}

func NewLeaderboardHandler(ls services.LeaderboardService) *LeaderboardHandler {
	return &LeaderboardHandler{leaderboardService: ls}
}

// GetLeaderboard returns the ranked standings, optionally narrowed by the
// group and category query parameters.
func (h *LeaderboardHandler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	filter := services.LeaderboardFilter{
		GroupID:  r.URL.Query().Get("group"),
		Category: models.Category(r.URL.Query().Get("category")),
	}

	entries, err := h.leaderboardService.Standings(r.Context(), filter)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"leaderboard": entries}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
