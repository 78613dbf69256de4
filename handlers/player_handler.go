package handlers

import (
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

type PlayerHandler struct {
	rosterService services.RosterService
}

func NewPlayerHandler(rs services.RosterService) *PlayerHandler {
	return &PlayerHandler{rosterService: rs}
}

func (h *PlayerHandler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	players := h.rosterService.ListPlayers(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"players": players}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *PlayerHandler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var input engine.NewPlayer
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	player, err := h.rosterService.AddPlayer(r.Context(), input)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"player": player}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// DeletePlayer removes a player together with its team, group membership and
// matches. The response carries the full post-cascade snapshot so clients
// can refresh every affected collection in one round trip.
func (h *PlayerHandler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID, err := urlParam(r, "playerID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snap, err := h.rosterService.RemovePlayer(r.Context(), playerID)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"snapshot": snap}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
