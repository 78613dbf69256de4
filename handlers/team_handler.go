package handlers

import (
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

type TeamHandler struct {
	rosterService services.RosterService
}

func NewTeamHandler(rs services.RosterService) *TeamHandler {
	return &TeamHandler{rosterService: rs}
}

func (h *TeamHandler) ListTeams(w http.ResponseWriter, r *http.Request) {
	teams := h.rosterService.ListTeams(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"teams": teams}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var input engine.NewTeam
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.rosterService.AddTeam(r.Context(), input)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"team": team}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TeamHandler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	snap, err := h.rosterService.RemoveTeam(r.Context(), teamID)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"snapshot": snap}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
