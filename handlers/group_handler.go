package handlers

import (
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

type GroupHandler struct {
	groupService services.GroupService
}

func NewGroupHandler(gs services.GroupService) *GroupHandler {
	return &GroupHandler{groupService: gs}
}

func (h *GroupHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups := h.groupService.ListGroups(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var input struct {
		Name string `json:"name"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	group, err := h.groupService.CreateGroup(r.Context(), input.Name)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusCreated, jsonResponse{"group": group}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *GroupHandler) AssignTeam(w http.ResponseWriter, r *http.Request) {
	groupID, err := urlParam(r, "groupID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.groupService.AssignTeamToGroup(r.Context(), teamID, groupID)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// AutoAssign discards the current grouping and redistributes every team
// round-robin across the requested number of fresh groups. Destructive;
// clients confirm before calling.
func (h *GroupHandler) AutoAssign(w http.ResponseWriter, r *http.Request) {
	var input struct {
		NumGroups int `json:"numGroups"`
	}
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	groups, err := h.groupService.AutoAssignGroups(r.Context(), input.NumGroups)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"groups": groups}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
