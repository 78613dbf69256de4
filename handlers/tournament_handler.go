package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/Kishore8899/badminton-tournament-scorer/models"
	"github.com/Kishore8899/badminton-tournament-scorer/services"
)

// maxPointsPerGame bounds the configuration form input; the engine itself
// only rejects non-positive values.
const maxPointsPerGame = 99

type TournamentHandler struct {
	tournamentService services.TournamentService
	exportService     services.ExportService
}

func NewTournamentHandler(ts services.TournamentService, es services.ExportService) *TournamentHandler {
	return &TournamentHandler{
		tournamentService: ts,
		exportService:     es,
	}
}

func (h *TournamentHandler) GetDetails(w http.ResponseWriter, r *http.Request) {
	details, err := h.tournamentService.Details(r.Context())
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": details}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func (h *TournamentHandler) UpdateDetails(w http.ResponseWriter, r *http.Request) {
	var details models.Tournament
	if err := readJSON(w, r, &details); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if details.ScoringRules.PointsPerGame > maxPointsPerGame {
		badRequestResponse(w, r, fmt.Errorf("points per game must be at most %d", maxPointsPerGame))
		return
	}

	updated, err := h.tournamentService.UpdateDetails(r.Context(), details)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"tournament": updated}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Reset wipes the session and seeds a fresh default tournament. Destructive;
// clients confirm before calling.
func (h *TournamentHandler) Reset(w http.ResponseWriter, r *http.Request) {
	snap, err := h.tournamentService.Reset(r.Context())
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"snapshot": snap}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// GetSnapshot returns the whole domain state in one document, the shape the
// single-page client hydrates from on load.
func (h *TournamentHandler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := h.tournamentService.Snapshot(r.Context())
	if err := writeJSON(w, http.StatusOK, jsonResponse{"snapshot": snap}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

// Export streams the snapshot as a downloadable JSON document.
func (h *TournamentHandler) Export(w http.ResponseWriter, r *http.Request) {
	details, err := h.tournamentService.Details(r.Context())
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	filename := services.ExportFileName(details.Name)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if _, err := h.exportService.Export(r.Context(), w); err != nil {
		// Headers are committed at this point; all that is left is logging.
		slog.Error("export failed mid-stream", slog.Any("error", err))
	}
}

func (h *TournamentHandler) Import(w http.ResponseWriter, r *http.Request) {
	snap, err := h.exportService.Import(r.Context(), r.Body)
	if err != nil {
		mapEngineErrorToHTTP(w, r, err)
		return
	}

	if err := writeJSON(w, http.StatusOK, jsonResponse{"snapshot": snap}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
