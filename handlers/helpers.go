package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Kishore8899/badminton-tournament-scorer/engine"
)

type jsonResponse map[string]interface{}

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576 // 1MB
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case err.Error() == "http: request body too large":
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err) // programmer error: dst is not a pointer
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, message interface{}) {
	env := jsonResponse{"error": message}
	if err := writeJSON(w, status, env, nil); err != nil {
		slog.Error("failed to write error response", slog.Any("error", err))
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Error("internal server error", slog.String("path", r.URL.Path), slog.Any("error", err))
	message := "the server encountered a problem and could not process your request"
	errorResponse(w, r, http.StatusInternalServerError, message)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err.Error())
}

func notFoundResponse(w http.ResponseWriter, r *http.Request) {
	message := "the requested resource could not be found"
	errorResponse(w, r, http.StatusNotFound, message)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, message string) {
	errorResponse(w, r, http.StatusConflict, message)
}

// mapEngineErrorToHTTP turns engine sentinel errors into HTTP responses so
// clients can tell validation, missing resources and illegal state apart.
func mapEngineErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	// Missing resources
	case errors.Is(err, engine.ErrPlayerNotFound),
		errors.Is(err, engine.ErrTeamNotFound),
		errors.Is(err, engine.ErrGroupNotFound),
		errors.Is(err, engine.ErrMatchNotFound),
		errors.Is(err, engine.ErrTournamentNotFound):
		notFoundResponse(w, r)

	// State machine violations
	case errors.Is(err, engine.ErrMatchCompleted):
		conflictResponse(w, r, err.Error())

	// Validation and business rules
	case errors.Is(err, engine.ErrNameRequired),
		errors.Is(err, engine.ErrCategoryInvalid),
		errors.Is(err, engine.ErrCategoriesRequired),
		errors.Is(err, engine.ErrTeamSizeMismatch),
		errors.Is(err, engine.ErrDuplicateTeamPlayer),
		errors.Is(err, engine.ErrPlayerAlreadyRostered),
		errors.Is(err, engine.ErrGroupCountInvalid),
		errors.Is(err, engine.ErrTeamSideInvalid),
		errors.Is(err, engine.ErrTieNotCompletable),
		errors.Is(err, engine.ErrWinnerMismatch),
		errors.Is(err, engine.ErrPointsPerGameInvalid),
		errors.Is(err, engine.ErrDateRangeInvalid),
		errors.Is(err, engine.ErrSnapshotInvalid):
		badRequestResponse(w, r, err)

	// Storage and anything unexpected
	default:
		serverErrorResponse(w, r, err)
	}
}

func urlParam(r *http.Request, name string) (string, error) {
	value := chi.URLParam(r, name)
	if value == "" {
		return "", fmt.Errorf("missing %s in URL path", name)
	}
	return value, nil
}
