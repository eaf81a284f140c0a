package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gorilla/mux"
)

// MaxLimit caps the number of entries a single request may ask for.
const MaxLimit = 100

// Handler exposes a Client over HTTP.
type Handler struct {
	client Client
	log    *log.Logger
}

// NewHandler builds the leaderboard HTTP API:
//
//	GET  /api/scores?limit=N  ranked list
//	POST /api/scores          {"name": "...", "score": N}
func NewHandler(client Client, logger *log.Logger) http.Handler {
	h := &Handler{client: client, log: logger}

	r := mux.NewRouter()
	r.HandleFunc(ScoresPath, h.handleTopScores).Methods(http.MethodGet)
	r.HandleFunc(ScoresPath, h.handleSubmit).Methods(http.MethodPost)
	return r
}

func (h *Handler) handleTopScores(w http.ResponseWriter, r *http.Request) {
	limit := 10
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "limit must be a positive integer"})
			return
		}
		limit = min(n, MaxLimit)
	}

	entries, err := h.client.FetchTopScores(r.Context(), limit)
	if err != nil {
		h.log.Error("fetch scores failed", "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "leaderboard unavailable"})
		return
	}
	if entries == nil {
		entries = []Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1024)).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if req.Score < 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "score must not be negative"})
		return
	}

	err := h.client.SubmitScore(r.Context(), req.Name, req.Score)
	switch {
	case errors.Is(err, ErrInvalidName):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case err != nil:
		h.log.Error("submit score failed", "name", req.Name, "score", req.Score, "err", err)
		writeJSON(w, http.StatusServiceUnavailable, errorResponse{Error: "leaderboard unavailable"})
	default:
		h.log.Info("score submitted", "name", req.Name, "score", req.Score)
		w.WriteHeader(http.StatusNoContent)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
