package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/matchday/internal/domain"
)

// CreateMatch handles match creation
func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var match domain.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.matches.CreateMatch(r.Context(), &match)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListMatches returns matches matching the query filters
func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	filter := domain.MatchFilter{
		Sport:   r.URL.Query().Get("sport"),
		Status:  domain.MatchStatus(r.URL.Query().Get("status")),
		TeamID:  r.URL.Query().Get("team_id"),
		VenueID: r.URL.Query().Get("venue_id"),
	}

	matches, err := h.matches.ListMatches(r.Context(), filter)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, matches)
}

// GetMatch returns a match by ID
func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	match, err := h.matches.GetMatch(r.Context(), matchID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, match)
}

// UpdateMatch updates a match's schedule fields
func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var match domain.Match
	if err := json.NewDecoder(r.Body).Decode(&match); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	match.ID = matchID

	updated, err := h.matches.UpdateMatch(r.Context(), &match)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeleteMatch deletes a match
func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.matches.DeleteMatch(r.Context(), matchID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// RecordMatchResult records the final result for a match
func (h *Handler) RecordMatchResult(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var event domain.ResultEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	event.MatchID = matchID
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := h.matches.RecordResult(r.Context(), event); err != nil {
		switch {
		case domain.IsNotFoundError(err):
			h.writeError(w, http.StatusNotFound, err)
		case errors.Is(err, domain.ErrMatchHasResult):
			h.writeError(w, http.StatusConflict, err)
		case errors.Is(err, domain.ErrInvalidResult), errors.Is(err, domain.ErrInvalidRequest):
			h.writeError(w, http.StatusBadRequest, err)
		default:
			h.logger.Error("failed to record result", "match_id", matchID, "error", err)
			h.writeError(w, http.StatusInternalServerError, domain.ErrInternalError)
		}
		return
	}

	h.writeSuccess(w, map[string]string{"status": "recorded"})
}

// GetScorecard returns the detailed scorecard for a completed match
func (h *Handler) GetScorecard(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "matchID")
	if matchID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	scorecard, err := h.matches.Scorecard(r.Context(), matchID)
	if err != nil {
		if errors.Is(err, domain.ErrMatchNotCompleted) {
			h.writeError(w, http.StatusConflict, err)
			return
		}
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, scorecard)
}
