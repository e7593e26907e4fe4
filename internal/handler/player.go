package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matchday/internal/domain"
)

// CreatePlayer handles player creation
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var player domain.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.roster.CreatePlayer(r.Context(), &player)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListPlayers returns players, optionally filtered by team
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := r.URL.Query().Get("team_id")

	players, err := h.roster.ListPlayers(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, players)
}

// GetPlayer returns a player by ID
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	player, err := h.roster.GetPlayer(r.Context(), playerID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, player)
}

// UpdatePlayer updates a player's profile fields
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var player domain.Player
	if err := json.NewDecoder(r.Body).Decode(&player); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	player.ID = playerID

	updated, err := h.roster.UpdatePlayer(r.Context(), &player)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeletePlayer deletes a player
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.roster.DeletePlayer(r.Context(), playerID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// UpdateCareerStats replaces a player's recorded career figures
func (h *Handler) UpdateCareerStats(w http.ResponseWriter, r *http.Request) {
	playerID := chi.URLParam(r, "playerID")
	if playerID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var careerStats domain.CareerStats
	if err := json.NewDecoder(r.Body).Decode(&careerStats); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	updated, err := h.roster.UpdateCareerStats(r.Context(), playerID, careerStats)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}
