package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matchday/internal/domain"
)

// CreateTeam handles team creation
func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var team domain.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.teams.CreateTeam(r.Context(), &team)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListTeams returns teams, optionally filtered by sport
func (h *Handler) ListTeams(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")

	teams, err := h.teams.ListTeams(r.Context(), sport)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, teams)
}

// GetTeam returns a team by ID
func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	team, err := h.teams.GetTeam(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, team)
}

// UpdateTeam updates a team's profile fields
func (h *Handler) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var team domain.Team
	if err := json.NewDecoder(r.Body).Decode(&team); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	team.ID = teamID

	updated, err := h.teams.UpdateTeam(r.Context(), &team)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeleteTeam deletes a team
func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.teams.DeleteTeam(r.Context(), teamID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// GetTeamStats returns a team's win/loss record derived from match history
func (h *Handler) GetTeamStats(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	stats, err := h.teams.TeamStats(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, stats)
}

// ListTeamPlayers returns the roster for a team
func (h *Handler) ListTeamPlayers(w http.ResponseWriter, r *http.Request) {
	teamID := chi.URLParam(r, "teamID")
	if teamID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if _, err := h.teams.GetTeam(r.Context(), teamID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	players, err := h.roster.ListPlayers(r.Context(), teamID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, players)
}

// GetStandings returns the ranked table for a sport
func (h *Handler) GetStandings(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")
	if sport == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	table, err := h.teams.Standings(r.Context(), sport)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, table)
}
