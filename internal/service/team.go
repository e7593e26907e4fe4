package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/stats"
)

// TeamService provides business logic for teams, derived statistics and
// standings. The stored counters on a team are a cached projection; the
// recomputation from match history is authoritative.
type TeamService struct {
	teams   TeamStore
	matches MatchStore
	cache   StandingsCache
	logger  *slog.Logger

	broadcaster Broadcaster
}

// NewTeamService creates a new team service
func NewTeamService(teams TeamStore, matches MatchStore, cache StandingsCache, logger *slog.Logger) *TeamService {
	return &TeamService{
		teams:   teams,
		matches: matches,
		cache:   cache,
		logger:  logger,
	}
}

// SetBroadcaster sets the live-update broadcaster
func (s *TeamService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// CreateTeam creates a team
func (s *TeamService) CreateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	if strings.TrimSpace(team.Name) == "" || strings.TrimSpace(team.Sport) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if team.ID == "" {
		team.ID = uuid.New().String()
	}
	now := time.Now()
	team.CreatedAt = now
	team.UpdatedAt = now

	if err := s.teams.CreateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("creating team: %w", err)
	}
	return team, nil
}

// GetTeam returns a team by ID
func (s *TeamService) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	return s.teams.GetTeam(ctx, id)
}

// ListTeams returns teams, optionally filtered by sport
func (s *TeamService) ListTeams(ctx context.Context, sport string) ([]domain.Team, error) {
	return s.teams.ListTeams(ctx, sport)
}

// UpdateTeam updates a team's editable fields. The cumulative counters are
// not writable through this path; they are reconciled from match history.
func (s *TeamService) UpdateTeam(ctx context.Context, team *domain.Team) (*domain.Team, error) {
	existing, err := s.teams.GetTeam(ctx, team.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = team.Name
	existing.Sport = team.Sport
	existing.City = team.City
	existing.CaptainID = team.CaptainID
	existing.LogoURL = team.LogoURL
	existing.UpdatedAt = time.Now()

	if err := s.teams.UpdateTeam(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating team: %w", err)
	}
	return existing, nil
}

// DeleteTeam deletes a team
func (s *TeamService) DeleteTeam(ctx context.Context, id string) error {
	if err := s.teams.DeleteTeam(ctx, id); err != nil {
		return err
	}
	if s.cache != nil {
		if err := s.cache.InvalidateTeam(ctx, id); err != nil {
			s.logger.Warn("failed to invalidate team cache", "team_id", id, "error", err)
		}
	}
	return nil
}

// TeamStats returns the team's derived record, serving from cache when
// possible and recomputing from match history otherwise.
func (s *TeamService) TeamStats(ctx context.Context, teamID string) (*domain.TeamStats, error) {
	if _, err := s.teams.GetTeam(ctx, teamID); err != nil {
		return nil, err
	}

	if s.cache != nil {
		if cached, err := s.cache.GetTeamStats(ctx, teamID); err == nil && cached != nil {
			return cached, nil
		}
	}

	matches, err := s.matches.ListMatchesForTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching matches for team: %w", err)
	}
	teamStats := stats.ComputeTeamStats(teamID, matches)

	if s.cache != nil {
		if err := s.cache.SetTeamStats(ctx, teamStats); err != nil {
			s.logger.Warn("failed to cache team stats", "team_id", teamID, "error", err)
		}
	}
	return &teamStats, nil
}

// Standings returns the ranked table for a sport, serving from cache when
// possible.
func (s *TeamService) Standings(ctx context.Context, sport string) ([]domain.StandingsEntry, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetStandings(ctx, sport); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}
	return s.RefreshStandings(ctx, sport)
}

// RefreshStandings rebuilds the standings table for a sport from match
// history, caches it and pushes it to live subscribers.
func (s *TeamService) RefreshStandings(ctx context.Context, sport string) ([]domain.StandingsEntry, error) {
	teams, err := s.teams.ListTeams(ctx, sport)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	matches, err := s.matches.ListMatches(ctx, domain.MatchFilter{Sport: sport, Status: domain.MatchStatusCompleted})
	if err != nil {
		return nil, fmt.Errorf("listing completed matches: %w", err)
	}

	table := stats.BuildStandings(teams, matches)

	if s.cache != nil {
		if err := s.cache.SetStandings(ctx, sport, table); err != nil {
			s.logger.Warn("failed to cache standings", "sport", sport, "error", err)
		}
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStandings(sport, table)
	}
	return table, nil
}

// ReconcileTeam recomputes a team's record from match history and writes it
// back to the stored counters, keeping the cached projection in step with
// the authoritative aggregate.
func (s *TeamService) ReconcileTeam(ctx context.Context, teamID string) (*domain.TeamStats, error) {
	team, err := s.teams.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}

	matches, err := s.matches.ListMatchesForTeam(ctx, teamID)
	if err != nil {
		return nil, fmt.Errorf("fetching matches for team: %w", err)
	}
	teamStats := stats.ComputeTeamStats(teamID, matches)

	team.MatchesWon = teamStats.MatchesWon
	team.MatchesLost = teamStats.MatchesLost
	team.MatchesDrawn = teamStats.MatchesDrawn
	team.TournamentPoints = teamStats.TournamentPoints
	team.UpdatedAt = time.Now()

	if err := s.teams.UpdateTeam(ctx, team); err != nil {
		return nil, fmt.Errorf("updating team counters: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetTeamStats(ctx, teamStats); err != nil {
			s.logger.Warn("failed to cache team stats", "team_id", teamID, "error", err)
		}
	}
	return &teamStats, nil
}
