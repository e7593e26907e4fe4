package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matchday/internal/domain"
)

// RosterService provides business logic for players and their career stats
type RosterService struct {
	players PlayerStore
	teams   TeamStore
	logger  *slog.Logger
}

// NewRosterService creates a new roster service
func NewRosterService(players PlayerStore, teams TeamStore, logger *slog.Logger) *RosterService {
	return &RosterService{
		players: players,
		teams:   teams,
		logger:  logger,
	}
}

// CreatePlayer adds a player to a team's squad
func (s *RosterService) CreatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	if strings.TrimSpace(player.Name) == "" || player.TeamID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if _, err := s.teams.GetTeam(ctx, player.TeamID); err != nil {
		return nil, err
	}

	if player.ID == "" {
		player.ID = uuid.New().String()
	}
	now := time.Now()
	player.CreatedAt = now
	player.UpdatedAt = now

	if err := s.players.CreatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("creating player: %w", err)
	}
	return player, nil
}

// GetPlayer returns a player by ID
func (s *RosterService) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	return s.players.GetPlayer(ctx, id)
}

// ListPlayers returns players, optionally filtered by team
func (s *RosterService) ListPlayers(ctx context.Context, teamID string) ([]domain.Player, error) {
	return s.players.ListPlayers(ctx, teamID)
}

// UpdatePlayer updates a player's profile fields
func (s *RosterService) UpdatePlayer(ctx context.Context, player *domain.Player) (*domain.Player, error) {
	existing, err := s.players.GetPlayer(ctx, player.ID)
	if err != nil {
		return nil, err
	}

	if player.TeamID != "" && player.TeamID != existing.TeamID {
		if _, err := s.teams.GetTeam(ctx, player.TeamID); err != nil {
			return nil, err
		}
		existing.TeamID = player.TeamID
	}
	existing.Name = player.Name
	existing.Role = player.Role
	existing.BattingStyle = player.BattingStyle
	existing.BowlingStyle = player.BowlingStyle
	existing.UpdatedAt = time.Now()

	if err := s.players.UpdatePlayer(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating player: %w", err)
	}
	return existing, nil
}

// UpdateCareerStats replaces a player's career figures. The figures come
// from the scoring source; nothing here derives them.
func (s *RosterService) UpdateCareerStats(ctx context.Context, playerID string, careerStats domain.CareerStats) (*domain.Player, error) {
	existing, err := s.players.GetPlayer(ctx, playerID)
	if err != nil {
		return nil, err
	}

	existing.CareerStats = careerStats
	existing.UpdatedAt = time.Now()

	if err := s.players.UpdatePlayer(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating career stats: %w", err)
	}
	return existing, nil
}

// DeletePlayer removes a player
func (s *RosterService) DeletePlayer(ctx context.Context, id string) error {
	return s.players.DeletePlayer(ctx, id)
}
