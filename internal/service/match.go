package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/matchday/internal/domain"
)

// MatchService provides business logic for match scheduling, lifecycle and
// result recording.
type MatchService struct {
	matches MatchStore
	teams   *TeamService
	users   UserStore
	logger  *slog.Logger

	broadcaster Broadcaster
}

// NewMatchService creates a new match service
func NewMatchService(matches MatchStore, teams *TeamService, users UserStore, logger *slog.Logger) *MatchService {
	return &MatchService{
		matches: matches,
		teams:   teams,
		users:   users,
		logger:  logger,
	}
}

// SetBroadcaster sets the live-update broadcaster
func (s *MatchService) SetBroadcaster(b Broadcaster) {
	s.broadcaster = b
}

// CreateMatch schedules a match
func (s *MatchService) CreateMatch(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	if match.Sport == "" || match.HomeTeamID == "" || match.AwayTeamID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if match.HomeTeamID == match.AwayTeamID {
		return nil, domain.ErrInvalidRequest
	}
	for _, teamID := range []string{match.HomeTeamID, match.AwayTeamID} {
		if _, err := s.teams.GetTeam(ctx, teamID); err != nil {
			return nil, err
		}
	}

	if match.ID == "" {
		match.ID = uuid.New().String()
	}
	if match.Status == "" {
		match.Status = domain.MatchStatusUpcoming
	}
	if match.MatchData == nil {
		match.MatchData = &domain.MatchData{
			Team1ID: match.HomeTeamID,
			Team2ID: match.AwayTeamID,
		}
	}
	now := time.Now()
	match.CreatedAt = now
	match.UpdatedAt = now

	if err := s.matches.CreateMatch(ctx, match); err != nil {
		return nil, fmt.Errorf("creating match: %w", err)
	}

	if match.OrganizerID != "" {
		s.bumpOrganizerStats(ctx, match.OrganizerID)
	}
	return match, nil
}

// GetMatch returns a match by ID
func (s *MatchService) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	return s.matches.GetMatch(ctx, id)
}

// ListMatches returns matches matching the filter
func (s *MatchService) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	return s.matches.ListMatches(ctx, filter)
}

// UpdateMatch updates a match's schedule fields. Results go through
// RecordResult.
func (s *MatchService) UpdateMatch(ctx context.Context, match *domain.Match) (*domain.Match, error) {
	existing, err := s.matches.GetMatch(ctx, match.ID)
	if err != nil {
		return nil, err
	}

	existing.Title = match.Title
	existing.VenueID = match.VenueID
	existing.ScheduledAt = match.ScheduledAt
	if match.Status != "" {
		existing.Status = match.Status
	}
	existing.UpdatedAt = time.Now()

	if err := s.matches.UpdateMatch(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating match: %w", err)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMatchUpdate(existing)
	}
	return existing, nil
}

// DeleteMatch deletes a match
func (s *MatchService) DeleteMatch(ctx context.Context, id string) error {
	return s.matches.DeleteMatch(ctx, id)
}

// RecordResult applies a result event to a match: validates the outcome,
// marks the match completed, attaches the scorecard, reconciles both teams'
// stored counters and refreshes the standings for the sport.
//
// Unlike the read-side aggregator, which tolerates bad rows by excluding
// them, the write path rejects a winner that names neither participant so a
// misattributed loss can never enter the store.
func (s *MatchService) RecordResult(ctx context.Context, event domain.ResultEvent) error {
	match, err := s.matches.GetMatch(ctx, event.MatchID)
	if err != nil {
		return err
	}
	if r := match.Result(); r != nil {
		return domain.ErrMatchHasResult
	}

	switch event.ResultType {
	case domain.ResultWonByRuns, domain.ResultWonByWickets:
		if event.WinnerID == "" {
			return domain.ErrInvalidResult
		}
	case domain.ResultTied, domain.ResultNoResult, domain.ResultAbandoned:
		// no winner expected
	default:
		return domain.ErrInvalidResult
	}

	if match.MatchData == nil {
		match.MatchData = &domain.MatchData{
			Team1ID: match.HomeTeamID,
			Team2ID: match.AwayTeamID,
		}
	}
	t1, t2 := match.Participants()
	if event.WinnerID != "" && event.WinnerID != t1 && event.WinnerID != t2 {
		return fmt.Errorf("winner %s is not a participant of match %s: %w",
			event.WinnerID, match.ID, domain.ErrInvalidResult)
	}

	match.Status = domain.MatchStatusCompleted
	match.MatchData.ResultSummary = &domain.ResultSummary{
		WinnerID:      event.WinnerID,
		ResultType:    event.ResultType,
		MarginRuns:    event.MarginRuns,
		MarginWickets: event.MarginWickets,
	}
	if event.Scorecard != nil {
		match.MatchData.Scorecard = event.Scorecard
	}
	match.UpdatedAt = time.Now()

	if err := s.matches.UpdateMatch(ctx, match); err != nil {
		return fmt.Errorf("updating match result: %w", err)
	}

	for _, teamID := range []string{t1, t2} {
		if teamID == "" {
			continue
		}
		if _, err := s.teams.ReconcileTeam(ctx, teamID); err != nil {
			s.logger.Warn("failed to reconcile team after result",
				"team_id", teamID,
				"match_id", match.ID,
				"error", err,
			)
		}
	}
	if _, err := s.teams.RefreshStandings(ctx, match.Sport); err != nil {
		s.logger.Warn("failed to refresh standings after result",
			"sport", match.Sport,
			"error", err,
		)
	}

	if s.broadcaster != nil {
		s.broadcaster.BroadcastMatchUpdate(match)
	}
	return nil
}

// RecordResultBatch applies multiple result events, continuing past
// individual failures.
func (s *MatchService) RecordResultBatch(ctx context.Context, events []domain.ResultEvent) error {
	for _, event := range events {
		if err := s.RecordResult(ctx, event); err != nil {
			s.logger.Error("failed to record result in batch",
				"match_id", event.MatchID,
				"error", err,
			)
		}
	}
	return nil
}

// Scorecard returns the nested scorecard for a match, if one is recorded
func (s *MatchService) Scorecard(ctx context.Context, matchID string) (*domain.Scorecard, error) {
	match, err := s.matches.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}
	if match.MatchData == nil || match.MatchData.Scorecard == nil {
		return nil, domain.ErrMatchNotCompleted
	}
	return match.MatchData.Scorecard, nil
}

// bumpOrganizerStats increments the organizer's activity counter. Counter
// upkeep never fails the request.
func (s *MatchService) bumpOrganizerStats(ctx context.Context, userID string) {
	if s.users == nil {
		return
	}
	userStats, err := s.users.GetUserStats(ctx, userID)
	if err != nil {
		userStats = &domain.UserStats{UserID: userID}
	}
	userStats.MatchesOrganized++
	userStats.UpdatedAt = time.Now()
	if err := s.users.UpsertUserStats(ctx, userStats); err != nil {
		s.logger.Warn("failed to update organizer stats", "user_id", userID, "error", err)
	}
}
