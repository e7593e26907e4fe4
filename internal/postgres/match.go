package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matchday/internal/domain"
)

// CreateMatch inserts a new match
func (r *Repository) CreateMatch(ctx context.Context, match *domain.Match) error {
	dataJSON, err := marshalMatchData(match.MatchData)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO matches (id, sport, title, organizer_id, venue_id, home_team_id, away_team_id,
			scheduled_at, status, match_data, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err = r.pool.Exec(ctx, query,
		match.ID,
		match.Sport,
		match.Title,
		match.OrganizerID,
		match.VenueID,
		match.HomeTeamID,
		match.AwayTeamID,
		match.ScheduledAt,
		string(match.Status),
		dataJSON,
		match.CreatedAt,
		match.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating match: %w", err)
	}
	return nil
}

// GetMatch retrieves a match by ID
func (r *Repository) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	query := `
		SELECT id, sport, title, organizer_id, venue_id, home_team_id, away_team_id,
			scheduled_at, status, match_data, created_at, updated_at
		FROM matches
		WHERE id = $1
	`
	match, err := scanMatch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrMatchNotFound
		}
		return nil, fmt.Errorf("getting match: %w", err)
	}
	return match, nil
}

// ListMatches retrieves matches matching the filter
func (r *Repository) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	query := `
		SELECT id, sport, title, organizer_id, venue_id, home_team_id, away_team_id,
			scheduled_at, status, match_data, created_at, updated_at
		FROM matches
		WHERE 1=1
	`
	var args []interface{}
	arg := 0
	next := func() string {
		arg++
		return fmt.Sprintf("$%d", arg)
	}

	if filter.Sport != "" {
		query += ` AND sport = ` + next()
		args = append(args, filter.Sport)
	}
	if filter.Status != "" {
		query += ` AND status = ` + next()
		args = append(args, string(filter.Status))
	}
	if filter.TeamID != "" {
		p := next()
		query += ` AND (home_team_id = ` + p +
			` OR away_team_id = ` + p +
			` OR match_data->>'team1_id' = ` + p +
			` OR match_data->>'team2_id' = ` + p + `)`
		args = append(args, filter.TeamID)
	}
	if filter.VenueID != "" {
		query += ` AND venue_id = ` + next()
		args = append(args, filter.VenueID)
	}
	query += ` ORDER BY scheduled_at DESC, id ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing matches: %w", err)
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		match, err := scanMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning match: %w", err)
		}
		matches = append(matches, *match)
	}
	return matches, nil
}

// ListMatchesForTeam retrieves every match referencing a team, in the
// scheduling fields or in the result payload
func (r *Repository) ListMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	return r.ListMatches(ctx, domain.MatchFilter{TeamID: teamID})
}

// UpdateMatch updates a match, result payload included
func (r *Repository) UpdateMatch(ctx context.Context, match *domain.Match) error {
	dataJSON, err := marshalMatchData(match.MatchData)
	if err != nil {
		return err
	}

	query := `
		UPDATE matches
		SET sport = $2, title = $3, organizer_id = $4, venue_id = $5, home_team_id = $6,
			away_team_id = $7, scheduled_at = $8, status = $9, match_data = $10, updated_at = $11
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		match.ID,
		match.Sport,
		match.Title,
		match.OrganizerID,
		match.VenueID,
		match.HomeTeamID,
		match.AwayTeamID,
		match.ScheduledAt,
		string(match.Status),
		dataJSON,
		match.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating match: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

// DeleteMatch removes a match
func (r *Repository) DeleteMatch(ctx context.Context, id string) error {
	query := `DELETE FROM matches WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting match: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrMatchNotFound
	}
	return nil
}

func marshalMatchData(data *domain.MatchData) ([]byte, error) {
	if data == nil {
		return nil, nil
	}
	dataJSON, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("marshaling match data: %w", err)
	}
	return dataJSON, nil
}

func scanMatch(row pgx.Row) (*domain.Match, error) {
	var match domain.Match
	var status string
	var dataJSON []byte
	err := row.Scan(
		&match.ID,
		&match.Sport,
		&match.Title,
		&match.OrganizerID,
		&match.VenueID,
		&match.HomeTeamID,
		&match.AwayTeamID,
		&match.ScheduledAt,
		&status,
		&dataJSON,
		&match.CreatedAt,
		&match.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	match.Status = domain.MatchStatus(status)
	if len(dataJSON) > 0 {
		match.MatchData = &domain.MatchData{}
		if err := json.Unmarshal(dataJSON, match.MatchData); err != nil {
			return nil, fmt.Errorf("unmarshaling match data: %w", err)
		}
	}
	return &match, nil
}
