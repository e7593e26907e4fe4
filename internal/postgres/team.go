package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matchday/internal/domain"
)

// CreateTeam inserts a new team
func (r *Repository) CreateTeam(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (id, name, sport, city, captain_id, logo_url,
			matches_won, matches_lost, matches_drawn, tournament_points, net_run_rate,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`
	_, err := r.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Sport,
		team.City,
		team.CaptainID,
		team.LogoURL,
		team.MatchesWon,
		team.MatchesLost,
		team.MatchesDrawn,
		team.TournamentPoints,
		team.NetRunRate,
		team.CreatedAt,
		team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating team: %w", err)
	}
	return nil
}

// GetTeam retrieves a team by ID
func (r *Repository) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	query := `
		SELECT id, name, sport, city, captain_id, logo_url,
			matches_won, matches_lost, matches_drawn, tournament_points, net_run_rate,
			created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	var team domain.Team
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&team.ID,
		&team.Name,
		&team.Sport,
		&team.City,
		&team.CaptainID,
		&team.LogoURL,
		&team.MatchesWon,
		&team.MatchesLost,
		&team.MatchesDrawn,
		&team.TournamentPoints,
		&team.NetRunRate,
		&team.CreatedAt,
		&team.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrTeamNotFound
		}
		return nil, fmt.Errorf("getting team: %w", err)
	}
	return &team, nil
}

// ListTeams retrieves teams, optionally filtered by sport
func (r *Repository) ListTeams(ctx context.Context, sport string) ([]domain.Team, error) {
	query := `
		SELECT id, name, sport, city, captain_id, logo_url,
			matches_won, matches_lost, matches_drawn, tournament_points, net_run_rate,
			created_at, updated_at
		FROM teams
	`
	var args []interface{}
	if sport != "" {
		query += ` WHERE sport = $1`
		args = append(args, sport)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing teams: %w", err)
	}
	defer rows.Close()

	var teams []domain.Team
	for rows.Next() {
		var team domain.Team
		err := rows.Scan(
			&team.ID,
			&team.Name,
			&team.Sport,
			&team.City,
			&team.CaptainID,
			&team.LogoURL,
			&team.MatchesWon,
			&team.MatchesLost,
			&team.MatchesDrawn,
			&team.TournamentPoints,
			&team.NetRunRate,
			&team.CreatedAt,
			&team.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning team: %w", err)
		}
		teams = append(teams, team)
	}
	return teams, nil
}

// UpdateTeam updates a team, counters included
func (r *Repository) UpdateTeam(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET name = $2, sport = $3, city = $4, captain_id = $5, logo_url = $6,
			matches_won = $7, matches_lost = $8, matches_drawn = $9,
			tournament_points = $10, net_run_rate = $11, updated_at = $12
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		team.ID,
		team.Name,
		team.Sport,
		team.City,
		team.CaptainID,
		team.LogoURL,
		team.MatchesWon,
		team.MatchesLost,
		team.MatchesDrawn,
		team.TournamentPoints,
		team.NetRunRate,
		team.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

// DeleteTeam removes a team and its roster
func (r *Repository) DeleteTeam(ctx context.Context, id string) error {
	query := `DELETE FROM teams WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting team: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}

// CreatePlayer inserts a new player
func (r *Repository) CreatePlayer(ctx context.Context, player *domain.Player) error {
	careerJSON, err := json.Marshal(player.CareerStats)
	if err != nil {
		return fmt.Errorf("marshaling career stats: %w", err)
	}

	query := `
		INSERT INTO players (id, team_id, user_id, name, role, batting_style, bowling_style, career_stats, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = r.pool.Exec(ctx, query,
		player.ID,
		player.TeamID,
		player.UserID,
		player.Name,
		player.Role,
		player.BattingStyle,
		player.BowlingStyle,
		careerJSON,
		player.CreatedAt,
		player.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating player: %w", err)
	}
	return nil
}

// GetPlayer retrieves a player by ID
func (r *Repository) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	query := `
		SELECT id, team_id, user_id, name, role, batting_style, bowling_style, career_stats, created_at, updated_at
		FROM players
		WHERE id = $1
	`
	player, err := scanPlayer(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrPlayerNotFound
		}
		return nil, fmt.Errorf("getting player: %w", err)
	}
	return player, nil
}

// ListPlayers retrieves players, optionally filtered by team
func (r *Repository) ListPlayers(ctx context.Context, teamID string) ([]domain.Player, error) {
	query := `
		SELECT id, team_id, user_id, name, role, batting_style, bowling_style, career_stats, created_at, updated_at
		FROM players
	`
	var args []interface{}
	if teamID != "" {
		query += ` WHERE team_id = $1`
		args = append(args, teamID)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing players: %w", err)
	}
	defer rows.Close()

	var players []domain.Player
	for rows.Next() {
		player, err := scanPlayer(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning player: %w", err)
		}
		players = append(players, *player)
	}
	return players, nil
}

// UpdatePlayer updates a player, career stats included
func (r *Repository) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	careerJSON, err := json.Marshal(player.CareerStats)
	if err != nil {
		return fmt.Errorf("marshaling career stats: %w", err)
	}

	query := `
		UPDATE players
		SET team_id = $2, user_id = $3, name = $4, role = $5, batting_style = $6,
			bowling_style = $7, career_stats = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		player.ID,
		player.TeamID,
		player.UserID,
		player.Name,
		player.Role,
		player.BattingStyle,
		player.BowlingStyle,
		careerJSON,
		player.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating player: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

// DeletePlayer removes a player
func (r *Repository) DeletePlayer(ctx context.Context, id string) error {
	query := `DELETE FROM players WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting player: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrPlayerNotFound
	}
	return nil
}

func scanPlayer(row pgx.Row) (*domain.Player, error) {
	var player domain.Player
	var careerJSON []byte
	err := row.Scan(
		&player.ID,
		&player.TeamID,
		&player.UserID,
		&player.Name,
		&player.Role,
		&player.BattingStyle,
		&player.BowlingStyle,
		&careerJSON,
		&player.CreatedAt,
		&player.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if len(careerJSON) > 0 {
		if err := json.Unmarshal(careerJSON, &player.CareerStats); err != nil {
			return nil, fmt.Errorf("unmarshaling career stats: %w", err)
		}
	}
	return &player, nil
}
