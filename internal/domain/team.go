package domain

import "time"

// Team represents a team and its persisted cumulative record. The counter
// fields are a cached projection of the match history; the statistics
// aggregator's recomputation is authoritative and the sync worker keeps the
// projection in step.
type Team struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Sport            string    `json:"sport"`
	City             string    `json:"city,omitempty"`
	CaptainID        string    `json:"captain_id,omitempty"`
	LogoURL          string    `json:"logo_url,omitempty"`
	MatchesWon       int       `json:"matches_won"`
	MatchesLost      int       `json:"matches_lost"`
	MatchesDrawn     int       `json:"matches_drawn"`
	TournamentPoints int       `json:"tournament_points"`
	NetRunRate       float64   `json:"net_run_rate"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// TeamStats is the record derived from a team's match history at view time.
// Matches without an unambiguous outcome are excluded from every field, so
// TotalMatches is the count of decided matches, not of completed ones.
type TeamStats struct {
	TeamID           string  `json:"team_id"`
	TotalMatches     int     `json:"total_matches"`
	MatchesWon       int     `json:"matches_won"`
	MatchesLost      int     `json:"matches_lost"`
	MatchesDrawn     int     `json:"matches_drawn"`
	WinRate          float64 `json:"win_rate"`
	TournamentPoints int     `json:"tournament_points"`
}

// StandingsEntry is one row of a ranked league table
type StandingsEntry struct {
	Rank             int     `json:"rank"`
	TeamID           string  `json:"team_id"`
	Name             string  `json:"name"`
	Played           int     `json:"played"`
	Won              int     `json:"won"`
	Lost             int     `json:"lost"`
	Drawn            int     `json:"drawn"`
	WinRate          float64 `json:"win_rate"`
	TournamentPoints int     `json:"tournament_points"`
	NetRunRate       float64 `json:"net_run_rate"`
}
