package domain

import "time"

// Player represents a squad member
type Player struct {
	ID           string      `json:"id"`
	TeamID       string      `json:"team_id"`
	UserID       string      `json:"user_id,omitempty"`
	Name         string      `json:"name"`
	Role         string      `json:"role,omitempty"`
	BattingStyle string      `json:"batting_style,omitempty"`
	BowlingStyle string      `json:"bowling_style,omitempty"`
	CareerStats  CareerStats `json:"career_stats"`
	CreatedAt    time.Time   `json:"created_at"`
	UpdatedAt    time.Time   `json:"updated_at"`
}

// CareerStats holds a player's cumulative figures. They are maintained by
// the scoring source through the CRUD API, never by the statistics
// aggregator.
type CareerStats struct {
	Batting  BattingCareer  `json:"batting"`
	Bowling  BowlingCareer  `json:"bowling"`
	Fielding FieldingCareer `json:"fielding"`
}

// BattingCareer is the cumulative batting record
type BattingCareer struct {
	Matches      int     `json:"matches"`
	Innings      int     `json:"innings"`
	Runs         int     `json:"runs"`
	HighestScore int     `json:"highest_score"`
	Average      float64 `json:"average"`
	StrikeRate   float64 `json:"strike_rate"`
	Hundreds     int     `json:"hundreds"`
	Fifties      int     `json:"fifties"`
}

// BowlingCareer is the cumulative bowling record
type BowlingCareer struct {
	Innings        int     `json:"innings"`
	Overs          float64 `json:"overs"`
	Runs           int     `json:"runs"`
	Wickets        int     `json:"wickets"`
	Average        float64 `json:"average"`
	Economy        float64 `json:"economy"`
	FiveWicketHauls int    `json:"five_wicket_hauls"`
}

// FieldingCareer is the cumulative fielding record
type FieldingCareer struct {
	Catches   int `json:"catches"`
	Stumpings int `json:"stumpings"`
	RunOuts   int `json:"run_outs"`
}
