package domain

// Scorecard is the nested per-innings batting/bowling record for a cricket
// match. Derived rates (run rate, strike rate, economy) are computed by the
// scoring source and stored as-is; this service only display-formats them.
type Scorecard struct {
	Innings []Innings `json:"innings"`
}

// Innings is one team's turn at batting
type Innings struct {
	Number  int            `json:"number"`
	TeamID  string         `json:"team_id"`
	Runs    int            `json:"runs"`
	Wickets int            `json:"wickets"`
	Overs   float64        `json:"overs"`
	RunRate float64        `json:"run_rate"`
	Extras  Extras         `json:"extras"`
	Batting []BattingEntry `json:"batting,omitempty"`
	Bowling []BowlingEntry `json:"bowling,omitempty"`
}

// Extras holds the extra runs conceded in an innings
type Extras struct {
	Byes    int `json:"byes"`
	LegByes int `json:"leg_byes"`
	Wides   int `json:"wides"`
	NoBalls int `json:"no_balls"`
	Penalty int `json:"penalty"`
	Total   int `json:"total"`
}

// BattingEntry is one batter's line in an innings
type BattingEntry struct {
	PlayerID   string  `json:"player_id"`
	Name       string  `json:"name,omitempty"`
	Runs       int     `json:"runs"`
	Balls      int     `json:"balls"`
	Fours      int     `json:"fours"`
	Sixes      int     `json:"sixes"`
	StrikeRate float64 `json:"strike_rate"`
	Dismissal  string  `json:"dismissal,omitempty"`
}

// BowlingEntry is one bowler's line in an innings
type BowlingEntry struct {
	PlayerID string  `json:"player_id"`
	Name     string  `json:"name,omitempty"`
	Overs    float64 `json:"overs"`
	Maidens  int     `json:"maidens"`
	Runs     int     `json:"runs"`
	Wickets  int     `json:"wickets"`
	Economy  float64 `json:"economy"`
}
