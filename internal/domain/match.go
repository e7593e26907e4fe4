package domain

import "time"

// MatchStatus represents the lifecycle state of a match
type MatchStatus string

const (
	MatchStatusUpcoming  MatchStatus = "upcoming"
	MatchStatusLive      MatchStatus = "live"
	MatchStatusCompleted MatchStatus = "completed"
)

// ResultType classifies how a completed match ended
type ResultType string

const (
	ResultWonByRuns    ResultType = "won-by-runs"
	ResultWonByWickets ResultType = "won-by-wickets"
	ResultTied         ResultType = "tied"
	ResultNoResult     ResultType = "no-result"
	ResultAbandoned    ResultType = "abandoned"
)

// ResultSummary describes the outcome of a completed match.
// WinnerID is empty for tied, no-result and abandoned matches.
type ResultSummary struct {
	WinnerID      string     `json:"winner_id,omitempty"`
	ResultType    ResultType `json:"result_type"`
	MarginRuns    int        `json:"margin_runs,omitempty"`
	MarginWickets int        `json:"margin_wickets,omitempty"`
}

// MatchData is the result payload attached to a match. Team1ID and Team2ID
// are the authoritative participant references for statistics; the top-level
// team fields on Match exist for scheduling and may be set before the
// payload is.
type MatchData struct {
	Team1ID       string         `json:"team1_id"`
	Team2ID       string         `json:"team2_id"`
	TossWinnerID  string         `json:"toss_winner_id,omitempty"`
	TossDecision  string         `json:"toss_decision,omitempty"`
	ResultSummary *ResultSummary `json:"result_summary,omitempty"`
	Scorecard     *Scorecard     `json:"scorecard,omitempty"`
}

// Match represents an organized match
type Match struct {
	ID          string      `json:"id"`
	Sport       string      `json:"sport"`
	Title       string      `json:"title"`
	OrganizerID string      `json:"organizer_id,omitempty"`
	VenueID     string      `json:"venue_id,omitempty"`
	HomeTeamID  string      `json:"home_team_id"`
	AwayTeamID  string      `json:"away_team_id"`
	ScheduledAt time.Time   `json:"scheduled_at"`
	Status      MatchStatus `json:"status"`
	MatchData   *MatchData  `json:"match_data,omitempty"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// Participants returns the two participant team IDs from the result payload.
// Both are empty when no payload is attached.
func (m *Match) Participants() (string, string) {
	if m.MatchData == nil {
		return "", ""
	}
	return m.MatchData.Team1ID, m.MatchData.Team2ID
}

// HasParticipant reports whether teamID appears as either side in the
// match's result payload.
func (m *Match) HasParticipant(teamID string) bool {
	t1, t2 := m.Participants()
	return teamID != "" && (teamID == t1 || teamID == t2)
}

// Result returns the result summary, or nil when the match has none.
func (m *Match) Result() *ResultSummary {
	if m.MatchData == nil {
		return nil
	}
	return m.MatchData.ResultSummary
}

// MatchFilter narrows match listings
type MatchFilter struct {
	Sport   string
	Status  MatchStatus
	TeamID  string
	VenueID string
}

// ResultEvent is a match result ingested from the event feed
type ResultEvent struct {
	MatchID       string     `json:"match_id"`
	WinnerID      string     `json:"winner_id,omitempty"`
	ResultType    ResultType `json:"result_type"`
	MarginRuns    int        `json:"margin_runs,omitempty"`
	MarginWickets int        `json:"margin_wickets,omitempty"`
	Scorecard     *Scorecard `json:"scorecard,omitempty"`
	Timestamp     time.Time  `json:"timestamp"`
}
