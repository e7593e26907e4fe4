// Package stats derives team records and league standings from match
// history. Everything here is a pure function over already-fetched data:
// no I/O, no locking, no error returns. Matches with malformed or missing
// result data are excluded from every count rather than raised as errors.
package stats

import "github.com/matchday/internal/domain"

// ComputeTeamStats derives a team's record from its match history.
//
// Only completed matches in which the team appears as team1 or team2 of the
// result payload are considered. Of those, only matches with an unambiguous
// outcome contribute: ties count as draws, a present winner ID counts as a
// win or a loss, and no-result, abandoned or incomplete results are excluded
// from every bucket including the total. Tournament points are 2 per win and
// 1 per draw.
func ComputeTeamStats(teamID string, matches []domain.Match) domain.TeamStats {
	stats := domain.TeamStats{TeamID: teamID}

	for i := range matches {
		m := &matches[i]
		if m.Status != domain.MatchStatusCompleted {
			continue
		}
		if !m.HasParticipant(teamID) {
			continue
		}

		result := m.Result()
		if result == nil {
			continue
		}

		switch {
		case result.ResultType == domain.ResultTied:
			stats.MatchesDrawn++
		case result.WinnerID != "":
			// Not validated against the participant set here; a winner ID
			// naming neither side counts as a loss. AuditResults surfaces
			// those rows.
			if result.WinnerID == teamID {
				stats.MatchesWon++
			} else {
				stats.MatchesLost++
			}
		default:
			// no-result, abandoned, or an unrecognized result type
			continue
		}
	}

	stats.TotalMatches = stats.MatchesWon + stats.MatchesLost + stats.MatchesDrawn
	stats.TournamentPoints = stats.MatchesWon*2 + stats.MatchesDrawn
	if stats.TotalMatches > 0 {
		stats.WinRate = float64(stats.MatchesWon) / float64(stats.TotalMatches) * 100
	}
	return stats
}

// Issue flags a data-integrity problem found in a match's result payload
type Issue struct {
	MatchID string `json:"match_id"`
	Reason  string `json:"reason"`
}

// AuditResults scans completed matches for result payloads that would be
// silently misattributed by ComputeTeamStats, most importantly a winner ID
// that names neither participant. It never alters the counts; callers log
// the issues so bad rows can be fixed at the source.
func AuditResults(matches []domain.Match) []Issue {
	var issues []Issue
	for i := range matches {
		m := &matches[i]
		if m.Status != domain.MatchStatusCompleted {
			continue
		}
		if m.MatchData == nil {
			issues = append(issues, Issue{MatchID: m.ID, Reason: "completed match has no result payload"})
			continue
		}
		t1, t2 := m.Participants()
		if t1 == "" || t2 == "" {
			issues = append(issues, Issue{MatchID: m.ID, Reason: "result payload missing participant team"})
			continue
		}
		result := m.MatchData.ResultSummary
		if result == nil {
			issues = append(issues, Issue{MatchID: m.ID, Reason: "completed match has no result summary"})
			continue
		}
		if result.WinnerID != "" && result.WinnerID != t1 && result.WinnerID != t2 {
			issues = append(issues, Issue{MatchID: m.ID, Reason: "winner is not a participant"})
		}
	}
	return issues
}
