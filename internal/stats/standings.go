package stats

import (
	"sort"

	"github.com/matchday/internal/domain"
)

// BuildStandings derives a ranked league table for the given teams from the
// shared match history. Records come from ComputeTeamStats, so the same
// exclusion rules apply; net run rate is carried over from the stored team
// counters since it cannot be derived from result summaries alone.
//
// Ordering: tournament points desc, then win rate desc, then name asc.
func BuildStandings(teams []domain.Team, matches []domain.Match) []domain.StandingsEntry {
	entries := make([]domain.StandingsEntry, 0, len(teams))
	for _, team := range teams {
		s := ComputeTeamStats(team.ID, matches)
		entries = append(entries, domain.StandingsEntry{
			TeamID:           team.ID,
			Name:             team.Name,
			Played:           s.TotalMatches,
			Won:              s.MatchesWon,
			Lost:             s.MatchesLost,
			Drawn:            s.MatchesDrawn,
			WinRate:          s.WinRate,
			TournamentPoints: s.TournamentPoints,
			NetRunRate:       team.NetRunRate,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].TournamentPoints != entries[j].TournamentPoints {
			return entries[i].TournamentPoints > entries[j].TournamentPoints
		}
		if entries[i].WinRate != entries[j].WinRate {
			return entries[i].WinRate > entries[j].WinRate
		}
		return entries[i].Name < entries[j].Name
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries
}
