package stats

import (
	"fmt"

	"github.com/matchday/internal/domain"
)

// Display formatting for scorecard views. Derived rates are pre-computed by
// the scoring source; these helpers only round and label them.

// FormatRate renders a run rate, strike rate or economy to two decimals
func FormatRate(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// FormatOvers renders an overs figure, dropping a trailing ".0"
func FormatOvers(overs float64) string {
	whole := int(overs)
	balls := int(overs*10+0.5) - whole*10
	if balls == 0 {
		return fmt.Sprintf("%d", whole)
	}
	return fmt.Sprintf("%d.%d", whole, balls)
}

// FormatInningsTotal renders an innings score line, e.g. "187/6 (20 ov)"
func FormatInningsTotal(in domain.Innings) string {
	return fmt.Sprintf("%d/%d (%s ov)", in.Runs, in.Wickets, FormatOvers(in.Overs))
}

// FormatResult renders a result summary as a one-line description. The
// winner name is passed in by the caller; an empty name falls back to the
// winner ID.
func FormatResult(result *domain.ResultSummary, winnerName string) string {
	if result == nil {
		return "Result pending"
	}
	if winnerName == "" {
		winnerName = result.WinnerID
	}
	switch result.ResultType {
	case domain.ResultWonByRuns:
		if result.MarginRuns == 1 {
			return fmt.Sprintf("%s won by 1 run", winnerName)
		}
		return fmt.Sprintf("%s won by %d runs", winnerName, result.MarginRuns)
	case domain.ResultWonByWickets:
		if result.MarginWickets == 1 {
			return fmt.Sprintf("%s won by 1 wicket", winnerName)
		}
		return fmt.Sprintf("%s won by %d wickets", winnerName, result.MarginWickets)
	case domain.ResultTied:
		return "Match tied"
	case domain.ResultNoResult:
		return "No result"
	case domain.ResultAbandoned:
		return "Match abandoned"
	default:
		return "Result pending"
	}
}
