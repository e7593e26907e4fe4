package stats

import (
	"testing"

	"github.com/matchday/internal/domain"
)

func TestFormatRate(t *testing.T) {
	if got := FormatRate(133.333); got != "133.33" {
		t.Fatalf("got %q", got)
	}
	if got := FormatRate(6); got != "6.00" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatOvers(t *testing.T) {
	tests := []struct {
		overs float64
		want  string
	}{
		{20, "20"},
		{19.4, "19.4"},
		{0.3, "0.3"},
		{4.0, "4"},
	}
	for _, tt := range tests {
		if got := FormatOvers(tt.overs); got != tt.want {
			t.Fatalf("FormatOvers(%v) = %q, want %q", tt.overs, got, tt.want)
		}
	}
}

func TestFormatInningsTotal(t *testing.T) {
	in := domain.Innings{Runs: 187, Wickets: 6, Overs: 20}
	if got := FormatInningsTotal(in); got != "187/6 (20 ov)" {
		t.Fatalf("got %q", got)
	}
}

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name   string
		result *domain.ResultSummary
		winner string
		want   string
	}{
		{"nil", nil, "", "Result pending"},
		{"by runs", &domain.ResultSummary{WinnerID: "t1", ResultType: domain.ResultWonByRuns, MarginRuns: 23}, "Avengers", "Avengers won by 23 runs"},
		{"by one run", &domain.ResultSummary{WinnerID: "t1", ResultType: domain.ResultWonByRuns, MarginRuns: 1}, "Avengers", "Avengers won by 1 run"},
		{"by wickets", &domain.ResultSummary{WinnerID: "t1", ResultType: domain.ResultWonByWickets, MarginWickets: 5}, "Avengers", "Avengers won by 5 wickets"},
		{"winner id fallback", &domain.ResultSummary{WinnerID: "t1", ResultType: domain.ResultWonByWickets, MarginWickets: 1}, "", "t1 won by 1 wicket"},
		{"tied", &domain.ResultSummary{ResultType: domain.ResultTied}, "", "Match tied"},
		{"no result", &domain.ResultSummary{ResultType: domain.ResultNoResult}, "", "No result"},
		{"abandoned", &domain.ResultSummary{ResultType: domain.ResultAbandoned}, "", "Match abandoned"},
		{"unknown", &domain.ResultSummary{ResultType: "super-over"}, "", "Result pending"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatResult(tt.result, tt.winner); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}
