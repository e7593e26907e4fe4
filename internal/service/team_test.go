package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/memory"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func seedTeams(t *testing.T, store *memory.Store, ids ...string) {
	t.Helper()
	for _, id := range ids {
		if err := store.CreateTeam(context.Background(), &domain.Team{ID: id, Name: "Team " + id, Sport: "cricket"}); err != nil {
			t.Fatal(err)
		}
	}
}

func seedResult(t *testing.T, store *memory.Store, id, team1, team2, winner string, resultType domain.ResultType) {
	t.Helper()
	err := store.CreateMatch(context.Background(), &domain.Match{
		ID:         id,
		Sport:      "cricket",
		HomeTeamID: team1,
		AwayTeamID: team2,
		Status:     domain.MatchStatusCompleted,
		MatchData: &domain.MatchData{
			Team1ID:       team1,
			Team2ID:       team2,
			ResultSummary: &domain.ResultSummary{WinnerID: winner, ResultType: resultType},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
}

func TestCreateTeamValidation(t *testing.T) {
	svc := NewTeamService(memory.NewStore(), memory.NewStore(), nil, testLogger())

	if _, err := svc.CreateTeam(context.Background(), &domain.Team{Name: "  "}); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected invalid request, got %v", err)
	}

	team, err := svc.CreateTeam(context.Background(), &domain.Team{Name: "Avengers", Sport: "cricket"})
	if err != nil {
		t.Fatal(err)
	}
	if team.ID == "" {
		t.Fatal("expected generated ID")
	}
}

func TestTeamStatsFromHistory(t *testing.T) {
	store := memory.NewStore()
	seedTeams(t, store, "t1", "t2")
	seedResult(t, store, "m1", "t1", "t2", "t1", domain.ResultWonByRuns)
	seedResult(t, store, "m2", "t1", "t2", "", domain.ResultTied)
	seedResult(t, store, "m3", "t2", "t1", "t2", domain.ResultWonByWickets)
	seedResult(t, store, "m4", "t1", "t2", "", domain.ResultAbandoned)

	svc := NewTeamService(store, store, nil, testLogger())

	got, err := svc.TeamStats(context.Background(), "t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.TotalMatches != 3 || got.MatchesWon != 1 || got.MatchesLost != 1 || got.MatchesDrawn != 1 {
		t.Fatalf("unexpected stats: %+v", got)
	}
	if got.TournamentPoints != 3 {
		t.Fatalf("expected 3 points, got %d", got.TournamentPoints)
	}
}

func TestTeamStatsUnknownTeam(t *testing.T) {
	store := memory.NewStore()
	svc := NewTeamService(store, store, nil, testLogger())

	if _, err := svc.TeamStats(context.Background(), "nope"); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected team not found, got %v", err)
	}
}

func TestReconcileTeamUpdatesCounters(t *testing.T) {
	store := memory.NewStore()
	seedTeams(t, store, "t1", "t2")
	seedResult(t, store, "m1", "t1", "t2", "t1", domain.ResultWonByRuns)
	seedResult(t, store, "m2", "t1", "t2", "t1", domain.ResultWonByWickets)
	seedResult(t, store, "m3", "t2", "t1", "", domain.ResultTied)

	svc := NewTeamService(store, store, nil, testLogger())

	if _, err := svc.ReconcileTeam(context.Background(), "t1"); err != nil {
		t.Fatal(err)
	}

	team, _ := store.GetTeam(context.Background(), "t1")
	if team.MatchesWon != 2 || team.MatchesDrawn != 1 || team.MatchesLost != 0 {
		t.Fatalf("counters not reconciled: %+v", team)
	}
	if team.TournamentPoints != 5 {
		t.Fatalf("expected 5 points, got %d", team.TournamentPoints)
	}
}

func TestStandingsOrdering(t *testing.T) {
	store := memory.NewStore()
	seedTeams(t, store, "t1", "t2", "t3")
	seedResult(t, store, "m1", "t1", "t2", "t1", domain.ResultWonByRuns)
	seedResult(t, store, "m2", "t1", "t3", "t1", domain.ResultWonByRuns)
	seedResult(t, store, "m3", "t2", "t3", "t2", domain.ResultWonByWickets)

	svc := NewTeamService(store, store, nil, testLogger())

	table, err := svc.Standings(context.Background(), "cricket")
	if err != nil {
		t.Fatal(err)
	}
	if len(table) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(table))
	}
	if table[0].TeamID != "t1" || table[0].Rank != 1 || table[0].TournamentPoints != 4 {
		t.Fatalf("unexpected leader: %+v", table[0])
	}
}

func TestUpdateTeamPreservesCounters(t *testing.T) {
	store := memory.NewStore()
	seedTeams(t, store, "t1")
	original, _ := store.GetTeam(context.Background(), "t1")
	original.MatchesWon = 7
	store.UpdateTeam(context.Background(), original)

	svc := NewTeamService(store, store, nil, testLogger())
	updated, err := svc.UpdateTeam(context.Background(), &domain.Team{ID: "t1", Name: "Renamed", Sport: "cricket"})
	if err != nil {
		t.Fatal(err)
	}
	if updated.Name != "Renamed" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.MatchesWon != 7 {
		t.Fatalf("counters should not be writable through UpdateTeam: %+v", updated)
	}
}
