package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/memory"
)

type captureBroadcaster struct {
	matchUpdates []string
	standings    []string
}

func (b *captureBroadcaster) BroadcastMatchUpdate(match *domain.Match) {
	b.matchUpdates = append(b.matchUpdates, match.ID)
}

func (b *captureBroadcaster) BroadcastStandings(sport string, entries []domain.StandingsEntry) {
	b.standings = append(b.standings, sport)
}

func newMatchFixture(t *testing.T) (*memory.Store, *MatchService) {
	t.Helper()
	store := memory.NewStore()
	seedTeams(t, store, "t1", "t2")
	teams := NewTeamService(store, store, nil, testLogger())
	svc := NewMatchService(store, teams, store, testLogger())
	return store, svc
}

func TestCreateMatchValidation(t *testing.T) {
	_, svc := newMatchFixture(t)
	ctx := context.Background()

	tests := []struct {
		name  string
		match domain.Match
		want  error
	}{
		{"missing sport", domain.Match{HomeTeamID: "t1", AwayTeamID: "t2"}, domain.ErrInvalidRequest},
		{"same team twice", domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t1"}, domain.ErrInvalidRequest},
		{"unknown team", domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "zz"}, domain.ErrTeamNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateMatch(ctx, &tt.match); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestCreateMatchDefaults(t *testing.T) {
	_, svc := newMatchFixture(t)

	match, err := svc.CreateMatch(context.Background(), &domain.Match{
		Sport:       "cricket",
		HomeTeamID:  "t1",
		AwayTeamID:  "t2",
		ScheduledAt: time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatal(err)
	}
	if match.ID == "" || match.Status != domain.MatchStatusUpcoming {
		t.Fatalf("defaults not applied: %+v", match)
	}
	if match.MatchData == nil || match.MatchData.Team1ID != "t1" || match.MatchData.Team2ID != "t2" {
		t.Fatalf("participants not seeded into payload: %+v", match.MatchData)
	}
}

func TestCreateMatchBumpsOrganizerStats(t *testing.T) {
	store, svc := newMatchFixture(t)
	ctx := context.Background()
	store.CreateUser(ctx, &domain.User{ID: "u1", Username: "sam"})

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateMatch(ctx, &domain.Match{
			Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2", OrganizerID: "u1",
		}); err != nil {
			t.Fatal(err)
		}
	}

	userStats, err := store.GetUserStats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if userStats.MatchesOrganized != 2 {
		t.Fatalf("expected 2 organized matches, got %d", userStats.MatchesOrganized)
	}
}

func TestRecordResult(t *testing.T) {
	store, svc := newMatchFixture(t)
	broadcaster := &captureBroadcaster{}
	svc.SetBroadcaster(broadcaster)
	ctx := context.Background()

	match, err := svc.CreateMatch(ctx, &domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2"})
	if err != nil {
		t.Fatal(err)
	}

	err = svc.RecordResult(ctx, domain.ResultEvent{
		MatchID:    match.ID,
		WinnerID:   "t1",
		ResultType: domain.ResultWonByRuns,
		MarginRuns: 23,
		Scorecard: &domain.Scorecard{Innings: []domain.Innings{
			{Number: 1, TeamID: "t1", Runs: 187, Wickets: 6, Overs: 20},
			{Number: 2, TeamID: "t2", Runs: 164, Wickets: 9, Overs: 20},
		}},
	})
	if err != nil {
		t.Fatal(err)
	}

	updated, _ := store.GetMatch(ctx, match.ID)
	if updated.Status != domain.MatchStatusCompleted {
		t.Fatalf("expected completed, got %s", updated.Status)
	}
	result := updated.Result()
	if result == nil || result.WinnerID != "t1" || result.MarginRuns != 23 {
		t.Fatalf("result not recorded: %+v", result)
	}
	if updated.MatchData.Scorecard == nil || len(updated.MatchData.Scorecard.Innings) != 2 {
		t.Fatal("scorecard not attached")
	}

	// Both teams reconciled from history.
	winner, _ := store.GetTeam(ctx, "t1")
	loser, _ := store.GetTeam(ctx, "t2")
	if winner.MatchesWon != 1 || winner.TournamentPoints != 2 {
		t.Fatalf("winner counters not reconciled: %+v", winner)
	}
	if loser.MatchesLost != 1 || loser.TournamentPoints != 0 {
		t.Fatalf("loser counters not reconciled: %+v", loser)
	}

	if len(broadcaster.matchUpdates) == 0 {
		t.Fatal("expected a match update broadcast")
	}
}

func TestRecordResultRejectsForeignWinner(t *testing.T) {
	_, svc := newMatchFixture(t)
	ctx := context.Background()

	match, _ := svc.CreateMatch(ctx, &domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2"})

	err := svc.RecordResult(ctx, domain.ResultEvent{
		MatchID:    match.ID,
		WinnerID:   "intruder",
		ResultType: domain.ResultWonByWickets,
	})
	if !errors.Is(err, domain.ErrInvalidResult) {
		t.Fatalf("expected invalid result, got %v", err)
	}
}

func TestRecordResultValidation(t *testing.T) {
	_, svc := newMatchFixture(t)
	ctx := context.Background()
	match, _ := svc.CreateMatch(ctx, &domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2"})

	tests := []struct {
		name  string
		event domain.ResultEvent
		want  error
	}{
		{"unknown match", domain.ResultEvent{MatchID: "zz", ResultType: domain.ResultTied}, domain.ErrMatchNotFound},
		{"win without winner", domain.ResultEvent{MatchID: match.ID, ResultType: domain.ResultWonByRuns}, domain.ErrInvalidResult},
		{"unknown result type", domain.ResultEvent{MatchID: match.ID, ResultType: "forfeit"}, domain.ErrInvalidResult},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := svc.RecordResult(ctx, tt.event); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestRecordResultTwiceRejected(t *testing.T) {
	_, svc := newMatchFixture(t)
	ctx := context.Background()
	match, _ := svc.CreateMatch(ctx, &domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2"})

	if err := svc.RecordResult(ctx, domain.ResultEvent{MatchID: match.ID, ResultType: domain.ResultTied}); err != nil {
		t.Fatal(err)
	}
	err := svc.RecordResult(ctx, domain.ResultEvent{MatchID: match.ID, ResultType: domain.ResultTied})
	if !errors.Is(err, domain.ErrMatchHasResult) {
		t.Fatalf("expected already-has-result, got %v", err)
	}
}

func TestScorecard(t *testing.T) {
	_, svc := newMatchFixture(t)
	ctx := context.Background()
	match, _ := svc.CreateMatch(ctx, &domain.Match{Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2"})

	if _, err := svc.Scorecard(ctx, match.ID); !errors.Is(err, domain.ErrMatchNotCompleted) {
		t.Fatalf("expected not completed, got %v", err)
	}

	svc.RecordResult(ctx, domain.ResultEvent{
		MatchID:    match.ID,
		ResultType: domain.ResultTied,
		Scorecard:  &domain.Scorecard{Innings: []domain.Innings{{Number: 1, TeamID: "t1"}}},
	})

	card, err := svc.Scorecard(ctx, match.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(card.Innings) != 1 {
		t.Fatalf("got %+v", card)
	}
}
