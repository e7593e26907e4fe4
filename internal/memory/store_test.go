package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/matchday/internal/domain"
)

func TestTeamCRUD(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	team := &domain.Team{ID: "t1", Name: "Avengers", Sport: "cricket"}
	if err := store.CreateTeam(ctx, team); err != nil {
		t.Fatal(err)
	}

	got, err := store.GetTeam(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if got.Name != "Avengers" {
		t.Fatalf("got %+v", got)
	}

	got.Name = "Avengers XI"
	if err := store.UpdateTeam(ctx, got); err != nil {
		t.Fatal(err)
	}
	updated, _ := store.GetTeam(ctx, "t1")
	if updated.Name != "Avengers XI" {
		t.Fatalf("update not applied: %+v", updated)
	}

	if err := store.DeleteTeam(ctx, "t1"); err != nil {
		t.Fatal(err)
	}
	if _, err := store.GetTeam(ctx, "t1"); !errors.Is(err, domain.ErrTeamNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListTeamsFiltersBySport(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	store.CreateTeam(ctx, &domain.Team{ID: "t1", Name: "A", Sport: "cricket"})
	store.CreateTeam(ctx, &domain.Team{ID: "t2", Name: "B", Sport: "football"})

	teams, err := store.ListTeams(ctx, "cricket")
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 1 || teams[0].ID != "t1" {
		t.Fatalf("got %+v", teams)
	}

	all, _ := store.ListTeams(ctx, "")
	if len(all) != 2 {
		t.Fatalf("expected 2 teams, got %d", len(all))
	}
}

func TestGetMatchReturnsClone(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	match := &domain.Match{
		ID:     "m1",
		Sport:  "cricket",
		Status: domain.MatchStatusCompleted,
		MatchData: &domain.MatchData{
			Team1ID:       "t1",
			Team2ID:       "t2",
			ResultSummary: &domain.ResultSummary{WinnerID: "t1", ResultType: domain.ResultWonByRuns},
		},
	}
	if err := store.CreateMatch(ctx, match); err != nil {
		t.Fatal(err)
	}

	got, _ := store.GetMatch(ctx, "m1")
	got.MatchData.ResultSummary.WinnerID = "t2"

	again, _ := store.GetMatch(ctx, "m1")
	if again.MatchData.ResultSummary.WinnerID != "t1" {
		t.Fatal("stored match was mutated through a returned copy")
	}
}

func TestListMatchesForTeam(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.CreateMatch(ctx, &domain.Match{
		ID: "m1", Sport: "cricket", HomeTeamID: "t1", AwayTeamID: "t2",
		ScheduledAt: time.Now(),
	})
	store.CreateMatch(ctx, &domain.Match{
		ID: "m2", Sport: "cricket",
		MatchData:   &domain.MatchData{Team1ID: "t1", Team2ID: "t3"},
		ScheduledAt: time.Now().Add(time.Hour),
	})
	store.CreateMatch(ctx, &domain.Match{
		ID: "m3", Sport: "cricket", HomeTeamID: "t2", AwayTeamID: "t3",
	})

	matches, err := store.ListMatchesForTeam(ctx, "t1")
	if err != nil {
		t.Fatal(err)
	}
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches for t1, got %d", len(matches))
	}
}

func TestListMatchesFilter(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.CreateMatch(ctx, &domain.Match{ID: "m1", Sport: "cricket", Status: domain.MatchStatusCompleted, VenueID: "v1"})
	store.CreateMatch(ctx, &domain.Match{ID: "m2", Sport: "cricket", Status: domain.MatchStatusUpcoming, VenueID: "v1"})
	store.CreateMatch(ctx, &domain.Match{ID: "m3", Sport: "football", Status: domain.MatchStatusCompleted})

	completed, _ := store.ListMatches(ctx, domain.MatchFilter{Sport: "cricket", Status: domain.MatchStatusCompleted})
	if len(completed) != 1 || completed[0].ID != "m1" {
		t.Fatalf("got %+v", completed)
	}

	byVenue, _ := store.ListMatches(ctx, domain.MatchFilter{VenueID: "v1"})
	if len(byVenue) != 2 {
		t.Fatalf("expected 2 matches at v1, got %d", len(byVenue))
	}
}

func TestUserStatsLifecycle(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	if _, err := store.GetUserStats(ctx, "u1"); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	if err := store.UpsertUserStats(ctx, &domain.UserStats{UserID: "u1", MatchesOrganized: 1}); err != nil {
		t.Fatal(err)
	}
	got, err := store.GetUserStats(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if got.MatchesOrganized != 1 {
		t.Fatalf("got %+v", got)
	}
}

func TestCartScopedToUser(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.CreateCartItem(ctx, &domain.CartItem{ID: "c1", UserID: "u1", ProductID: "p1", Quantity: 2})
	store.CreateCartItem(ctx, &domain.CartItem{ID: "c2", UserID: "u2", ProductID: "p1", Quantity: 1})

	items, err := store.ListCart(ctx, "u1")
	if err != nil {
		t.Fatal(err)
	}
	if len(items) != 1 || items[0].ID != "c1" {
		t.Fatalf("got %+v", items)
	}
}

func TestReviewsByTarget(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	store.CreateReview(ctx, &domain.Review{ID: "r1", UserID: "u1", TargetType: domain.ReviewTargetVenue, TargetID: "v1", Rating: 4})
	store.CreateReview(ctx, &domain.Review{ID: "r2", UserID: "u1", TargetType: domain.ReviewTargetProduct, TargetID: "p1", Rating: 5})

	reviews, err := store.ListReviews(ctx, domain.ReviewTargetVenue, "v1")
	if err != nil {
		t.Fatal(err)
	}
	if len(reviews) != 1 || reviews[0].ID != "r1" {
		t.Fatalf("got %+v", reviews)
	}
}
