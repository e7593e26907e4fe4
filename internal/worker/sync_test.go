package worker

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/matchday/internal/config"
	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/memory"
	"github.com/matchday/internal/service"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newWorkerFixture(t *testing.T) (*SyncWorker, *memory.Store) {
	t.Helper()
	store := memory.NewStore()
	teams := service.NewTeamService(store, store, nil, testLogger())
	cfg := &config.SyncConfig{Interval: time.Minute, Enabled: true}
	return NewSyncWorker(teams, store, cfg, testLogger()), store
}

func seedTeam(t *testing.T, store *memory.Store, id, sport string) {
	t.Helper()
	err := store.CreateTeam(context.Background(), &domain.Team{ID: id, Name: id, Sport: sport})
	if err != nil {
		t.Fatalf("CreateTeam(%s): %v", id, err)
	}
}

func seedCompletedMatch(t *testing.T, store *memory.Store, id, sport, team1, team2, winner string) {
	t.Helper()
	match := &domain.Match{
		ID:     id,
		Sport:  sport,
		Status: domain.MatchStatusCompleted,
		MatchData: &domain.MatchData{
			Team1ID: team1,
			Team2ID: team2,
			ResultSummary: &domain.ResultSummary{
				WinnerID:   winner,
				ResultType: domain.ResultWonByRuns,
			},
		},
	}
	if err := store.CreateMatch(context.Background(), match); err != nil {
		t.Fatalf("CreateMatch(%s): %v", id, err)
	}
}

func TestRunOnceReconcilesCounters(t *testing.T) {
	w, store := newWorkerFixture(t)
	seedTeam(t, store, "t1", "cricket")
	seedTeam(t, store, "t2", "cricket")
	seedCompletedMatch(t, store, "m1", "cricket", "t1", "t2", "t1")
	seedCompletedMatch(t, store, "m2", "cricket", "t1", "t2", "t1")
	seedCompletedMatch(t, store, "m3", "cricket", "t2", "t1", "t2")

	w.RunOnce(context.Background())

	team, err := store.GetTeam(context.Background(), "t1")
	if err != nil {
		t.Fatalf("GetTeam: %v", err)
	}
	if team.MatchesWon != 2 || team.MatchesLost != 1 || team.MatchesDrawn != 0 {
		t.Errorf("t1 record = %d/%d/%d, want 2/1/0", team.MatchesWon, team.MatchesLost, team.MatchesDrawn)
	}
	if team.TournamentPoints != 4 {
		t.Errorf("t1 points = %d, want 4", team.TournamentPoints)
	}
}

func TestStartStop(t *testing.T) {
	w, _ := newWorkerFixture(t)

	if w.IsRunning() {
		t.Fatal("worker should not be running before Start")
	}
	if err := w.Start(context.Background()); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !w.IsRunning() {
		t.Fatal("worker should be running after Start")
	}
	if err := w.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	if w.IsRunning() {
		t.Fatal("worker should not be running after Stop")
	}
}
