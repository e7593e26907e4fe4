package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/memory"
	"github.com/matchday/internal/service"
	"github.com/matchday/internal/websocket"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestRouter(t *testing.T) (http.Handler, *memory.Store) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := memory.NewStore()

	users := service.NewUserService(store, logger)
	teams := service.NewTeamService(store, store, nil, logger)
	roster := service.NewRosterService(store, store, logger)
	matches := service.NewMatchService(store, teams, store, logger)
	venues := service.NewVenueService(store, store, logger)
	shop := service.NewShopService(store, store, logger)
	hub := websocket.NewHub(logger)

	h := NewHandler(users, teams, roster, matches, venues, shop, hub, logger)
	return h.Router(), store
}

func doJSON(t *testing.T, router http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encoding body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decoding response %q: %v", rec.Body.String(), err)
	}
	return rec, env
}

func seedTeam(t *testing.T, store *memory.Store, id, name, sport string) {
	t.Helper()
	err := store.CreateTeam(context.Background(), &domain.Team{ID: id, Name: name, Sport: sport})
	if err != nil {
		t.Fatalf("CreateTeam(%s): %v", id, err)
	}
}

func seedResult(t *testing.T, store *memory.Store, id, sport, team1, team2 string, summary *domain.ResultSummary) {
	t.Helper()
	match := &domain.Match{
		ID:     id,
		Sport:  sport,
		Status: domain.MatchStatusCompleted,
		MatchData: &domain.MatchData{
			Team1ID:       team1,
			Team2ID:       team2,
			ResultSummary: summary,
		},
	}
	if err := store.CreateMatch(context.Background(), match); err != nil {
		t.Fatalf("CreateMatch(%s): %v", id, err)
	}
}

func TestHealthEndpoints(t *testing.T) {
	router, _ := newTestRouter(t)

	for _, path := range []string{"/health", "/ready"} {
		rec, env := doJSON(t, router, http.MethodGet, path, nil)
		if rec.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusOK)
		}
		if !env.Success {
			t.Errorf("GET %s success = false", path)
		}
	}
}

func TestGetTeamStats(t *testing.T) {
	router, store := newTestRouter(t)
	seedTeam(t, store, "t1", "Avengers", "cricket")
	seedTeam(t, store, "t2", "Titans", "cricket")

	seedResult(t, store, "m1", "cricket", "t1", "t2", &domain.ResultSummary{
		WinnerID: "t1", ResultType: domain.ResultWonByRuns,
	})
	seedResult(t, store, "m2", "cricket", "t1", "t2", &domain.ResultSummary{
		WinnerID: "t2", ResultType: domain.ResultWonByWickets,
	})
	seedResult(t, store, "m3", "cricket", "t2", "t1", &domain.ResultSummary{
		ResultType: domain.ResultTied,
	})

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/teams/t1/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, env.Error)
	}

	var stats domain.TeamStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.TotalMatches != 3 || stats.MatchesWon != 1 || stats.MatchesLost != 1 || stats.MatchesDrawn != 1 {
		t.Errorf("record = %d total %d/%d/%d, want 3 total 1/1/1",
			stats.TotalMatches, stats.MatchesWon, stats.MatchesLost, stats.MatchesDrawn)
	}
	if stats.TournamentPoints != 3 {
		t.Errorf("points = %d, want 3", stats.TournamentPoints)
	}
	if stats.WinRate < 33.32 || stats.WinRate > 33.34 {
		t.Errorf("win rate = %f, want ~33.33", stats.WinRate)
	}
}

func TestGetTeamStatsNotFound(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/teams/missing/stats", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
	if env.Success {
		t.Error("success = true for missing team")
	}
}

func TestGetStandings(t *testing.T) {
	router, store := newTestRouter(t)
	seedTeam(t, store, "t1", "Avengers", "cricket")
	seedTeam(t, store, "t2", "Titans", "cricket")
	seedResult(t, store, "m1", "cricket", "t1", "t2", &domain.ResultSummary{
		WinnerID: "t1", ResultType: domain.ResultWonByRuns,
	})

	rec, env := doJSON(t, router, http.MethodGet, "/api/v1/standings?sport=cricket", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, env.Error)
	}

	var table []domain.StandingsEntry
	if err := json.Unmarshal(env.Data, &table); err != nil {
		t.Fatalf("decoding standings: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2", len(table))
	}
	if table[0].TeamID != "t1" || table[0].Rank != 1 {
		t.Errorf("top entry = %s rank %d, want t1 rank 1", table[0].TeamID, table[0].Rank)
	}
}

func TestGetStandingsRequiresSport(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/standings", nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestRecordMatchResult(t *testing.T) {
	router, store := newTestRouter(t)
	seedTeam(t, store, "t1", "Avengers", "cricket")
	seedTeam(t, store, "t2", "Titans", "cricket")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/matches", domain.Match{
		Sport:      "cricket",
		Title:      "League opener",
		HomeTeamID: "t1",
		AwayTeamID: "t2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d, want %d: %s", rec.Code, http.StatusCreated, env.Error)
	}
	var match domain.Match
	if err := json.Unmarshal(env.Data, &match); err != nil {
		t.Fatalf("decoding match: %v", err)
	}

	result := map[string]interface{}{
		"winner_id":   "t1",
		"result_type": "won-by-runs",
		"margin_runs": 23,
	}
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/matches/"+match.ID+"/result", result)
	if rec.Code != http.StatusOK {
		t.Fatalf("result status = %d, want %d: %s", rec.Code, http.StatusOK, env.Error)
	}

	// Recording a second result for the same match must conflict
	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/matches/"+match.ID+"/result", result)
	if rec.Code != http.StatusConflict {
		t.Fatalf("second result status = %d, want %d", rec.Code, http.StatusConflict)
	}

	// The winner's counters reflect the recorded result
	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/teams/t1/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats status = %d, want %d", rec.Code, http.StatusOK)
	}
	var stats domain.TeamStats
	if err := json.Unmarshal(env.Data, &stats); err != nil {
		t.Fatalf("decoding stats: %v", err)
	}
	if stats.MatchesWon != 1 || stats.TotalMatches != 1 {
		t.Errorf("record = %d won of %d, want 1 of 1", stats.MatchesWon, stats.TotalMatches)
	}
}

func TestRecordResultRejectsForeignWinner(t *testing.T) {
	router, store := newTestRouter(t)
	seedTeam(t, store, "t1", "Avengers", "cricket")
	seedTeam(t, store, "t2", "Titans", "cricket")
	seedTeam(t, store, "t3", "Strikers", "cricket")

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/matches", domain.Match{
		Sport:      "cricket",
		Title:      "League opener",
		HomeTeamID: "t1",
		AwayTeamID: "t2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d: %s", rec.Code, env.Error)
	}
	var match domain.Match
	if err := json.Unmarshal(env.Data, &match); err != nil {
		t.Fatalf("decoding match: %v", err)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/api/v1/matches/"+match.ID+"/result", map[string]interface{}{
		"winner_id":   "t3",
		"result_type": "won-by-runs",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCreateMatchValidation(t *testing.T) {
	router, _ := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/api/v1/matches", domain.Match{
		Sport:      "cricket",
		HomeTeamID: "t1",
		AwayTeamID: "t1",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestScorecardNotCompleted(t *testing.T) {
	router, store := newTestRouter(t)
	seedTeam(t, store, "t1", "Avengers", "cricket")
	seedTeam(t, store, "t2", "Titans", "cricket")

	match := &domain.Match{
		ID:         "m1",
		Sport:      "cricket",
		Status:     domain.MatchStatusUpcoming,
		HomeTeamID: "t1",
		AwayTeamID: "t2",
	}
	if err := store.CreateMatch(context.Background(), match); err != nil {
		t.Fatalf("CreateMatch: %v", err)
	}

	rec, _ := doJSON(t, router, http.MethodGet, "/api/v1/matches/m1/scorecard", nil)
	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusConflict)
	}
}

func TestCartFlow(t *testing.T) {
	router, store := newTestRouter(t)
	err := store.CreateUser(context.Background(), &domain.User{ID: "u1", Username: "asha", Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	err = store.CreateProduct(context.Background(), &domain.Product{ID: "p1", Name: "Bat", Category: "equipment", Price: 120})
	if err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}

	rec, env := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 2,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("add status = %d: %s", rec.Code, env.Error)
	}
	var item domain.CartItem
	if err := json.Unmarshal(env.Data, &item); err != nil {
		t.Fatalf("decoding item: %v", err)
	}

	// Adding the same product again merges quantities
	rec, env = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", domain.CartItem{
		UserID: "u1", ProductID: "p1", Quantity: 1,
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("merge status = %d: %s", rec.Code, env.Error)
	}
	var merged domain.CartItem
	if err := json.Unmarshal(env.Data, &merged); err != nil {
		t.Fatalf("decoding merged item: %v", err)
	}
	if merged.Quantity != 3 {
		t.Errorf("merged quantity = %d, want 3", merged.Quantity)
	}

	// Setting quantity to zero removes the line
	rec, _ = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/"+item.ID, map[string]int{"quantity": 0})
	if rec.Code != http.StatusOK {
		t.Fatalf("update status = %d", rec.Code)
	}

	rec, env = doJSON(t, router, http.MethodGet, "/api/v1/cart?user_id=u1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	var items []domain.CartItem
	if err := json.Unmarshal(env.Data, &items); err != nil {
		t.Fatalf("decoding cart: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("len(cart) = %d, want 0", len(items))
	}
}
