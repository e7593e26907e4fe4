package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/matchday/internal/config"
	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/service"
	"github.com/matchday/internal/stats"
)

// TeamReconciler recomputes team statistics and standings
type TeamReconciler interface {
	ListTeams(ctx context.Context, sport string) ([]domain.Team, error)
	ReconcileTeam(ctx context.Context, teamID string) (*domain.TeamStats, error)
	RefreshStandings(ctx context.Context, sport string) ([]domain.StandingsEntry, error)
}

// SyncWorker periodically reconciles stored team counters with match history
type SyncWorker struct {
	teams   TeamReconciler
	matches service.MatchStore
	config  *config.SyncConfig
	logger  *slog.Logger
	stopCh  chan struct{}
	doneCh  chan struct{}
	mu      sync.Mutex
	running bool
}

// NewSyncWorker creates a new sync worker
func NewSyncWorker(
	teams TeamReconciler,
	matches service.MatchStore,
	cfg *config.SyncConfig,
	logger *slog.Logger,
) *SyncWorker {
	return &SyncWorker{
		teams:   teams,
		matches: matches,
		config:  cfg,
		logger:  logger,
		stopCh:  make(chan struct{}),
		doneCh:  make(chan struct{}),
	}
}

// Start begins the background reconciliation process
func (w *SyncWorker) Start(ctx context.Context) error {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = true
	w.mu.Unlock()

	w.logger.Info("sync worker started", "interval", w.config.Interval)

	go w.run(ctx)
	return nil
}

// Stop stops the background reconciliation process
func (w *SyncWorker) Stop() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.mu.Unlock()

	close(w.stopCh)
	<-w.doneCh

	w.mu.Lock()
	w.running = false
	w.mu.Unlock()

	w.logger.Info("sync worker stopped")
	return nil
}

// run is the main worker loop
func (w *SyncWorker) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.config.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case <-ticker.C:
			w.reconcileAll(ctx)
		}
	}
}

// reconcileAll recomputes counters for every team and refreshes standings
func (w *SyncWorker) reconcileAll(ctx context.Context) {
	w.logger.Info("starting reconciliation cycle")
	startTime := time.Now()

	teams, err := w.teams.ListTeams(ctx, "")
	if err != nil {
		w.logger.Error("failed to list teams for reconciliation", "error", err)
		return
	}

	reconciledCount := 0
	errorCount := 0
	sports := make(map[string]bool)

	for _, team := range teams {
		if _, err := w.teams.ReconcileTeam(ctx, team.ID); err != nil {
			w.logger.Error("failed to reconcile team",
				"team_id", team.ID,
				"error", err,
			)
			errorCount++
		} else {
			reconciledCount++
		}
		sports[team.Sport] = true
	}

	for sport := range sports {
		if _, err := w.teams.RefreshStandings(ctx, sport); err != nil {
			w.logger.Error("failed to refresh standings",
				"sport", sport,
				"error", err,
			)
			errorCount++
		}
	}

	w.auditResults(ctx)

	duration := time.Since(startTime)
	w.logger.Info("reconciliation cycle completed",
		"duration", duration,
		"reconciled", reconciledCount,
		"errors", errorCount,
	)
}

// auditResults scans completed matches for result payloads that cannot be
// attributed to a participant and logs each finding
func (w *SyncWorker) auditResults(ctx context.Context) {
	matches, err := w.matches.ListMatches(ctx, domain.MatchFilter{Status: domain.MatchStatusCompleted})
	if err != nil {
		w.logger.Error("failed to list matches for audit", "error", err)
		return
	}

	issues := stats.AuditResults(matches)
	for _, issue := range issues {
		w.logger.Warn("match result integrity issue",
			"match_id", issue.MatchID,
			"reason", issue.Reason,
		)
	}

	if len(issues) > 0 {
		w.logger.Info("result audit completed", "issues", len(issues))
	}
}

// IsRunning returns whether the worker is currently running
func (w *SyncWorker) IsRunning() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.running
}

// RunOnce runs a single reconciliation cycle (useful for manual triggers)
func (w *SyncWorker) RunOnce(ctx context.Context) {
	w.reconcileAll(ctx)
}
