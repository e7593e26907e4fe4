// Package redis caches derived team statistics and standings tables. The
// standings for a sport live in a sorted set scored by tournament points;
// full rows and per-team stats are cached as JSON with a TTL. PostgreSQL
// stays the system of record, so every entry here is rebuildable.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/matchday/internal/config"
	"github.com/matchday/internal/domain"
	"github.com/redis/go-redis/v9"
)

// Cache provides Redis-backed caching for standings and team stats
type Cache struct {
	client *redis.Client
	ttl    time.Duration
	logger *slog.Logger
}

// NewCache creates a new Redis cache
func NewCache(cfg *config.RedisConfig, logger *slog.Logger) (*Cache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Test connection
	ctx := context.Background()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return &Cache{
		client: client,
		ttl:    cfg.CacheTTL,
		logger: logger,
	}, nil
}

// Close closes the Redis connection
func (c *Cache) Close() error {
	return c.client.Close()
}

// Client returns the underlying Redis client
func (c *Cache) Client() *redis.Client {
	return c.client
}

func (c *Cache) standingsRankKey(sport string) string {
	return fmt.Sprintf("standings:%s:rank", sport)
}

func (c *Cache) standingsTableKey(sport string) string {
	return fmt.Sprintf("standings:%s:table", sport)
}

func (c *Cache) teamStatsKey(teamID string) string {
	return fmt.Sprintf("team:%s:stats", teamID)
}

// SetTeamStats caches a team's derived record
func (c *Cache) SetTeamStats(ctx context.Context, stats domain.TeamStats) error {
	data, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("marshaling team stats: %w", err)
	}
	if err := c.client.Set(ctx, c.teamStatsKey(stats.TeamID), data, c.ttl).Err(); err != nil {
		return fmt.Errorf("setting team stats: %w", err)
	}
	return nil
}

// GetTeamStats returns a cached record, or nil on a miss
func (c *Cache) GetTeamStats(ctx context.Context, teamID string) (*domain.TeamStats, error) {
	data, err := c.client.Get(ctx, c.teamStatsKey(teamID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("getting team stats: %w", err)
	}

	var stats domain.TeamStats
	if err := json.Unmarshal(data, &stats); err != nil {
		return nil, fmt.Errorf("unmarshaling team stats: %w", err)
	}
	return &stats, nil
}

// InvalidateTeam drops a team's cached record
func (c *Cache) InvalidateTeam(ctx context.Context, teamID string) error {
	if err := c.client.Del(ctx, c.teamStatsKey(teamID)).Err(); err != nil {
		return fmt.Errorf("invalidating team stats: %w", err)
	}
	return nil
}

// SetStandings caches a sport's standings table: the full rows as JSON and
// a sorted set of team IDs by tournament points for quick rank lookups.
func (c *Cache) SetStandings(ctx context.Context, sport string, entries []domain.StandingsEntry) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshaling standings: %w", err)
	}

	members := make([]redis.Z, 0, len(entries))
	for _, entry := range entries {
		members = append(members, redis.Z{
			Score:  float64(entry.TournamentPoints),
			Member: entry.TeamID,
		})
	}

	pipe := c.client.Pipeline()
	pipe.Set(ctx, c.standingsTableKey(sport), data, c.ttl)
	rankKey := c.standingsRankKey(sport)
	pipe.Del(ctx, rankKey)
	if len(members) > 0 {
		pipe.ZAdd(ctx, rankKey, members...)
		pipe.Expire(ctx, rankKey, c.ttl)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("setting standings: %w", err)
	}
	return nil
}

// GetStandings returns the cached table, or nil on a miss
func (c *Cache) GetStandings(ctx context.Context, sport string) ([]domain.StandingsEntry, error) {
	data, err := c.client.Get(ctx, c.standingsTableKey(sport)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, fmt.Errorf("getting standings: %w", err)
	}

	var entries []domain.StandingsEntry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("unmarshaling standings: %w", err)
	}
	return entries, nil
}

// InvalidateStandings drops a sport's cached table
func (c *Cache) InvalidateStandings(ctx context.Context, sport string) error {
	pipe := c.client.Pipeline()
	pipe.Del(ctx, c.standingsTableKey(sport))
	pipe.Del(ctx, c.standingsRankKey(sport))
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("invalidating standings: %w", err)
	}
	return nil
}

// TeamRank returns a team's 1-indexed position in the cached ranking, or 0
// when the team or sport is not cached.
func (c *Cache) TeamRank(ctx context.Context, sport, teamID string) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, c.standingsRankKey(sport), teamID).Result()
	if err != nil {
		if err == redis.Nil {
			return 0, nil
		}
		return 0, fmt.Errorf("getting team rank: %w", err)
	}
	return rank + 1, nil
}

// TopTeams returns the top N team IDs from the cached ranking
func (c *Cache) TopTeams(ctx context.Context, sport string, n int) ([]string, error) {
	ids, err := c.client.ZRevRange(ctx, c.standingsRankKey(sport), 0, int64(n-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("getting top teams: %w", err)
	}
	return ids, nil
}
