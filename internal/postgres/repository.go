package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/matchday/internal/config"
)

// Repository provides PostgreSQL-based data access
type Repository struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(cfg *config.PostgresConfig, logger *slog.Logger) (*Repository, error) {
	poolConfig, err := pgxpool.ParseConfig(cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	poolConfig.MaxConns = int32(cfg.MaxConnections)
	poolConfig.MinConns = int32(cfg.MinConnections)
	poolConfig.MaxConnLifetime = cfg.MaxConnLifetime
	poolConfig.MaxConnIdleTime = cfg.MaxConnIdleTime

	pool, err := pgxpool.NewWithConfig(context.Background(), poolConfig)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	// Test connection
	if err := pool.Ping(context.Background()); err != nil {
		pool.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	return &Repository{
		pool:   pool,
		logger: logger,
	}, nil
}

// Close closes the database connection pool
func (r *Repository) Close() {
	r.pool.Close()
}

// Pool returns the underlying connection pool
func (r *Repository) Pool() *pgxpool.Pool {
	return r.pool
}

// RunMigrations executes database migrations
func (r *Repository) RunMigrations(ctx context.Context) error {
	migrations := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id VARCHAR(64) PRIMARY KEY,
			username VARCHAR(255) NOT NULL,
			email VARCHAR(255),
			full_name VARCHAR(255),
			avatar_url TEXT,
			city VARCHAR(100),
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS user_stats (
			user_id VARCHAR(64) PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
			matches_organized INT DEFAULT 0,
			matches_played INT DEFAULT 0,
			bookings_made INT DEFAULT 0,
			reviews_written INT DEFAULT 0,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS teams (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			sport VARCHAR(50) NOT NULL,
			city VARCHAR(100),
			captain_id VARCHAR(64),
			logo_url TEXT,
			matches_won INT DEFAULT 0,
			matches_lost INT DEFAULT 0,
			matches_drawn INT DEFAULT 0,
			tournament_points INT DEFAULT 0,
			net_run_rate DOUBLE PRECISION DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS players (
			id VARCHAR(64) PRIMARY KEY,
			team_id VARCHAR(64) NOT NULL REFERENCES teams(id) ON DELETE CASCADE,
			user_id VARCHAR(64),
			name VARCHAR(255) NOT NULL,
			role VARCHAR(50),
			batting_style VARCHAR(50),
			bowling_style VARCHAR(50),
			career_stats JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS matches (
			id VARCHAR(64) PRIMARY KEY,
			sport VARCHAR(50) NOT NULL,
			title VARCHAR(255),
			organizer_id VARCHAR(64),
			venue_id VARCHAR(64),
			home_team_id VARCHAR(64),
			away_team_id VARCHAR(64),
			scheduled_at TIMESTAMP,
			status VARCHAR(20) NOT NULL DEFAULT 'upcoming',
			match_data JSONB,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS venues (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			city VARCHAR(100) NOT NULL,
			address TEXT,
			sports TEXT[],
			price_per_hour DOUBLE PRECISION DEFAULT 0,
			capacity INT DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS bookings (
			id VARCHAR(64) PRIMARY KEY,
			venue_id VARCHAR(64) NOT NULL REFERENCES venues(id) ON DELETE CASCADE,
			user_id VARCHAR(64) NOT NULL,
			match_id VARCHAR(64),
			starts_at TIMESTAMP NOT NULL,
			ends_at TIMESTAMP NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'pending',
			total_price DOUBLE PRECISION DEFAULT 0,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS products (
			id VARCHAR(64) PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			category VARCHAR(100),
			description TEXT,
			price DOUBLE PRECISION NOT NULL,
			stock INT DEFAULT 0,
			image_url TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			target_type VARCHAR(20) NOT NULL,
			target_id VARCHAR(64) NOT NULL,
			rating INT NOT NULL,
			comment TEXT,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS cart_items (
			id VARCHAR(64) PRIMARY KEY,
			user_id VARCHAR(64) NOT NULL,
			product_id VARCHAR(64) NOT NULL REFERENCES products(id) ON DELETE CASCADE,
			quantity INT NOT NULL,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			UNIQUE(user_id, product_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_teams_sport ON teams(sport)`,
		`CREATE INDEX IF NOT EXISTS idx_players_team ON players(team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_sport_status ON matches(sport, status)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_home_team ON matches(home_team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_away_team ON matches(away_team_id)`,
		`CREATE INDEX IF NOT EXISTS idx_matches_data_teams ON matches((match_data->>'team1_id'), (match_data->>'team2_id'))`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_venue ON bookings(venue_id)`,
		`CREATE INDEX IF NOT EXISTS idx_bookings_user ON bookings(user_id)`,
		`CREATE INDEX IF NOT EXISTS idx_reviews_target ON reviews(target_type, target_id)`,
		`CREATE INDEX IF NOT EXISTS idx_cart_items_user ON cart_items(user_id)`,
	}

	for _, migration := range migrations {
		_, err := r.pool.Exec(ctx, migration)
		if err != nil {
			return fmt.Errorf("executing migration: %w", err)
		}
	}

	r.logger.Info("database migrations completed")
	return nil
}
