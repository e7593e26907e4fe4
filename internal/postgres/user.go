package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matchday/internal/domain"
)

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, username, email, full_name, avatar_url, city, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.AvatarURL,
		user.City,
		user.CreatedAt,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating user: %w", err)
	}
	return nil
}

// GetUser retrieves a user by ID
func (r *Repository) GetUser(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, username, email, full_name, avatar_url, city, created_at, updated_at
		FROM users
		WHERE id = $1
	`
	var user domain.User
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FullName,
		&user.AvatarURL,
		&user.City,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return &user, nil
}

// ListUsers retrieves all users
func (r *Repository) ListUsers(ctx context.Context) ([]domain.User, error) {
	query := `
		SELECT id, username, email, full_name, avatar_url, city, created_at, updated_at
		FROM users
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing users: %w", err)
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var user domain.User
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&user.Email,
			&user.FullName,
			&user.AvatarURL,
			&user.City,
			&user.CreatedAt,
			&user.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning user: %w", err)
		}
		users = append(users, user)
	}
	return users, nil
}

// UpdateUser updates a user's profile
func (r *Repository) UpdateUser(ctx context.Context, user *domain.User) error {
	query := `
		UPDATE users
		SET username = $2, email = $3, full_name = $4, avatar_url = $5, city = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		user.ID,
		user.Username,
		user.Email,
		user.FullName,
		user.AvatarURL,
		user.City,
		user.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// DeleteUser removes a user
func (r *Repository) DeleteUser(ctx context.Context, id string) error {
	query := `DELETE FROM users WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// GetUserStats retrieves a user's activity counters
func (r *Repository) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	query := `
		SELECT user_id, matches_organized, matches_played, bookings_made, reviews_written, updated_at
		FROM user_stats
		WHERE user_id = $1
	`
	var stats domain.UserStats
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&stats.UserID,
		&stats.MatchesOrganized,
		&stats.MatchesPlayed,
		&stats.BookingsMade,
		&stats.ReviewsWritten,
		&stats.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("getting user stats: %w", err)
	}
	return &stats, nil
}

// UpsertUserStats inserts or updates a user's activity counters
func (r *Repository) UpsertUserStats(ctx context.Context, stats *domain.UserStats) error {
	query := `
		INSERT INTO user_stats (user_id, matches_organized, matches_played, bookings_made, reviews_written, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_id)
		DO UPDATE SET
			matches_organized = $2,
			matches_played = $3,
			bookings_made = $4,
			reviews_written = $5,
			updated_at = $6
	`
	_, err := r.pool.Exec(ctx, query,
		stats.UserID,
		stats.MatchesOrganized,
		stats.MatchesPlayed,
		stats.BookingsMade,
		stats.ReviewsWritten,
		stats.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("upserting user stats: %w", err)
	}
	return nil
}
