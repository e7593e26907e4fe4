package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/matchday/internal/domain"
)

// UserService provides business logic for users and their activity stats
type UserService struct {
	users  UserStore
	logger *slog.Logger
}

// NewUserService creates a new user service
func NewUserService(users UserStore, logger *slog.Logger) *UserService {
	return &UserService{
		users:  users,
		logger: logger,
	}
}

// CreateUser registers a user
func (s *UserService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if strings.TrimSpace(user.Username) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.users.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("creating user: %w", err)
	}
	return user, nil
}

// GetUser returns a user by ID
func (s *UserService) GetUser(ctx context.Context, id string) (*domain.User, error) {
	return s.users.GetUser(ctx, id)
}

// ListUsers returns all users
func (s *UserService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUsers(ctx)
}

// UpdateUser updates a user's profile
func (s *UserService) UpdateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	existing, err := s.users.GetUser(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	existing.Username = user.Username
	existing.Email = user.Email
	existing.FullName = user.FullName
	existing.AvatarURL = user.AvatarURL
	existing.City = user.City
	existing.UpdatedAt = time.Now()

	if err := s.users.UpdateUser(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating user: %w", err)
	}
	return existing, nil
}

// DeleteUser removes a user
func (s *UserService) DeleteUser(ctx context.Context, id string) error {
	return s.users.DeleteUser(ctx, id)
}

// UserStats returns a user's activity counters; a user with no recorded
// activity gets zeroed counters.
func (s *UserService) UserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	if _, err := s.users.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	userStats, err := s.users.GetUserStats(ctx, userID)
	if err != nil {
		return &domain.UserStats{UserID: userID}, nil
	}
	return userStats, nil
}
