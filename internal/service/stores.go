package service

import (
	"context"

	"github.com/matchday/internal/domain"
)

// Store contracts implemented by the PostgreSQL repository and by the
// in-memory store. Services accept these interfaces so tests can run
// against stubs or the memory backend.

// UserStore persists users and their activity counters
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id string) error
	GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error)
	UpsertUserStats(ctx context.Context, stats *domain.UserStats) error
}

// TeamStore persists teams
type TeamStore interface {
	CreateTeam(ctx context.Context, team *domain.Team) error
	GetTeam(ctx context.Context, id string) (*domain.Team, error)
	ListTeams(ctx context.Context, sport string) ([]domain.Team, error)
	UpdateTeam(ctx context.Context, team *domain.Team) error
	DeleteTeam(ctx context.Context, id string) error
}

// PlayerStore persists players and their career stats
type PlayerStore interface {
	CreatePlayer(ctx context.Context, player *domain.Player) error
	GetPlayer(ctx context.Context, id string) (*domain.Player, error)
	ListPlayers(ctx context.Context, teamID string) ([]domain.Player, error)
	UpdatePlayer(ctx context.Context, player *domain.Player) error
	DeletePlayer(ctx context.Context, id string) error
}

// MatchStore persists matches and their result payloads
type MatchStore interface {
	CreateMatch(ctx context.Context, match *domain.Match) error
	GetMatch(ctx context.Context, id string) (*domain.Match, error)
	ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error)
	UpdateMatch(ctx context.Context, match *domain.Match) error
	DeleteMatch(ctx context.Context, id string) error
	// ListMatchesForTeam returns every match that references the team,
	// either in the scheduling fields or in the result payload.
	ListMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error)
}

// VenueStore persists venues and bookings
type VenueStore interface {
	CreateVenue(ctx context.Context, venue *domain.Venue) error
	GetVenue(ctx context.Context, id string) (*domain.Venue, error)
	ListVenues(ctx context.Context, city string) ([]domain.Venue, error)
	UpdateVenue(ctx context.Context, venue *domain.Venue) error
	DeleteVenue(ctx context.Context, id string) error

	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetBooking(ctx context.Context, id string) (*domain.Booking, error)
	ListBookings(ctx context.Context, venueID, userID string) ([]domain.Booking, error)
	UpdateBooking(ctx context.Context, booking *domain.Booking) error
	DeleteBooking(ctx context.Context, id string) error
}

// ShopStore persists products, reviews and cart items
type ShopStore interface {
	CreateProduct(ctx context.Context, product *domain.Product) error
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	ListProducts(ctx context.Context, category string) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) error
	DeleteProduct(ctx context.Context, id string) error

	CreateReview(ctx context.Context, review *domain.Review) error
	GetReview(ctx context.Context, id string) (*domain.Review, error)
	ListReviews(ctx context.Context, targetType domain.ReviewTarget, targetID string) ([]domain.Review, error)
	UpdateReview(ctx context.Context, review *domain.Review) error
	DeleteReview(ctx context.Context, id string) error

	CreateCartItem(ctx context.Context, item *domain.CartItem) error
	GetCartItem(ctx context.Context, id string) (*domain.CartItem, error)
	ListCart(ctx context.Context, userID string) ([]domain.CartItem, error)
	UpdateCartItem(ctx context.Context, item *domain.CartItem) error
	DeleteCartItem(ctx context.Context, id string) error
}

// StandingsCache caches derived team stats and standings tables. A nil
// cache is valid; services fall back to recomputation.
type StandingsCache interface {
	GetTeamStats(ctx context.Context, teamID string) (*domain.TeamStats, error)
	SetTeamStats(ctx context.Context, stats domain.TeamStats) error
	InvalidateTeam(ctx context.Context, teamID string) error
	GetStandings(ctx context.Context, sport string) ([]domain.StandingsEntry, error)
	SetStandings(ctx context.Context, sport string, entries []domain.StandingsEntry) error
	InvalidateStandings(ctx context.Context, sport string) error
}

// Broadcaster pushes live updates to connected clients. Implemented by the
// WebSocket hub; a nil broadcaster disables pushes.
type Broadcaster interface {
	BroadcastMatchUpdate(match *domain.Match)
	BroadcastStandings(sport string, entries []domain.StandingsEntry)
}
