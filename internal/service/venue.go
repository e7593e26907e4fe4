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

// VenueService provides business logic for venues and bookings
type VenueService struct {
	venues VenueStore
	users  UserStore
	logger *slog.Logger
}

// NewVenueService creates a new venue service
func NewVenueService(venues VenueStore, users UserStore, logger *slog.Logger) *VenueService {
	return &VenueService{
		venues: venues,
		users:  users,
		logger: logger,
	}
}

// CreateVenue registers a venue
func (s *VenueService) CreateVenue(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	if strings.TrimSpace(venue.Name) == "" || strings.TrimSpace(venue.City) == "" {
		return nil, domain.ErrInvalidRequest
	}
	if venue.ID == "" {
		venue.ID = uuid.New().String()
	}
	now := time.Now()
	venue.CreatedAt = now
	venue.UpdatedAt = now

	if err := s.venues.CreateVenue(ctx, venue); err != nil {
		return nil, fmt.Errorf("creating venue: %w", err)
	}
	return venue, nil
}

// GetVenue returns a venue by ID
func (s *VenueService) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	return s.venues.GetVenue(ctx, id)
}

// ListVenues returns venues, optionally filtered by city
func (s *VenueService) ListVenues(ctx context.Context, city string) ([]domain.Venue, error) {
	return s.venues.ListVenues(ctx, city)
}

// UpdateVenue updates a venue
func (s *VenueService) UpdateVenue(ctx context.Context, venue *domain.Venue) (*domain.Venue, error) {
	existing, err := s.venues.GetVenue(ctx, venue.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = venue.Name
	existing.City = venue.City
	existing.Address = venue.Address
	existing.Sports = venue.Sports
	existing.PricePerHour = venue.PricePerHour
	existing.Capacity = venue.Capacity
	existing.ImageURL = venue.ImageURL
	existing.UpdatedAt = time.Now()

	if err := s.venues.UpdateVenue(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating venue: %w", err)
	}
	return existing, nil
}

// DeleteVenue removes a venue
func (s *VenueService) DeleteVenue(ctx context.Context, id string) error {
	return s.venues.DeleteVenue(ctx, id)
}

// CreateBooking books a venue slot; the total price is derived from the
// venue's hourly rate and the slot duration.
func (s *VenueService) CreateBooking(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	if booking.VenueID == "" || booking.UserID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if !booking.EndsAt.After(booking.StartsAt) {
		return nil, domain.ErrInvalidRequest
	}
	venue, err := s.venues.GetVenue(ctx, booking.VenueID)
	if err != nil {
		return nil, err
	}

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.Status == "" {
		booking.Status = domain.BookingStatusPending
	}
	hours := booking.EndsAt.Sub(booking.StartsAt).Hours()
	booking.TotalPrice = venue.PricePerHour * hours
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	if err := s.venues.CreateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("creating booking: %w", err)
	}

	s.bumpBookingStats(ctx, booking.UserID)
	return booking, nil
}

// GetBooking returns a booking by ID
func (s *VenueService) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	return s.venues.GetBooking(ctx, id)
}

// ListBookings returns bookings filtered by venue and/or user
func (s *VenueService) ListBookings(ctx context.Context, venueID, userID string) ([]domain.Booking, error) {
	return s.venues.ListBookings(ctx, venueID, userID)
}

// UpdateBookingStatus moves a booking through its lifecycle
func (s *VenueService) UpdateBookingStatus(ctx context.Context, id string, status domain.BookingStatus) (*domain.Booking, error) {
	switch status {
	case domain.BookingStatusPending, domain.BookingStatusConfirmed, domain.BookingStatusCancelled:
	default:
		return nil, domain.ErrInvalidRequest
	}

	booking, err := s.venues.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	booking.Status = status
	booking.UpdatedAt = time.Now()

	if err := s.venues.UpdateBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("updating booking: %w", err)
	}
	return booking, nil
}

// DeleteBooking removes a booking
func (s *VenueService) DeleteBooking(ctx context.Context, id string) error {
	return s.venues.DeleteBooking(ctx, id)
}

func (s *VenueService) bumpBookingStats(ctx context.Context, userID string) {
	if s.users == nil {
		return
	}
	userStats, err := s.users.GetUserStats(ctx, userID)
	if err != nil {
		userStats = &domain.UserStats{UserID: userID}
	}
	userStats.BookingsMade++
	userStats.UpdatedAt = time.Now()
	if err := s.users.UpsertUserStats(ctx, userStats); err != nil {
		s.logger.Warn("failed to update booking stats", "user_id", userID, "error", err)
	}
}
