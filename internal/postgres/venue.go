package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matchday/internal/domain"
)

// CreateVenue inserts a new venue
func (r *Repository) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (id, name, city, address, sports, price_per_hour, capacity, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.Address,
		venue.Sports,
		venue.PricePerHour,
		venue.Capacity,
		venue.ImageURL,
		venue.CreatedAt,
		venue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating venue: %w", err)
	}
	return nil
}

// GetVenue retrieves a venue by ID
func (r *Repository) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	query := `
		SELECT id, name, city, address, sports, price_per_hour, capacity, image_url, created_at, updated_at
		FROM venues
		WHERE id = $1
	`
	var venue domain.Venue
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&venue.ID,
		&venue.Name,
		&venue.City,
		&venue.Address,
		&venue.Sports,
		&venue.PricePerHour,
		&venue.Capacity,
		&venue.ImageURL,
		&venue.CreatedAt,
		&venue.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrVenueNotFound
		}
		return nil, fmt.Errorf("getting venue: %w", err)
	}
	return &venue, nil
}

// ListVenues retrieves venues, optionally filtered by city
func (r *Repository) ListVenues(ctx context.Context, city string) ([]domain.Venue, error) {
	query := `
		SELECT id, name, city, address, sports, price_per_hour, capacity, image_url, created_at, updated_at
		FROM venues
	`
	var args []interface{}
	if city != "" {
		query += ` WHERE city = $1`
		args = append(args, city)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing venues: %w", err)
	}
	defer rows.Close()

	var venues []domain.Venue
	for rows.Next() {
		var venue domain.Venue
		err := rows.Scan(
			&venue.ID,
			&venue.Name,
			&venue.City,
			&venue.Address,
			&venue.Sports,
			&venue.PricePerHour,
			&venue.Capacity,
			&venue.ImageURL,
			&venue.CreatedAt,
			&venue.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning venue: %w", err)
		}
		venues = append(venues, venue)
	}
	return venues, nil
}

// UpdateVenue updates a venue's details
func (r *Repository) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	query := `
		UPDATE venues
		SET name = $2, city = $3, address = $4, sports = $5, price_per_hour = $6,
			capacity = $7, image_url = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		venue.ID,
		venue.Name,
		venue.City,
		venue.Address,
		venue.Sports,
		venue.PricePerHour,
		venue.Capacity,
		venue.ImageURL,
		venue.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating venue: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

// DeleteVenue removes a venue and its bookings
func (r *Repository) DeleteVenue(ctx context.Context, id string) error {
	query := `DELETE FROM venues WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting venue: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrVenueNotFound
	}
	return nil
}

// CreateBooking inserts a new booking
func (r *Repository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		INSERT INTO bookings (id, venue_id, user_id, match_id, starts_at, ends_at, status, total_price, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.VenueID,
		booking.UserID,
		booking.MatchID,
		booking.StartsAt,
		booking.EndsAt,
		string(booking.Status),
		booking.TotalPrice,
		booking.CreatedAt,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking by ID
func (r *Repository) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	query := `
		SELECT id, venue_id, user_id, match_id, starts_at, ends_at, status, total_price, created_at, updated_at
		FROM bookings
		WHERE id = $1
	`
	var booking domain.Booking
	var status string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&booking.ID,
		&booking.VenueID,
		&booking.UserID,
		&booking.MatchID,
		&booking.StartsAt,
		&booking.EndsAt,
		&status,
		&booking.TotalPrice,
		&booking.CreatedAt,
		&booking.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrBookingNotFound
		}
		return nil, fmt.Errorf("getting booking: %w", err)
	}
	booking.Status = domain.BookingStatus(status)
	return &booking, nil
}

// ListBookings retrieves bookings filtered by venue and/or user
func (r *Repository) ListBookings(ctx context.Context, venueID, userID string) ([]domain.Booking, error) {
	query := `
		SELECT id, venue_id, user_id, match_id, starts_at, ends_at, status, total_price, created_at, updated_at
		FROM bookings
		WHERE 1=1
	`
	var args []interface{}
	if venueID != "" {
		args = append(args, venueID)
		query += fmt.Sprintf(` AND venue_id = $%d`, len(args))
	}
	if userID != "" {
		args = append(args, userID)
		query += fmt.Sprintf(` AND user_id = $%d`, len(args))
	}
	query += ` ORDER BY starts_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing bookings: %w", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		var booking domain.Booking
		var status string
		err := rows.Scan(
			&booking.ID,
			&booking.VenueID,
			&booking.UserID,
			&booking.MatchID,
			&booking.StartsAt,
			&booking.EndsAt,
			&status,
			&booking.TotalPrice,
			&booking.CreatedAt,
			&booking.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning booking: %w", err)
		}
		booking.Status = domain.BookingStatus(status)
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

// UpdateBooking updates a booking
func (r *Repository) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
		UPDATE bookings
		SET venue_id = $2, user_id = $3, match_id = $4, starts_at = $5, ends_at = $6,
			status = $7, total_price = $8, updated_at = $9
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		booking.ID,
		booking.VenueID,
		booking.UserID,
		booking.MatchID,
		booking.StartsAt,
		booking.EndsAt,
		string(booking.Status),
		booking.TotalPrice,
		booking.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}

// DeleteBooking removes a booking
func (r *Repository) DeleteBooking(ctx context.Context, id string) error {
	query := `DELETE FROM bookings WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrBookingNotFound
	}
	return nil
}
