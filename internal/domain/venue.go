package domain

import "time"

// Venue represents a bookable ground or facility
type Venue struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	City         string    `json:"city"`
	Address      string    `json:"address,omitempty"`
	Sports       []string  `json:"sports,omitempty"`
	PricePerHour float64   `json:"price_per_hour"`
	Capacity     int       `json:"capacity,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BookingStatus represents the state of a venue booking
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking represents a venue reservation, optionally tied to a match
type Booking struct {
	ID         string        `json:"id"`
	VenueID    string        `json:"venue_id"`
	UserID     string        `json:"user_id"`
	MatchID    string        `json:"match_id,omitempty"`
	StartsAt   time.Time     `json:"starts_at"`
	EndsAt     time.Time     `json:"ends_at"`
	Status     BookingStatus `json:"status"`
	TotalPrice float64       `json:"total_price"`
	CreatedAt  time.Time     `json:"created_at"`
	UpdatedAt  time.Time     `json:"updated_at"`
}
