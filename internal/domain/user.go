package domain

import "time"

// User represents a registered user
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	FullName  string    `json:"full_name,omitempty"`
	AvatarURL string    `json:"avatar_url,omitempty"`
	City      string    `json:"city,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserStats holds per-user activity counters, maintained by the services
// that perform the underlying writes.
type UserStats struct {
	UserID           string    `json:"user_id"`
	MatchesOrganized int       `json:"matches_organized"`
	MatchesPlayed    int       `json:"matches_played"`
	BookingsMade     int       `json:"bookings_made"`
	ReviewsWritten   int       `json:"reviews_written"`
	UpdatedAt        time.Time `json:"updated_at"`
}
