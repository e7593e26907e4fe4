package domain

import "time"

// Product represents an item in the equipment store
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	ImageURL    string    `json:"image_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ReviewTarget identifies what kind of entity a review is attached to
type ReviewTarget string

const (
	ReviewTargetVenue   ReviewTarget = "venue"
	ReviewTargetProduct ReviewTarget = "product"
)

// Review represents a user review of a venue or product
type Review struct {
	ID         string       `json:"id"`
	UserID     string       `json:"user_id"`
	TargetType ReviewTarget `json:"target_type"`
	TargetID   string       `json:"target_id"`
	Rating     int          `json:"rating"`
	Comment    string       `json:"comment,omitempty"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// CartItem represents a product in a user's shopping cart
type CartItem struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	ProductID string    `json:"product_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
