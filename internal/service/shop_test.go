package service

import (
	"context"
	"errors"
	"testing"

	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/memory"
)

func newShopFixture(t *testing.T) (*memory.Store, *ShopService) {
	t.Helper()
	store := memory.NewStore()
	return store, NewShopService(store, store, testLogger())
}

func seedProduct(t *testing.T, store *memory.Store, id string, price float64) {
	t.Helper()
	if err := store.CreateProduct(context.Background(), &domain.Product{
		ID:       id,
		Name:     "Kookaburra Kahuna",
		Category: "bats",
		Price:    price,
		Stock:    10,
	}); err != nil {
		t.Fatalf("CreateProduct: %v", err)
	}
}

func TestCreateProductValidation(t *testing.T) {
	_, svc := newShopFixture(t)

	tests := []struct {
		name    string
		product domain.Product
	}{
		{"missing name", domain.Product{Price: 100}},
		{"blank name", domain.Product{Name: "  ", Price: 100}},
		{"negative price", domain.Product{Name: "Gloves", Price: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateProduct(context.Background(), &tt.product)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("CreateProduct() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestCreateReview(t *testing.T) {
	store, svc := newShopFixture(t)
	seedProduct(t, store, "p1", 4999)
	if err := store.CreateUser(context.Background(), &domain.User{ID: "u1", Username: "asha"}); err != nil {
		t.Fatalf("CreateUser: %v", err)
	}

	review, err := svc.CreateReview(context.Background(), &domain.Review{
		UserID:     "u1",
		TargetType: domain.ReviewTargetProduct,
		TargetID:   "p1",
		Rating:     4,
		Comment:    "good pickup",
	})
	if err != nil {
		t.Fatalf("CreateReview: %v", err)
	}
	if review.ID == "" {
		t.Error("CreateReview() did not assign an ID")
	}

	stats, err := store.GetUserStats(context.Background(), "u1")
	if err != nil {
		t.Fatalf("GetUserStats: %v", err)
	}
	if stats.ReviewsWritten != 1 {
		t.Errorf("ReviewsWritten = %d, want 1", stats.ReviewsWritten)
	}

	reviews, err := svc.ListReviews(context.Background(), domain.ReviewTargetProduct, "p1")
	if err != nil {
		t.Fatalf("ListReviews: %v", err)
	}
	if len(reviews) != 1 {
		t.Errorf("ListReviews() returned %d reviews, want 1", len(reviews))
	}
}

func TestCreateReviewValidation(t *testing.T) {
	_, svc := newShopFixture(t)

	tests := []struct {
		name   string
		review domain.Review
	}{
		{"missing user", domain.Review{TargetType: domain.ReviewTargetVenue, TargetID: "v1", Rating: 3}},
		{"missing target", domain.Review{UserID: "u1", TargetType: domain.ReviewTargetVenue, Rating: 3}},
		{"bad target type", domain.Review{UserID: "u1", TargetType: "match", TargetID: "m1", Rating: 3}},
		{"rating too low", domain.Review{UserID: "u1", TargetType: domain.ReviewTargetVenue, TargetID: "v1", Rating: 0}},
		{"rating too high", domain.Review{UserID: "u1", TargetType: domain.ReviewTargetVenue, TargetID: "v1", Rating: 6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateReview(context.Background(), &tt.review)
			if !errors.Is(err, domain.ErrInvalidRequest) {
				t.Errorf("CreateReview() error = %v, want ErrInvalidRequest", err)
			}
		})
	}
}

func TestAddToCartMergesQuantities(t *testing.T) {
	store, svc := newShopFixture(t)
	seedProduct(t, store, "p1", 4999)

	first, err := svc.AddToCart(context.Background(), &domain.CartItem{UserID: "u1", ProductID: "p1", Quantity: 1})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	merged, err := svc.AddToCart(context.Background(), &domain.CartItem{UserID: "u1", ProductID: "p1", Quantity: 2})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}
	if merged.ID != first.ID {
		t.Errorf("second add created a new line %q, want merge into %q", merged.ID, first.ID)
	}
	if merged.Quantity != 3 {
		t.Errorf("Quantity = %d, want 3", merged.Quantity)
	}

	cart, err := svc.ListCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListCart: %v", err)
	}
	if len(cart) != 1 {
		t.Errorf("ListCart() returned %d lines, want 1", len(cart))
	}
}

func TestAddToCartUnknownProduct(t *testing.T) {
	_, svc := newShopFixture(t)

	_, err := svc.AddToCart(context.Background(), &domain.CartItem{UserID: "u1", ProductID: "missing", Quantity: 1})
	if !domain.IsNotFoundError(err) {
		t.Errorf("AddToCart() error = %v, want not found", err)
	}
}

func TestUpdateCartQuantityZeroRemovesLine(t *testing.T) {
	store, svc := newShopFixture(t)
	seedProduct(t, store, "p1", 4999)

	item, err := svc.AddToCart(context.Background(), &domain.CartItem{UserID: "u1", ProductID: "p1", Quantity: 2})
	if err != nil {
		t.Fatalf("AddToCart: %v", err)
	}

	updated, err := svc.UpdateCartQuantity(context.Background(), item.ID, 5)
	if err != nil {
		t.Fatalf("UpdateCartQuantity: %v", err)
	}
	if updated.Quantity != 5 {
		t.Errorf("Quantity = %d, want 5", updated.Quantity)
	}

	removed, err := svc.UpdateCartQuantity(context.Background(), item.ID, 0)
	if err != nil {
		t.Fatalf("UpdateCartQuantity(0): %v", err)
	}
	if removed != nil {
		t.Errorf("UpdateCartQuantity(0) = %+v, want nil", removed)
	}

	cart, err := store.ListCart(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListCart: %v", err)
	}
	if len(cart) != 0 {
		t.Errorf("cart has %d lines after removal, want 0", len(cart))
	}

	if _, err := svc.UpdateCartQuantity(context.Background(), item.ID, -1); !errors.Is(err, domain.ErrInvalidRequest) {
		t.Errorf("UpdateCartQuantity(-1) error = %v, want ErrInvalidRequest", err)
	}
}
