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

// ShopService provides business logic for the equipment store: products,
// reviews and shopping carts.
type ShopService struct {
	shop   ShopStore
	users  UserStore
	logger *slog.Logger
}

// NewShopService creates a new shop service
func NewShopService(shop ShopStore, users UserStore, logger *slog.Logger) *ShopService {
	return &ShopService{
		shop:   shop,
		users:  users,
		logger: logger,
	}
}

// CreateProduct adds a product to the catalog
func (s *ShopService) CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	if strings.TrimSpace(product.Name) == "" || product.Price < 0 {
		return nil, domain.ErrInvalidRequest
	}
	if product.ID == "" {
		product.ID = uuid.New().String()
	}
	now := time.Now()
	product.CreatedAt = now
	product.UpdatedAt = now

	if err := s.shop.CreateProduct(ctx, product); err != nil {
		return nil, fmt.Errorf("creating product: %w", err)
	}
	return product, nil
}

// GetProduct returns a product by ID
func (s *ShopService) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	return s.shop.GetProduct(ctx, id)
}

// ListProducts returns products, optionally filtered by category
func (s *ShopService) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	return s.shop.ListProducts(ctx, category)
}

// UpdateProduct updates a product
func (s *ShopService) UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	existing, err := s.shop.GetProduct(ctx, product.ID)
	if err != nil {
		return nil, err
	}

	existing.Name = product.Name
	existing.Category = product.Category
	existing.Description = product.Description
	existing.Price = product.Price
	existing.Stock = product.Stock
	existing.ImageURL = product.ImageURL
	existing.UpdatedAt = time.Now()

	if err := s.shop.UpdateProduct(ctx, existing); err != nil {
		return nil, fmt.Errorf("updating product: %w", err)
	}
	return existing, nil
}

// DeleteProduct removes a product
func (s *ShopService) DeleteProduct(ctx context.Context, id string) error {
	return s.shop.DeleteProduct(ctx, id)
}

// CreateReview attaches a review to a venue or product
func (s *ShopService) CreateReview(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	if review.UserID == "" || review.TargetID == "" {
		return nil, domain.ErrInvalidRequest
	}
	if review.TargetType != domain.ReviewTargetVenue && review.TargetType != domain.ReviewTargetProduct {
		return nil, domain.ErrInvalidRequest
	}
	if review.Rating < 1 || review.Rating > 5 {
		return nil, domain.ErrInvalidRequest
	}

	if review.ID == "" {
		review.ID = uuid.New().String()
	}
	now := time.Now()
	review.CreatedAt = now
	review.UpdatedAt = now

	if err := s.shop.CreateReview(ctx, review); err != nil {
		return nil, fmt.Errorf("creating review: %w", err)
	}

	s.bumpReviewStats(ctx, review.UserID)
	return review, nil
}

// ListReviews returns reviews for a venue or product
func (s *ShopService) ListReviews(ctx context.Context, targetType domain.ReviewTarget, targetID string) ([]domain.Review, error) {
	return s.shop.ListReviews(ctx, targetType, targetID)
}

// DeleteReview removes a review
func (s *ShopService) DeleteReview(ctx context.Context, id string) error {
	return s.shop.DeleteReview(ctx, id)
}

// AddToCart puts a product in a user's cart, merging quantities when the
// product is already there.
func (s *ShopService) AddToCart(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	if item.UserID == "" || item.ProductID == "" || item.Quantity <= 0 {
		return nil, domain.ErrInvalidRequest
	}
	if _, err := s.shop.GetProduct(ctx, item.ProductID); err != nil {
		return nil, err
	}

	existing, err := s.shop.ListCart(ctx, item.UserID)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	for i := range existing {
		if existing[i].ProductID == item.ProductID {
			existing[i].Quantity += item.Quantity
			existing[i].UpdatedAt = time.Now()
			if err := s.shop.UpdateCartItem(ctx, &existing[i]); err != nil {
				return nil, fmt.Errorf("updating cart item: %w", err)
			}
			return &existing[i], nil
		}
	}

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	now := time.Now()
	item.CreatedAt = now
	item.UpdatedAt = now

	if err := s.shop.CreateCartItem(ctx, item); err != nil {
		return nil, fmt.Errorf("creating cart item: %w", err)
	}
	return item, nil
}

// ListCart returns a user's cart
func (s *ShopService) ListCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	return s.shop.ListCart(ctx, userID)
}

// UpdateCartQuantity changes a cart line's quantity; zero removes the line
func (s *ShopService) UpdateCartQuantity(ctx context.Context, id string, quantity int) (*domain.CartItem, error) {
	if quantity < 0 {
		return nil, domain.ErrInvalidRequest
	}
	item, err := s.shop.GetCartItem(ctx, id)
	if err != nil {
		return nil, err
	}
	if quantity == 0 {
		if err := s.shop.DeleteCartItem(ctx, id); err != nil {
			return nil, err
		}
		return nil, nil
	}

	item.Quantity = quantity
	item.UpdatedAt = time.Now()
	if err := s.shop.UpdateCartItem(ctx, item); err != nil {
		return nil, fmt.Errorf("updating cart item: %w", err)
	}
	return item, nil
}

// RemoveFromCart deletes a cart line
func (s *ShopService) RemoveFromCart(ctx context.Context, id string) error {
	return s.shop.DeleteCartItem(ctx, id)
}

func (s *ShopService) bumpReviewStats(ctx context.Context, userID string) {
	if s.users == nil {
		return
	}
	userStats, err := s.users.GetUserStats(ctx, userID)
	if err != nil {
		userStats = &domain.UserStats{UserID: userID}
	}
	userStats.ReviewsWritten++
	userStats.UpdatedAt = time.Now()
	if err := s.users.UpsertUserStats(ctx, userStats); err != nil {
		s.logger.Warn("failed to update review stats", "user_id", userID, "error", err)
	}
}
