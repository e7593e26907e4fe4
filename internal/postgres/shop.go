package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/matchday/internal/domain"
)

// CreateProduct inserts a new product
func (r *Repository) CreateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		INSERT INTO products (id, name, category, description, price, stock, image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.Price,
		product.Stock,
		product.ImageURL,
		product.CreatedAt,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating product: %w", err)
	}
	return nil
}

// GetProduct retrieves a product by ID
func (r *Repository) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	query := `
		SELECT id, name, category, description, price, stock, image_url, created_at, updated_at
		FROM products
		WHERE id = $1
	`
	var product domain.Product
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Category,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.ImageURL,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("getting product: %w", err)
	}
	return &product, nil
}

// ListProducts retrieves products, optionally filtered by category
func (r *Repository) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	query := `
		SELECT id, name, category, description, price, stock, image_url, created_at, updated_at
		FROM products
	`
	var args []interface{}
	if category != "" {
		query += ` WHERE category = $1`
		args = append(args, category)
	}
	query += ` ORDER BY name ASC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var product domain.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Category,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.ImageURL,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning product: %w", err)
		}
		products = append(products, product)
	}
	return products, nil
}

// UpdateProduct updates a product's details
func (r *Repository) UpdateProduct(ctx context.Context, product *domain.Product) error {
	query := `
		UPDATE products
		SET name = $2, category = $3, description = $4, price = $5, stock = $6, image_url = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Category,
		product.Description,
		product.Price,
		product.Stock,
		product.ImageURL,
		product.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// DeleteProduct removes a product
func (r *Repository) DeleteProduct(ctx context.Context, id string) error {
	query := `DELETE FROM products WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting product: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrProductNotFound
	}
	return nil
}

// CreateReview inserts a new review
func (r *Repository) CreateReview(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, user_id, target_type, target_id, rating, comment, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID,
		review.UserID,
		string(review.TargetType),
		review.TargetID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating review: %w", err)
	}
	return nil
}

// GetReview retrieves a review by ID
func (r *Repository) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	query := `
		SELECT id, user_id, target_type, target_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	var review domain.Review
	var targetType string
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID,
		&review.UserID,
		&targetType,
		&review.TargetID,
		&review.Rating,
		&review.Comment,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrReviewNotFound
		}
		return nil, fmt.Errorf("getting review: %w", err)
	}
	review.TargetType = domain.ReviewTarget(targetType)
	return &review, nil
}

// ListReviews retrieves reviews for a target
func (r *Repository) ListReviews(ctx context.Context, targetType domain.ReviewTarget, targetID string) ([]domain.Review, error) {
	query := `
		SELECT id, user_id, target_type, target_id, rating, comment, created_at, updated_at
		FROM reviews
		WHERE target_type = $1 AND target_id = $2
		ORDER BY created_at DESC
	`
	rows, err := r.pool.Query(ctx, query, string(targetType), targetID)
	if err != nil {
		return nil, fmt.Errorf("listing reviews: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var review domain.Review
		var tt string
		err := rows.Scan(
			&review.ID,
			&review.UserID,
			&tt,
			&review.TargetID,
			&review.Rating,
			&review.Comment,
			&review.CreatedAt,
			&review.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning review: %w", err)
		}
		review.TargetType = domain.ReviewTarget(tt)
		reviews = append(reviews, review)
	}
	return reviews, nil
}

// UpdateReview updates a review
func (r *Repository) UpdateReview(ctx context.Context, review *domain.Review) error {
	query := `
		UPDATE reviews
		SET rating = $2, comment = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query,
		review.ID,
		review.Rating,
		review.Comment,
		review.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("updating review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// DeleteReview removes a review
func (r *Repository) DeleteReview(ctx context.Context, id string) error {
	query := `DELETE FROM reviews WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting review: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// CreateCartItem inserts a new cart line
func (r *Repository) CreateCartItem(ctx context.Context, item *domain.CartItem) error {
	query := `
		INSERT INTO cart_items (id, user_id, product_id, quantity, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		item.ID,
		item.UserID,
		item.ProductID,
		item.Quantity,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("creating cart item: %w", err)
	}
	return nil
}

// GetCartItem retrieves a cart line by ID
func (r *Repository) GetCartItem(ctx context.Context, id string) (*domain.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE id = $1
	`
	var item domain.CartItem
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&item.ID,
		&item.UserID,
		&item.ProductID,
		&item.Quantity,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("getting cart item: %w", err)
	}
	return &item, nil
}

// ListCart retrieves a user's cart lines
func (r *Repository) ListCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	query := `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at ASC
	`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing cart: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.Quantity,
			&item.CreatedAt,
			&item.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning cart item: %w", err)
		}
		items = append(items, item)
	}
	return items, nil
}

// UpdateCartItem updates a cart line's quantity
func (r *Repository) UpdateCartItem(ctx context.Context, item *domain.CartItem) error {
	query := `
		UPDATE cart_items
		SET quantity = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := r.pool.Exec(ctx, query, item.ID, item.Quantity, item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("updating cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// DeleteCartItem removes a cart line
func (r *Repository) DeleteCartItem(ctx context.Context, id string) error {
	query := `DELETE FROM cart_items WHERE id = $1`
	result, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("deleting cart item: %w", err)
	}
	if result.RowsAffected() == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}
