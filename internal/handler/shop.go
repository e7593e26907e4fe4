package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matchday/internal/domain"
)

// CreateProduct handles product creation
func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.shop.CreateProduct(r.Context(), &product)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListProducts returns products, optionally filtered by category
func (h *Handler) ListProducts(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")

	products, err := h.shop.ListProducts(r.Context(), category)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, products)
}

// GetProduct returns a product by ID
func (h *Handler) GetProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	product, err := h.shop.GetProduct(r.Context(), productID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, product)
}

// UpdateProduct updates a product's details
func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var product domain.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	product.ID = productID

	updated, err := h.shop.UpdateProduct(r.Context(), &product)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeleteProduct deletes a product
func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")
	if productID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.shop.DeleteProduct(r.Context(), productID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// CreateReview handles review creation for venues and products
func (h *Handler) CreateReview(w http.ResponseWriter, r *http.Request) {
	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.shop.CreateReview(r.Context(), &review)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListReviews returns reviews for a target
func (h *Handler) ListReviews(w http.ResponseWriter, r *http.Request) {
	targetType := domain.ReviewTarget(r.URL.Query().Get("target_type"))
	targetID := r.URL.Query().Get("target_id")
	if targetType == "" || targetID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	reviews, err := h.shop.ListReviews(r.Context(), targetType, targetID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, reviews)
}

// DeleteReview deletes a review
func (h *Handler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	reviewID := chi.URLParam(r, "reviewID")
	if reviewID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.shop.DeleteReview(r.Context(), reviewID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// AddToCart adds a product to a user's cart
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request) {
	var item domain.CartItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	added, err := h.shop.AddToCart(r.Context(), &item)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, added)
}

// ListCart returns a user's cart items
func (h *Handler) ListCart(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	items, err := h.shop.ListCart(r.Context(), userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, items)
}

// UpdateCartItem changes the quantity of a cart item
func (h *Handler) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var body struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	updated, err := h.shop.UpdateCartQuantity(r.Context(), itemID, body.Quantity)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	if updated == nil {
		h.writeSuccess(w, map[string]string{"status": "removed"})
		return
	}
	h.writeSuccess(w, updated)
}

// RemoveFromCart removes an item from the cart
func (h *Handler) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "itemID")
	if itemID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.shop.RemoveFromCart(r.Context(), itemID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "removed"})
}
