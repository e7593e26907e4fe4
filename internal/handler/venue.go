package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/matchday/internal/domain"
)

// CreateVenue handles venue creation
func (h *Handler) CreateVenue(w http.ResponseWriter, r *http.Request) {
	var venue domain.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.venues.CreateVenue(r.Context(), &venue)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListVenues returns venues, optionally filtered by city
func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	venues, err := h.venues.ListVenues(r.Context(), city)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, venues)
}

// GetVenue returns a venue by ID
func (h *Handler) GetVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "venueID")
	if venueID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	venue, err := h.venues.GetVenue(r.Context(), venueID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, venue)
}

// UpdateVenue updates a venue's details
func (h *Handler) UpdateVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "venueID")
	if venueID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var venue domain.Venue
	if err := json.NewDecoder(r.Body).Decode(&venue); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}
	venue.ID = venueID

	updated, err := h.venues.UpdateVenue(r.Context(), &venue)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeleteVenue deletes a venue
func (h *Handler) DeleteVenue(w http.ResponseWriter, r *http.Request) {
	venueID := chi.URLParam(r, "venueID")
	if venueID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.venues.DeleteVenue(r.Context(), venueID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}

// CreateBooking handles venue slot booking
func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking domain.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	created, err := h.venues.CreateBooking(r.Context(), &booking)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeCreated(w, created)
}

// ListBookings returns bookings filtered by venue or user
func (h *Handler) ListBookings(w http.ResponseWriter, r *http.Request) {
	venueID := r.URL.Query().Get("venue_id")
	userID := r.URL.Query().Get("user_id")

	bookings, err := h.venues.ListBookings(r.Context(), venueID, userID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, bookings)
}

// GetBooking returns a booking by ID
func (h *Handler) GetBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	booking, err := h.venues.GetBooking(r.Context(), bookingID)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, booking)
}

// UpdateBookingStatus transitions a booking between states
func (h *Handler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	var req struct {
		Status domain.BookingStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	updated, err := h.venues.UpdateBookingStatus(r.Context(), bookingID, req.Status)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, updated)
}

// DeleteBooking deletes a booking
func (h *Handler) DeleteBooking(w http.ResponseWriter, r *http.Request) {
	bookingID := chi.URLParam(r, "bookingID")
	if bookingID == "" {
		h.writeError(w, http.StatusBadRequest, domain.ErrInvalidRequest)
		return
	}

	if err := h.venues.DeleteBooking(r.Context(), bookingID); err != nil {
		h.writeServiceError(w, err)
		return
	}

	h.writeSuccess(w, map[string]string{"status": "deleted"})
}
