package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/matchday/internal/domain"
	"github.com/matchday/internal/service"
	"github.com/matchday/internal/websocket"
)

// Handler provides HTTP handlers for the matchday API
type Handler struct {
	users   *service.UserService
	teams   *service.TeamService
	roster  *service.RosterService
	matches *service.MatchService
	venues  *service.VenueService
	shop    *service.ShopService
	hub     *websocket.Hub
	logger  *slog.Logger
}

// NewHandler creates a new HTTP handler
func NewHandler(
	users *service.UserService,
	teams *service.TeamService,
	roster *service.RosterService,
	matches *service.MatchService,
	venues *service.VenueService,
	shop *service.ShopService,
	hub *websocket.Hub,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		users:   users,
		teams:   teams,
		roster:  roster,
		matches: matches,
		venues:  venues,
		shop:    shop,
		hub:     hub,
		logger:  logger,
	}
}

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// Router creates and configures the HTTP router
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	r.Use(corsMiddleware)

	// Health check
	r.Get("/health", h.HealthCheck)
	r.Get("/ready", h.ReadyCheck)

	// WebSocket endpoint
	r.Get("/ws", h.HandleWebSocket)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", h.CreateUser)
			r.Get("/", h.ListUsers)

			r.Route("/{userID}", func(r chi.Router) {
				r.Get("/", h.GetUser)
				r.Put("/", h.UpdateUser)
				r.Delete("/", h.DeleteUser)
				r.Get("/stats", h.GetUserStats)
			})
		})

		r.Route("/teams", func(r chi.Router) {
			r.Post("/", h.CreateTeam)
			r.Get("/", h.ListTeams)

			r.Route("/{teamID}", func(r chi.Router) {
				r.Get("/", h.GetTeam)
				r.Put("/", h.UpdateTeam)
				r.Delete("/", h.DeleteTeam)
				r.Get("/stats", h.GetTeamStats)
				r.Get("/players", h.ListTeamPlayers)
			})
		})

		r.Get("/standings", h.GetStandings)

		r.Route("/players", func(r chi.Router) {
			r.Post("/", h.CreatePlayer)
			r.Get("/", h.ListPlayers)

			r.Route("/{playerID}", func(r chi.Router) {
				r.Get("/", h.GetPlayer)
				r.Put("/", h.UpdatePlayer)
				r.Delete("/", h.DeletePlayer)
				r.Put("/career-stats", h.UpdateCareerStats)
			})
		})

		r.Route("/matches", func(r chi.Router) {
			r.Post("/", h.CreateMatch)
			r.Get("/", h.ListMatches)

			r.Route("/{matchID}", func(r chi.Router) {
				r.Get("/", h.GetMatch)
				r.Put("/", h.UpdateMatch)
				r.Delete("/", h.DeleteMatch)
				r.Post("/result", h.RecordMatchResult)
				r.Get("/scorecard", h.GetScorecard)
			})
		})

		r.Route("/venues", func(r chi.Router) {
			r.Post("/", h.CreateVenue)
			r.Get("/", h.ListVenues)

			r.Route("/{venueID}", func(r chi.Router) {
				r.Get("/", h.GetVenue)
				r.Put("/", h.UpdateVenue)
				r.Delete("/", h.DeleteVenue)
			})
		})

		r.Route("/bookings", func(r chi.Router) {
			r.Post("/", h.CreateBooking)
			r.Get("/", h.ListBookings)

			r.Route("/{bookingID}", func(r chi.Router) {
				r.Get("/", h.GetBooking)
				r.Put("/status", h.UpdateBookingStatus)
				r.Delete("/", h.DeleteBooking)
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Post("/", h.CreateProduct)
			r.Get("/", h.ListProducts)

			r.Route("/{productID}", func(r chi.Router) {
				r.Get("/", h.GetProduct)
				r.Put("/", h.UpdateProduct)
				r.Delete("/", h.DeleteProduct)
			})
		})

		r.Route("/reviews", func(r chi.Router) {
			r.Post("/", h.CreateReview)
			r.Get("/", h.ListReviews)
			r.Delete("/{reviewID}", h.DeleteReview)
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", h.ListCart)
			r.Post("/items", h.AddToCart)
			r.Put("/items/{itemID}", h.UpdateCartItem)
			r.Delete("/items/{itemID}", h.RemoveFromCart)
		})

		// WebSocket info endpoint
		r.Get("/ws/stats", h.GetWebSocketStats)
	})

	return r
}

// corsMiddleware adds CORS headers
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Accept, Authorization, Content-Type, X-Request-ID")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// writeJSON writes a JSON response
func (h *Handler) writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeSuccess writes a successful JSON response
func (h *Handler) writeSuccess(w http.ResponseWriter, data interface{}) {
	h.writeJSON(w, http.StatusOK, APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeCreated writes a created JSON response
func (h *Handler) writeCreated(w http.ResponseWriter, data interface{}) {
	h.writeJSON(w, http.StatusCreated, APIResponse{
		Success: true,
		Data:    data,
	})
}

// writeError writes an error JSON response
func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	h.writeJSON(w, status, APIResponse{
		Success: false,
		Error:   err.Error(),
	})
}

// writeServiceError maps service errors to HTTP status codes
func (h *Handler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case domain.IsNotFoundError(err):
		h.writeError(w, http.StatusNotFound, err)
	case errors.Is(err, domain.ErrInvalidRequest):
		h.writeError(w, http.StatusBadRequest, err)
	default:
		h.logger.Error("request failed", "error", err)
		h.writeError(w, http.StatusInternalServerError, domain.ErrInternalError)
	}
}

// HandleWebSocket handles WebSocket upgrade requests
func (h *Handler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	websocket.ServeWs(h.hub, h.logger, w, r)
}

// GetWebSocketStats returns WebSocket connection statistics
func (h *Handler) GetWebSocketStats(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]interface{}{
		"total_connections": h.hub.GetTotalConnections(),
	})
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "healthy"})
}

// ReadyCheck returns service readiness status
func (h *Handler) ReadyCheck(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, map[string]string{"status": "ready"})
}
