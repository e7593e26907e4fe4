// Package memory provides an in-memory implementation of the service store
// contracts, used by tests and by dev mode when no database is configured.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/matchday/internal/domain"
)

// Store keeps every entity in maps guarded by a single RWMutex
type Store struct {
	mu sync.RWMutex

	users     map[string]domain.User
	userStats map[string]domain.UserStats
	teams     map[string]domain.Team
	players   map[string]domain.Player
	matches   map[string]domain.Match
	venues    map[string]domain.Venue
	bookings  map[string]domain.Booking
	products  map[string]domain.Product
	reviews   map[string]domain.Review
	cartItems map[string]domain.CartItem
}

// NewStore creates an empty in-memory store
func NewStore() *Store {
	return &Store{
		users:     make(map[string]domain.User),
		userStats: make(map[string]domain.UserStats),
		teams:     make(map[string]domain.Team),
		players:   make(map[string]domain.Player),
		matches:   make(map[string]domain.Match),
		venues:    make(map[string]domain.Venue),
		bookings:  make(map[string]domain.Booking),
		products:  make(map[string]domain.Product),
		reviews:   make(map[string]domain.Review),
		cartItems: make(map[string]domain.CartItem),
	}
}

// cloneMatch copies a match including its nested result payload so callers
// never alias stored state.
func cloneMatch(m domain.Match) domain.Match {
	if m.MatchData != nil {
		data := *m.MatchData
		if data.ResultSummary != nil {
			rs := *data.ResultSummary
			data.ResultSummary = &rs
		}
		if data.Scorecard != nil {
			sc := domain.Scorecard{Innings: make([]domain.Innings, len(data.Scorecard.Innings))}
			copy(sc.Innings, data.Scorecard.Innings)
			data.Scorecard = &sc
		}
		m.MatchData = &data
	}
	return m
}

// Users

func (s *Store) CreateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[user.ID] = *user
	return nil
}

func (s *Store) GetUser(ctx context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	user, ok := s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]domain.User, 0, len(s.users))
	for _, user := range s.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].CreatedAt.After(users[j].CreatedAt) })
	return users, nil
}

func (s *Store) UpdateUser(ctx context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	s.users[user.ID] = *user
	return nil
}

func (s *Store) DeleteUser(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(s.users, id)
	delete(s.userStats, id)
	return nil
}

func (s *Store) GetUserStats(ctx context.Context, userID string) (*domain.UserStats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stats, ok := s.userStats[userID]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &stats, nil
}

func (s *Store) UpsertUserStats(ctx context.Context, stats *domain.UserStats) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.userStats[stats.UserID] = *stats
	return nil
}

// Teams

func (s *Store) CreateTeam(ctx context.Context, team *domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.teams[team.ID] = *team
	return nil
}

func (s *Store) GetTeam(ctx context.Context, id string) (*domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	team, ok := s.teams[id]
	if !ok {
		return nil, domain.ErrTeamNotFound
	}
	return &team, nil
}

func (s *Store) ListTeams(ctx context.Context, sport string) ([]domain.Team, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	teams := make([]domain.Team, 0, len(s.teams))
	for _, team := range s.teams {
		if sport != "" && team.Sport != sport {
			continue
		}
		teams = append(teams, team)
	}
	sort.Slice(teams, func(i, j int) bool { return teams[i].Name < teams[j].Name })
	return teams, nil
}

func (s *Store) UpdateTeam(ctx context.Context, team *domain.Team) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[team.ID]; !ok {
		return domain.ErrTeamNotFound
	}
	s.teams[team.ID] = *team
	return nil
}

func (s *Store) DeleteTeam(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.teams[id]; !ok {
		return domain.ErrTeamNotFound
	}
	delete(s.teams, id)
	return nil
}

// Players

func (s *Store) CreatePlayer(ctx context.Context, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.players[player.ID] = *player
	return nil
}

func (s *Store) GetPlayer(ctx context.Context, id string) (*domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	player, ok := s.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &player, nil
}

func (s *Store) ListPlayers(ctx context.Context, teamID string) ([]domain.Player, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	players := make([]domain.Player, 0, len(s.players))
	for _, player := range s.players {
		if teamID != "" && player.TeamID != teamID {
			continue
		}
		players = append(players, player)
	}
	sort.Slice(players, func(i, j int) bool { return players[i].Name < players[j].Name })
	return players, nil
}

func (s *Store) UpdatePlayer(ctx context.Context, player *domain.Player) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[player.ID]; !ok {
		return domain.ErrPlayerNotFound
	}
	s.players[player.ID] = *player
	return nil
}

func (s *Store) DeletePlayer(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.players[id]; !ok {
		return domain.ErrPlayerNotFound
	}
	delete(s.players, id)
	return nil
}

// Matches

func (s *Store) CreateMatch(ctx context.Context, match *domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.matches[match.ID] = cloneMatch(*match)
	return nil
}

func (s *Store) GetMatch(ctx context.Context, id string) (*domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	match, ok := s.matches[id]
	if !ok {
		return nil, domain.ErrMatchNotFound
	}
	clone := cloneMatch(match)
	return &clone, nil
}

func (s *Store) ListMatches(ctx context.Context, filter domain.MatchFilter) ([]domain.Match, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	matches := make([]domain.Match, 0, len(s.matches))
	for _, match := range s.matches {
		if filter.Sport != "" && match.Sport != filter.Sport {
			continue
		}
		if filter.Status != "" && match.Status != filter.Status {
			continue
		}
		if filter.VenueID != "" && match.VenueID != filter.VenueID {
			continue
		}
		if filter.TeamID != "" && !referencesTeam(&match, filter.TeamID) {
			continue
		}
		matches = append(matches, cloneMatch(match))
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].ScheduledAt.Before(matches[j].ScheduledAt) })
	return matches, nil
}

func (s *Store) UpdateMatch(ctx context.Context, match *domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[match.ID]; !ok {
		return domain.ErrMatchNotFound
	}
	s.matches[match.ID] = cloneMatch(*match)
	return nil
}

func (s *Store) DeleteMatch(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.matches[id]; !ok {
		return domain.ErrMatchNotFound
	}
	delete(s.matches, id)
	return nil
}

func (s *Store) ListMatchesForTeam(ctx context.Context, teamID string) ([]domain.Match, error) {
	return s.ListMatches(ctx, domain.MatchFilter{TeamID: teamID})
}

func referencesTeam(m *domain.Match, teamID string) bool {
	if m.HomeTeamID == teamID || m.AwayTeamID == teamID {
		return true
	}
	return m.HasParticipant(teamID)
}

// Venues

func (s *Store) CreateVenue(ctx context.Context, venue *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.venues[venue.ID] = *venue
	return nil
}

func (s *Store) GetVenue(ctx context.Context, id string) (*domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	venue, ok := s.venues[id]
	if !ok {
		return nil, domain.ErrVenueNotFound
	}
	return &venue, nil
}

func (s *Store) ListVenues(ctx context.Context, city string) ([]domain.Venue, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	venues := make([]domain.Venue, 0, len(s.venues))
	for _, venue := range s.venues {
		if city != "" && venue.City != city {
			continue
		}
		venues = append(venues, venue)
	}
	sort.Slice(venues, func(i, j int) bool { return venues[i].Name < venues[j].Name })
	return venues, nil
}

func (s *Store) UpdateVenue(ctx context.Context, venue *domain.Venue) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[venue.ID]; !ok {
		return domain.ErrVenueNotFound
	}
	s.venues[venue.ID] = *venue
	return nil
}

func (s *Store) DeleteVenue(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.venues[id]; !ok {
		return domain.ErrVenueNotFound
	}
	delete(s.venues, id)
	return nil
}

// Bookings

func (s *Store) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *Store) GetBooking(ctx context.Context, id string) (*domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	booking, ok := s.bookings[id]
	if !ok {
		return nil, domain.ErrBookingNotFound
	}
	return &booking, nil
}

func (s *Store) ListBookings(ctx context.Context, venueID, userID string) ([]domain.Booking, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bookings := make([]domain.Booking, 0, len(s.bookings))
	for _, booking := range s.bookings {
		if venueID != "" && booking.VenueID != venueID {
			continue
		}
		if userID != "" && booking.UserID != userID {
			continue
		}
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool { return bookings[i].StartsAt.Before(bookings[j].StartsAt) })
	return bookings, nil
}

func (s *Store) UpdateBooking(ctx context.Context, booking *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[booking.ID]; !ok {
		return domain.ErrBookingNotFound
	}
	s.bookings[booking.ID] = *booking
	return nil
}

func (s *Store) DeleteBooking(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrBookingNotFound
	}
	delete(s.bookings, id)
	return nil
}

// Products

func (s *Store) CreateProduct(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[product.ID] = *product
	return nil
}

func (s *Store) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	product, ok := s.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return &product, nil
}

func (s *Store) ListProducts(ctx context.Context, category string) ([]domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	products := make([]domain.Product, 0, len(s.products))
	for _, product := range s.products {
		if category != "" && product.Category != category {
			continue
		}
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].Name < products[j].Name })
	return products, nil
}

func (s *Store) UpdateProduct(ctx context.Context, product *domain.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[product.ID]; !ok {
		return domain.ErrProductNotFound
	}
	s.products[product.ID] = *product
	return nil
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(s.products, id)
	return nil
}

// Reviews

func (s *Store) CreateReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews[review.ID] = *review
	return nil
}

func (s *Store) GetReview(ctx context.Context, id string) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	review, ok := s.reviews[id]
	if !ok {
		return nil, domain.ErrReviewNotFound
	}
	return &review, nil
}

func (s *Store) ListReviews(ctx context.Context, targetType domain.ReviewTarget, targetID string) ([]domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	reviews := make([]domain.Review, 0, len(s.reviews))
	for _, review := range s.reviews {
		if targetType != "" && review.TargetType != targetType {
			continue
		}
		if targetID != "" && review.TargetID != targetID {
			continue
		}
		reviews = append(reviews, review)
	}
	sort.Slice(reviews, func(i, j int) bool { return reviews[i].CreatedAt.After(reviews[j].CreatedAt) })
	return reviews, nil
}

func (s *Store) UpdateReview(ctx context.Context, review *domain.Review) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[review.ID]; !ok {
		return domain.ErrReviewNotFound
	}
	s.reviews[review.ID] = *review
	return nil
}

func (s *Store) DeleteReview(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.reviews[id]; !ok {
		return domain.ErrReviewNotFound
	}
	delete(s.reviews, id)
	return nil
}

// Cart items

func (s *Store) CreateCartItem(ctx context.Context, item *domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartItems[item.ID] = *item
	return nil
}

func (s *Store) GetCartItem(ctx context.Context, id string) (*domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	item, ok := s.cartItems[id]
	if !ok {
		return nil, domain.ErrCartItemNotFound
	}
	return &item, nil
}

func (s *Store) ListCart(ctx context.Context, userID string) ([]domain.CartItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	items := make([]domain.CartItem, 0)
	for _, item := range s.cartItems {
		if item.UserID != userID {
			continue
		}
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].CreatedAt.Before(items[j].CreatedAt) })
	return items, nil
}

func (s *Store) UpdateCartItem(ctx context.Context, item *domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[item.ID]; !ok {
		return domain.ErrCartItemNotFound
	}
	s.cartItems[item.ID] = *item
	return nil
}

func (s *Store) DeleteCartItem(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.cartItems[id]; !ok {
		return domain.ErrCartItemNotFound
	}
	delete(s.cartItems, id)
	return nil
}
