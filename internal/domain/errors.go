package domain

import "errors"

// Domain errors
var (
	ErrUserNotFound     = errors.New("user not found")
	ErrTeamNotFound     = errors.New("team not found")
	ErrPlayerNotFound   = errors.New("player not found")
	ErrMatchNotFound    = errors.New("match not found")
	ErrVenueNotFound    = errors.New("venue not found")
	ErrBookingNotFound  = errors.New("booking not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrReviewNotFound   = errors.New("review not found")
	ErrCartItemNotFound = errors.New("cart item not found")

	ErrMatchNotCompleted = errors.New("match is not completed")
	ErrMatchHasResult    = errors.New("match already has a result")
	ErrInvalidResult     = errors.New("invalid result summary")
	ErrInvalidRequest    = errors.New("invalid request")
	ErrInternalError     = errors.New("internal server error")
)

// IsNotFoundError checks if an error is a not-found type error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrTeamNotFound) ||
		errors.Is(err, ErrPlayerNotFound) ||
		errors.Is(err, ErrMatchNotFound) ||
		errors.Is(err, ErrVenueNotFound) ||
		errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrReviewNotFound) ||
		errors.Is(err, ErrCartItemNotFound)
}
