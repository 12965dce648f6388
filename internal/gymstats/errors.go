package gymstats

import (
	"errors"
	"net/http"

	"github.com/2beens/liftlog/internal/auth"
)

var (
	// ErrNotFound is returned when the referenced exercise, program, workout or set
	// does not exist or is not owned by the requesting user.
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
)

// HTTPStatus maps domain errors to response status codes.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, auth.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// RequireUser returns the authenticated user id from the request context,
// or writes a 401 and returns false.
func RequireUser(w http.ResponseWriter, r *http.Request) (int, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "no can do", http.StatusUnauthorized)
		return 0, false
	}
	return userID, true
}
