package auth

import (
	"context"
	"net/http"
	"strings"
)

const TokenHeader = "X-LIFTLOG-TOKEN"

type userIDContextKey struct{}

// ContextWithUserID stores the authenticated user id in ctx.
func ContextWithUserID(ctx context.Context, userID int) context.Context {
	return context.WithValue(ctx, userIDContextKey{}, userID)
}

// UserIDFromContext returns the authenticated user id, if any.
func UserIDFromContext(ctx context.Context) (int, bool) {
	userID, ok := ctx.Value(userIDContextKey{}).(int)
	if !ok || userID <= 0 {
		return 0, false
	}
	return userID, true
}

// TokenFromRequest reads the session token from the X-LIFTLOG-TOKEN header,
// falling back to a bearer Authorization header (used by MCP clients).
func TokenFromRequest(r *http.Request) string {
	if token := r.Header.Get(TokenHeader); token != "" {
		return token
	}
	authHeader := r.Header.Get("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}
