package server

import (
	"context"
	"net/http"
	"strings"

	"taskboard/internal/service"
)

type contextKey string

const userIDKey contextKey = "user_id"

// GetUserID returns the authenticated user id stored by the auth middleware.
func GetUserID(ctx context.Context) (uint, bool) {
	id, ok := ctx.Value(userIDKey).(uint)
	return id, ok
}

// authMiddleware verifies the bearer token and puts the owning user id on
// the request context. Every failure is a 401 with an error payload, which
// tells clients to drop their stored session.
func (s *Server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			writeError(w, http.StatusUnauthorized, "no token provided")
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			writeError(w, http.StatusUnauthorized, "invalid token format")
			return
		}

		userID, err := s.jwt.Verify(parts[1])
		if err != nil {
			writeError(w, http.StatusUnauthorized, service.ErrTokenInvalid.Error())
			return
		}

		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userIDKey, userID)))
	})
}
