package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"tweeter/internal/auth"
	"tweeter/internal/logger"
)

type contextKey string

const userIDKey contextKey = "userID"

// requireTokenMiddleware verifies the session token before the handler
// runs. The token rides in the Authorization header as-is, with no
// "Bearer " prefix. Any failure short-circuits 401 without the handler
// ever being invoked.
func requireTokenMiddleware(tokens auth.Tokens) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			userID, err := tokens.Verify(token)
			if err != nil {
				http.Error(w, "Unauthenticated", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, userID)
			ctx = logger.WithAttrs(ctx, slog.Int64("user_id", userID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// sessionUserID fetches the authenticated user id stowed by the
// middleware. Zero means the route was not behind the token check.
func sessionUserID(r *http.Request) int64 {
	id, _ := r.Context().Value(userIDKey).(int64)
	return id
}
