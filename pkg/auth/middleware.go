package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/restobonus/loyalty/pkg/utils"
)

type ContextKey string

const (
	TerminalIDKey   ContextKey = "terminalID"
	RestaurantIDKey ContextKey = "restaurantID"
)

// TerminalAuth validates the POS terminal JWT and injects the terminal and
// restaurant ids into the request context.
func TerminalAuth(jwtService JWTServiceInterface) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			token := strings.TrimPrefix(authHeader, "Bearer ")
			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := context.WithValue(r.Context(), TerminalIDKey, claims.TerminalID)
			ctx = context.WithValue(ctx, RestaurantIDKey, claims.RestaurantID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
