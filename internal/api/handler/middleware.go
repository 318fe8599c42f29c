// internal/api/handler/middleware.go
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"expense-tracker-api/internal/api/types"
	"expense-tracker-api/internal/domain"
	"expense-tracker-api/internal/service"
	"expense-tracker-api/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

const bearerPrefix = "Bearer "

type contextKey string

const userContextKey contextKey = "user"

// UserFromContext extracts the authenticated user from the request context.
// Returns nil if no user is attached.
func UserFromContext(ctx context.Context) *domain.User {
	user, _ := ctx.Value(userContextKey).(*domain.User)
	return user
}

// RequireAuth is middleware that gates resource routes behind bearer-token
// authentication. It extracts the Authorization header, verifies the token,
// resolves the subject against the user store, and injects the user into
// the request context. A request either fully passes or is rejected here;
// handlers behind the gate never see a partially authenticated request.
func RequireAuth(authService service.AuthService, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				respondUnauthorized(w, "Not authorized, no token provided")
				return
			}

			token := header[len(bearerPrefix):]
			if token == "" {
				respondUnauthorized(w, "No token found in Authorization header")
				return
			}

			userID, err := authService.VerifyToken(token)
			if err != nil {
				respondUnauthorized(w, "Not authorized, token invalid or expired")
				return
			}

			// A valid signature does not imply a valid identity: the user
			// may have been deleted after the token was issued.
			user, err := authService.GetUserByID(r.Context(), userID)
			if err != nil {
				if util.IsError(err, util.ErrUserNotFound) {
					respondUnauthorized(w, "User not found for this token")
					return
				}
				logger.Error("Failed to resolve token subject", "user_id", userID, "error", err)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: "Server error"})
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(types.MessageResponse{Message: message})
}
