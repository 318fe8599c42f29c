// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"expense-tracker-api/internal/api/handler"
	"expense-tracker-api/internal/service"
)

// NewRouter sets up and returns a new HTTP router. Every expense route is
// gated behind bearer-token authentication; the auth routes and the health
// check are open.
func NewRouter(expenseHandler *handler.ExpenseHandler, authHandler *handler.AuthHandler, authService service.AuthService, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	r.Route("/api", func(r chi.Router) {
		// Credential issuance (register/login) is the only open surface.
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		// Expense resources, all behind the authentication gate.
		r.Route("/expenses", func(r chi.Router) {
			r.Use(handler.RequireAuth(authService, logger))
			r.Get("/", expenseHandler.List)
			r.Post("/", expenseHandler.Create)
			r.Get("/summary", expenseHandler.Summary)
			r.Put("/{expenseID}", expenseHandler.Update)
			r.Delete("/{expenseID}", expenseHandler.Delete)
		})
	})

	return r
}
