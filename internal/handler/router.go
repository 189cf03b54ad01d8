package handler

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/elegantbudget/budget-go/internal/middleware"
)

// NewRouter assembles the HTTP surface. The transaction routes and the auth
// check sit behind the bearer-token gate; signup/login/logout do not.
func NewRouter(auth *AuthHandler, txns *TransactionHandler, jwtSecret, frontendURL string) chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://localhost:5173", frontendURL},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Welcome to the Elegant Budget Tracker API"))
	})
	r.Get("/health", handleHealth)
	r.Get("/api/health", handleHealth)

	r.Route("/api", func(r chi.Router) {
		r.Post("/user/signup", auth.HandleSignup)
		r.Post("/user/login", auth.HandleLogin)
		r.Post("/user/logout", auth.HandleLogout)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Authenticate(jwtSecret))

			r.Get("/auth/check", auth.HandleCheck)

			r.Post("/transaction", txns.HandleCreate)
			r.Get("/transactions", txns.HandleList)
			r.Put("/transaction/{id}", txns.HandleUpdate)
			r.Delete("/transaction/{id}", txns.HandleDelete)
		})
	})

	return r
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
