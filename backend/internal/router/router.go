package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/sembang-dev/sembang/backend/internal/setup"
	mw "github.com/sembang-dev/sembang/shared/middleware"
	"github.com/sembang-dev/sembang/shared/middleware/metrics"
	"github.com/sembang-dev/sembang/shared/utils"
)

// New creates the chi router with all routes.
// Mutating routes share one per-user token bucket (deps.MutationLimiter).
func New(deps *setup.Dependencies) http.Handler {
	cfg := deps.Config
	h := deps.Handler

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(middleware.Compress(5))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.Public.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(mw.SecurityHeaders(cfg.Public.SecureCookies))

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusNotFound, map[string]string{"status": "fail", "message": "route not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"status": "fail", "message": "method not allowed"})
	})

	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Handle("/metrics", metrics.Handler())

	limitMutations := mw.RateLimit(deps.MutationLimiter, mw.UserIdentity)

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(cfg.RequestTimeout()))

		// Account routes are limited by client IP
		r.With(limitMutations).Post("/users", h.Register)
		r.With(limitMutations).Post("/authentications", h.Login)

		r.Get("/threads/{threadId}", h.GetThread)

		r.Group(func(r chi.Router) {
			r.Use(deps.AuthMiddleware.NeedAuth())
			r.Use(limitMutations)

			r.Post("/threads", h.CreateThread)
			r.Route("/threads/{threadId}/comments", func(r chi.Router) {
				r.Post("/", h.AddComment)
				r.Delete("/{commentId}", h.DeleteComment)
				r.Post("/{commentId}/replies", h.AddReply)
				r.Delete("/{commentId}/replies/{replyId}", h.DeleteReply)
			})
		})
	})

	return r
}
