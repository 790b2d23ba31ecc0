package router

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/redis/go-redis/v9"

	"github.com/Anurag07-07/Resculink/internal/handler"
	"github.com/Anurag07-07/Resculink/internal/middleware"
)

func SetupRoutes(
	r chi.Router,
	auth *middleware.AuthMiddleware,
	authHandler *handler.AuthHandler,
	requestHandler *handler.RequestHandler,
	adminHandler *handler.AdminHandler,
	ngoHandler *handler.NGOHandler,
	wsHandler *handler.WSHandler,
	rdb *redis.Client,
) chi.Router {
	// ---- Global Middleware ----
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.RateLimiter(rdb, 100, time.Minute, 10*time.Minute, "global"))

	// ---------------- Public ----------------
	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimiter(rdb, 10, 30*time.Second, 30*time.Second, "auth"))
		r.Post("/api/auth/register", authHandler.HandleRegister)
		r.Post("/api/auth/login", authHandler.HandleLogin)
	})
	r.Get("/api/requests", requestHandler.HandleList)
	r.Get("/api/ngos/verified", ngoHandler.HandleVerifiedNGOs)

	// ---------------- Authenticated ----------------
	r.Group(func(r chi.Router) {
		r.Use(auth.Require())

		r.Get("/api/auth/me", authHandler.HandleMe)
		r.Get("/ws", wsHandler.HandleWS)

		// Gated actions: unapproved NGOs are blocked here.
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireVerified())
			r.Post("/api/requests", requestHandler.HandleCreate)
			r.Put("/api/requests/{id}", requestHandler.HandleUpdateStatus)
			r.Post("/api/requests/{id}/accept", requestHandler.HandleAccept)
		})

		// ---------------- Admin ----------------
		r.Group(func(r chi.Router) {
			r.Use(auth.RequireAdmin())
			r.Get("/api/admin/pending-ngos", adminHandler.HandlePendingNGOs)
			r.Put("/api/admin/verify-ngo/{id}", adminHandler.HandleVerifyNGO)
		})
	})

	return r
}
