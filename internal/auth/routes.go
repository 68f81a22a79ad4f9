package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Middleware is an interface for HTTP middleware
type Middleware func(http.Handler) http.Handler

// RegisterRoutes registers the authentication routes with the Chi router.
// Registration and login sit behind the per-IP rate limiter; the key
// lookups carry their auth key explicitly and are not limited.
func RegisterRoutes(r chi.Router, handler *AuthHandler, loginLimiter Middleware) {
	r.Group(func(r chi.Router) {
		r.Use(loginLimiter)
		r.Post("/register", handler.Register)
		r.Post("/login", handler.Login)
	})

	r.Post("/updatePassword", handler.UpdatePassword)
	r.Get("/getUserID", handler.GetUserID)
	r.Get("/getUser", handler.GetUser)
}
