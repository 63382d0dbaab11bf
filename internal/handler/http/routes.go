package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)
	if h.rateLimit > 0 {
		router.Use(httprate.LimitByIP(h.rateLimit, h.rateLimitWindow))
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/signup", h.signup)
		r.Post("/api/auth/login", h.login)
		r.Get("/api/books", h.listBooks)
		r.Get("/api/books/{id}", h.getBook)
		r.Get("/api/search", h.searchBooks)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes requiring a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/books", h.addBook)
		r.Post("/api/books/{id}/reviews", h.addReview)
		r.Put("/api/reviews/{id}", h.updateReview)
		r.Delete("/api/reviews/{id}", h.deleteReview)
	})

	return router
}
