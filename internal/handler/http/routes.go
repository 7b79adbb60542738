package http

import (
	"github.com/go-chi/chi/v5"
)

// Init wires the middleware chain and the API routes.
//
// Middleware order matters: the request-ID stage runs first so that the
// exception boundary can stamp error bodies with the identifier; the
// boundary runs before everything else it must be able to catch; the
// authentication stage short-circuits invalid tokens before routing; the
// logging stage records every request on the way out, including ones that
// panicked downstream.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(h.withRequestID)
	router.Use(h.errorBoundary)
	router.Use(h.auth)
	router.Use(h.withLogging)

	router.Get("/health", h.health)

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.listUsers)
		r.Post("/", h.createUser)

		r.Get("/{id}", h.getUser)
		r.Put("/{id}", h.updateUser)
		r.Delete("/{id}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
