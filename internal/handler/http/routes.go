package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withTracing, h.withLogging, middleware.Recoverer, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.health)
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/register", h.register)
		r.Post("/auth/login", h.login)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/notes", h.listNotes)
		r.Post("/notes", h.createNote)
		r.Get("/notes/{id}", h.getNote)
		r.Put("/notes/{id}", h.updateNote)
		r.Delete("/notes/{id}", h.deleteNote)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
