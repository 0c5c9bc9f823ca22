package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.hasher != nil {
		router.Use(h.withHashing)
	}
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.Post("/user", h.createUser)
	router.Get("/user/{id}", h.getUser)
	router.Put("/user/{id}", h.updateUser)
	router.Delete("/user/{id}", h.deleteUser)
	router.Get("/users", h.listUsers)

	router.Post("/books", h.createBook)
	router.Get("/book", h.findBooks)
	router.Get("/books", h.listBooks)

	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
