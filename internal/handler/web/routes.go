package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withRequestLogger)

	router.Get("/", h.index)
	router.Get("/about", h.about)
	router.Get("/users", h.users)
	router.Get("/items", h.items)

	router.Handle("/static/*", http.StripPrefix("/static/", h.static()))

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
