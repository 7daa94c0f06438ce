package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// idPattern restricts {id} to digits so that non-numeric ids fall through
// to the 404 handler.
const idPattern = "/{id:[0-9]+}"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	// CORS answers preflight requests before the gate sees them
	router.Use(h.withCORS())
	router.Use(h.auth)

	router.Get("/api/health", h.health)
	router.Get("/api/version", h.getServerVersion)
	router.Handle("/api/metrics", h.metrics.Handler())

	router.Route("/api/users", func(r chi.Router) {
		r.Get("/", h.getUsers)
		r.Post("/", h.createUser)
		r.Get(idPattern, h.getUser)
		r.Put(idPattern, h.updateUser)
		r.Delete(idPattern, h.deleteUser)
	})

	router.Route("/api/items", func(r chi.Router) {
		r.Get("/", h.getItems)
		r.Post("/", h.createItem)
		r.Get(idPattern, h.getItem)
		r.Put(idPattern, h.updateItem)
		r.Delete(idPattern, h.deleteItem)
	})

	router.Post("/api/auth/verify", h.verifyPassword)

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.notFound))

	return router
}

func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: h.cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
		MaxAge:         3600,
	}).Handler
}
