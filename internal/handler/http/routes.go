package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(
		h.withCORS,
		h.withTraceID,
		h.withLogging,
		middleware.Recoverer,
	)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	router.NotFound(h.routeNotFound)
	router.MethodNotAllowed(CheckHTTPMethod(router, h.routeNotFound))

	router.Route("/api", func(r chi.Router) {
		r.Use(middleware.Compress(5, "application/json"))

		r.Get("/health", h.health)

		r.Route("/users", func(r chi.Router) {
			r.Get("/", h.listUsers)
			r.Post("/signup", h.signup)
			r.Post("/login", h.login)
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/{placeId}", h.getPlaceByID)
			r.Get("/user/{userId}", h.getPlacesByUserID)

			// routes with authorization
			r.Group(func(r chi.Router) {
				r.Use(h.auth)
				r.Post("/", h.createPlace)
				r.Patch("/{placeId}", h.updatePlace)
				r.Delete("/{placeId}", h.deletePlace)
			})
		})
	})

	router.Method(http.MethodGet, "/uploads/images/*", h.staticImages())

	return router
}
