package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without session
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/login", h.login)
		r.Post("/logout", h.logout)
		r.Get("/api/version", h.getServerVersion)
	})

	// routes with session
	router.Group(func(r chi.Router) {
		r.Use(h.requireUser)

		r.Get("/sites", h.listSites)
		r.Post("/sites/new", h.addSite)
		r.Get("/sites/{siteID}", h.getSite)
		r.Post("/sites/{siteID}", h.siteAction)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
