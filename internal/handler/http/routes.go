package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)

	validate := chi.Router(router)
	if h.limiter != nil {
		validate = router.With(withRateLimit(h.limiter))
	}
	validate.Get("/validate/{cui}", h.validateCUI)
	// an empty candidate is still a candidate: answer "invalid", not 404
	validate.Get("/validate/", h.validateCUI)

	router.Get("/about", h.about)
	router.Get("/uptime", h.uptime)
	router.Get("/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
