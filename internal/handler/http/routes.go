package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer)
	router.Use(withGZip, middleware.Compress(5, "application/json"))
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
	})

	// a password-verified session is enough
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/auth/logout", h.logout)
		r.Get("/api/auth/me", h.me)

		r.Post("/api/biometric/enroll", h.enroll)
		r.Post("/api/biometric/verify", h.verify)
		r.Put("/api/biometric/toggle", h.toggle)
		r.Post("/api/biometric/detect-face", h.detectFace)
	})

	// console access needs the biometric factor as well
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireBiometric)

		r.Get("/api/console/session", h.consoleSession)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
