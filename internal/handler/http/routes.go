package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.With(withGZip).Post("/api/auth/register", h.register)
		r.With(withGZip).Post("/api/auth/login", h.login)
		r.Post("/api/files/retrieve", h.retrieve)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Group(func(r chi.Router) {
			r.Use(withGZip)
			r.Get("/api/users/me", h.me)
			r.Put("/api/users/name", h.updateName)
			r.Put("/api/users/password", h.updatePassword)
			r.Get("/api/users/search", h.searchEmails)
			r.Get("/api/files/sent", h.listSent)
			r.Get("/api/files/received", h.listReceived)
			r.Post("/api/files/{fileID}/links", h.createLink)
			r.Delete("/api/files/{fileID}", h.deleteFile)
			r.Delete("/api/links/{linkID}", h.revokeLink)
		})

		r.Post("/api/files/upload", h.upload)
		r.Get("/api/files/{fileID}", h.download)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
