// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// Init builds the router. Reads and contact submissions are public; every
// other write goes through the auth middleware.
func (h *Handler) Init() http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	if h.options.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.options.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/version", h.getServerVersion)
		r.Post("/auth/login", h.login)

		r.Get("/profile", h.getProfile)
		r.Get("/projects", h.listProjects)
		r.Get("/resources", h.listResources)
		r.Get("/files/{name}", h.getFile)
		r.Post("/messages", h.createMessage)
	})

	// admin routes
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/profile", h.saveProfile)

		r.Post("/projects", h.createProject)
		r.Put("/projects/{id}", h.updateProject)
		r.Delete("/projects/{id}", h.deleteProject)

		r.Post("/resources", h.createResource)
		r.Put("/resources/{id}", h.updateResource)
		r.Delete("/resources/{id}", h.deleteResource)

		r.Get("/messages", h.listMessages)
		r.Put("/messages/{id}/read", h.markMessageRead)
		r.Delete("/messages/{id}", h.deleteMessage)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return cors.New(cors.Options{
		AllowedOrigins: h.options.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowedHeaders: []string{"Authorization", "Content-Type", traceIDHeader},
		ExposedHeaders: []string{"Authorization", traceIDHeader},
	}).Handler(router)
}
