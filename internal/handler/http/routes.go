// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging)

	router.Get("/healthz", h.health)
	router.Get("/version", h.getServerVersion)

	// the transports dispatch on method themselves
	for _, path := range h.mcpPaths {
		router.Handle(path, h.mcp)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
