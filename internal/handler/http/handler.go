// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/models"
)

// Handler owns the routes served next to an MCP network transport.
type Handler struct {
	mcp      http.Handler
	mcpPaths []string

	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

// NewHandler mounts mcp at every path in mcpPaths once Init is called.
func NewHandler(mcp http.Handler, mcpPaths []string, buildInfo models.AppBuildInfo, logger *logger.Logger) *Handler {
	logger.Debug().Strs("mcp_paths", mcpPaths).Msg("http handler created")
	return &Handler{
		mcp:       mcp,
		mcpPaths:  mcpPaths,
		buildInfo: buildInfo,
		logger:    logger,
	}
}
