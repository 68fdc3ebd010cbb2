// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/alpaca-mcp/internal/config"
	myHTTP "github.com/MKhiriev/alpaca-mcp/internal/handler/http"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/models"
)

// Paths served by the network transports.
const (
	StreamablePath = "/mcp"
	SSEPath        = "/sse"
	MessagePath    = "/message"
)

const readHeaderTimeout = 10 * time.Second

// transportShutdowner is implemented by both mcp-go HTTP transports; it
// closes open sessions and the underlying *http.Server.
type transportShutdowner interface {
	Shutdown(ctx context.Context) error
}

type httpServer struct {
	server    *http.Server
	transport transportShutdowner

	logger *logger.Logger
}

// newHTTPServer mounts the streamable HTTP transport at /mcp, or the legacy
// SSE transport at /sse and /message, on the shared router.
func newHTTPServer(registry *mcpserver.MCPServer, transport config.Transport, cfg config.Server,
	buildInfo models.AppBuildInfo, logger *logger.Logger) *httpServer {
	srv := &http.Server{
		Addr:              cfg.Address(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	var (
		mcpHandler http.Handler
		paths      []string
		closer     transportShutdowner
	)
	switch transport {
	case config.TransportSSE:
		sse := mcpserver.NewSSEServer(registry,
			mcpserver.WithBaseURL(cfg.BaseURL()),
			mcpserver.WithSSEEndpoint(SSEPath),
			mcpserver.WithMessageEndpoint(MessagePath),
			mcpserver.WithHTTPServer(srv),
		)
		mcpHandler, paths, closer = sse, []string{SSEPath, MessagePath}, sse
	default:
		streamable := mcpserver.NewStreamableHTTPServer(registry,
			mcpserver.WithEndpointPath(StreamablePath),
			mcpserver.WithStreamableHTTPServer(srv),
			mcpserver.WithLogger(logger),
		)
		mcpHandler, paths, closer = streamable, []string{StreamablePath}, streamable
	}

	srv.Handler = myHTTP.NewHandler(mcpHandler, paths, buildInfo, logger).Init()

	return &httpServer{
		server:    srv,
		transport: closer,
		logger:    logger,
	}
}

// RunServer blocks in ListenAndServe. A shutdown is not reported as an error.
func (h *httpServer) RunServer(context.Context) error {
	h.logger.Info().Str("address", h.server.Addr).Msg("serving MCP over HTTP")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	h.logger.Info().Msg("HTTP server shutdown")
	return h.transport.Shutdown(ctx)
}
