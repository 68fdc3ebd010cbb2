// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"io"
	stdlog "log"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// stdioServer speaks MCP over a pair of streams, normally the process's
// stdin and stdout. Logs must never reach out.
type stdioServer struct {
	server *mcpserver.StdioServer
	in     io.Reader
	out    io.Writer

	logger *logger.Logger
}

func newStdioServer(registry *mcpserver.MCPServer, in io.Reader, out io.Writer, logger *logger.Logger) *stdioServer {
	s := mcpserver.NewStdioServer(registry)
	s.SetErrorLogger(stdlog.New(logger, "", 0))

	return &stdioServer{
		server: s,
		in:     in,
		out:    out,
		logger: logger,
	}
}

// RunServer returns nil when the input reaches EOF or ctx is cancelled.
func (s *stdioServer) RunServer(ctx context.Context) error {
	s.logger.Info().Msg("serving MCP over stdio")

	err := s.server.Listen(ctx, s.in, s.out)
	if err == nil || errors.Is(err, context.Canceled) || errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// Shutdown is a no-op: the stdio loop stops when its context is cancelled.
func (s *stdioServer) Shutdown(context.Context) error {
	return nil
}
