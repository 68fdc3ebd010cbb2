// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/alpaca-mcp/internal/config"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/models"
)

const shutdownTimeout = 5 * time.Second

// RegistryFactory builds the MCP server holding the tools. It is called once,
// after the credentials have been checked.
type RegistryFactory func(cfg config.Alpaca, log *logger.Logger) (*mcpserver.MCPServer, error)

// Options carries what Start needs besides the configuration.
type Options struct {
	Factory   RegistryFactory
	BuildInfo models.AppBuildInfo

	// Stdin and Stdout default to the process streams.
	Stdin  io.Reader
	Stdout io.Writer

	// Banner receives the startup line; nil keeps startup silent.
	Banner io.Writer
}

// Start validates cfg, builds the registry and serves it over the configured
// transport until the client disconnects or SIGINT/SIGTERM arrives. A stop
// requested through a signal or ctx returns nil.
//
// Missing credentials yield config.ErrMissingCredentials and an unknown
// transport yields config.ErrUnsupportedTransport; in both cases the factory
// is never called and no listener is opened.
func Start(ctx context.Context, cfg *config.StructuredConfig, opts Options, log *logger.Logger) error {
	if err := cfg.Alpaca.Validate(); err != nil {
		return err
	}

	transport, err := config.ParseTransport(string(cfg.Server.Transport))
	if err != nil {
		return err
	}
	if transport.Deprecated() {
		log.Warn().Str("transport", string(transport)).
			Msgf("the %s transport is deprecated, use %s instead", transport, config.TransportHTTP)
	}

	if opts.Factory == nil {
		return ErrNoFactory
	}
	registry, err := opts.Factory(cfg.Alpaca, log)
	if err != nil {
		return fmt.Errorf("build tool registry: %w", err)
	}
	if registry == nil {
		return ErrRegistryMissing
	}

	srv := NewServer(registry, transport, cfg.Server, opts, log)
	printBanner(opts.Banner, transport, cfg.Server)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Run(ctx, srv, log)
}

// NewServer wraps registry in the server for transport.
func NewServer(registry *mcpserver.MCPServer, transport config.Transport, cfg config.Server,
	opts Options, log *logger.Logger) Server {
	if transport.Network() {
		return newHTTPServer(registry, transport, cfg, opts.BuildInfo, log)
	}

	in, out := opts.Stdin, opts.Stdout
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	return newStdioServer(registry, in, out, log)
}

// Run serves srv until it stops on its own or ctx is done, then shuts it
// down with a bounded grace period.
func Run(ctx context.Context, srv Server, log *logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.RunServer(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("serve: %w", err)
		}
		log.Info().Msg("client disconnected")
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("stop requested, shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
	defer cancel()

	shutdownErr := srv.Shutdown(shutdownCtx)

	var runErr error
	select {
	case runErr = <-errCh:
	case <-shutdownCtx.Done():
		runErr = shutdownCtx.Err()
	}

	if err := errors.Join(shutdownErr, runErr); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info().Msg("server shut down gracefully")
	return nil
}

func printBanner(w io.Writer, transport config.Transport, cfg config.Server) {
	if w == nil {
		return
	}
	fmt.Fprintf(w, "Starting Alpaca MCP Server (transport=%s)\n", transport)
	if transport.Network() {
		fmt.Fprintf(w, "   Server will be available at: %s\n", cfg.BaseURL())
	}
}
