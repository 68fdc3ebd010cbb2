// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tools

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// withLogging logs every tool call with its duration and outcome.
func withLogging(log *logger.Logger) mcpserver.ToolHandlerMiddleware {
	return func(next mcpserver.ToolHandlerFunc) mcpserver.ToolHandlerFunc {
		return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
			start := time.Now()
			res, err := next(ctx, req)

			event := log.Debug()
			switch {
			case err != nil:
				event = log.Error().Err(err)
			case res != nil && res.IsError:
				event = log.Warn()
			}
			event.
				Str("tool", req.Params.Name).
				Dur("duration", time.Since(start)).
				Bool("is_error", err != nil || (res != nil && res.IsError)).
				Msg("tool call")

			return res, err
		}
	}
}
