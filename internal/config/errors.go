// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

var (
	// ErrMissingCredentials indicates that ALPACA_API_KEY or
	// ALPACA_SECRET_KEY is not set. The server refuses to start.
	ErrMissingCredentials = errors.New("alpaca API credentials not found: run 'alpaca-mcp init' to configure your API keys")

	// ErrUnsupportedTransport indicates a transport name other than stdio,
	// http or sse.
	ErrUnsupportedTransport = errors.New("unsupported transport")

	// ErrInvalidServerConfigs indicates invalid listen settings
	// (for example, a port outside 1-65535).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
