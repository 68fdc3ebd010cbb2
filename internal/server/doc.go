// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the MCP tool registry over the configured transport.
//
// Start checks the Alpaca credentials first, then resolves the transport,
// asks the injected RegistryFactory for the registry and serves it until the
// client disconnects or the process receives SIGINT or SIGTERM. Nothing is
// constructed or opened when the credentials are missing.
package server
