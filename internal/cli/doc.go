// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package cli wires the alpaca-mcp commands:
//
//	alpaca-mcp init     interactive installer
//	alpaca-mcp serve    run the MCP server over stdio, http or sse
//	alpaca-mcp status   print a masked configuration summary
package cli
