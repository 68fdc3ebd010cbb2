// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the alpaca-mcp server.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags
//  2. Process environment variables
//  3. The credentials file (.env, path from ALPACA_MCP_ENV_FILE or --env-file)
//  4. Built-in defaults
//
// The credentials file is parsed with godotenv and decoded through the same
// struct tags as the process environment. The literal None written by the
// installer for unset endpoints is treated as empty in every source.
//
// The main entry point is [GetStructuredConfig]. The result is an explicit
// value handed to the server; the process environment is never modified.
package config
