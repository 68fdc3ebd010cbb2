// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package installer implements the interactive `alpaca-mcp init` flow.
//
// The flow runs eight sequential steps: prerequisites, virtual environment,
// dependencies, client selection, API keys, credentials file, client
// configuration and final instructions. External processes go through a
// CommandRunner and operator input through a Prompter so the whole flow can
// be driven from tests.
//
// In native mode the Python steps are skipped and the client is pointed at
// the running alpaca-mcp binary instead of a Python interpreter.
package installer
