// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains operator-facing message strings shared by the
// installer and the command-line entry points.
package app

const (
	// MsgInstallCancelled is printed when the operator interrupts `init`.
	MsgInstallCancelled = "Installation cancelled by user"

	// MsgInstallFailed prefixes a fatal installer error.
	MsgInstallFailed = "Installation failed"

	// MsgInstallComplete closes a successful installer run.
	MsgInstallComplete = "Alpaca MCP Server installation completed successfully!"

	// MsgKeysEmpty is printed after writing a credentials file without keys.
	MsgKeysEmpty = "API keys are empty. Please edit %s to add your credentials."

	// MsgSkipAutoConfig is printed when the client configuration is left
	// untouched because no keys were entered.
	MsgSkipAutoConfig = "Skipping %s automatic update (API keys not provided)"

	// MsgRerunWithKeys suggests how to get automatic configuration.
	MsgRerunWithKeys = "You can run the installer again with API keys to auto-configure"

	// MsgLiveTradingWarning is shown before confirming live trading.
	MsgLiveTradingWarning = "WARNING: Live trading mode selected - this will use real money!"

	// MsgDashboardURL is where the operator finds API keys.
	MsgDashboardURL = "https://app.alpaca.markets/paper/dashboard/overview"

	// MsgSupportURL is the project's support page.
	MsgSupportURL = "https://github.com/alpacahq/alpaca-mcp-server"

	// MsgServerStopped is logged when `serve` returns after a stop request or
	// client disconnect.
	MsgServerStopped = "server stopped"
)
