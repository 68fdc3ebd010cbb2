// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tools builds the default MCP tool registry: a small read-only set of
// Alpaca tools served through mcp-go.
package tools

import (
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/alpaca-mcp/internal/adapter"
	"github.com/MKhiriev/alpaca-mcp/internal/config"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// ServerName is the name announced to MCP clients.
const ServerName = "alpaca-trading"

const instructions = "Read-only access to an Alpaca brokerage account: balances, positions, " +
	"market clock, asset details and latest stock quotes."

// NewFactory returns a registry factory that announces version.
func NewFactory(version string) func(config.Alpaca, *logger.Logger) (*mcpserver.MCPServer, error) {
	return func(cfg config.Alpaca, log *logger.Logger) (*mcpserver.MCPServer, error) {
		trading, err := adapter.NewTradingAdapter(cfg, log)
		if err != nil {
			return nil, fmt.Errorf("create trading adapter: %w", err)
		}
		return NewRegistry(trading, version, log), nil
	}
}

// NewRegistry registers every tool backed by trading.
func NewRegistry(trading adapter.TradingAdapter, version string, log *logger.Logger) *mcpserver.MCPServer {
	s := mcpserver.NewMCPServer(ServerName, version,
		mcpserver.WithToolCapabilities(false),
		mcpserver.WithInstructions(instructions),
		mcpserver.WithToolHandlerMiddleware(withLogging(log)),
		mcpserver.WithRecovery(),
	)

	h := &handlers{trading: trading}

	s.AddTool(mcp.NewTool("get_account_info",
		mcp.WithDescription("Get the current account balances, buying power and status."),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.accountInfo)

	s.AddTool(mcp.NewTool("get_positions",
		mcp.WithDescription("List all open positions with quantity, market value and unrealized P/L."),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.positions)

	s.AddTool(mcp.NewTool("get_market_clock",
		mcp.WithDescription("Tell whether the market is open and when it next opens and closes."),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.marketClock)

	s.AddTool(mcp.NewTool("get_asset_info",
		mcp.WithDescription("Look up an asset by symbol: name, exchange, class and tradability."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker symbol, e.g. AAPL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.assetInfo)

	s.AddTool(mcp.NewTool("get_stock_quote",
		mcp.WithDescription("Get the latest bid/ask quote for a stock."),
		mcp.WithString("symbol", mcp.Required(), mcp.Description("Ticker symbol, e.g. AAPL")),
		mcp.WithReadOnlyHintAnnotation(true),
	), h.stockQuote)

	return s
}
