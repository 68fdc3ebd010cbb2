// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the outbound client for the Alpaca REST APIs used
// by the MCP tools.
//
// The primary abstraction is [TradingAdapter], which decouples the tool
// handlers from HTTP. The package ships a resty implementation
// ([NewTradingAdapter]) that talks to the trading API (paper or live) and the
// market data API.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] (e.g. [ErrUnauthorized]
// for 401/403, [ErrNotFound] for 404).
package adapter

import (
	"context"

	"github.com/MKhiriev/alpaca-mcp/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/trading_adapter_mock.go -package=mock

// TradingAdapter is the read-only subset of the Alpaca API exposed as tools.
type TradingAdapter interface {
	// GetAccount returns the account balances and status.
	GetAccount(ctx context.Context) (models.Account, error)

	// GetPositions returns all open positions; an empty slice when flat.
	GetPositions(ctx context.Context) ([]models.Position, error)

	// GetClock returns whether the market is open and the next session times.
	GetClock(ctx context.Context) (models.Clock, error)

	// GetAsset looks up an instrument by symbol. Unknown symbols yield
	// [ErrNotFound].
	GetAsset(ctx context.Context, symbol string) (models.Asset, error)

	// GetLatestQuote returns the latest quote of a stock from the data API.
	GetLatestQuote(ctx context.Context, symbol string) (models.LatestQuote, error)
}
