// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MKhiriev/alpaca-mcp/internal/adapter"
)

type handlers struct {
	trading adapter.TradingAdapter
}

func (h *handlers) accountInfo(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	account, err := h.trading.GetAccount(ctx)
	if err != nil {
		return toolError("fetch account", err), nil
	}

	var b strings.Builder
	b.WriteString("Account Information:\n")
	b.WriteString("--------------------\n")
	fmt.Fprintf(&b, "Account ID: %s\n", account.ID)
	fmt.Fprintf(&b, "Account Number: %s\n", account.AccountNumber)
	fmt.Fprintf(&b, "Status: %s\n", account.Status)
	fmt.Fprintf(&b, "Currency: %s\n", account.Currency)
	fmt.Fprintf(&b, "Cash: %s\n", account.Cash)
	fmt.Fprintf(&b, "Buying Power: %s\n", account.BuyingPower)
	fmt.Fprintf(&b, "Portfolio Value: %s\n", account.PortfolioValue)
	fmt.Fprintf(&b, "Equity: %s\n", account.Equity)
	fmt.Fprintf(&b, "Long Market Value: %s\n", account.LongMarketValue)
	fmt.Fprintf(&b, "Short Market Value: %s\n", account.ShortMarketValue)
	fmt.Fprintf(&b, "Pattern Day Trader: %s\n", yesNo(account.PatternDayTrader))
	fmt.Fprintf(&b, "Day Trades Remaining: %d\n", max(0, 3-account.DaytradeCount))
	fmt.Fprintf(&b, "Trading Blocked: %s\n", yesNo(account.TradingBlocked))

	return mcp.NewToolResultText(b.String()), nil
}

func (h *handlers) positions(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	positions, err := h.trading.GetPositions(ctx)
	if err != nil {
		return toolError("fetch positions", err), nil
	}
	if len(positions) == 0 {
		return mcp.NewToolResultText("No open positions found."), nil
	}

	var b strings.Builder
	b.WriteString("Current Positions:\n")
	b.WriteString("-------------------\n")
	for _, p := range positions {
		fmt.Fprintf(&b, "Symbol: %s\n", p.Symbol)
		fmt.Fprintf(&b, "Quantity: %s shares (%s)\n", p.Qty, p.Side)
		fmt.Fprintf(&b, "Market Value: %s\n", p.MarketValue)
		fmt.Fprintf(&b, "Average Entry Price: %s\n", p.AvgEntryPrice)
		fmt.Fprintf(&b, "Current Price: %s\n", p.CurrentPrice)
		fmt.Fprintf(&b, "Unrealized P/L: %s (%s)\n", p.UnrealizedPL, p.UnrealizedPLPC)
		b.WriteString("-------------------\n")
	}

	return mcp.NewToolResultText(b.String()), nil
}

func (h *handlers) marketClock(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	clock, err := h.trading.GetClock(ctx)
	if err != nil {
		return toolError("fetch market clock", err), nil
	}

	var b strings.Builder
	b.WriteString("Market Status:\n")
	b.WriteString("-------------\n")
	fmt.Fprintf(&b, "Current Time: %s\n", clock.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "Is Open: %s\n", yesNo(clock.IsOpen))
	fmt.Fprintf(&b, "Next Open: %s\n", clock.NextOpen.Format(time.RFC3339))
	fmt.Fprintf(&b, "Next Close: %s\n", clock.NextClose.Format(time.RFC3339))

	return mcp.NewToolResultText(b.String()), nil
}

func (h *handlers) assetInfo(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	asset, err := h.trading.GetAsset(ctx, symbol)
	if err != nil {
		return toolError("fetch asset "+strings.ToUpper(symbol), err), nil
	}

	var b strings.Builder
	b.WriteString("Asset Information:\n")
	b.WriteString("------------------\n")
	fmt.Fprintf(&b, "Symbol: %s\n", asset.Symbol)
	fmt.Fprintf(&b, "Name: %s\n", asset.Name)
	fmt.Fprintf(&b, "Exchange: %s\n", asset.Exchange)
	fmt.Fprintf(&b, "Class: %s\n", asset.Class)
	fmt.Fprintf(&b, "Status: %s\n", asset.Status)
	fmt.Fprintf(&b, "Tradable: %s\n", yesNo(asset.Tradable))
	fmt.Fprintf(&b, "Marginable: %s\n", yesNo(asset.Marginable))
	fmt.Fprintf(&b, "Shortable: %s\n", yesNo(asset.Shortable))
	fmt.Fprintf(&b, "Easy to Borrow: %s\n", yesNo(asset.EasyToBorrow))
	fmt.Fprintf(&b, "Fractionable: %s\n", yesNo(asset.Fractionable))

	return mcp.NewToolResultText(b.String()), nil
}

func (h *handlers) stockQuote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	symbol, err := req.RequireString("symbol")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	latest, err := h.trading.GetLatestQuote(ctx, symbol)
	if err != nil {
		return toolError("fetch quote for "+strings.ToUpper(symbol), err), nil
	}

	q := latest.Quote
	var b strings.Builder
	fmt.Fprintf(&b, "Latest Quote for %s:\n", latest.Symbol)
	b.WriteString("------------------------\n")
	fmt.Fprintf(&b, "Ask Price: $%.2f\n", q.AskPrice)
	fmt.Fprintf(&b, "Bid Price: $%.2f\n", q.BidPrice)
	fmt.Fprintf(&b, "Ask Size: %g\n", q.AskSize)
	fmt.Fprintf(&b, "Bid Size: %g\n", q.BidSize)
	fmt.Fprintf(&b, "Timestamp: %s\n", q.Timestamp.Format(time.RFC3339))

	return mcp.NewToolResultText(b.String()), nil
}

// toolError reports a failed upstream call inside the result so the model
// sees it; a hint is added for credential problems.
func toolError(action string, err error) *mcp.CallToolResult {
	if errors.Is(err, adapter.ErrUnauthorized) {
		err = fmt.Errorf("%w (check ALPACA_API_KEY, ALPACA_SECRET_KEY and ALPACA_PAPER_TRADE)", err)
	}
	return mcp.NewToolResultErrorFromErr("failed to "+action, err)
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
