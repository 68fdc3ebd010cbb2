// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Account is the trading account as returned by GET /v2/account.
// Monetary amounts are decimal strings, exactly as Alpaca sends them.
type Account struct {
	ID               string `json:"id"`
	AccountNumber    string `json:"account_number"`
	Status           string `json:"status"`
	Currency         string `json:"currency"`
	Cash             string `json:"cash"`
	BuyingPower      string `json:"buying_power"`
	PortfolioValue   string `json:"portfolio_value"`
	Equity           string `json:"equity"`
	LongMarketValue  string `json:"long_market_value"`
	ShortMarketValue string `json:"short_market_value"`
	PatternDayTrader bool   `json:"pattern_day_trader"`
	TradingBlocked   bool   `json:"trading_blocked"`
	DaytradeCount    int    `json:"daytrade_count"`
}

// Position is one open position from GET /v2/positions.
type Position struct {
	Symbol         string `json:"symbol"`
	AssetClass     string `json:"asset_class"`
	Side           string `json:"side"`
	Qty            string `json:"qty"`
	AvgEntryPrice  string `json:"avg_entry_price"`
	CurrentPrice   string `json:"current_price"`
	MarketValue    string `json:"market_value"`
	UnrealizedPL   string `json:"unrealized_pl"`
	UnrealizedPLPC string `json:"unrealized_plpc"`
}

// Clock is the market clock from GET /v2/clock.
type Clock struct {
	Timestamp time.Time `json:"timestamp"`
	IsOpen    bool      `json:"is_open"`
	NextOpen  time.Time `json:"next_open"`
	NextClose time.Time `json:"next_close"`
}

// Asset describes a tradable instrument from GET /v2/assets/{symbol}.
type Asset struct {
	ID           string `json:"id"`
	Symbol       string `json:"symbol"`
	Name         string `json:"name"`
	Exchange     string `json:"exchange"`
	Class        string `json:"class"`
	Status       string `json:"status"`
	Tradable     bool   `json:"tradable"`
	Marginable   bool   `json:"marginable"`
	Shortable    bool   `json:"shortable"`
	EasyToBorrow bool   `json:"easy_to_borrow"`
	Fractionable bool   `json:"fractionable"`
}

// Quote is the latest NBBO quote for a stock.
type Quote struct {
	AskPrice    float64   `json:"ap"`
	AskSize     float64   `json:"as"`
	AskExchange string    `json:"ax"`
	BidPrice    float64   `json:"bp"`
	BidSize     float64   `json:"bs"`
	BidExchange string    `json:"bx"`
	Timestamp   time.Time `json:"t"`
}

// LatestQuote wraps the data API response of
// GET /v2/stocks/{symbol}/quotes/latest.
type LatestQuote struct {
	Symbol string `json:"symbol"`
	Quote  Quote  `json:"quote"`
}
