// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/alpaca-mcp/internal/config"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/models"
)

// Vendor endpoints used when the configuration leaves them unset.
const (
	PaperTradeURL = "https://paper-api.alpaca.markets"
	LiveTradeURL  = "https://api.alpaca.markets"
	DataURL       = "https://data.alpaca.markets"
)

const (
	headerKeyID     = "APCA-API-KEY-ID"
	headerSecretKey = "APCA-API-SECRET-KEY"

	defaultTimeout = 15 * time.Second
)

type tradingAdapter struct {
	trade *resty.Client
	data  *resty.Client

	logger *logger.Logger
}

// NewTradingAdapter builds a [TradingAdapter] from the Alpaca settings.
// The trading base URL is TRADE_API_URL when set, otherwise the paper or
// live endpoint per ALPACA_PAPER_TRADE. The data base URL is DATA_API_URL or
// the vendor default.
func NewTradingAdapter(cfg config.Alpaca, log *logger.Logger) (TradingAdapter, error) {
	tradeURL := cfg.TradeAPIURL
	if tradeURL == "" {
		tradeURL = LiveTradeURL
		if cfg.IsPaper() {
			tradeURL = PaperTradeURL
		}
	}
	tradeURL, err := normalizeBaseURL(tradeURL)
	if err != nil {
		return nil, fmt.Errorf("invalid trade api url: %w", err)
	}

	dataURL := cfg.DataAPIURL
	if dataURL == "" {
		dataURL = DataURL
	}
	dataURL, err = normalizeBaseURL(dataURL)
	if err != nil {
		return nil, fmt.Errorf("invalid data api url: %w", err)
	}

	return &tradingAdapter{
		trade:  newClient(tradeURL, cfg),
		data:   newClient(dataURL, cfg),
		logger: log,
	}, nil
}

func newClient(baseURL string, cfg config.Alpaca) *resty.Client {
	return resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultTimeout).
		SetHeader(headerKeyID, cfg.APIKey).
		SetHeader(headerSecretKey, cfg.SecretKey).
		SetHeader("Accept", "application/json")
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// GetAccount implements [TradingAdapter].
func (a *tradingAdapter) GetAccount(ctx context.Context) (models.Account, error) {
	var account models.Account
	if err := a.get(ctx, a.trade, "/v2/account", &account); err != nil {
		return models.Account{}, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// GetPositions implements [TradingAdapter].
func (a *tradingAdapter) GetPositions(ctx context.Context) ([]models.Position, error) {
	positions := []models.Position{}
	if err := a.get(ctx, a.trade, "/v2/positions", &positions); err != nil {
		return nil, fmt.Errorf("get positions: %w", err)
	}
	return positions, nil
}

// GetClock implements [TradingAdapter].
func (a *tradingAdapter) GetClock(ctx context.Context) (models.Clock, error) {
	var clock models.Clock
	if err := a.get(ctx, a.trade, "/v2/clock", &clock); err != nil {
		return models.Clock{}, fmt.Errorf("get clock: %w", err)
	}
	return clock, nil
}

// GetAsset implements [TradingAdapter].
func (a *tradingAdapter) GetAsset(ctx context.Context, symbol string) (models.Asset, error) {
	symbol, err := cleanSymbol(symbol)
	if err != nil {
		return models.Asset{}, err
	}

	var asset models.Asset
	if err := a.get(ctx, a.trade, "/v2/assets/"+url.PathEscape(symbol), &asset); err != nil {
		return models.Asset{}, fmt.Errorf("get asset %s: %w", symbol, err)
	}
	return asset, nil
}

// GetLatestQuote implements [TradingAdapter].
func (a *tradingAdapter) GetLatestQuote(ctx context.Context, symbol string) (models.LatestQuote, error) {
	symbol, err := cleanSymbol(symbol)
	if err != nil {
		return models.LatestQuote{}, err
	}

	var quote models.LatestQuote
	path := "/v2/stocks/" + url.PathEscape(symbol) + "/quotes/latest"
	if err := a.get(ctx, a.data, path, &quote); err != nil {
		return models.LatestQuote{}, fmt.Errorf("get latest quote %s: %w", symbol, err)
	}
	if quote.Symbol == "" {
		quote.Symbol = symbol
	}
	return quote, nil
}

func (a *tradingAdapter) get(ctx context.Context, client *resty.Client, path string, out any) error {
	resp, err := client.R().
		SetContext(ctx).
		Get(path)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}

	a.logger.Debug().
		Str("path", path).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("alpaca request")

	if err = mapHTTPError(resp); err != nil {
		return err
	}

	if err = json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

func cleanSymbol(symbol string) (string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return "", ErrEmptySymbol
	}
	return symbol, nil
}
