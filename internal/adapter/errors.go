// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrUnauthorized is returned for 401 and 403 responses, usually wrong or
	// mismatched (paper vs live) keys.
	ErrUnauthorized = errors.New("alpaca rejected the API credentials")
	// ErrNotFound is returned for 404 responses.
	ErrNotFound = errors.New("not found")
	// ErrUnprocessable is returned for 422 responses.
	ErrUnprocessable = errors.New("request rejected by alpaca")
	// ErrRateLimited is returned for 429 responses.
	ErrRateLimited = errors.New("alpaca rate limit exceeded")
	// ErrUnexpectedStatus is returned for any other non-2xx response.
	ErrUnexpectedStatus = errors.New("unexpected response status")
	// ErrEmptySymbol is returned when a lookup is attempted without a symbol.
	ErrEmptySymbol = errors.New("symbol must not be empty")
)
