// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// Transport names a way of exposing the tool registry.
type Transport string

const (
	TransportStdio Transport = "stdio"
	TransportHTTP  Transport = "http"
	// TransportSSE is deprecated in favour of TransportHTTP.
	TransportSSE Transport = "sse"
)

// Transports lists the accepted values.
var Transports = []Transport{TransportStdio, TransportHTTP, TransportSSE}

// ParseTransport accepts one of the exact lowercase names in Transports.
// An empty name is stdio.
func ParseTransport(s string) (Transport, error) {
	t := Transport(strings.TrimSpace(s))
	switch t {
	case "":
		return TransportStdio, nil
	case TransportStdio, TransportHTTP, TransportSSE:
		return t, nil
	default:
		return "", fmt.Errorf("%w: %q (expected stdio, http or sse)", ErrUnsupportedTransport, s)
	}
}

// Deprecated reports whether the transport is kept only for compatibility.
func (t Transport) Deprecated() bool {
	return t == TransportSSE
}

// Network reports whether the transport listens on a TCP address.
func (t Transport) Network() bool {
	return t == TransportHTTP || t == TransportSSE
}
