// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the router used by the network transports.
//
// The MCP transport handler is mounted next to a health probe and a version
// endpoint. Request tracing, access logging and panic recovery are applied to
// every route, the MCP streams included.
package http
