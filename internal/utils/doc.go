// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the HTTP transport: trace id
// generation and JSON responses.
package utils
