// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package credentials models the Alpaca credential record and writes it to
// the key/value credentials file (.env) consumed by the server.
//
// The file uses the KEY = value layout understood by dotenv parsers. Boolean
// settings are written as True/False and unset endpoints as the literal None,
// both of which are normalised back by the config package when read.
package credentials
