// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package clientconfig reads, updates and writes the JSON configuration files
// of MCP clients (Claude Desktop, Cursor).
//
// A configuration document is a JSON object whose "mcpServers" key maps a
// server name to a ServerDescriptor. Merging a descriptor:
//
//  1. creates the parent directory when it is missing;
//  2. copies an existing file verbatim to a timestamped backup next to it;
//  3. loads the document, falling back to an empty one when the file is
//     missing, blank or not a JSON object;
//  4. replaces the named entry as a whole;
//  5. writes the document back with two-space indentation via a temporary
//     file and a rename.
//
// Top-level keys and server entries keep their original order. Values the
// package does not own are carried through as raw JSON.
package clientconfig
