// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// ServersKey is the top-level key holding the server table.
const ServersKey = "mcpServers"

// ServerDescriptor tells a client how to launch one MCP server.
type ServerDescriptor struct {
	Command string            `json:"command"`
	Args    []string          `json:"args"`
	Env     map[string]string `json:"env"`
}

// normalized returns a copy whose nil collections encode as [] and {}.
func (d ServerDescriptor) normalized() ServerDescriptor {
	out := ServerDescriptor{Command: d.Command, Args: []string{}, Env: map[string]string{}}
	out.Args = append(out.Args, d.Args...)
	for k, v := range d.Env {
		out.Env[k] = v
	}
	return out
}

type rawMap = orderedmap.OrderedMap[string, json.RawMessage]

// Document is an order-preserving client configuration. The mcpServers table
// always exists.
type Document struct {
	top     *rawMap
	servers *rawMap
}

// NewDocument returns {"mcpServers": {}}.
func NewDocument() *Document {
	d := &Document{
		top:     orderedmap.New[string, json.RawMessage](),
		servers: orderedmap.New[string, json.RawMessage](),
	}
	d.top.Set(ServersKey, nil)
	return d
}

// ParseDocument decodes data. Blank input yields an empty document.
//
// Content that is not a JSON object yields an empty document together with an
// error wrapping ErrCorruptDocument. A non-object mcpServers value is replaced
// by an empty table and reported with ErrServersNotObject; every other key is
// kept. In both cases the returned document is usable.
func ParseDocument(data []byte) (*Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return NewDocument(), nil
	}
	if !json.Valid(trimmed) {
		return NewDocument(), fmt.Errorf("%w: invalid JSON syntax", ErrCorruptDocument)
	}
	if trimmed[0] != '{' {
		return NewDocument(), fmt.Errorf("%w: top level is %s", ErrCorruptDocument, kindOf(trimmed))
	}

	top := orderedmap.New[string, json.RawMessage]()
	if err := top.UnmarshalJSON(trimmed); err != nil {
		return NewDocument(), fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}

	d := &Document{top: top, servers: orderedmap.New[string, json.RawMessage]()}

	raw, ok := top.Get(ServersKey)
	if !ok {
		top.Set(ServersKey, nil)
		return d, nil
	}

	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		top.Set(ServersKey, nil)
		return d, fmt.Errorf("%w: found %s", ErrServersNotObject, kindOf(raw))
	}
	if err := d.servers.UnmarshalJSON(raw); err != nil {
		top.Set(ServersKey, nil)
		d.servers = orderedmap.New[string, json.RawMessage]()
		return d, fmt.Errorf("%w: %w", ErrServersNotObject, err)
	}
	top.Set(ServersKey, nil)

	return d, nil
}

// Load reads the document at path.
//
// A missing file is an empty document and no error. Unreadable or corrupt
// content also yields an empty document; the returned error then describes
// what was discarded and is meant to be reported as a warning, not acted on.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(), nil
		}
		return NewDocument(), fmt.Errorf("%w: %w", ErrUnreadable, err)
	}
	return ParseDocument(data)
}

// Keys returns the top-level keys in document order.
func (d *Document) Keys() []string {
	return keys(d.top)
}

// ServerNames returns the server names in document order.
func (d *Document) ServerNames() []string {
	return keys(d.servers)
}

// Server decodes the named entry. Entries written by other tools may not
// match ServerDescriptor; those yield an error.
func (d *Document) Server(name string) (ServerDescriptor, bool, error) {
	raw, ok := d.servers.Get(name)
	if !ok {
		return ServerDescriptor{}, false, nil
	}
	var desc ServerDescriptor
	if err := json.Unmarshal(raw, &desc); err != nil {
		return ServerDescriptor{}, true, fmt.Errorf("decode server %q: %w", name, err)
	}
	return desc, true, nil
}

// RawServer returns the named entry exactly as stored.
func (d *Document) RawServer(name string) (json.RawMessage, bool) {
	return d.servers.Get(name)
}

// SetServer stores desc under name, replacing any previous entry as a whole.
// An existing name keeps its position; a new one is appended.
func (d *Document) SetServer(name string, desc ServerDescriptor) error {
	if name == "" {
		return ErrEmptyServerName
	}
	raw, err := encodeValue(desc.normalized())
	if err != nil {
		return fmt.Errorf("encode server %q: %w", name, err)
	}
	d.servers.Set(name, raw)
	return nil
}

// Encode renders the document as two-space indented JSON with a trailing
// newline.
func (d *Document) Encode() ([]byte, error) {
	var compact bytes.Buffer
	if err := d.writeObject(&compact, d.top, true); err != nil {
		return nil, err
	}

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", "  "); err != nil {
		return nil, fmt.Errorf("indent configuration: %w", err)
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}

func (d *Document) writeObject(buf *bytes.Buffer, m *rawMap, root bool) error {
	buf.WriteByte('{')
	for pair, first := m.Oldest(), true; pair != nil; pair = pair.Next() {
		if !first {
			buf.WriteByte(',')
		}
		first = false

		key, err := encodeValue(pair.Key)
		if err != nil {
			return fmt.Errorf("encode key %q: %w", pair.Key, err)
		}
		buf.Write(key)
		buf.WriteByte(':')

		if root && pair.Key == ServersKey {
			if err := d.writeObject(buf, d.servers, false); err != nil {
				return err
			}
			continue
		}
		buf.Write(pair.Value)
	}
	buf.WriteByte('}')
	return nil
}

// encodeValue marshals v without HTML escaping so paths and URLs stay as
// typed.
func encodeValue(v any) (json.RawMessage, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

func keys(m *rawMap) []string {
	out := make([]string, 0, m.Len())
	for pair := m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Key)
	}
	return out
}

func kindOf(raw []byte) string {
	if len(raw) == 0 {
		return "nothing"
	}
	switch raw[0] {
	case '{':
		return "an object"
	case '[':
		return "an array"
	case '"':
		return "a string"
	case 'n':
		return "null"
	case 't', 'f':
		return "a boolean"
	default:
		return "a number"
	}
}
