// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// Result describes a completed merge.
type Result struct {
	// Path is the configuration file that was written.
	Path string
	// BackupPath is the copy of the previous file, empty when there was no
	// file or the copy failed.
	BackupPath string
	// BackupErr is the reason the backup was not made, if any.
	BackupErr error
	// Recovered describes content that was discarded while loading.
	Recovered error
	// Replaced is true when an entry with the same name existed before.
	Replaced bool
}

// Merger inserts or replaces server descriptors in client configuration files.
type Merger struct {
	log *logger.Logger
	now func() time.Time
}

// MergerOption configures a Merger.
type MergerOption func(*Merger)

// WithClock sets the clock used to name backups.
func WithClock(now func() time.Time) MergerOption {
	return func(m *Merger) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMerger returns a Merger that timestamps backups with the wall clock
// unless WithClock says otherwise.
func NewMerger(log *logger.Logger, opts ...MergerOption) *Merger {
	m := &Merger{log: log, now: time.Now}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Merge stores desc under serverName in the file at path. Backup problems and
// discarded content are logged and reported in Result; only failures to
// create the directory, encode or write the document are returned as errors.
func (m *Merger) Merge(path string, client Client, serverName string, desc ServerDescriptor) (Result, error) {
	res := Result{Path: path}
	log := m.log.With().Str("path", path).Str("client", string(client)).Logger()

	if serverName == "" {
		return res, ErrEmptyServerName
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return res, fmt.Errorf("create config directory: %w", err)
	}

	backup, err := Backup(path, client, m.now())
	if err != nil {
		log.Warn().Err(err).Msg("could not back up configuration")
		res.BackupErr = err
	} else if backup != "" {
		log.Debug().Str("backup", backup).Msg("configuration backed up")
		res.BackupPath = backup
	}

	doc, recovered := Load(path)
	if recovered != nil {
		log.Warn().Err(recovered).Msg("discarding unreadable configuration content")
		res.Recovered = recovered
	}

	_, res.Replaced = doc.RawServer(serverName)
	if err := doc.SetServer(serverName, desc); err != nil {
		return res, err
	}

	data, err := doc.Encode()
	if err != nil {
		return res, fmt.Errorf("encode configuration: %w", err)
	}
	if err := writeFileAtomic(path, data); err != nil {
		return res, fmt.Errorf("write configuration: %w", err)
	}

	log.Info().Str("server", serverName).Bool("replaced", res.Replaced).Msg("configuration updated")
	return res, nil
}
