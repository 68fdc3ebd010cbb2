// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package clientconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const (
	backupTimeLayout = "20060102_150405"
	maxBackupSuffix  = 100
)

// BackupName returns the backup file name for client at t.
func BackupName(client Client, t time.Time) string {
	return fmt.Sprintf("%s_config_backup_%s.json", client, t.Format(backupTimeLayout))
}

// Backup copies the file at path byte for byte into the same directory under
// BackupName. A name already taken within the same second gets a _N suffix.
// It returns "" and no error when path does not exist.
func Backup(path string, client Client, now time.Time) (string, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("read %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", path, err)
	}

	dir := filepath.Dir(path)
	base := BackupName(client, now)
	ext := filepath.Ext(base)
	stem := base[:len(base)-len(ext)]

	for i := 0; i <= maxBackupSuffix; i++ {
		name := base
		if i > 0 {
			name = fmt.Sprintf("%s_%d%s", stem, i, ext)
		}
		target := filepath.Join(dir, name)

		f, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, info.Mode().Perm())
		if errors.Is(err, fs.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create backup %s: %w", target, err)
		}

		if _, err := f.Write(src); err != nil {
			f.Close()
			os.Remove(target)
			return "", fmt.Errorf("write backup %s: %w", target, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(target)
			return "", fmt.Errorf("close backup %s: %w", target, err)
		}
		_ = os.Chtimes(target, info.ModTime(), info.ModTime())
		return target, nil
	}

	return "", fmt.Errorf("no free backup name for %s in %s", base, dir)
}
