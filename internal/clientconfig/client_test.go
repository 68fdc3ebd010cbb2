package clientconfig

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClient(t *testing.T) {
	tests := []struct {
		input   string
		want    Client
		wantErr bool
	}{
		{input: "claude", want: Claude},
		{input: " Cursor ", want: Cursor},
		{input: "CLAUDE", want: Claude},
		{input: "vscode", wantErr: true},
		{input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseClient(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownClient)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestConfigPath(t *testing.T) {
	home := filepath.Join("home", "trader")
	tests := []struct {
		name   string
		client Client
		goos   string
		want   string
	}{
		{name: "claude on macOS", client: Claude, goos: "darwin",
			want: filepath.Join(home, "Library", "Application Support", "Claude", "claude_desktop_config.json")},
		{name: "claude on Windows", client: Claude, goos: "windows",
			want: filepath.Join(home, "AppData", "Roaming", "Claude", "claude_desktop_config.json")},
		{name: "claude on Linux", client: Claude, goos: "linux",
			want: filepath.Join(home, ".config", "claude", "claude_desktop_config.json")},
		{name: "claude elsewhere", client: Claude, goos: "freebsd",
			want: filepath.Join(home, ".config", "claude", "claude_desktop_config.json")},
		{name: "cursor on macOS", client: Cursor, goos: "darwin", want: filepath.Join(home, ".cursor", "mcp.json")},
		{name: "cursor on Windows", client: Cursor, goos: "windows", want: filepath.Join(home, ".cursor", "mcp.json")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ConfigPath(tt.client, tt.goos, home)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ConfigPath(Client("zed"), "linux", home)
	assert.ErrorIs(t, err, ErrUnknownClient)
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "Claude Desktop", Claude.DisplayName())
	assert.Equal(t, "Cursor IDE", Cursor.DisplayName())
}

func TestBackupName(t *testing.T) {
	at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	assert.Equal(t, "cursor_config_backup_20250102_030405.json", BackupName(Cursor, at))
}

func TestBackup_MissingFile(t *testing.T) {
	got, err := Backup(filepath.Join(t.TempDir(), "absent.json"), Claude, time.Now())

	require.NoError(t, err)
	assert.Empty(t, got)
}
