package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/alpaca-mcp/models"
)

// clearEnv unsets every variable the configuration reads; t.Setenv restores
// them after the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ALPACA_API_KEY", "ALPACA_SECRET_KEY", "ALPACA_PAPER_TRADE",
		"TRADE_API_URL", "TRADE_API_WSS", "DATA_API_URL", "STREAM_DATA_WSS",
		"MCP_CLIENT", "DEBUG",
		"ALPACA_MCP_TRANSPORT", "ALPACA_MCP_HOST", "ALPACA_MCP_PORT", "ALPACA_MCP_ENV_FILE",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func execute(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	root := NewRootCommand(models.NewAppBuildInfo("v1.2.3", "2026-03-01", "abc123"))

	var out, errOut bytes.Buffer
	root.SetArgs(args)
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)

	code = run(context.Background(), root)
	return code, out.String(), errOut.String()
}

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "", "--version")

	assert.Equal(t, 0, code)
	assert.Contains(t, out, "Build version: v1.2.3")
	assert.Contains(t, out, "Build commit: abc123")
}

func TestUnknownCommand(t *testing.T) {
	code, _, errOut := execute(t, "", "deploy")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command")
}

// ── serve ───────────────────────────────────────────────────────────────────

func TestServe_MissingCredentials(t *testing.T) {
	clearEnv(t)
	missing := filepath.Join(t.TempDir(), "absent.env")

	code, out, errOut := execute(t, "", "serve", "--env-file", missing)

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "alpaca-mcp init")
}

func TestServe_UnsupportedTransport(t *testing.T) {
	clearEnv(t)
	envFile := writeEnvFile(t, "ALPACA_API_KEY = \"PK\"\nALPACA_SECRET_KEY = \"SK\"\n")

	for _, transport := range []string{"websocket", "HTTP"} {
		code, _, errOut := execute(t, "", "serve", "--env-file", envFile, "--transport", transport)

		assert.Equal(t, 1, code, transport)
		assert.Contains(t, errOut, "unsupported transport", transport)
	}
}

func TestServe_InvalidPort(t *testing.T) {
	clearEnv(t)

	code, _, errOut := execute(t, "", "serve", "--port", "70000")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid server configuration")
}

func TestServe_StdioListsTools(t *testing.T) {
	clearEnv(t)
	envFile := writeEnvFile(t, "ALPACA_API_KEY = \"PKTEST\"\nALPACA_SECRET_KEY = \"SECRET\"\nALPACA_PAPER_TRADE = True\n")
	stdin := `{"jsonrpc":"2.0","id":7,"method":"tools/list"}` + "\n"

	code, out, errOut := execute(t, stdin, "serve", "--env-file", envFile)

	assert.Equal(t, 0, code)
	assert.Contains(t, out, `"id":7`)
	assert.Contains(t, out, "get_account_info")
	assert.Contains(t, out, "get_stock_quote")
	assert.NotContains(t, out, "Build version")
	assert.NotContains(t, out, "Starting Alpaca MCP Server")
	assert.Contains(t, errOut, "Starting Alpaca MCP Server (transport=stdio)")
	assert.NotContains(t, errOut, "available at")
}

func TestServe_QuietClientSkipsBanner(t *testing.T) {
	clearEnv(t)
	t.Setenv("MCP_CLIENT", "pycharm")
	envFile := writeEnvFile(t, "ALPACA_API_KEY = \"PKTEST\"\nALPACA_SECRET_KEY = \"SECRET\"\n")
	stdin := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n"

	code, _, errOut := execute(t, stdin, "serve", "--env-file", envFile)

	assert.Equal(t, 0, code)
	assert.NotContains(t, errOut, "Starting Alpaca MCP Server")
}

// ── status ──────────────────────────────────────────────────────────────────

func TestStatus(t *testing.T) {
	clearEnv(t)

	t.Run("configured", func(t *testing.T) {
		envFile := writeEnvFile(t, "ALPACA_API_KEY = \"PKABCDEFGH1234\"\nALPACA_SECRET_KEY = \"TOPSECRETVALUE\"\n"+
			"ALPACA_PAPER_TRADE = False\nTRADE_API_URL = None\nDATA_API_URL = https://data.example.test\n")

		code, out, _ := execute(t, "", "status", "--env-file", envFile)

		assert.Equal(t, 0, code)
		assert.Contains(t, out, "Alpaca MCP Server Status")
		assert.Contains(t, out, envFile+" (found)")
		assert.Contains(t, out, "configured")
		assert.Contains(t, out, "live")
		assert.Contains(t, out, "https://data.example.test")
		assert.NotContains(t, out, "PKABCDEFGH1234")
		assert.NotContains(t, out, "TOPSECRETVALUE")
	})

	t.Run("not set up", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), ".env")

		code, out, _ := execute(t, "", "status", "--env-file", missing, "--transport", "http")

		assert.Equal(t, 0, code)
		assert.Contains(t, out, "(missing)")
		assert.Contains(t, out, "run 'alpaca-mcp init'")
		assert.Contains(t, out, "paper")
		assert.Contains(t, out, "127.0.0.1:8000")
	})
}

// ── init ────────────────────────────────────────────────────────────────────

func TestInit_NativeConfiguresCursor(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("home directory comes from USERPROFILE")
	}
	clearEnv(t)
	home := t.TempDir()
	project := t.TempDir()
	t.Setenv("HOME", home)

	code, out, _ := execute(t, "PKKEY\nSECRET\n\n", "init", "--native", "--client", "cursor", "--project-dir", project)

	require.Equal(t, 0, code, out)
	assert.Contains(t, out, "Cursor IDE automatically configured!")
	assert.FileExists(t, filepath.Join(project, ".env"))

	config, err := os.ReadFile(filepath.Join(home, ".cursor", "mcp.json"))
	require.NoError(t, err)
	assert.Contains(t, string(config), `"alpaca"`)
	assert.Contains(t, string(config), `"serve"`)
	assert.Contains(t, string(config), `"PKKEY"`)
}

func TestInit_ClosedInputFails(t *testing.T) {
	clearEnv(t)
	t.Setenv("HOME", t.TempDir())

	code, out, errOut := execute(t, "", "init", "--native", "--client", "claude", "--project-dir", t.TempDir())

	assert.Equal(t, 1, code)
	assert.Contains(t, out, "Installation cancelled by user")
	assert.NotContains(t, errOut, "Error:")
}

func TestInit_UnknownClient(t *testing.T) {
	code, _, errOut := execute(t, "", "init", "--client", "vscode")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown MCP client")
}
