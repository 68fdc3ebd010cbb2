package installer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/alpaca-mcp/internal/clientconfig"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/internal/mock"
)

type fixture struct {
	project string
	home    string
	runner  *mock.MockCommandRunner
	prompt  *mock.MockPrompter
	out     *bytes.Buffer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		project: t.TempDir(),
		home:    t.TempDir(),
		runner:  mock.NewMockCommandRunner(ctrl),
		prompt:  mock.NewMockPrompter(ctrl),
		out:     &bytes.Buffer{},
	}
	require.NoError(t, os.WriteFile(filepath.Join(f.project, requirementsFile), []byte("mcp\n"), 0o644))
	return f
}

func (f *fixture) installer(opts Options) *Installer {
	if opts.ProjectDir == "" {
		opts.ProjectDir = f.project
	}
	if opts.Home == "" {
		opts.Home = f.home
	}
	opts.GOOS = "linux"
	return New(opts, f.runner, f.prompt, f.out, logger.Nop())
}

func (f *fixture) venv() string       { return filepath.Join(f.project, venvDir) }
func (f *fixture) venvPython() string { return venvPython(f.venv(), "linux") }

// expectPythonSetup registers a successful run of steps 1 to 3.
func (f *fixture) expectPythonSetup() {
	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("Python 3.11.4", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, "python3", "-m", "venv", f.venv()).Return("", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, f.venvPython(), "-m", "pip", "install", "--upgrade", "pip").Return("", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, f.venvPython(), "-m", "pip", "install", "-r",
			filepath.Join(f.project, requirementsFile)).Return("Successfully installed", nil),
	)
}

// expectAnswers registers the prompts of steps 4 and 5. An empty client
// means the client was passed in Options.
func (f *fixture) expectAnswers(client, key, secret string, paper ...string) {
	var calls []*gomock.Call
	if client != "" {
		calls = append(calls, f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(client, nil))
	}
	calls = append(calls,
		f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(key, nil),
		f.prompt.EXPECT().AskSecret(gomock.Any(), gomock.Any()).Return(secret, nil),
	)
	for _, answer := range paper {
		calls = append(calls, f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return(answer, nil))
	}
	for i := 1; i < len(calls); i++ {
		calls[i].After(calls[i-1])
	}
}

func readServers(t *testing.T, path string) map[string]clientconfig.ServerDescriptor {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		MCPServers map[string]clientconfig.ServerDescriptor `json:"mcpServers"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	return doc.MCPServers
}

// ── full runs ───────────────────────────────────────────────────────────────

func TestRun_PythonModeConfiguresClient(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("cursor", "PKKEY", "SECRET", "")

	report, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "python3", report.Python)
	assert.Equal(t, clientconfig.Cursor, report.Client)
	assert.True(t, report.KeysProvided)
	assert.True(t, report.Configured)
	assert.NoError(t, report.MergeErr)

	env, err := os.ReadFile(report.EnvFile)
	require.NoError(t, err)
	assert.Contains(t, string(env), `ALPACA_API_KEY = "PKKEY"`)
	assert.Contains(t, string(env), `ALPACA_SECRET_KEY = "SECRET"`)
	assert.Contains(t, string(env), "ALPACA_PAPER_TRADE = True")

	info, err := os.Stat(report.EnvFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	configPath := filepath.Join(f.home, ".cursor", "mcp.json")
	assert.Equal(t, configPath, report.ConfigPath)
	servers := readServers(t, configPath)
	require.Contains(t, servers, ServerName)
	assert.Equal(t, clientconfig.ServerDescriptor{
		Command: f.venvPython(),
		Args:    []string{filepath.Join(f.project, serverScript)},
		Env:     map[string]string{"ALPACA_API_KEY": "PKKEY", "ALPACA_SECRET_KEY": "SECRET"},
	}, servers[ServerName])

	out := f.out.String()
	assert.Contains(t, out, "Step 8: Setup Complete - Next Steps")
	assert.Contains(t, out, "Cursor IDE automatically configured!")
	assert.Contains(t, out, "source "+filepath.Join(f.venv(), "bin", "activate"))
}

func TestRun_KeepsOtherServersAndBacksUp(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("", "PKKEY", "SECRET", "y")

	configPath := filepath.Join(f.home, ".config", "claude", "claude_desktop_config.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	original := []byte(`{"theme":"dark","mcpServers":{"other":{"command":"x","args":[]}}}`)
	require.NoError(t, os.WriteFile(configPath, original, 0o644))

	report, err := f.installer(Options{Client: clientconfig.Claude}).Run(context.Background())
	require.NoError(t, err)

	require.True(t, report.Configured)
	require.NotEmpty(t, report.Merge.BackupPath)
	backup, err := os.ReadFile(report.Merge.BackupPath)
	require.NoError(t, err)
	assert.Equal(t, original, backup)

	servers := readServers(t, configPath)
	assert.Contains(t, servers, "other")
	assert.Contains(t, servers, ServerName)
	assert.Contains(t, f.out.String(), "Configuration backup was created automatically")
}

func TestRun_BackupFailureStillConfigures(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("", "PKKEY", "SECRET", "")

	now := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	configDir := filepath.Join(f.home, ".config", "claude")
	configPath := filepath.Join(configDir, "claude_desktop_config.json")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(configPath, []byte(`{"mcpServers":{"old":{"command":"o"}}}`), 0o644))

	base := clientconfig.BackupName(clientconfig.Claude, now)
	stem := strings.TrimSuffix(base, ".json")
	require.NoError(t, os.WriteFile(filepath.Join(configDir, base), []byte("taken"), 0o644))
	for i := 1; i <= 100; i++ {
		name := fmt.Sprintf("%s_%d.json", stem, i)
		require.NoError(t, os.WriteFile(filepath.Join(configDir, name), []byte("taken"), 0o644))
	}

	report, err := f.installer(Options{Client: clientconfig.Claude, Now: func() time.Time { return now }}).Run(context.Background())
	require.NoError(t, err)

	assert.True(t, report.Configured)
	assert.NoError(t, report.MergeErr)
	assert.Error(t, report.Merge.BackupErr)
	assert.Empty(t, report.Merge.BackupPath)
	assert.Contains(t, f.out.String(), "[warn] Could not create backup")

	servers := readServers(t, configPath)
	assert.Contains(t, servers, "old")
	assert.Contains(t, servers, ServerName)
}

func TestRun_ReplacesExistingVirtualEnv(t *testing.T) {
	f := newFixture(t)
	marker := filepath.Join(f.venv(), "stale")
	require.NoError(t, os.MkdirAll(f.venv(), 0o755))
	require.NoError(t, os.WriteFile(marker, nil, 0o644))

	f.expectPythonSetup()
	f.expectAnswers("claude", "", "", "")

	_, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.NoFileExists(t, marker)
	assert.Contains(t, f.out.String(), "Removing existing virtual environment")
}

func TestRun_EmptyKeysSkipClientUpdate(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("claude", "", "", "")

	report, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.KeysProvided)
	assert.False(t, report.Configured)
	assert.NoFileExists(t, report.ConfigPath)
	assert.FileExists(t, report.EnvFile)

	out := f.out.String()
	assert.Contains(t, out, "API keys are empty")
	assert.Contains(t, out, "Skipping claude automatic update")
	assert.Contains(t, out, "Manual Configuration Required for Claude Desktop")
	assert.Contains(t, out, "your_alpaca_api_key_for_paper_account")
}

func TestRun_OneKeyIsNotEnoughForClientUpdate(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("cursor", "PKKEY", "", "")

	report, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Configured)
	assert.NoFileExists(t, report.ConfigPath)
}

func TestRun_NativeModeSkipsPython(t *testing.T) {
	f := newFixture(t)
	f.expectAnswers("", "PKKEY", "SECRET", "")

	report, err := f.installer(Options{
		Client:     clientconfig.Cursor,
		Native:     true,
		Executable: "/usr/local/bin/alpaca-mcp",
	}).Run(context.Background())
	require.NoError(t, err)

	assert.Empty(t, report.Python)
	assert.Empty(t, report.VenvPath)
	assert.NoDirExists(t, f.venv())

	servers := readServers(t, report.ConfigPath)
	assert.Equal(t, "/usr/local/bin/alpaca-mcp", servers[ServerName].Command)
	assert.Equal(t, []string{"serve", "--env-file", filepath.Join(f.project, envFile)}, servers[ServerName].Args)
	assert.Contains(t, f.out.String(), "/usr/local/bin/alpaca-mcp serve --env-file")
}

func TestRun_NativeModeWithoutExecutable(t *testing.T) {
	f := newFixture(t)

	_, err := f.installer(Options{Native: true}).Run(context.Background())

	assert.ErrorIs(t, err, ErrPrerequisite)
}

func TestRun_MergeFailureIsReported(t *testing.T) {
	f := newFixture(t)
	f.expectAnswers("", "PKKEY", "SECRET", "")

	// a directory where the config file should be cannot be replaced
	configPath := filepath.Join(f.home, ".cursor", "mcp.json")
	require.NoError(t, os.MkdirAll(filepath.Join(configPath, "child"), 0o755))

	report, err := f.installer(Options{
		Client:     clientconfig.Cursor,
		Native:     true,
		Executable: "/opt/alpaca-mcp",
	}).Run(context.Background())
	require.NoError(t, err)

	assert.False(t, report.Configured)
	assert.Error(t, report.MergeErr)
	assert.Contains(t, f.out.String(), "manual configuration may be required")
	assert.Contains(t, f.out.String(), "Manual Configuration Required")
}

// ── prompts ─────────────────────────────────────────────────────────────────

func TestRun_InvalidClientIsAskedAgain(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	gomock.InOrder(
		f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("vscode", nil),
		f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("CURSOR", nil),
		f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", nil),
		f.prompt.EXPECT().AskSecret(gomock.Any(), gomock.Any()).Return("", nil),
		f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", nil),
	)

	report, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, clientconfig.Cursor, report.Client)
	assert.Contains(t, f.out.String(), "Invalid choice.")
}

func TestRun_LiveTradingNeedsConfirmation(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.expectAnswers("claude", "PKKEY", "SECRET", "maybe", "n", "", "no", "yes")

	report, err := f.installer(Options{}).Run(context.Background())
	require.NoError(t, err)

	env, err := os.ReadFile(report.EnvFile)
	require.NoError(t, err)
	assert.Contains(t, string(env), "ALPACA_PAPER_TRADE = False")

	out := f.out.String()
	assert.Contains(t, out, "Please enter 'y' for yes or 'n' for no")
	assert.Contains(t, out, "real money")
}

func TestRun_Interrupted(t *testing.T) {
	f := newFixture(t)
	f.expectPythonSetup()
	f.prompt.EXPECT().Ask(gomock.Any(), gomock.Any()).Return("", ErrInterrupted)

	_, err := f.installer(Options{}).Run(context.Background())

	assert.ErrorIs(t, err, ErrInterrupted)
	assert.Contains(t, f.out.String(), "Installation cancelled by user")
	assert.NoFileExists(t, filepath.Join(f.project, envFile))
}

func TestRun_CancelledDuringCommand(t *testing.T) {
	f := newFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("Python 3.12.1", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, "python3", "-m", "venv", f.venv()).
			DoAndReturn(func(context.Context, string, string, ...string) (string, error) {
				cancel()
				return "", errors.New("signal: killed")
			}),
	)

	_, err := f.installer(Options{}).Run(ctx)

	assert.ErrorIs(t, err, ErrInterrupted)
}

// ── prerequisites and setup failures ────────────────────────────────────────

func TestRun_PythonDetection(t *testing.T) {
	t.Run("falls back to python", func(t *testing.T) {
		f := newFixture(t)
		gomock.InOrder(
			f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("", errors.New("executable file not found")),
			f.runner.EXPECT().Run(gomock.Any(), "", "python", "--version").Return("Python 3.9.2", nil),
			f.runner.EXPECT().Run(gomock.Any(), f.project, "python", "-m", "venv", f.venv()).Return("", errors.New("exit status 1")),
		)

		report, err := f.installer(Options{}).Run(context.Background())

		assert.ErrorIs(t, err, ErrSetup)
		assert.Equal(t, "python", report.Python)
	})

	t.Run("none found", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().Run(gomock.Any(), "", gomock.Any(), "--version").Return("", errors.New("not found")).Times(2)

		_, err := f.installer(Options{}).Run(context.Background())

		assert.ErrorIs(t, err, ErrPrerequisite)
		assert.Contains(t, err.Error(), "Python not found")
	})

	t.Run("too old", func(t *testing.T) {
		f := newFixture(t)
		f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("Python 3.5.9", nil)

		_, err := f.installer(Options{}).Run(context.Background())

		assert.ErrorIs(t, err, ErrPrerequisite)
		assert.Contains(t, err.Error(), "Python 3.5 found")
	})
}

func TestRun_MissingRequirements(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, os.Remove(filepath.Join(f.project, requirementsFile)))
	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("Python 3.11.4", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, "python3", "-m", "venv", f.venv()).Return("", nil),
	)

	_, err := f.installer(Options{}).Run(context.Background())

	assert.ErrorIs(t, err, ErrPrerequisite)
	assert.Contains(t, err.Error(), "requirements.txt not found")
}

func TestRun_DependencyInstallFails(t *testing.T) {
	f := newFixture(t)
	gomock.InOrder(
		f.runner.EXPECT().Run(gomock.Any(), "", "python3", "--version").Return("Python 3.11.4", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, "python3", "-m", "venv", f.venv()).Return("", nil),
		f.runner.EXPECT().Run(gomock.Any(), f.project, f.venvPython(), "-m", "pip", "install", "--upgrade", "pip").
			Return("", errors.New("no network")),
		f.runner.EXPECT().Run(gomock.Any(), f.project, f.venvPython(), "-m", "pip", "install", "-r", gomock.Any()).
			Return("", errors.New("no matching distribution")),
	)

	_, err := f.installer(Options{}).Run(context.Background())

	assert.ErrorIs(t, err, ErrSetup)
	assert.Contains(t, f.out.String(), "Failed to upgrade pip, continuing anyway")
	assert.Contains(t, f.out.String(), "Installation failed")
}

func TestRun_EnvFileWriteFails(t *testing.T) {
	f := newFixture(t)
	f.expectAnswers("", "PKKEY", "SECRET", "")
	require.NoError(t, os.MkdirAll(filepath.Join(f.project, envFile), 0o755))

	_, err := f.installer(Options{
		Client:     clientconfig.Claude,
		Native:     true,
		Executable: "/opt/alpaca-mcp",
	}).Run(context.Background())

	assert.ErrorIs(t, err, ErrSetup)
}

// ── snippet ─────────────────────────────────────────────────────────────────

func TestManualSnippet(t *testing.T) {
	snippet, err := ManualSnippet(clientconfig.ServerDescriptor{
		Command: "/p/.venv/bin/python",
		Args:    []string{"/p/alpaca_mcp_server.py"},
		Env:     map[string]string{"ALPACA_API_KEY": "real"},
	})
	require.NoError(t, err)

	var doc map[string]map[string]clientconfig.ServerDescriptor
	require.NoError(t, json.Unmarshal(snippet, &doc))

	desc := doc["mcpServers"][ServerName]
	assert.Equal(t, "/p/.venv/bin/python", desc.Command)
	assert.Equal(t, "your_alpaca_api_key_for_paper_account", desc.Env["ALPACA_API_KEY"])
	assert.Equal(t, "your_alpaca_secret_key_for_paper_account", desc.Env["ALPACA_SECRET_KEY"])
	assert.NotContains(t, string(snippet), "real")
}
