// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package installer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/MKhiriev/alpaca-mcp/internal/app"
	"github.com/MKhiriev/alpaca-mcp/internal/clientconfig"
	"github.com/MKhiriev/alpaca-mcp/internal/credentials"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

// ServerName is the entry written into the client's mcpServers table.
const ServerName = "alpaca"

// Files inside the project directory.
const (
	venvDir          = ".venv"
	requirementsFile = "requirements.txt"
	serverScript     = "alpaca_mcp_server.py"
	envFile          = ".env"
)

// Options control a run of the installer.
type Options struct {
	// ProjectDir receives the virtual environment and the credentials file.
	ProjectDir string
	// Client skips the client prompt when set.
	Client clientconfig.Client
	// Native points the client at Executable instead of a Python interpreter
	// and skips the Python steps.
	Native bool
	// Executable is the alpaca-mcp binary used in native mode.
	Executable string
	// GOOS selects platform paths; runtime.GOOS when empty.
	GOOS string
	// Home is the operator's home directory used to locate client configs.
	Home string
	// Now stamps client config backups; time.Now when nil.
	Now func() time.Time
}

// Installer runs the setup steps in order.
type Installer struct {
	opts     Options
	runner   CommandRunner
	prompter Prompter
	merger   *clientconfig.Merger
	out      *printer
	logger   *logger.Logger
}

// New returns an Installer writing its console output to out.
func New(opts Options, runner CommandRunner, prompter Prompter, out io.Writer, log *logger.Logger) *Installer {
	if opts.GOOS == "" {
		opts.GOOS = runtime.GOOS
	}
	return &Installer{
		opts:     opts,
		runner:   runner,
		prompter: prompter,
		merger:   clientconfig.NewMerger(log, clientconfig.WithClock(opts.Now)),
		out:      newPrinter(out),
		logger:   log,
	}
}

// Run executes all steps. Errors wrapping ErrPrerequisite, ErrSetup or
// ErrInterrupted are fatal; a failed client configuration update is not and
// is recorded in the returned Report instead.
func (i *Installer) Run(ctx context.Context) (Report, error) {
	report := Report{
		ProjectDir: i.opts.ProjectDir,
		EnvFile:    filepath.Join(i.opts.ProjectDir, envFile),
		Native:     i.opts.Native,
	}

	i.out.Header("Alpaca MCP Server Installation")
	i.out.Line("Installing Alpaca MCP Server in: %s", i.opts.ProjectDir)
	i.out.Blank()

	python, err := i.checkPrerequisites(ctx)
	if err != nil {
		return report, i.fatal(err)
	}
	report.Python = python

	if i.opts.Native {
		report.Descriptor = clientconfig.ServerDescriptor{
			Command: i.opts.Executable,
			Args:    []string{"serve", "--env-file", report.EnvFile},
		}
	} else {
		report.VenvPath = filepath.Join(i.opts.ProjectDir, venvDir)
		if err = i.createVirtualEnv(ctx, python, report.VenvPath); err != nil {
			return report, i.fatal(err)
		}
		if err = i.installDependencies(ctx, report.VenvPath); err != nil {
			return report, i.fatal(err)
		}
		report.Descriptor = clientconfig.ServerDescriptor{
			Command: venvPython(report.VenvPath, i.opts.GOOS),
			Args:    []string{filepath.Join(i.opts.ProjectDir, serverScript)},
		}
	}

	client, err := i.selectClient(ctx)
	if err != nil {
		return report, i.fatal(err)
	}
	report.Client = client

	creds, err := i.promptCredentials(ctx)
	if err != nil {
		return report, i.fatal(err)
	}
	report.KeysProvided = creds.Complete()

	if err = i.writeEnvFile(report.EnvFile, creds); err != nil {
		return report, i.fatal(err)
	}

	i.configureClient(&report, creds)
	i.printInstructions(report)

	i.logger.Info().
		Str("client", string(report.Client)).
		Bool("configured", report.Configured).
		Bool("native", report.Native).
		Msg("installation finished")

	return report, nil
}

func (i *Installer) fatal(err error) error {
	if errors.Is(err, ErrInterrupted) {
		i.out.Blank()
		i.out.Fail(app.MsgInstallCancelled)
	} else {
		i.out.Fail("%s: %v", app.MsgInstallFailed, err)
	}
	i.logger.Error().Err(err).Msg("installation aborted")
	return err
}

// interrupted turns a failure caused by a cancelled ctx into ErrInterrupted.
func interrupted(ctx context.Context, err error) error {
	if ctx.Err() != nil {
		return ErrInterrupted
	}
	return err
}

func (i *Installer) checkPrerequisites(ctx context.Context) (string, error) {
	i.out.Step(1, "Checking Prerequisites")

	if i.opts.Native {
		if i.opts.Executable == "" {
			return "", fmt.Errorf("%w: cannot locate the alpaca-mcp executable", ErrPrerequisite)
		}
		i.out.OK("Native mode: using %s", i.opts.Executable)
		i.out.Blank()
		return "", nil
	}

	for _, name := range pythonCandidates {
		output, err := i.runner.Run(ctx, "", name, "--version")
		if err != nil {
			if ctx.Err() != nil {
				return "", ErrInterrupted
			}
			i.logger.Debug().Err(err).Str("candidate", name).Msg("python candidate unavailable")
			continue
		}

		major, minor, err := parsePythonVersion(output)
		if err != nil {
			i.logger.Debug().Err(err).Str("candidate", name).Msg("python candidate unusable")
			continue
		}
		i.out.Line("Found Python: %s (%s)", name, strings.TrimSpace(output))

		if !pythonSupported(major, minor) {
			return "", fmt.Errorf("%w: Python %d.%d found, but Python %d.%d+ is required",
				ErrPrerequisite, major, minor, minPythonMajor, minPythonMinor)
		}
		i.out.OK("Python %d.%d is compatible", major, minor)
		i.out.OK("Prerequisites check completed")
		i.out.Blank()
		return name, nil
	}

	return "", fmt.Errorf("%w: Python not found, please install Python %d.%d+ first",
		ErrPrerequisite, minPythonMajor, minPythonMinor)
}

func (i *Installer) createVirtualEnv(ctx context.Context, python, venv string) error {
	i.out.Step(2, "Creating Virtual Environment")

	if _, err := os.Stat(venv); err == nil {
		i.out.Line("Removing existing virtual environment at %s", venv)
		if err = os.RemoveAll(venv); err != nil {
			return fmt.Errorf("%w: remove %s: %w", ErrSetup, venv, err)
		}
	}

	i.out.Muted("Running: %s -m venv %s", python, venv)
	if _, err := i.runner.Run(ctx, i.opts.ProjectDir, python, "-m", "venv", venv); err != nil {
		return interrupted(ctx, fmt.Errorf("%w: create virtual environment: %w", ErrSetup, err))
	}

	i.out.OK("Virtual environment created at %s", venv)
	i.out.Blank()
	return nil
}

func (i *Installer) installDependencies(ctx context.Context, venv string) error {
	i.out.Step(3, "Installing Dependencies")

	requirements := filepath.Join(i.opts.ProjectDir, requirementsFile)
	if _, err := os.Stat(requirements); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s not found at %s", ErrPrerequisite, requirementsFile, requirements)
		}
		return fmt.Errorf("%w: %w", ErrPrerequisite, err)
	}

	python := venvPython(venv, i.opts.GOOS)

	i.out.Muted("Running: %s -m pip install --upgrade pip", python)
	if _, err := i.runner.Run(ctx, i.opts.ProjectDir, python, "-m", "pip", "install", "--upgrade", "pip"); err != nil {
		if ctx.Err() != nil {
			return ErrInterrupted
		}
		i.logger.Warn().Err(err).Msg("pip upgrade failed")
		i.out.Warn("Failed to upgrade pip, continuing anyway")
	}

	i.out.Muted("Running: %s -m pip install -r %s", python, requirements)
	if _, err := i.runner.Run(ctx, i.opts.ProjectDir, python, "-m", "pip", "install", "-r", requirements); err != nil {
		return interrupted(ctx, fmt.Errorf("%w: install dependencies: %w", ErrSetup, err))
	}

	i.out.OK("Dependencies installed successfully")
	i.out.Blank()
	return nil
}

func (i *Installer) selectClient(ctx context.Context) (clientconfig.Client, error) {
	i.out.Step(4, "MCP Client Selection")

	if i.opts.Client != "" {
		i.out.OK("Selected: %s", i.opts.Client.DisplayName())
		i.out.Blank()
		return i.opts.Client, nil
	}

	i.out.Line("Which MCP client would you like to configure?")
	i.out.Line("(To configure multiple clients, run the installer multiple times)")
	i.out.Blank()
	for _, c := range clientconfig.Clients {
		i.out.Line("- %s (type '%s')", c.DisplayName(), c)
	}
	i.out.Blank()

	for {
		answer, err := i.prompter.Ask(ctx, "   Enter your choice (claude or cursor): ")
		if err != nil {
			return "", err
		}
		client, err := clientconfig.ParseClient(answer)
		if err != nil {
			i.out.Line("Invalid choice. Please type 'claude' or 'cursor'.")
			continue
		}
		i.out.Blank()
		i.out.OK("Selected: %s", client.DisplayName())
		i.out.Blank()
		return client, nil
	}
}

func (i *Installer) promptCredentials(ctx context.Context) (credentials.Credentials, error) {
	i.out.Step(5, "API Key Configuration")

	i.out.Line("Please enter your Alpaca API credentials.")
	i.out.Line("You can find these at: %s", app.MsgDashboardURL)
	i.out.Line("(Leave blank to configure later)")
	i.out.Blank()

	var creds credentials.Credentials
	var err error

	if creds.APIKey, err = i.prompter.Ask(ctx, "   Enter your "+credentials.KeyAPIKey+": "); err != nil {
		return creds, err
	}
	if creds.SecretKey, err = i.prompter.AskSecret(ctx, "   Enter your "+credentials.KeySecretKey+": "); err != nil {
		return creds, err
	}

	i.out.Blank()
	i.out.Line("Trading mode configuration:")
	i.out.Line("- Paper trading (recommended for testing): True")
	i.out.Line("- Live trading (real money): False")

	creds.PaperTrade, err = i.askTradingMode(ctx)
	if err != nil {
		return creds, err
	}
	i.out.Blank()
	return creds, nil
}

// askTradingMode returns true for paper trading. Live trading needs an
// explicit confirmation; declining asks again.
func (i *Installer) askTradingMode(ctx context.Context) (bool, error) {
	for {
		answer, err := i.prompter.Ask(ctx, "   Use paper trading? [Y/n]: ")
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "", "y", "yes":
			return true, nil
		case "n", "no":
			i.out.Warn(app.MsgLiveTradingWarning)
			confirm, err := i.prompter.Ask(ctx, "   Are you sure? [y/N]: ")
			if err != nil {
				return false, err
			}
			switch strings.ToLower(confirm) {
			case "y", "yes":
				return false, nil
			}
		default:
			i.out.Line("Please enter 'y' for yes or 'n' for no")
		}
	}
}

func (i *Installer) writeEnvFile(path string, creds credentials.Credentials) error {
	i.out.Step(6, "Creating Environment File")

	if err := credentials.Write(path, creds); err != nil {
		return fmt.Errorf("%w: %w", ErrSetup, err)
	}
	i.out.OK("Environment file created at %s", path)
	if !creds.Complete() {
		i.out.Warn(app.MsgKeysEmpty, path)
	}
	i.out.Blank()
	return nil
}

func (i *Installer) configureClient(report *Report, creds credentials.Credentials) {
	client := report.Client
	i.out.Step(7, "Updating "+client.DisplayName()+" Configuration")

	path, err := clientconfig.ConfigPath(client, i.opts.GOOS, i.opts.Home)
	if err != nil || i.opts.Home == "" {
		i.out.Warn("Could not determine the %s config path for this platform", client.DisplayName())
		i.out.Blank()
		return
	}
	report.ConfigPath = path
	i.out.Line("%s config location: %s", client.DisplayName(), path)

	if !creds.Complete() {
		i.out.Line(app.MsgSkipAutoConfig, client)
		i.out.Line(app.MsgRerunWithKeys)
		i.out.Blank()
		return
	}

	desc := report.Descriptor
	desc.Env = creds.DescriptorEnv()

	res, err := i.merger.Merge(path, client, ServerName, desc)
	report.Merge = res
	if err != nil {
		report.MergeErr = err
		i.out.Fail("Error updating %s config: %v", client.DisplayName(), err)
		i.out.Warn("%s manual configuration may be required", client.DisplayName())
		i.out.Blank()
		return
	}

	if res.BackupPath != "" {
		i.out.Line("Backup created: %s", res.BackupPath)
	}
	if res.BackupErr != nil {
		i.out.Warn("Could not create backup: %v", res.BackupErr)
	}
	if res.Recovered != nil {
		i.out.Warn("Existing %s config was unreadable and has been replaced: %v", client.DisplayName(), res.Recovered)
	}

	report.Configured = true
	i.out.OK("%s config updated: %s", client.DisplayName(), path)
	i.out.Line("Next: Restart %s to load the new configuration", client.DisplayName())
	i.out.Blank()
}

func (i *Installer) printInstructions(report Report) {
	i.out.Step(8, "Setup Complete - Next Steps")

	name := report.Client.DisplayName()
	i.out.OK(app.MsgInstallComplete)
	i.out.Blank()

	if report.Configured {
		i.out.OK("%s automatically configured!", name)
		i.out.Blank()
		i.out.Line("Final Steps:")
		i.out.Blank()
		i.out.Line("1. Restart %s", name)
		i.out.Line("   Close and reopen %s to load the new configuration", name)
		i.out.Blank()
		i.out.Line("2. Test the integration:")
		i.out.Line("   Try asking in %s:", name)
		i.out.Line(`   "What is my Alpaca account balance?"`)
		i.out.Line(`   "Show me my current positions"`)
		i.out.Blank()
		i.out.Line("3. Optional - Test the server manually:")
		i.out.Line("   cd %s", report.ProjectDir)
		if report.Native {
			i.out.Line("   %s serve --env-file %s", i.opts.Executable, report.EnvFile)
		} else {
			i.out.Line("   %s", venvActivate(report.VenvPath, i.opts.GOOS))
			i.out.Line("   python %s", serverScript)
		}
		i.out.Line("   (Press Ctrl+C to stop)")
		i.out.Blank()
	} else {
		i.out.Line("Manual Configuration Required for %s:", name)
		i.out.Blank()
		i.out.Line("1. Configure API keys (if not done already):")
		i.out.Line("   Edit %s", report.EnvFile)
		i.out.Line("   Add your Alpaca API keys")
		i.out.Blank()
		i.out.Line("2. Configure %s:", name)
		if report.Client == clientconfig.Claude {
			i.out.Line("   Open Claude Desktop -> Settings -> Developer -> Edit Config")
			if report.ConfigPath != "" {
				i.out.Line("   This should open: %s", report.ConfigPath)
			}
		} else if report.ConfigPath != "" {
			i.out.Line("   Create or edit: %s", report.ConfigPath)
		}
		i.out.Line("   Add this configuration and update the API keys:")
		if snippet, err := ManualSnippet(report.Descriptor); err == nil {
			i.out.Block(string(snippet))
		} else {
			i.logger.Warn().Err(err).Msg("could not render configuration snippet")
		}
		i.out.Blank()
		i.out.Line("3. Restart %s", name)
		i.out.Line("   Close and reopen %s to load the new configuration", name)
		i.out.Blank()
	}

	i.out.Line("Additional Information:")
	i.out.Line("- The server uses paper trading by default (safe for testing)")
	i.out.Line("- To enable live trading, set %s = False in %s", credentials.KeyPaperTrade, envFile)
	if report.Configured && report.Merge.BackupPath != "" {
		i.out.Line("- Configuration backup was created automatically")
	}
	i.out.Line("- To configure additional clients, run the installer again")
	i.out.Line("- For support, visit: %s", app.MsgSupportURL)
	i.out.Blank()
	i.out.OK("Installation complete! Enjoy trading with %s!", name)
}

// ManualSnippet renders the configuration the operator should paste into a
// client config by hand. The env block always carries placeholders.
func ManualSnippet(desc clientconfig.ServerDescriptor) ([]byte, error) {
	desc.Env = credentials.Credentials{}.DescriptorEnv()

	doc := clientconfig.NewDocument()
	if err := doc.SetServer(ServerName, desc); err != nil {
		return nil, err
	}
	return doc.Encode()
}
