// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/alpaca-mcp/internal/clientconfig"
	"github.com/MKhiriev/alpaca-mcp/internal/credentials"
	"github.com/MKhiriev/alpaca-mcp/internal/installer"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
)

type initOptions struct {
	projectDir string
	client     string
	native     bool
}

func newInitCommand() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Set up credentials and register the server with an MCP client",
		Long: `Runs the interactive installer: checks for Python, creates a virtual
environment, installs dependencies, asks for your Alpaca API keys, writes the
credentials file and adds an "alpaca" entry to the chosen client's
configuration. Existing client configuration is backed up first.

With --native the Python steps are skipped and the client is pointed at this
binary.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.projectDir, "project-dir", "", "directory for the virtual environment and credentials file (default: current directory)")
	cmd.Flags().StringVar(&opts.client, "client", "", "client to configure without asking: claude or cursor")
	cmd.Flags().BoolVar(&opts.native, "native", false, "register this binary instead of the Python server")
	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	level := zerolog.WarnLevel
	if credentials.ParseBool(os.Getenv("DEBUG"), false) {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger("alpaca-mcp-init", cmd.ErrOrStderr(), level)

	projectDir := opts.projectDir
	if projectDir == "" {
		projectDir = "."
	}
	projectDir, err := filepath.Abs(projectDir)
	if err != nil {
		return err
	}

	var client clientconfig.Client
	if opts.client != "" {
		if client, err = clientconfig.ParseClient(opts.client); err != nil {
			return err
		}
	}

	var executable string
	if opts.native {
		if executable, err = os.Executable(); err != nil {
			log.Warn().Err(err).Msg("cannot resolve executable path")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("cannot resolve home directory")
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	inst := installer.New(installer.Options{
		ProjectDir: projectDir,
		Client:     client,
		Native:     opts.native,
		Executable: executable,
		Home:       home,
	},
		installer.NewCommandRunner(log),
		installer.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout()),
		cmd.OutOrStdout(),
		log,
	)

	_, err = inst.Run(ctx)
	return err
}
