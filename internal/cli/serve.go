// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/spf13/cobra"

	"github.com/MKhiriev/alpaca-mcp/internal/app"
	"github.com/MKhiriev/alpaca-mcp/internal/config"
	"github.com/MKhiriev/alpaca-mcp/internal/logger"
	"github.com/MKhiriev/alpaca-mcp/internal/server"
	"github.com/MKhiriev/alpaca-mcp/internal/tools"
	"github.com/MKhiriev/alpaca-mcp/models"
)

const serverRole = "alpaca-mcp"

func newServeCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the MCP server",
		Long: `Starts the Alpaca MCP server. Settings come from flags, then the
environment (ALPACA_MCP_TRANSPORT, ALPACA_MCP_HOST, ALPACA_MCP_PORT,
ALPACA_MCP_ENV_FILE, ALPACA_API_KEY, ...), then the credentials file.

Logs are written to stderr so stdout stays reserved for the stdio protocol.`,
		Args: cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return err
		}

		log := logger.NewLogger(serverRole, cmd.ErrOrStderr(), cfg.Runtime.LogLevel())
		log.Debug().Str("transport", string(cfg.Server.Transport)).Str("env_file", cfg.EnvFilePath).Msg("configuration loaded")

		opts := server.Options{
			Factory:   tools.NewFactory(buildInfo.BuildVersion()),
			BuildInfo: buildInfo,
			Stdin:     cmd.InOrStdin(),
			Stdout:    cmd.OutOrStdout(),
		}
		if !cfg.Runtime.Quiet() {
			opts.Banner = cmd.ErrOrStderr()
		}

		err = server.Start(cmd.Context(), cfg, opts, log)
		if err != nil {
			log.Error().Err(err).Msg("server failed")
			return err
		}
		log.Info().Msg(app.MsgServerStopped)
		return nil
	}
	return cmd
}
