// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/alpaca-mcp/internal/installer"
	"github.com/MKhiriev/alpaca-mcp/models"
)

// NewRootCommand builds the command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	root := &cobra.Command{
		Use:   "alpaca-mcp",
		Short: "Alpaca trading MCP server and installer",
		Long: `alpaca-mcp exposes an Alpaca trading account to MCP clients such as
Claude Desktop and Cursor.

Run "alpaca-mcp init" once to store your API keys and register the server
with a client, then let the client start "alpaca-mcp serve".`,
		Example: `  alpaca-mcp init                          # Interactive setup
  alpaca-mcp init --native --client cursor # Register this binary with Cursor
  alpaca-mcp serve                         # Serve over stdio
  alpaca-mcp serve --transport http        # Serve over streamable HTTP
  alpaca-mcp status                        # Show the current configuration`,
		Version:       buildInfo.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetVersionTemplate(buildInfo.String() + "\n")
	root.CompletionOptions.HiddenDefaultCmd = true

	root.AddCommand(
		newInitCommand(),
		newServeCommand(buildInfo),
		newStatusCommand(),
	)
	return root
}

// Execute runs the command line and returns the process exit code.
func Execute(ctx context.Context, buildInfo models.AppBuildInfo) int {
	return run(ctx, NewRootCommand(buildInfo))
}

func run(ctx context.Context, root *cobra.Command) int {
	if err := root.ExecuteContext(ctx); err != nil {
		if !reported(err) {
			fmt.Fprintln(root.ErrOrStderr(), "Error:", err)
		}
		return 1
	}
	return 0
}

// reported is true for errors the installer already showed to the operator.
func reported(err error) bool {
	return errors.Is(err, installer.ErrInterrupted) ||
		errors.Is(err, installer.ErrPrerequisite) ||
		errors.Is(err, installer.ErrSetup)
}
