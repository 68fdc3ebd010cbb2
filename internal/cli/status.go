// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/MKhiriev/alpaca-mcp/internal/config"
)

func newStatusCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the configuration serve would use",
		Long: `Prints where the credentials file is, whether the API keys are set,
the trading mode and any endpoint overrides. The API key is masked and the
secret key is never shown.`,
		Args: cobra.NoArgs,
	}
	flags := config.RegisterFlags(cmd.Flags())

	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.GetStructuredConfig(flags)
		if err != nil {
			return err
		}
		printStatus(cmd.OutOrStdout(), cfg.Status())
		return nil
	}
	return cmd
}

func printStatus(w io.Writer, s config.Status) {
	r := lipgloss.NewRenderer(w)
	title := r.NewStyle().Bold(true)
	label := r.NewStyle().Width(16)
	good := r.NewStyle().Foreground(lipgloss.Color("10"))
	bad := r.NewStyle().Foreground(lipgloss.Color("9"))

	row := func(name, value string) {
		fmt.Fprintf(w, "  %s%s\n", label.Render(name+":"), value)
	}
	flag := func(ok bool, yes, no string) string {
		if ok {
			return good.Render(yes)
		}
		return bad.Render(no)
	}

	fmt.Fprintln(w, title.Render("Alpaca MCP Server Status"))

	row("Env file", fmt.Sprintf("%s (%s)", s.EnvFile, flag(s.EnvFileExists, "found", "missing")))
	row("Credentials", flag(s.CredentialsSet, "configured", "missing, run 'alpaca-mcp init'"))
	if s.APIKey != "" {
		row("API key", s.APIKey)
	}
	mode := "live"
	if s.PaperTrade {
		mode = "paper"
	}
	row("Trading mode", mode)
	row("Transport", string(s.Transport))
	if s.Transport.Network() {
		row("Address", s.Address)
	}
	row("Trade API", orDefault(s.Endpoints.TradeAPIURL))
	row("Trade stream", orDefault(s.Endpoints.TradeAPIWSS))
	row("Data API", orDefault(s.Endpoints.DataAPIURL))
	row("Data stream", orDefault(s.Endpoints.StreamDataWSS))
}

func orDefault(s string) string {
	if s == "" {
		return "default"
	}
	return s
}
