// paint-mcp is an MCP server exposing color model and selection tools
// over stdin/stdout.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ironsheep/paint-tools-mcp/internal/config"
	"github.com/ironsheep/paint-tools-mcp/internal/server"
	"github.com/ironsheep/paint-tools-mcp/internal/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCmd builds the command tree. The root command runs the server.
func newRootCmd() *cobra.Command {
	cfg, loadErr := config.Load()

	rootCmd := &cobra.Command{
		Use:   "paint-mcp",
		Short: "MCP server for color picking and selection tools",
		Long: `paint-mcp speaks the Model Context Protocol over stdin/stdout.

It exposes tools for sampling and converting colors (hex, RGBA, HSV, HSL,
Lab), picking from an HSV color wheel, selecting image content and
resizing canvases. Logs go to stderr.

Environment variables:
  ` + config.EnvLogLevel + `         log level (trace, debug, info, warn, error, off)
  ` + config.EnvMaxRequestBytes + `  maximum size of one request line

Configure it as a stdio server in your MCP client.`,
		Version:      version.Version,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if loadErr != nil {
				return loadErr
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := cfg.NewLogger(cmd.ErrOrStderr())
			logger.Debug("starting", "build", version.String())
			if f, ok := cmd.InOrStdin().(*os.File); ok && term.IsTerminal(int(f.Fd())) {
				logger.Warn("stdin is a terminal, expecting JSON-RPC requests from an MCP client")
			}

			srv := server.New(cfg, logger)
			if err := srv.Serve(cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}

	cfg.RegisterFlags(rootCmd.Flags())
	rootCmd.SetVersionTemplate(version.String() + "\n")
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build time, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
