package cmd

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/chris-regnier/moodtrack/internal/logging"
	"github.com/chris-regnier/moodtrack/internal/mcptools"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"
)

var mcpServeCmd = &cobra.Command{
	Use:   "mcp-serve",
	Short: "Run MCP server on stdio",
	Long: `Starts a Model Context Protocol (MCP) server that exposes the mood journal
over stdio transport.

Available tools:
  - save_journal_entry: Append today's journal entry (mood "Neutral")
  - save_medical_diagnosis: Append today's medical diagnosis note
  - list_journal_entries: List journal rows in insertion order
  - list_medical_diagnoses: List diagnosis rows in insertion order

Example client config:
  {
    "mcpServers": {
      "moodtrack": {
        "command": "/path/to/moodtrack",
        "args": ["mcp-serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	rootCmd.AddCommand(mcpServeCmd)
}

func runMCPServe(cmd *cobra.Command, args []string) error {
	server := mcptools.CreateMCPServer(store, mcptools.Options{Clock: clock, Logger: logger})

	// stdout is reserved for the MCP protocol
	console, err := logging.NewConsole(appConfig.Log.Level)
	if err != nil {
		return err
	}
	console.Info().
		Str("storage", appConfig.Storage).
		Str("data_dir", appConfig.DataDir).
		Msg("starting moodtrack MCP server (stdio transport)")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Blocks until the transport is closed
	return server.Run(ctx, &mcp.StdioTransport{})
}
