package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shotbridge/shotbridge/internal/mcp"
	"github.com/shotbridge/shotbridge/internal/screen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server (stdio transport)",
	Long: `Start the MCP server on stdio. Designed to be invoked by MCP clients
such as Claude Code or Claude Desktop.

Example (Claude Code):
  claude mcp add shotbridge -- shotbridge serve`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcp.NewServer(cfg, screen.New())
	return server.Run(ctx)
}
