// Package mcp exposes the capture engine to MCP clients as two tools:
// list_windows and take_screenshot.
package mcp

import (
	"context"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"

	"github.com/shotbridge/shotbridge/internal/capture"
	"github.com/shotbridge/shotbridge/internal/config"
	"github.com/shotbridge/shotbridge/internal/logging"
	"github.com/shotbridge/shotbridge/internal/screen"
)

const (
	ServerName    = "shotbridge"
	ServerVersion = "0.1.0"
)

// Server is the MCP server wiring the resolver and capture engine to the
// stdio transport. Requests run synchronously; the engine holds no state
// between them.
type Server struct {
	mcpServer *mcpsdk.Server
	config    *config.Config
	backend   screen.Backend
	engine    *capture.Engine
	log       zerolog.Logger
}

// NewServer creates the MCP server on top of the given backend.
func NewServer(cfg *config.Config, backend screen.Backend) *Server {
	s := &Server{
		config:  cfg,
		backend: backend,
		engine:  capture.NewEngine(backend),
		log:     *logging.WithComponent("mcp"),
	}

	s.mcpServer = mcpsdk.NewServer(
		&mcpsdk.Implementation{
			Name:    ServerName,
			Version: ServerVersion,
		},
		nil,
	)

	s.registerTools()
	return s
}

// Run starts the MCP server on stdio transport, blocking until done.
func (s *Server) Run(ctx context.Context) error {
	return s.mcpServer.Run(ctx, &mcpsdk.StdioTransport{})
}

func (s *Server) registerTools() {
	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "list_windows",
		Description: "List visible application windows with their 1-based number, title and owning process. Numbers are positions in the current listing and feed take_screenshot's window_number. Pass format=detailed for process ids, handles and window states.",
	}, s.handleListWindows)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "take_screenshot",
		Description: "Capture the screen, one monitor, or one application window to an image file. Windows are selected by handle, number, title substring or process name; occluded windows are captured in the background, with an optional focus-stealing fallback (allow_focus) and optional restore of minimized windows (restore_if_minimized).",
	}, s.handleTakeScreenshot)
}
