// Package mcp exposes the dialogs as Model Context Protocol tools so an
// agent can ask the user a question through a native dialog.
package mcp

import (
	"context"
	"sync"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/1broseidon/tfd/internal/dialog"
)

const (
	ServerName    = "tfd"
	ServerVersion = "0.1.0"
)

// Server is the MCP server. Dialogs are modal, so tool calls are
// serialized: a second call waits until the first dialog is dismissed.
type Server struct {
	mcpServer *mcpsdk.Server
	backend   dialog.Backend

	mu sync.Mutex
}

// NewServer creates a server that shows dialogs through b.
func NewServer(b dialog.Backend) *Server {
	s := &Server{backend: b}
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
		Name:        "message_box",
		Description: "Show a native message box and wait for the user to press a button. kind selects the buttons (ok, ok_cancel, yes_no, yes_no_cancel). Returns the pressed button; closing the dialog or a missing dialog program counts as the negative answer.",
	}, s.handleMessageBox)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "input_box",
		Description: "Ask the user for a line of text (or a password with password=true) in a native dialog. ok is false when the user cancelled.",
	}, s.handleInputBox)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "file_dialog",
		Description: "Show a native file picker. mode is save, open, open_multi or folder. Returns the chosen absolute paths; ok is false when the user cancelled.",
	}, s.handleFileDialog)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "color_chooser",
		Description: "Show a native color picker seeded with default. Returns the color as #rrggbb and as an RGB triple.",
	}, s.handleColorChooser)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "notify",
		Description: "Show a desktop notification. Does not wait for the user.",
	}, s.handleNotify)

	mcpsdk.AddTool(s.mcpServer, &mcpsdk.Tool{
		Name:        "backend_info",
		Description: "Report which dialog implementation this server uses.",
	}, s.handleBackendInfo)
}
