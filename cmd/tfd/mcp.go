package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/1broseidon/tfd/internal/config"
	"github.com/1broseidon/tfd/internal/logger"
	"github.com/1broseidon/tfd/internal/mcp"
	"github.com/1broseidon/tfd/internal/platform"
)

func printMCPUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: tfd mcp <command>")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  serve    Start the MCP server (stdio transport)")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'tfd mcp <command> --help' for command-specific options.")
}

func runMCP(args []string) int {
	if len(args) == 0 {
		printMCPUsage(stderr)
		return 2
	}

	switch args[0] {
	case "serve":
		return runMCPServe(args[1:])
	case "help", "-h", "--help":
		printMCPUsage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "Unknown mcp command: %s\n\n", args[0])
		printMCPUsage(stderr)
		return 2
	}
}

func runMCPServe(args []string) int {
	if len(args) > 0 && (args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		fmt.Fprintln(stdout, "Usage: tfd mcp serve")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Start the MCP server on stdio. Dialogs are shown with graphical tools")
		fmt.Fprintln(stdout, "only, since stdin and stdout carry the protocol.")
		fmt.Fprintln(stdout, "")
		fmt.Fprintln(stdout, "Example:")
		fmt.Fprintln(stdout, "  claude mcp add tfd -- tfd mcp serve")
		return 0
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "Failed to load config: %v\n", err)
		return 1
	}
	if cfg.Log.Level != "" {
		logger.SetLevel(cfg.Log.Level)
	}
	if cfg.Log.File != "" {
		if err := logger.SetOutputFile(cfg.Log.File); err != nil {
			logger.Warnf("log file: %v", err)
		}
		defer logger.CloseLogFile()
	}

	if err := mcp.EnsureDisplayEnv(); err != nil {
		logger.Warnf("display detection: %v", err)
	}

	server := mcp.NewServer(platform.NewHeadless(cfg))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			cancel()
		case <-ctx.Done():
		}
	}()

	if err := server.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("MCP server error", err)
		return 1
	}
	return 0
}
