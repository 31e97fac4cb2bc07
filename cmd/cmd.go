// Package cmd provides CLI commands for the story server.
//
// Commands:
//   - serve: streamable HTTP MCP server
//   - stdio: MCP server on stdin/stdout for local clients
//
// Signal handling and graceful shutdown are implemented for both commands via
// context cancellation. The bare invocation honors the TRANSPORT setting, so
// the binary can be pointed at either transport through configuration alone.
package cmd

import (
	"fmt"
	"os"

	"github.com/storymcp/storyserver/internal/config"
)

// Execute is the main entry point for the story server CLI.
func Execute() error {
	if len(os.Args) < 2 {
		return runDefault()
	}

	switch os.Args[1] {
	case "serve":
		return runServe()
	case "stdio":
		return runStdio()
	case "version", "--version", "-v":
		runVersion()
		return nil
	case "help", "--help", "-h":
		runHelp()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", os.Args[1])
	}
}

// runDefault dispatches on the configured transport when no command is given.
func runDefault() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Transport == config.TransportStdio {
		return runStdio()
	}
	return runServe()
}

// runHelp displays the help message.
func runHelp() {
	fmt.Println("storyserver - MCP demo server for story writing")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  storyserver serve      Start the streamable HTTP MCP server (default: 0.0.0.0:8082)")
	fmt.Println("  storyserver stdio      Start the MCP server on stdin/stdout")
	fmt.Println("  storyserver --version  Show version information")
	fmt.Println("  storyserver --help     Show this help")
	fmt.Println()
	fmt.Println("With no command, the TRANSPORT setting decides between serve and stdio.")
	fmt.Println()
	fmt.Println("Environment Variables:")
	fmt.Println("  TRANSPORT    Transport to use: http or stdio (default: http)")
	fmt.Println("  HOST         Listen host for http transport (default: 0.0.0.0)")
	fmt.Println("  PORT         Listen port for http transport (default: 8082)")
	fmt.Println("  STATELESS    Disable MCP session tracking over http (default: false)")
	fmt.Println("  STORY_DIR    Directory for saved stories (default: .)")
	fmt.Println("  LOG_LEVEL    Log level: debug, info, warn, error (default: info)")
	fmt.Println("  LOG_FILE     Log file path (default: story_server.log)")
}
