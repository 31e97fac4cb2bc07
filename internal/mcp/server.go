package mcp

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storymcp/storyserver/internal/character"
	"github.com/storymcp/storyserver/internal/story"
)

// Server wraps the MCP SDK server and the story server's components.
type Server struct {
	mcpServer  *mcp.Server
	characters *character.Table
	stories    *story.Store
	logger     *slog.Logger
	name       string
	version    string
}

// Config holds MCP server configuration.
type Config struct {
	Name         string
	Version      string
	Title        string
	Instructions string
	Logger       *slog.Logger
	Characters   *character.Table
	Stories      *story.Store
}

// NewServer creates a new MCP server and registers all tools and prompts.
func NewServer(cfg Config) (*Server, error) {
	if cfg.Name == "" {
		return nil, fmt.Errorf("server name is required")
	}
	if cfg.Version == "" {
		return nil, fmt.Errorf("server version is required")
	}
	if cfg.Characters == nil {
		return nil, fmt.Errorf("character table is required")
	}
	if cfg.Stories == nil {
		return nil, fmt.Errorf("story store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	mcpServer := mcp.NewServer(&mcp.Implementation{
		Name:    cfg.Name,
		Title:   cfg.Title,
		Version: cfg.Version,
	}, &mcp.ServerOptions{
		Instructions: cfg.Instructions,
	})

	s := &Server{
		mcpServer:  mcpServer,
		characters: cfg.Characters,
		stories:    cfg.Stories,
		logger:     logger,
		name:       cfg.Name,
		version:    cfg.Version,
	}

	s.mcpServer.AddReceivingMiddleware(s.logCalls)

	if err := s.registerCharacterTools(); err != nil {
		return nil, fmt.Errorf("registering character tools: %w", err)
	}
	if err := s.registerStoryTools(); err != nil {
		return nil, fmt.Errorf("registering story tools: %w", err)
	}
	s.registerPrompts()

	return s, nil
}

// Run starts the MCP server on the given transport. Blocking; returns when
// the context is cancelled or the transport closes.
func (s *Server) Run(ctx context.Context, transport mcp.Transport) error {
	return s.mcpServer.Run(ctx, transport)
}

// HTTPHandler returns the streamable HTTP handler for this server, wrapped so
// inbound request headers are visible to tool handlers and diagnostics.
// Stateless mode disables SDK session tracking; session ids are then absent
// from diagnostics.
func (s *Server) HTTPHandler(stateless bool) http.Handler {
	h := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, &mcp.StreamableHTTPOptions{
		Stateless: stateless,
	})
	return headerCapture{next: h}
}
