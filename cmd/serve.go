package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/storymcp/storyserver/internal/character"
	"github.com/storymcp/storyserver/internal/config"
	"github.com/storymcp/storyserver/internal/log"
	"github.com/storymcp/storyserver/internal/mcp"
	"github.com/storymcp/storyserver/internal/story"
)

// Server timeout configuration.
const (
	readHeaderTimeout = 10 * time.Second
	readTimeout       = 30 * time.Second
	writeTimeout      = 2 * time.Minute // streamable HTTP responses can be long-lived
	idleTimeout       = 2 * time.Minute
	shutdownTimeout   = 30 * time.Second
)

// app bundles the wired server with its configuration and log file handle.
type app struct {
	srv    *mcp.Server
	cfg    *config.Config
	logger log.Logger
	closer io.Closer
}

func (a *app) Close() error {
	return a.closer.Close()
}

// setup loads configuration and builds the MCP server with its dependencies.
func setup() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("parsing log level: %w", err)
	}
	logger, closer, err := log.NewWithFile(cfg.LogFile, log.Config{Level: level})
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}

	srv, err := mcp.NewServer(mcp.Config{
		Name:         ServerName,
		Version:      Version,
		Title:        ServerTitle,
		Instructions: serverInstructions,
		Logger:       logger,
		Characters:   character.NewTable(),
		Stories:      story.NewStore(cfg.StoryDir, logger),
	})
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("creating MCP server: %w", err)
	}
	return &app{srv: srv, cfg: cfg, logger: logger, closer: closer}, nil
}

// runServe initializes and starts the streamable HTTP MCP server.
func runServe() error {
	a, err := setup()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	addr := net.JoinHostPort(a.cfg.Host, strconv.Itoa(a.cfg.Port))
	mux := http.NewServeMux()
	mux.Handle("/mcp", a.srv.HTTPHandler(a.cfg.Stateless))

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	a.logger.Info("HTTP server ready",
		"addr", addr,
		"endpoint", "/mcp",
		"stateless", a.cfg.Stateless,
		"version", Version,
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		a.logger.Info("shutting down HTTP server")
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := httpSrv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down server: %w", err)
		}
		<-errCh
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("HTTP server: %w", err)
	}
}
