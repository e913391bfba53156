package mcp

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/Fuabioo/webfetch/internal/core"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

const (
	serverName    = "mcp-website-fetcher"
	serverVersion = "0.1.0"
)

// Server wraps the MCP server with webfetch-specific state.
type Server struct {
	mcp           *server.MCPServer
	cfg           *core.Config
	fetcher       *core.Fetcher
	secureFetcher *core.Fetcher
}

// NewServer creates and configures the MCP server with both fetch tools
// registered.
func NewServer() (*Server, error) {
	cfg, err := core.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	s := &Server{
		cfg:           cfg,
		fetcher:       core.NewFetcher(cfg),
		secureFetcher: core.NewSecureFetcher(cfg),
	}

	// Create MCP server
	s.mcp = server.NewMCPServer(serverName, serverVersion)

	// Register both tools
	s.registerTools()

	return s, nil
}

// registerTools registers the fixed tool catalog. The two tools accept
// the same single required argument and differ only in which client
// instance issues the request.
func (s *Server) registerTools() {
	// fetch
	s.mcp.AddTool(mcp.NewTool("fetch",
		mcp.WithTitleAnnotation("Website Fetcher"),
		mcp.WithDescription("Fetches a website and returns its content"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to fetch")),
	), s.handleFetch)

	// fetch_web_content_via_ssl
	s.mcp.AddTool(mcp.NewTool("fetch_web_content_via_ssl",
		mcp.WithTitleAnnotation("Website Fetcher via SSL"),
		mcp.WithDescription("Fetches a website and returns its content using a secure SSL connection"),
		mcp.WithString("url",
			mcp.Required(),
			mcp.Description("URL to fetch over SSL")),
	), s.handleFetchSSL)
}

// Listen serves one session over the given stream pair and returns when
// the inbound stream ends or ctx is cancelled.
func (s *Server) Listen(ctx context.Context, in io.Reader, out io.Writer) error {
	stdioServer := server.NewStdioServer(s.mcp)
	if err := stdioServer.Listen(ctx, in, out); err != nil {
		return fmt.Errorf("failed to serve MCP: %w", err)
	}
	return nil
}

// ServeStdio starts the MCP server on stdio transport. Stdout belongs to
// the protocol; diagnostics go to stderr.
func (s *Server) ServeStdio(ctx context.Context) error {
	return s.Listen(ctx, os.Stdin, os.Stdout)
}

// Serve creates a new MCP server and starts serving on stdio.
func Serve() error {
	srv, err := NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if err := srv.ServeStdio(context.Background()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
