package mcp

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/mark3labs/mcp-go/server"
)

// Handler builds the HTTP surface for the SSE transport. GET /sse opens
// the server-to-client event stream for one session, POST /messages/
// carries that session's client-to-server messages (correlated by the
// sessionId query parameter announced on the stream), and GET /health
// reports liveness. baseURL is the externally reachable root used in
// the announced message endpoint.
func (s *Server) Handler(baseURL string) http.Handler {
	sseServer := server.NewSSEServer(s.mcp,
		server.WithBaseURL(baseURL),
		server.WithSSEEndpoint("/sse"),
		server.WithMessageEndpoint("/messages/"),
	)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/health", handleHealth)
	r.Handle("/sse", sseServer.SSEHandler())
	r.Handle("/messages/", sseServer.MessageHandler())

	return r
}

// ServeSSE starts the HTTP server for the SSE transport on addr.
// It blocks for the lifetime of the process.
func (s *Server) ServeSSE(addr string) error {
	log.Printf("webfetch SSE server listening on %s", addr)
	if err := http.ListenAndServe(addr, s.Handler(fmt.Sprintf("http://%s", addr))); err != nil {
		return fmt.Errorf("failed to serve SSE: %w", err)
	}
	return nil
}

// ServeSSE creates a new MCP server and starts serving over SSE on the
// configured listen address.
func ServeSSE(port int) error {
	srv, err := NewServer()
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	if port != 0 {
		srv.cfg.Server.Port = port
	}

	if err := srv.ServeSSE(srv.cfg.ListenAddr()); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
