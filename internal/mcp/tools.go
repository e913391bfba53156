package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Fuabioo/webfetch/internal/core"
	"github.com/Fuabioo/webfetch/internal/errors"
	"github.com/mark3labs/mcp-go/mcp"
)

// handleFetch implements fetch: GET via the library-default client.
func (s *Server) handleFetch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.fetchWith(ctx, s.fetcher, request)
}

// handleFetchSSL implements fetch_web_content_via_ssl: the same request
// shape, issued by the explicitly constructed TLS client.
func (s *Server) handleFetchSSL(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.fetchWith(ctx, s.secureFetcher, request)
}

// fetchWith validates the arguments, performs the fetch, and wraps the
// body in a single text content block. All failures become structured
// error results; the session stays open.
func (s *Server) fetchWith(ctx context.Context, fetcher *core.Fetcher, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	url, err := request.RequireString("url")
	if err != nil {
		return mcpErrorResult(errors.MissingArgument("url")), nil
	}

	body, err := fetcher.Fetch(ctx, url)
	if err != nil {
		return mcpErrorResult(err), nil
	}

	return mcp.NewToolResultText(body), nil
}

// mcpErrorResult converts a webfetch error to an MCP error result.
func mcpErrorResult(err error) *mcp.CallToolResult {
	code := errors.Code(err)
	if code == "" {
		code = errors.CodeInternalError
	}

	return errorResult(code, err.Error(), errors.StatusCode(err))
}

// errorResult creates an MCP error result. A non-zero status carries the
// upstream HTTP status for the peer to interpret.
func errorResult(code, message string, status int) *mcp.CallToolResult {
	inner := map[string]interface{}{
		"code":    code,
		"message": message,
	}
	if status != 0 {
		inner["status"] = status
	}
	errorData := map[string]interface{}{
		"error": inner,
	}

	jsonBytes, err := json.Marshal(errorData)
	if err != nil {
		// Fallback to simple text
		return mcp.NewToolResultError(fmt.Sprintf("Error: %s - %s", code, message))
	}

	result := mcp.NewToolResultText(string(jsonBytes))
	result.IsError = true
	return result
}
