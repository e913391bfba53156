package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

// newTestServer creates a server with default configuration.
func newTestServer(t *testing.T) *Server {
	t.Helper()

	srv, err := NewServer()
	if err != nil {
		t.Fatalf("failed to create server: %v", err)
	}
	return srv
}

// newTestRequest creates a CallToolRequest for testing
func newTestRequest(arguments map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: arguments,
		},
	}
}

// getResultText extracts the text from a CallToolResult for testing
func getResultText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := mcp.AsTextContent(result.Content[0]); ok {
		return textContent.Text
	}
	return ""
}

// errorPayload is the structured error body carried in error results.
type errorPayload struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
}

// decodeErrorResult parses the structured error from an error result.
func decodeErrorResult(t *testing.T, result *mcp.CallToolResult) errorPayload {
	t.Helper()

	var payload errorPayload
	if err := json.Unmarshal([]byte(getResultText(result)), &payload); err != nil {
		t.Fatalf("failed to parse error result %q: %v", getResultText(result), err)
	}
	if payload.Error.Code == "" {
		t.Fatalf("expected error code in result %q", getResultText(result))
	}
	return payload
}

// dispatch pushes one raw protocol message through the server's request
// dispatcher and returns the response re-encoded as a generic map.
func dispatch(t *testing.T, srv *Server, raw string) map[string]interface{} {
	t.Helper()

	resp := srv.mcp.HandleMessage(context.Background(), json.RawMessage(raw))
	if resp == nil {
		t.Fatalf("no response for message %s", raw)
	}

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("failed to marshal response: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return decoded
}

// initializeSession performs the protocol handshake on srv.
func initializeSession(t *testing.T, srv *Server) {
	t.Helper()

	resp := dispatch(t, srv, `{"jsonrpc":"2.0","id":0,"method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test-client","version":"0.0.0"}}}`)
	if resp["error"] != nil {
		t.Fatalf("initialize failed: %v", resp["error"])
	}
}

// callToolMessage builds a raw tools/call message.
func callToolMessage(id int, name string, arguments map[string]interface{}) string {
	params := map[string]interface{}{"name": name}
	if arguments != nil {
		params["arguments"] = arguments
	}
	msg := map[string]interface{}{
		"jsonrpc": "2.0",
		"id":      id,
		"method":  "tools/call",
		"params":  params,
	}
	data, err := json.Marshal(msg)
	if err != nil {
		panic(fmt.Sprintf("failed to build tools/call message: %v", err))
	}
	return string(data)
}
