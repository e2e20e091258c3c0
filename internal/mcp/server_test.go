// ABOUTME: Tests for the MCP Streamable HTTP server.
// ABOUTME: Covers the handshake, sessions, auth, tool listing, and call envelopes.

package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testRegistry(t *testing.T) *packs.Registry {
	t.Helper()
	reg := packs.NewRegistry(testLogger())
	err := reg.RegisterPack(&packs.Pack{
		ID: "contacts",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "search_contacts",
					Description:          "Search contacts",
					InputSchema:          json.RawMessage(`{"type":"object"}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
					return `{"contacts":[]}`, nil
				},
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_contact",
					Description:          "Fetch a contact",
					InputSchema:          json.RawMessage(`{"type":"object"}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
					return "", errors.New("GHL API Error 404: Not Found")
				},
			},
		},
	})
	if err != nil {
		t.Fatalf("RegisterPack: %v", err)
	}
	err = reg.RegisterPack(&packs.Pack{
		ID: "payments",
		Tools: []*packs.Tool{{
			Definition: &packs.ToolDefinition{
				Name:                 "list_invoices",
				Description:          "List invoices",
				InputSchema:          json.RawMessage(`{"type":"object"}`),
				RequiredCapabilities: []string{"payments"},
			},
			Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
				return `{"invoices":[]}`, nil
			},
		}},
	})
	if err != nil {
		t.Fatalf("RegisterPack: %v", err)
	}
	return reg
}

type testServer struct {
	srv    *httptest.Server
	tokens *TokenStore
}

func newTestServer(t *testing.T, requireAuth bool) *testServer {
	t.Helper()

	reg := testRegistry(t)
	dispatcher := packs.NewDispatcher(packs.DispatcherConfig{Registry: reg, Logger: testLogger()})
	tokens := NewTokenStore(store.NewMockStore())

	server, err := NewServer(Config{
		Registry:    reg,
		Dispatcher:  dispatcher,
		Logger:      testLogger(),
		TokenStore:  tokens,
		RequireAuth: requireAuth,
	})
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}

	mux := http.NewServeMux()
	server.RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	return &testServer{srv: srv, tokens: tokens}
}

func rpcRequest(t *testing.T, url, sessionID, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, url, bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("NewRequest: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if sessionID != "" {
		req.Header.Set("Mcp-Session-Id", sessionID)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	return resp
}

func decodeRPC(t *testing.T, resp *http.Response) JSONRPCResponse {
	t.Helper()
	defer resp.Body.Close()
	var out JSONRPCResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func initialize(t *testing.T, url string) string {
	t.Helper()
	resp := rpcRequest(t, url, "", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	defer resp.Body.Close()
	sessionID := resp.Header.Get("Mcp-Session-Id")
	if sessionID == "" {
		t.Fatal("missing Mcp-Session-Id header")
	}
	io.Copy(io.Discard, resp.Body)
	return sessionID
}

func TestInitializeCreatesSession(t *testing.T) {
	ts := newTestServer(t, false)

	resp := rpcRequest(t, ts.srv.URL+"/mcp", "", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	if resp.Header.Get("Mcp-Session-Id") == "" {
		t.Error("expected Mcp-Session-Id header")
	}
	out := decodeRPC(t, resp)
	if out.Error != nil {
		t.Fatalf("unexpected error: %+v", out.Error)
	}
	raw, _ := json.Marshal(out.Result)
	if !strings.Contains(string(raw), "ghl-gateway") {
		t.Errorf("serverInfo missing: %s", raw)
	}
	if !strings.Contains(string(raw), latestProtocolVersion) {
		t.Errorf("protocol version missing: %s", raw)
	}
}

func TestNotificationReturns202(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	resp := rpcRequest(t, ts.srv.URL+"/mcp", sid, `{"jsonrpc":"2.0","method":"notifications/initialized"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusAccepted {
		t.Errorf("status = %d, want 202", resp.StatusCode)
	}
}

func TestToolsListRequiresSession(t *testing.T) {
	ts := newTestServer(t, false)

	resp := rpcRequest(t, ts.srv.URL+"/mcp", "", `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}

	resp = rpcRequest(t, ts.srv.URL+"/mcp", "bogus-session", `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`)
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404", resp.StatusCode)
	}
}

func TestToolsListUnrestricted(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	out := decodeRPC(t, rpcRequest(t, ts.srv.URL+"/mcp", sid, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	if out.Error != nil {
		t.Fatalf("error: %+v", out.Error)
	}
	raw, _ := json.Marshal(out.Result)
	var result MCPListToolsResult
	json.Unmarshal(raw, &result)
	if len(result.Tools) != 3 {
		t.Errorf("got %d tools, want 3", len(result.Tools))
	}
}

func TestToolsListFilteredByTokenCapabilities(t *testing.T) {
	ts := newTestServer(t, true)
	raw, err := ts.tokens.Mint(context.Background(), "test", []string{"payments"})
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	url := ts.srv.URL + "/mcp/" + raw
	sid := initialize(t, url)

	out := decodeRPC(t, rpcRequest(t, url, sid, `{"jsonrpc":"2.0","id":2,"method":"tools/list"}`))
	rawResult, _ := json.Marshal(out.Result)
	var result MCPListToolsResult
	json.Unmarshal(rawResult, &result)
	if len(result.Tools) != 1 || result.Tools[0].Name != "list_invoices" {
		t.Errorf("tools = %+v, want only list_invoices", result.Tools)
	}
}

func TestInitializeRejectsInvalidToken(t *testing.T) {
	ts := newTestServer(t, true)

	resp := rpcRequest(t, ts.srv.URL+"/mcp/not-a-real-token", "", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	out := decodeRPC(t, resp)
	if out.Error == nil || !strings.Contains(out.Error.Message, "invalid or expired token") {
		t.Errorf("error = %+v", out.Error)
	}
}

func TestInitializeRequiresAuth(t *testing.T) {
	ts := newTestServer(t, true)

	resp := rpcRequest(t, ts.srv.URL+"/mcp", "", `{"jsonrpc":"2.0","id":1,"method":"initialize"}`)
	out := decodeRPC(t, resp)
	if out.Error == nil || !strings.Contains(out.Error.Message, "authentication required") {
		t.Errorf("error = %+v", out.Error)
	}
}

func TestToolsCallSuccess(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	out := decodeRPC(t, rpcRequest(t, ts.srv.URL+"/mcp", sid,
		`{"jsonrpc":"2.0","id":3,"method":"tools/call","params":{"name":"search_contacts","arguments":{"query":"x"}}}`))
	if out.Error != nil {
		t.Fatalf("error: %+v", out.Error)
	}
	raw, _ := json.Marshal(out.Result)
	var result MCPCallToolResult
	json.Unmarshal(raw, &result)
	if result.IsError {
		t.Error("unexpected isError")
	}
	if len(result.Content) != 1 || result.Content[0].Text != `{"contacts":[]}` {
		t.Errorf("content = %+v", result.Content)
	}
}

func TestToolsCallHandlerErrorStaysInEnvelope(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	resp := rpcRequest(t, ts.srv.URL+"/mcp", sid,
		`{"jsonrpc":"2.0","id":4,"method":"tools/call","params":{"name":"get_contact","arguments":{"contactId":"c1"}}}`)
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d, want 200", resp.StatusCode)
	}
	out := decodeRPC(t, resp)
	if out.Error != nil {
		t.Fatalf("handler failure must not be a JSON-RPC error: %+v", out.Error)
	}
	raw, _ := json.Marshal(out.Result)
	var result MCPCallToolResult
	json.Unmarshal(raw, &result)
	if !result.IsError {
		t.Error("expected isError")
	}
	if !strings.Contains(result.Content[0].Text, "GHL API Error 404") {
		t.Errorf("content = %+v", result.Content)
	}
}

func TestToolsCallUnknownTool(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	out := decodeRPC(t, rpcRequest(t, ts.srv.URL+"/mcp", sid,
		`{"jsonrpc":"2.0","id":5,"method":"tools/call","params":{"name":"no_such_tool"}}`))
	if out.Error == nil || out.Error.Code != JSONRPCInvalidParams {
		t.Errorf("error = %+v, want invalid params", out.Error)
	}
}

func TestToolsCallCapabilityDenied(t *testing.T) {
	ts := newTestServer(t, true)
	raw, err := ts.tokens.Mint(context.Background(), "test", []string{"payments"})
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	url := ts.srv.URL + "/mcp/" + raw
	sid := initialize(t, url)

	out := decodeRPC(t, rpcRequest(t, url, sid,
		`{"jsonrpc":"2.0","id":6,"method":"tools/call","params":{"name":"search_contacts"}}`))
	if out.Error == nil || !strings.Contains(out.Error.Message, "insufficient capabilities") {
		t.Errorf("error = %+v", out.Error)
	}
}

func TestInvalidJSONBody(t *testing.T) {
	ts := newTestServer(t, false)

	out := decodeRPC(t, rpcRequest(t, ts.srv.URL+"/mcp", "", `{not json`))
	if out.Error == nil || out.Error.Code != JSONRPCParseError {
		t.Errorf("error = %+v, want parse error", out.Error)
	}
}

func TestMethodNotFound(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	out := decodeRPC(t, rpcRequest(t, ts.srv.URL+"/mcp", sid, `{"jsonrpc":"2.0","id":7,"method":"resources/list"}`))
	if out.Error == nil || out.Error.Code != JSONRPCMethodNotFound {
		t.Errorf("error = %+v", out.Error)
	}
}

func TestUnsupportedProtocolVersion(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	req, _ := http.NewRequest(http.MethodPost, ts.srv.URL+"/mcp",
		bytes.NewReader([]byte(`{"jsonrpc":"2.0","id":8,"method":"tools/list"}`)))
	req.Header.Set("Mcp-Session-Id", sid)
	req.Header.Set("Mcp-Protocol-Version", "1999-01-01")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestDeleteSession(t *testing.T) {
	ts := newTestServer(t, false)
	sid := initialize(t, ts.srv.URL+"/mcp")

	req, _ := http.NewRequest(http.MethodDelete, ts.srv.URL+"/mcp", nil)
	req.Header.Set("Mcp-Session-Id", sid)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}

	// Session is gone
	resp2 := rpcRequest(t, ts.srv.URL+"/mcp", sid, `{"jsonrpc":"2.0","id":9,"method":"tools/list"}`)
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Errorf("status = %d, want 404 after delete", resp2.StatusCode)
	}
}

func TestDeleteSessionOwnership(t *testing.T) {
	ts := newTestServer(t, true)
	raw, err := ts.tokens.Mint(context.Background(), "owner", nil)
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}
	sid := initialize(t, ts.srv.URL+"/mcp/"+raw)

	// DELETE without the owner's token is refused
	req, _ := http.NewRequest(http.MethodDelete, ts.srv.URL+"/mcp", nil)
	req.Header.Set("Mcp-Session-Id", sid)
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusForbidden {
		t.Errorf("status = %d, want 403", resp.StatusCode)
	}

	// With the token it succeeds
	req, _ = http.NewRequest(http.MethodDelete, ts.srv.URL+"/mcp/"+raw, nil)
	req.Header.Set("Mcp-Session-Id", sid)
	resp, err = http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("status = %d, want 204", resp.StatusCode)
	}
}

func TestGetNotAllowed(t *testing.T) {
	ts := newTestServer(t, false)

	resp, err := http.Get(ts.srv.URL + "/mcp")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestTokenStoreRoundtrip(t *testing.T) {
	tokens := NewTokenStore(store.NewMockStore())

	raw, err := tokens.Mint(context.Background(), "cli", []string{"contacts"})
	if err != nil {
		t.Fatalf("Mint: %v", err)
	}

	caps, ok := tokens.Lookup(context.Background(), raw)
	if !ok {
		t.Fatal("token should be valid")
	}
	if len(caps) != 1 || caps[0] != "contacts" {
		t.Errorf("caps = %v", caps)
	}

	if _, ok := tokens.Lookup(context.Background(), "nope"); ok {
		t.Error("unknown token should be invalid")
	}
}
