// ABOUTME: Tests for the admin API handlers
// ABOUTME: Covers tenant CRUD, token minting, auth, and key masking

package admin

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ghlkit/ghl-gateway/internal/auth"
	"github.com/ghlkit/ghl-gateway/internal/mcp"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

const testPassword = "correct-horse"

func newTestServer(t *testing.T) (*httptest.Server, *store.MockStore) {
	t.Helper()

	s := store.NewMockStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a := New(s, mcp.NewTokenStore(s), logger)

	mux := http.NewServeMux()
	a.RegisterRoutes(mux, auth.RequirePassword(testPassword))

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, s
}

func doJSON(t *testing.T, method, url, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = bytes.NewReader([]byte(body))
	}
	req, err := http.NewRequest(method, url, reader)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+testPassword)
	req.Header.Set("Content-Type", "application/json")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var decoded map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestTenants_RequiresAuth(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, err := http.Get(srv.URL + "/admin/tenants")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	req, _ := http.NewRequest(http.MethodGet, srv.URL+"/admin/tenants", nil)
	req.Header.Set("Authorization", "Bearer wrong-password")
	resp2, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp2.Body.Close() }()
	assert.Equal(t, http.StatusUnauthorized, resp2.StatusCode)
}

func TestTenants_CreateMasksKey(t *testing.T) {
	srv, s := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-1","name":"Main Clinic","api_key":"pit-0123456789abcdef"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "pit-0123...", body["api_key"])
	assert.Equal(t, "sub_account", body["kind"])

	// The full key is stored even though responses mask it.
	cred, err := s.GetTenant(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "pit-0123456789abcdef", cred.APIKey)
}

func TestTenants_CreateValidation(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/admin/tenants", `{"id":"loc-1"}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, body["error"], "required")
}

func TestTenants_ListAndGet(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-1","name":"Main","api_key":"pit-aaaaaaaaaaaa","default":true}`)
	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-2","name":"Branch","api_key":"pit-bbbbbbbbbbbb"}`)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/admin/tenants", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(2), body["count"])
	for _, raw := range body["tenants"].([]any) {
		view := raw.(map[string]any)
		assert.True(t, strings.HasSuffix(view["api_key"].(string), "..."))
	}

	resp, body = doJSON(t, http.MethodGet, srv.URL+"/admin/tenants/loc-1", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, true, body["is_default"])

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/admin/tenants/loc-missing", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenants_SetDefault(t *testing.T) {
	srv, s := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-1","name":"Main","api_key":"pit-aaaaaaaaaaaa","default":true}`)
	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-2","name":"Branch","api_key":"pit-bbbbbbbbbbbb"}`)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/admin/tenants/loc-2/default", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	def, err := s.GetDefaultTenant(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "loc-2", def.ID)
}

func TestTenants_RotateKey(t *testing.T) {
	srv, s := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-1","name":"Main","api_key":"pit-aaaaaaaaaaaa"}`)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/admin/tenants/loc-1/rotate",
		`{"api_key":"pit-cccccccccccc"}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "pit-cccc...", body["api_key"])

	cred, err := s.GetTenant(context.Background(), "loc-1")
	require.NoError(t, err)
	assert.Equal(t, "pit-cccccccccccc", cred.APIKey)

	resp, _ = doJSON(t, http.MethodPost, srv.URL+"/admin/tenants/loc-404/rotate",
		`{"api_key":"pit-dddddddddddd"}`)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTenants_Delete(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tenants",
		`{"id":"loc-1","name":"Main","api_key":"pit-aaaaaaaaaaaa"}`)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/admin/tenants/loc-1", "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/admin/tenants/loc-1", "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestTokens_MintAndLookup(t *testing.T) {
	srv, s := newTestServer(t)

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/admin/tokens",
		`{"label":"reporting","capabilities":["contacts","payments"]}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	raw, ok := body["token"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, raw)

	// The raw token resolves to its capability list.
	caps, valid := mcp.NewTokenStore(s).Lookup(context.Background(), raw)
	require.True(t, valid)
	assert.Equal(t, []string{"contacts", "payments"}, caps)

	// Only the digest is persisted.
	tokens, err := s.ListAccessTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.NotEqual(t, raw, tokens[0].Digest)
	assert.Equal(t, mcp.Digest(raw), tokens[0].Digest)
}

func TestTokens_MintRequiresLabel(t *testing.T) {
	srv, _ := newTestServer(t)

	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/admin/tokens", `{}`)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTokens_ListOmitsDigest(t *testing.T) {
	srv, _ := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tokens", `{"label":"ops"}`)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/admin/tokens", "")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(1), body["count"])

	view := body["tokens"].([]any)[0].(map[string]any)
	assert.Equal(t, "ops", view["label"])
	_, hasDigest := view["digest"]
	assert.False(t, hasDigest)
}

func TestTokens_Revoke(t *testing.T) {
	srv, s := newTestServer(t)

	doJSON(t, http.MethodPost, srv.URL+"/admin/tokens", `{"label":"temp"}`)
	tokens, err := s.ListAccessTokens(context.Background())
	require.NoError(t, err)
	require.Len(t, tokens, 1)

	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/admin/tokens/"+tokens[0].ID, "")
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/admin/tokens/"+tokens[0].ID, "")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
