// ABOUTME: Admin HTTP API for managing tenant credentials and access tokens
// ABOUTME: All routes are JSON and guarded by the password middleware from auth

package admin

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ghlkit/ghl-gateway/internal/mcp"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

// Admin serves the management API. Tenant API keys are always masked in
// responses; access tokens are returned in cleartext exactly once, at
// mint time.
type Admin struct {
	store  store.Store
	tokens *mcp.TokenStore
	logger *slog.Logger
}

// New creates an Admin handler over the given store.
func New(s store.Store, tokens *mcp.TokenStore, logger *slog.Logger) *Admin {
	if logger == nil {
		logger = slog.Default()
	}
	return &Admin{
		store:  s,
		tokens: tokens,
		logger: logger.With("component", "admin"),
	}
}

// RegisterRoutes registers the admin API on the given mux. The provided
// middleware wraps every route; pass auth.RequirePassword in production.
func (a *Admin) RegisterRoutes(mux *http.ServeMux, middleware func(http.Handler) http.Handler) {
	protect := func(h http.HandlerFunc) http.Handler {
		if middleware == nil {
			return h
		}
		return middleware(h)
	}

	mux.Handle("GET /admin/tenants", protect(a.handleListTenants))
	mux.Handle("POST /admin/tenants", protect(a.handleCreateTenant))
	mux.Handle("GET /admin/tenants/{id}", protect(a.handleGetTenant))
	mux.Handle("DELETE /admin/tenants/{id}", protect(a.handleDeleteTenant))
	mux.Handle("POST /admin/tenants/{id}/default", protect(a.handleSetDefault))
	mux.Handle("POST /admin/tenants/{id}/rotate", protect(a.handleRotateKey))

	mux.Handle("GET /admin/tokens", protect(a.handleListTokens))
	mux.Handle("POST /admin/tokens", protect(a.handleMintToken))
	mux.Handle("DELETE /admin/tokens/{id}", protect(a.handleRevokeToken))
}

// tenantView is the wire representation of a tenant credential. The
// stored API key never leaves the server unmasked.
type tenantView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"api_key"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"is_default"`
	Notes     string `json:"notes,omitempty"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

func toTenantView(c *store.TenantCredential) tenantView {
	return tenantView{
		ID:        c.ID,
		Name:      c.Name,
		APIKey:    maskKey(c.APIKey),
		Kind:      c.Kind,
		IsDefault: c.IsDefault,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func maskKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8] + "..."
}

func (a *Admin) handleListTenants(w http.ResponseWriter, r *http.Request) {
	tenants, err := a.store.ListTenants(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tenants")
		return
	}

	views := make([]tenantView, len(tenants))
	for i, t := range tenants {
		views[i] = toTenantView(t)
	}
	writeJSON(w, http.StatusOK, map[string]any{"tenants": views, "count": len(views)})
}

func (a *Admin) handleCreateTenant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ID      string `json:"id"`
		Name    string `json:"name"`
		APIKey  string `json:"api_key"`
		Kind    string `json:"kind"`
		Notes   string `json:"notes"`
		Default bool   `json:"default"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.ID == "" || req.Name == "" || req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "id, name and api_key are required")
		return
	}
	if req.Kind == "" {
		req.Kind = store.KindSubAccount
	}

	cred := &store.TenantCredential{
		ID:        req.ID,
		Name:      req.Name,
		APIKey:    req.APIKey,
		Kind:      req.Kind,
		IsDefault: req.Default,
		Notes:     req.Notes,
	}
	if err := a.store.UpsertTenant(r.Context(), cred); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save tenant")
		return
	}
	if req.Default {
		if err := a.store.SetDefaultTenant(r.Context(), req.ID); err != nil {
			writeError(w, http.StatusInternalServerError, "failed to set default tenant")
			return
		}
		cred.IsDefault = true
	}

	a.logger.Info("tenant saved", "tenant_id", req.ID, "name", req.Name)
	writeJSON(w, http.StatusCreated, toTenantView(cred))
}

func (a *Admin) handleGetTenant(w http.ResponseWriter, r *http.Request) {
	cred, err := a.store.GetTenant(r.Context(), r.PathValue("id"))
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load tenant")
		return
	}
	writeJSON(w, http.StatusOK, toTenantView(cred))
}

func (a *Admin) handleDeleteTenant(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := a.store.DeleteTenant(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to delete tenant")
		return
	}
	a.logger.Info("tenant deleted", "tenant_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func (a *Admin) handleSetDefault(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := a.store.SetDefaultTenant(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to set default tenant")
		return
	}
	a.logger.Info("default tenant changed", "tenant_id", id)
	writeJSON(w, http.StatusOK, map[string]any{"default": id})
}

func (a *Admin) handleRotateKey(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req struct {
		APIKey string `json:"api_key"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.APIKey == "" {
		writeError(w, http.StatusBadRequest, "api_key is required")
		return
	}

	err := a.store.UpdateTenantAPIKey(r.Context(), id, req.APIKey)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "tenant not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to rotate key")
		return
	}
	a.logger.Info("tenant key rotated", "tenant_id", id)
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "api_key": maskKey(req.APIKey)})
}

// tokenView omits the digest; it is useless to a caller and leaking it
// invites offline comparison against captured tokens.
type tokenView struct {
	ID           string   `json:"id"`
	Label        string   `json:"label"`
	Capabilities []string `json:"capabilities"`
	CreatedAt    string   `json:"created_at"`
}

func (a *Admin) handleListTokens(w http.ResponseWriter, r *http.Request) {
	tokens, err := a.store.ListAccessTokens(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list tokens")
		return
	}

	views := make([]tokenView, len(tokens))
	for i, t := range tokens {
		views[i] = tokenView{
			ID:           t.ID,
			Label:        t.Label,
			Capabilities: t.Capabilities,
			CreatedAt:    t.CreatedAt.Format(time.RFC3339),
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"tokens": views, "count": len(views)})
}

func (a *Admin) handleMintToken(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Label        string   `json:"label"`
		Capabilities []string `json:"capabilities"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.Label == "" {
		writeError(w, http.StatusBadRequest, "label is required")
		return
	}

	raw, err := a.tokens.Mint(r.Context(), req.Label, req.Capabilities)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to mint token")
		return
	}

	a.logger.Info("access token minted", "label", req.Label, "capabilities", req.Capabilities)
	writeJSON(w, http.StatusCreated, map[string]any{
		"token":        raw,
		"label":        req.Label,
		"capabilities": req.Capabilities,
		"note":         "store this token now; it cannot be retrieved again",
	})
}

func (a *Admin) handleRevokeToken(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	err := a.store.DeleteAccessToken(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "token not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to revoke token")
		return
	}
	a.logger.Info("access token revoked", "token_id", id)
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
