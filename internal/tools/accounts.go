// ABOUTME: Accounts pack manages the tenant credential registry.
// ABOUTME: Tool responses always mask API keys; full keys exist only in the store.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/store"
)

// AccountsPack creates the pack of tenant registry management tools.
func AccountsPack(s store.TenantStore) *packs.Pack {
	h := &accountHandlers{store: s}
	return &packs.Pack{
		ID: "accounts",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "add_account",
					Description:          "Register a GHL sub-account or agency credential",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"id":{"type":"string","description":"GHL location or company ID"},"name":{"type":"string"},"apiKey":{"type":"string"},"kind":{"type":"string","enum":["agency","sub_account"]},"isDefault":{"type":"boolean"},"notes":{"type":"string"}},"required":["id","name","apiKey"]}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.Add,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_accounts",
					Description:          "List registered GHL accounts with masked keys",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{}}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.List,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_account",
					Description:          "Look up a registered account by ID or fuzzy name match",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"},"name":{"type":"string"}}}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "set_default_account",
					Description:          "Make an account the default for unscoped tool calls",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.SetDefault,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "rotate_account_key",
					Description:          "Replace the stored API key for an account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"},"apiKey":{"type":"string"}},"required":["id","apiKey"]}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.RotateKey,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "remove_account",
					Description:          "Delete a registered account credential",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"id":{"type":"string"}},"required":["id"]}`),
					RequiredCapabilities: []string{"accounts"},
				},
				Handler: h.Remove,
			},
		},
	}
}

type accountHandlers struct {
	store store.TenantStore
}

// accountView is the masked form of a credential used in tool output.
type accountView struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"apiKey"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
	Notes     string `json:"notes,omitempty"`
}

func maskedView(c *store.TenantCredential) accountView {
	return accountView{
		ID:        c.ID,
		Name:      c.Name,
		APIKey:    maskKey(c.APIKey),
		Kind:      c.Kind,
		IsDefault: c.IsDefault,
		Notes:     c.Notes,
	}
}

type addAccountInput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	APIKey    string `json:"apiKey"`
	Kind      string `json:"kind"`
	IsDefault bool   `json:"isDefault"`
	Notes     string `json:"notes"`
}

func (h *accountHandlers) Add(ctx context.Context, input json.RawMessage) (string, error) {
	var in addAccountInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ID == "" || in.Name == "" || in.APIKey == "" {
		return "", fmt.Errorf("id, name, and apiKey are required")
	}
	kind := in.Kind
	if kind == "" {
		kind = store.KindSubAccount
	}

	cred := store.TenantCredential{
		ID:        in.ID,
		Name:      in.Name,
		APIKey:    in.APIKey,
		Kind:      kind,
		IsDefault: in.IsDefault,
		Notes:     in.Notes,
	}
	if err := h.store.UpsertTenant(ctx, &cred); err != nil {
		return "", err
	}

	out, err := json.Marshal(map[string]any{
		"status":  "registered",
		"account": maskedView(&cred),
	})
	if err != nil {
		return "", err
	}
	return ok(out)
}

func (h *accountHandlers) List(ctx context.Context, input json.RawMessage) (string, error) {
	creds, err := h.store.ListTenants(ctx)
	if err != nil {
		return "", err
	}

	views := make([]accountView, len(creds))
	for i := range creds {
		views[i] = maskedView(creds[i])
	}
	out, err := json.Marshal(map[string]any{
		"accounts": views,
		"count":    len(views),
	})
	if err != nil {
		return "", err
	}
	return ok(out)
}

type getAccountInput struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func (h *accountHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in getAccountInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}

	var (
		cred *store.TenantCredential
		err  error
	)
	switch {
	case in.ID != "":
		cred, err = h.store.GetTenant(ctx, in.ID)
	case in.Name != "":
		cred, err = h.store.GetTenantByName(ctx, in.Name)
	default:
		return "", fmt.Errorf("id or name is required")
	}
	if err != nil {
		return "", err
	}

	out, err := json.Marshal(maskedView(cred))
	if err != nil {
		return "", err
	}
	return ok(out)
}

type accountIDInput struct {
	ID string `json:"id"`
}

func (h *accountHandlers) SetDefault(ctx context.Context, input json.RawMessage) (string, error) {
	var in accountIDInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ID == "" {
		return "", fmt.Errorf("id is required")
	}

	if err := h.store.SetDefaultTenant(ctx, in.ID); err != nil {
		return "", err
	}
	out, _ := json.Marshal(map[string]string{"status": "default set", "id": in.ID})
	return ok(out)
}

type rotateKeyInput struct {
	ID     string `json:"id"`
	APIKey string `json:"apiKey"`
}

func (h *accountHandlers) RotateKey(ctx context.Context, input json.RawMessage) (string, error) {
	var in rotateKeyInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ID == "" || in.APIKey == "" {
		return "", fmt.Errorf("id and apiKey are required")
	}

	if err := h.store.UpdateTenantAPIKey(ctx, in.ID, in.APIKey); err != nil {
		return "", err
	}
	out, _ := json.Marshal(map[string]string{
		"status": "key rotated",
		"id":     in.ID,
		"apiKey": maskKey(in.APIKey),
	})
	return ok(out)
}

func (h *accountHandlers) Remove(ctx context.Context, input json.RawMessage) (string, error) {
	var in accountIDInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ID == "" {
		return "", fmt.Errorf("id is required")
	}

	if err := h.store.DeleteTenant(ctx, in.ID); err != nil {
		return "", err
	}
	out, _ := json.Marshal(map[string]string{"status": "removed", "id": in.ID})
	return ok(out)
}
