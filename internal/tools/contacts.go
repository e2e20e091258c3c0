// ABOUTME: Contacts pack exposes GHL contact CRUD, notes, and tagging.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// ContactsPack creates the pack of contact management tools.
func ContactsPack(r *tenant.Resolver) *packs.Pack {
	h := &contactHandlers{resolver: r}
	return &packs.Pack{
		ID: "contacts",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "search_contacts",
					Description:          "Search contacts by name, email, or phone",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string","description":"Target account; omit for the default account"}}}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Search,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_contact",
					Description:          "Fetch a contact by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_contact",
					Description:          "Create a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Create,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "update_contact",
					Description:          "Update fields on a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"firstName":{"type":"string"},"lastName":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Update,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "upsert_contact",
					Description:          "Create or update a contact matched by email or phone",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"firstName":{"type":"string"},"lastName":{"type":"string"},"email":{"type":"string"},"phone":{"type":"string"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Upsert,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_contact",
					Description:          "Delete a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.Delete,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_contact_notes",
					Description:          "List notes attached to a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.ListNotes,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_contact_note",
					Description:          "Attach a note to a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"body":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId","body"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.CreateNote,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "add_contact_tags",
					Description:          "Add tags to a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"tags":{"type":"array","items":{"type":"string"}},"locationId":{"type":"string"}},"required":["contactId","tags"]}`),
					RequiredCapabilities: []string{"contacts"},
				},
				Handler: h.AddTags,
			},
		},
	}
}

type contactHandlers struct {
	resolver *tenant.Resolver
}

type searchContactsInput struct {
	Query      string `json:"query"`
	Limit      int    `json:"limit"`
	LocationID string `json:"locationId"`
}

func (h *contactHandlers) Search(ctx context.Context, input json.RawMessage) (string, error) {
	var in searchContactsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.SearchContacts(ctx, in.Query, intParam(in.Limit))
	if err != nil {
		return "", err
	}
	return ok(raw)
}

type contactIDInput struct {
	ContactID  string `json:"contactId"`
	LocationID string `json:"locationId"`
}

func (h *contactHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in contactIDInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ContactID == "" {
		return "", fmt.Errorf("contactId is required")
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.GetContact(ctx, in.ContactID)
	if err != nil {
		return "", err
	}
	return ok(raw)
}

func (h *contactHandlers) Create(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateContact(ctx, body)
	})
}

func (h *contactHandlers) Update(ctx context.Context, input json.RawMessage) (string, error) {
	var in contactIDInput
	body, err := decodeBody(input, &in, "locationId", "contactId")
	if err != nil {
		return "", err
	}
	if in.ContactID == "" {
		return "", fmt.Errorf("contactId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpdateContact(ctx, in.ContactID, body)
	})
}

func (h *contactHandlers) Upsert(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpsertContact(ctx, body)
	})
}

func (h *contactHandlers) Delete(ctx context.Context, input json.RawMessage) (string, error) {
	var in contactIDInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ContactID == "" {
		return "", fmt.Errorf("contactId is required")
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.DeleteContact(ctx, in.ContactID)
	if err != nil {
		return "", err
	}
	return ok(raw)
}

func (h *contactHandlers) ListNotes(ctx context.Context, input json.RawMessage) (string, error) {
	var in contactIDInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ContactID == "" {
		return "", fmt.Errorf("contactId is required")
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.ListContactNotes(ctx, in.ContactID)
	if err != nil {
		return "", err
	}
	return ok(raw)
}

type createNoteInput struct {
	ContactID  string `json:"contactId"`
	Body       string `json:"body"`
	LocationID string `json:"locationId"`
}

func (h *contactHandlers) CreateNote(ctx context.Context, input json.RawMessage) (string, error) {
	var in createNoteInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ContactID == "" || in.Body == "" {
		return "", fmt.Errorf("contactId and body are required")
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.CreateContactNote(ctx, in.ContactID, in.Body)
	if err != nil {
		return "", err
	}
	return ok(raw)
}

type addTagsInput struct {
	ContactID  string   `json:"contactId"`
	Tags       []string `json:"tags"`
	LocationID string   `json:"locationId"`
}

func (h *contactHandlers) AddTags(ctx context.Context, input json.RawMessage) (string, error) {
	var in addTagsInput
	if err := json.Unmarshal(input, &in); err != nil {
		return "", fmt.Errorf("invalid input: %w", err)
	}
	if in.ContactID == "" || len(in.Tags) == 0 {
		return "", fmt.Errorf("contactId and tags are required")
	}
	client, err := h.resolver.Resolve(ctx, in.LocationID)
	if err != nil {
		return "", err
	}
	raw, err := client.AddContactTags(ctx, in.ContactID, in.Tags)
	if err != nil {
		return "", err
	}
	return ok(raw)
}
