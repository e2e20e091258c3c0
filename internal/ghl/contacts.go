// ABOUTME: Contact endpoints of the GHL API
// ABOUTME: Thin wrappers over Client.Request with fixed paths and versions

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// SearchContacts searches contacts in the bound location by free text.
func (c *Client) SearchContacts(ctx context.Context, query, limit string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/contacts/", RequestOptions{
		Query:   map[string]string{"locationId": c.locationID, "query": query, "limit": limit},
		Version: VersionStandard,
	})
}

// GetContact fetches full details for one contact.
func (c *Client) GetContact(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/contacts/"+contactID, RequestOptions{
		Version: VersionStandard,
	})
}

// CreateContact creates a contact, scoping it to the bound location when
// the payload does not name one.
func (c *Client) CreateContact(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/contacts/", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// UpdateContact applies a partial update to a contact.
func (c *Client) UpdateContact(ctx context.Context, contactID string, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPut, "/contacts/"+contactID, RequestOptions{
		Body:    data,
		Version: VersionStandard,
	})
}

// DeleteContact removes a contact.
func (c *Client) DeleteContact(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/contacts/"+contactID, RequestOptions{
		Version: VersionStandard,
	})
}

// UpsertContact creates or merges a contact by email/phone.
func (c *Client) UpsertContact(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/contacts/upsert", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// ListContactNotes lists the notes attached to a contact.
func (c *Client) ListContactNotes(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/contacts/"+contactID+"/notes", RequestOptions{
		Version: VersionStandard,
	})
}

// CreateContactNote attaches a note to a contact.
func (c *Client) CreateContactNote(ctx context.Context, contactID, body string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/contacts/"+contactID+"/notes", RequestOptions{
		Body:    map[string]any{"body": body},
		Version: VersionStandard,
	})
}

// AddContactTags adds tags to a contact.
func (c *Client) AddContactTags(ctx context.Context, contactID string, tags []string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/contacts/"+contactID+"/tags", RequestOptions{
		Body:    map[string]any{"tags": tags},
		Version: VersionStandard,
	})
}

// withLocation copies data and fills in locationId from the bound scope
// when the payload does not carry one.
func (c *Client) withLocation(data map[string]any) map[string]any {
	out := make(map[string]any, len(data)+1)
	for k, v := range data {
		out[k] = v
	}
	if _, ok := out["locationId"]; !ok {
		out["locationId"] = c.locationID
	}
	return out
}
