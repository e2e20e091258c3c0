// ABOUTME: Conversation and messaging endpoints of the GHL API

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// SearchConversations searches conversations in the bound location.
func (c *Client) SearchConversations(ctx context.Context, contactID, query, limit string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/conversations/search", RequestOptions{
		Query: map[string]string{
			"locationId": c.locationID,
			"contactId":  contactID,
			"q":          query,
			"limit":      limit,
		},
		Version: VersionStandard,
	})
}

// GetConversation fetches one conversation.
func (c *Client) GetConversation(ctx context.Context, conversationID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/conversations/"+conversationID, RequestOptions{
		Version: VersionStandard,
	})
}

// CreateConversation opens a conversation with a contact.
func (c *Client) CreateConversation(ctx context.Context, contactID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/conversations/", RequestOptions{
		Body:    map[string]any{"contactId": contactID, "locationId": c.locationID},
		Version: VersionStandard,
	})
}

// DeleteConversation removes a conversation.
func (c *Client) DeleteConversation(ctx context.Context, conversationID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/conversations/"+conversationID, RequestOptions{
		Version: VersionStandard,
	})
}

// GetConversationMessages pages through a conversation's messages.
func (c *Client) GetConversationMessages(ctx context.Context, conversationID, limit string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/conversations/"+conversationID+"/messages", RequestOptions{
		Query:   map[string]string{"limit": limit},
		Version: VersionStandard,
	})
}

// SendConversationMessage sends an outbound message (SMS, email, etc.)
// depending on the payload's type field.
func (c *Client) SendConversationMessage(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/conversations/messages", RequestOptions{
		Body:    data,
		Version: VersionStandard,
	})
}
