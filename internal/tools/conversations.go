// ABOUTME: Conversations pack covers conversation search, messages, and sending.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// ConversationsPack creates the pack of conversation and messaging tools.
func ConversationsPack(r *tenant.Resolver) *packs.Pack {
	h := &conversationHandlers{resolver: r}
	return &packs.Pack{
		ID: "conversations",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "search_conversations",
					Description:          "Search conversations, optionally scoped to a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"query":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Search,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_conversation",
					Description:          "Fetch a conversation by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"conversationId":{"type":"string"},"locationId":{"type":"string"}},"required":["conversationId"]}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_conversation",
					Description:          "Start a conversation with a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"contactId":{"type":"string"},"locationId":{"type":"string"}},"required":["contactId"]}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Create,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_conversation",
					Description:          "Delete a conversation",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"conversationId":{"type":"string"},"locationId":{"type":"string"}},"required":["conversationId"]}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Delete,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_messages",
					Description:          "List messages in a conversation",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"conversationId":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}},"required":["conversationId"]}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Messages,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "send_message",
					Description:          "Send an SMS or email message to a contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"type":{"type":"string","enum":["SMS","Email"]},"contactId":{"type":"string"},"message":{"type":"string"},"subject":{"type":"string"},"html":{"type":"string"},"locationId":{"type":"string"}},"required":["type","contactId"]}`),
					RequiredCapabilities: []string{"conversations"},
				},
				Handler: h.Send,
			},
		},
	}
}

type conversationHandlers struct {
	resolver *tenant.Resolver
}

type conversationSearchInput struct {
	ContactID  string `json:"contactId"`
	Query      string `json:"query"`
	Limit      int    `json:"limit"`
	LocationID string `json:"locationId"`
}

func (h *conversationHandlers) Search(ctx context.Context, input json.RawMessage) (string, error) {
	var in conversationSearchInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.SearchConversations(ctx, in.ContactID, in.Query, intParam(in.Limit))
	})
}

type conversationIDInput struct {
	ConversationID string `json:"conversationId"`
	LocationID     string `json:"locationId"`
}

func (h *conversationHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in conversationIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ConversationID == "" {
		return "", fmt.Errorf("conversationId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetConversation(ctx, in.ConversationID)
	})
}

type conversationContactInput struct {
	ContactID  string `json:"contactId"`
	LocationID string `json:"locationId"`
}

func (h *conversationHandlers) Create(ctx context.Context, input json.RawMessage) (string, error) {
	var in conversationContactInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ContactID == "" {
		return "", fmt.Errorf("contactId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateConversation(ctx, in.ContactID)
	})
}

func (h *conversationHandlers) Delete(ctx context.Context, input json.RawMessage) (string, error) {
	var in conversationIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ConversationID == "" {
		return "", fmt.Errorf("conversationId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteConversation(ctx, in.ConversationID)
	})
}

type messagesInput struct {
	ConversationID string `json:"conversationId"`
	Limit          int    `json:"limit"`
	LocationID     string `json:"locationId"`
}

func (h *conversationHandlers) Messages(ctx context.Context, input json.RawMessage) (string, error) {
	var in messagesInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ConversationID == "" {
		return "", fmt.Errorf("conversationId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetConversationMessages(ctx, in.ConversationID, intParam(in.Limit))
	})
}

type sendMessageInput struct {
	Type       string `json:"type"`
	ContactID  string `json:"contactId"`
	LocationID string `json:"locationId"`
}

func (h *conversationHandlers) Send(ctx context.Context, input json.RawMessage) (string, error) {
	var in sendMessageInput
	body, err := decodeBody(input, &in, "locationId")
	if err != nil {
		return "", err
	}
	if in.Type == "" || in.ContactID == "" {
		return "", fmt.Errorf("type and contactId are required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.SendConversationMessage(ctx, body)
	})
}
