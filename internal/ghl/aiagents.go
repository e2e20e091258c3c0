// ABOUTME: Voice and conversation AI agent endpoints of the GHL API
// ABOUTME: Conversation agent endpoints still require the legacy API revision

package ghl

import (
	"context"
	"encoding/json"
	"net/http"
)

// ListVoiceAgents lists voice AI agents in the bound location.
func (c *Client) ListVoiceAgents(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/voice-ai/agents", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetVoiceAgent fetches one voice AI agent.
func (c *Client) GetVoiceAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/voice-ai/agents/"+agentID, RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// CreateVoiceAgent creates a voice AI agent.
func (c *Client) CreateVoiceAgent(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/voice-ai/agents", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionStandard,
	})
}

// DeleteVoiceAgent removes a voice AI agent.
func (c *Client) DeleteVoiceAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodDelete, "/voice-ai/agents/"+agentID, RequestOptions{
		Query:   map[string]string{"locationId": c.locationID},
		Version: VersionStandard,
	})
}

// ListCallLogs lists voice AI call logs.
func (c *Client) ListCallLogs(ctx context.Context, query map[string]string) (json.RawMessage, error) {
	q := map[string]string{"locationId": c.locationID}
	for k, v := range query {
		q[k] = v
	}
	return c.Request(ctx, http.MethodGet, "/voice-ai/dashboard/call-logs", RequestOptions{
		Query:   q,
		Version: VersionStandard,
	})
}

// GetConversationAgent fetches one conversation AI agent.
func (c *Client) GetConversationAgent(ctx context.Context, agentID string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, "/conversation-ai/agents/"+agentID, RequestOptions{
		Version: VersionLegacy,
	})
}

// CreateConversationAgent creates a conversation AI agent.
func (c *Client) CreateConversationAgent(ctx context.Context, data map[string]any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, "/conversation-ai/agents", RequestOptions{
		Body:    c.withLocation(data),
		Version: VersionLegacy,
	})
}
