// ABOUTME: AI agents pack covers voice agents, call logs, and conversation AI agents.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// AIAgentsPack creates the pack of AI agent management tools.
func AIAgentsPack(r *tenant.Resolver) *packs.Pack {
	h := &aiAgentHandlers{resolver: r}
	return &packs.Pack{
		ID: "aiagents",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_voice_agents",
					Description:          "List voice AI agents",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.ListVoiceAgents,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_voice_agent",
					Description:          "Fetch a voice AI agent by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"agentId":{"type":"string"},"locationId":{"type":"string"}},"required":["agentId"]}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.GetVoiceAgent,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_voice_agent",
					Description:          "Create a voice AI agent",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"prompt":{"type":"string"},"voice":{"type":"string"},"locationId":{"type":"string"}},"required":["name"]}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.CreateVoiceAgent,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_voice_agent",
					Description:          "Delete a voice AI agent",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"agentId":{"type":"string"},"locationId":{"type":"string"}},"required":["agentId"]}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.DeleteVoiceAgent,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_call_logs",
					Description:          "List voice AI call logs",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"agentId":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.ListCallLogs,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_conversation_agent",
					Description:          "Fetch a conversation AI agent by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"agentId":{"type":"string"},"locationId":{"type":"string"}},"required":["agentId"]}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.GetConversationAgent,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_conversation_agent",
					Description:          "Create a conversation AI agent",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"prompt":{"type":"string"},"locationId":{"type":"string"}},"required":["name"]}`),
					RequiredCapabilities: []string{"aiagents"},
				},
				Handler: h.CreateConversationAgent,
			},
		},
	}
}

type aiAgentHandlers struct {
	resolver *tenant.Resolver
}

type agentIDInput struct {
	AgentID    string `json:"agentId"`
	LocationID string `json:"locationId"`
}

type agentListInput struct {
	AgentID    string `json:"agentId"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (h *aiAgentHandlers) ListVoiceAgents(ctx context.Context, input json.RawMessage) (string, error) {
	var in agentListInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListVoiceAgents(ctx, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
		})
	})
}

func (h *aiAgentHandlers) GetVoiceAgent(ctx context.Context, input json.RawMessage) (string, error) {
	var in agentIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.AgentID == "" {
		return "", fmt.Errorf("agentId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetVoiceAgent(ctx, in.AgentID)
	})
}

func (h *aiAgentHandlers) CreateVoiceAgent(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateVoiceAgent(ctx, body)
	})
}

func (h *aiAgentHandlers) DeleteVoiceAgent(ctx context.Context, input json.RawMessage) (string, error) {
	var in agentIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.AgentID == "" {
		return "", fmt.Errorf("agentId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteVoiceAgent(ctx, in.AgentID)
	})
}

func (h *aiAgentHandlers) ListCallLogs(ctx context.Context, input json.RawMessage) (string, error) {
	var in agentListInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCallLogs(ctx, map[string]string{
			"agentId": in.AgentID,
			"limit":   intParam(in.Limit),
		})
	})
}

func (h *aiAgentHandlers) GetConversationAgent(ctx context.Context, input json.RawMessage) (string, error) {
	var in agentIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.AgentID == "" {
		return "", fmt.Errorf("agentId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetConversationAgent(ctx, in.AgentID)
	})
}

func (h *aiAgentHandlers) CreateConversationAgent(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateConversationAgent(ctx, body)
	})
}
