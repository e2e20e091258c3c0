// ABOUTME: Marketing pack covers campaigns, email templates, funnels, and trigger links.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// MarketingPack creates the pack of marketing tools.
func MarketingPack(r *tenant.Resolver) *packs.Pack {
	h := &marketingHandlers{resolver: r}
	return &packs.Pack{
		ID: "marketing",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_campaigns",
					Description:          "List marketing campaigns",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.ListCampaigns,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_email_templates",
					Description:          "List email templates",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.ListEmailTemplates,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_email_template",
					Description:          "Delete an email template",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"templateId":{"type":"string"},"locationId":{"type":"string"}},"required":["templateId"]}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.DeleteEmailTemplate,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_funnels",
					Description:          "List funnels",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.ListFunnels,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_funnel_pages",
					Description:          "List pages in a funnel",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"funnelId":{"type":"string"},"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}},"required":["funnelId"]}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.ListFunnelPages,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_trigger_links",
					Description:          "List trigger links",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.ListTriggerLinks,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_trigger_link",
					Description:          "Create a trigger link",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"redirectTo":{"type":"string"},"locationId":{"type":"string"}},"required":["name","redirectTo"]}`),
					RequiredCapabilities: []string{"marketing"},
				},
				Handler: h.CreateTriggerLink,
			},
		},
	}
}

type marketingHandlers struct {
	resolver *tenant.Resolver
}

type marketingScope struct {
	LocationID string `json:"locationId"`
}

type marketingPageInput struct {
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (h *marketingHandlers) ListCampaigns(ctx context.Context, input json.RawMessage) (string, error) {
	var in marketingScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCampaigns(ctx)
	})
}

func (h *marketingHandlers) ListEmailTemplates(ctx context.Context, input json.RawMessage) (string, error) {
	var in marketingPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListEmailTemplates(ctx, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
		})
	})
}

type templateIDInput struct {
	TemplateID string `json:"templateId"`
	LocationID string `json:"locationId"`
}

func (h *marketingHandlers) DeleteEmailTemplate(ctx context.Context, input json.RawMessage) (string, error) {
	var in templateIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.TemplateID == "" {
		return "", fmt.Errorf("templateId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteEmailTemplate(ctx, in.TemplateID)
	})
}

func (h *marketingHandlers) ListFunnels(ctx context.Context, input json.RawMessage) (string, error) {
	var in marketingPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListFunnels(ctx, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
		})
	})
}

type funnelPagesInput struct {
	FunnelID   string `json:"funnelId"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (h *marketingHandlers) ListFunnelPages(ctx context.Context, input json.RawMessage) (string, error) {
	var in funnelPagesInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.FunnelID == "" {
		return "", fmt.Errorf("funnelId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListFunnelPages(ctx, in.FunnelID, intParam(in.Limit), intParam(in.Offset))
	})
}

func (h *marketingHandlers) ListTriggerLinks(ctx context.Context, input json.RawMessage) (string, error) {
	var in marketingScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListTriggerLinks(ctx)
	})
}

func (h *marketingHandlers) CreateTriggerLink(ctx context.Context, input json.RawMessage) (string, error) {
	var scope marketingScope
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateTriggerLink(ctx, body)
	})
}
