// ABOUTME: Locations pack covers account settings, tags, custom values, and users.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// LocationsPack creates the pack of location administration tools.
func LocationsPack(r *tenant.Resolver) *packs.Pack {
	h := &locationHandlers{resolver: r}
	return &packs.Pack{
		ID: "locations",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_location",
					Description:          "Fetch the account's location settings",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "update_location",
					Description:          "Update location settings such as name or business info",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"phone":{"type":"string"},"email":{"type":"string"},"website":{"type":"string"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.Update,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_location_tags",
					Description:          "List tags defined in the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.ListTags,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_location_tag",
					Description:          "Create a tag in the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"locationId":{"type":"string"}},"required":["name"]}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.CreateTag,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_location_tag",
					Description:          "Delete a tag from the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"tagId":{"type":"string"},"locationId":{"type":"string"}},"required":["tagId"]}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.DeleteTag,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_custom_values",
					Description:          "List custom values defined in the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.ListCustomValues,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_custom_value",
					Description:          "Create a custom value in the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"value":{"type":"string"},"locationId":{"type":"string"}},"required":["name","value"]}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.CreateCustomValue,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_users",
					Description:          "List users with access to the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"locations"},
				},
				Handler: h.ListUsers,
			},
		},
	}
}

type locationHandlers struct {
	resolver *tenant.Resolver
}

type locationScope struct {
	LocationID string `json:"locationId"`
}

func (h *locationHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in locationScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetLocation(ctx)
	})
}

func (h *locationHandlers) Update(ctx context.Context, input json.RawMessage) (string, error) {
	var scope locationScope
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpdateLocation(ctx, body)
	})
}

func (h *locationHandlers) ListTags(ctx context.Context, input json.RawMessage) (string, error) {
	var in locationScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListLocationTags(ctx)
	})
}

type createTagInput struct {
	Name       string `json:"name"`
	LocationID string `json:"locationId"`
}

func (h *locationHandlers) CreateTag(ctx context.Context, input json.RawMessage) (string, error) {
	var in createTagInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.Name == "" {
		return "", fmt.Errorf("name is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateTag(ctx, in.Name)
	})
}

type deleteTagInput struct {
	TagID      string `json:"tagId"`
	LocationID string `json:"locationId"`
}

func (h *locationHandlers) DeleteTag(ctx context.Context, input json.RawMessage) (string, error) {
	var in deleteTagInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.TagID == "" {
		return "", fmt.Errorf("tagId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteTag(ctx, in.TagID)
	})
}

func (h *locationHandlers) ListCustomValues(ctx context.Context, input json.RawMessage) (string, error) {
	var in locationScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCustomValues(ctx)
	})
}

type createCustomValueInput struct {
	Name       string `json:"name"`
	Value      string `json:"value"`
	LocationID string `json:"locationId"`
}

func (h *locationHandlers) CreateCustomValue(ctx context.Context, input json.RawMessage) (string, error) {
	var in createCustomValueInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.Name == "" || in.Value == "" {
		return "", fmt.Errorf("name and value are required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateCustomValue(ctx, in.Name, in.Value)
	})
}

func (h *locationHandlers) ListUsers(ctx context.Context, input json.RawMessage) (string, error) {
	var in locationScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListUsers(ctx)
	})
}
