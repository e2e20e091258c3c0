// ABOUTME: Opportunities pack covers pipeline deals and pipeline discovery.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// OpportunitiesPack creates the pack of opportunity and pipeline tools.
func OpportunitiesPack(r *tenant.Resolver) *packs.Pack {
	h := &opportunityHandlers{resolver: r}
	return &packs.Pack{
		ID: "opportunities",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "search_opportunities",
					Description:          "Search opportunities by pipeline, stage, status, or contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"pipelineId":{"type":"string"},"pipelineStageId":{"type":"string"},"status":{"type":"string"},"contactId":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Search,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_opportunity",
					Description:          "Fetch an opportunity by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"opportunityId":{"type":"string"},"locationId":{"type":"string"}},"required":["opportunityId"]}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Get,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_opportunity",
					Description:          "Create an opportunity in a pipeline",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"pipelineId":{"type":"string"},"name":{"type":"string"},"contactId":{"type":"string"},"status":{"type":"string"},"monetaryValue":{"type":"number"},"locationId":{"type":"string"}},"required":["pipelineId","name"]}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Create,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "update_opportunity",
					Description:          "Update fields on an opportunity",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"opportunityId":{"type":"string"},"name":{"type":"string"},"status":{"type":"string"},"pipelineStageId":{"type":"string"},"monetaryValue":{"type":"number"},"locationId":{"type":"string"}},"required":["opportunityId"]}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Update,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_opportunity",
					Description:          "Delete an opportunity",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"opportunityId":{"type":"string"},"locationId":{"type":"string"}},"required":["opportunityId"]}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Delete,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_pipelines",
					Description:          "List sales pipelines and their stages",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"opportunities"},
				},
				Handler: h.Pipelines,
			},
		},
	}
}

type opportunityHandlers struct {
	resolver *tenant.Resolver
}

type opportunitySearchInput struct {
	PipelineID      string `json:"pipelineId"`
	PipelineStageID string `json:"pipelineStageId"`
	Status          string `json:"status"`
	ContactID       string `json:"contactId"`
	Limit           int    `json:"limit"`
	LocationID      string `json:"locationId"`
}

func (h *opportunityHandlers) Search(ctx context.Context, input json.RawMessage) (string, error) {
	var in opportunitySearchInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.SearchOpportunities(ctx, map[string]string{
			"pipeline_id":       in.PipelineID,
			"pipeline_stage_id": in.PipelineStageID,
			"status":            in.Status,
			"contact_id":        in.ContactID,
			"limit":             intParam(in.Limit),
		})
	})
}

type opportunityIDInput struct {
	OpportunityID string `json:"opportunityId"`
	LocationID    string `json:"locationId"`
}

func (h *opportunityHandlers) Get(ctx context.Context, input json.RawMessage) (string, error) {
	var in opportunityIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.OpportunityID == "" {
		return "", fmt.Errorf("opportunityId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetOpportunity(ctx, in.OpportunityID)
	})
}

func (h *opportunityHandlers) Create(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateOpportunity(ctx, body)
	})
}

func (h *opportunityHandlers) Update(ctx context.Context, input json.RawMessage) (string, error) {
	var in opportunityIDInput
	body, err := decodeBody(input, &in, "locationId", "opportunityId")
	if err != nil {
		return "", err
	}
	if in.OpportunityID == "" {
		return "", fmt.Errorf("opportunityId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.UpdateOpportunity(ctx, in.OpportunityID, body)
	})
}

func (h *opportunityHandlers) Delete(ctx context.Context, input json.RawMessage) (string, error) {
	var in opportunityIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.OpportunityID == "" {
		return "", fmt.Errorf("opportunityId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteOpportunity(ctx, in.OpportunityID)
	})
}

func (h *opportunityHandlers) Pipelines(ctx context.Context, input json.RawMessage) (string, error) {
	var in struct {
		LocationID string `json:"locationId"`
	}
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListPipelines(ctx)
	})
}
