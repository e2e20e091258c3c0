// ABOUTME: Automation pack covers workflows, forms, surveys, and their submissions.

package tools

import (
	"context"
	"encoding/json"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// AutomationPack creates the pack of workflow and form tools.
func AutomationPack(r *tenant.Resolver) *packs.Pack {
	h := &automationHandlers{resolver: r}
	return &packs.Pack{
		ID: "automation",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_workflows",
					Description:          "List automation workflows",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"automation"},
				},
				Handler: h.ListWorkflows,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_forms",
					Description:          "List forms",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"skip":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"automation"},
				},
				Handler: h.ListForms,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_form_submissions",
					Description:          "List form submissions, optionally filtered by form or contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"formId":{"type":"string"},"contactId":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"automation"},
				},
				Handler: h.FormSubmissions,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_surveys",
					Description:          "List surveys",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"skip":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"automation"},
				},
				Handler: h.ListSurveys,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_survey_submissions",
					Description:          "List survey submissions, optionally filtered by survey",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"surveyId":{"type":"string"},"limit":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"automation"},
				},
				Handler: h.SurveySubmissions,
			},
		},
	}
}

type automationHandlers struct {
	resolver *tenant.Resolver
}

type automationScope struct {
	LocationID string `json:"locationId"`
}

type automationPageInput struct {
	Limit      int    `json:"limit"`
	Skip       int    `json:"skip"`
	LocationID string `json:"locationId"`
}

func (h *automationHandlers) ListWorkflows(ctx context.Context, input json.RawMessage) (string, error) {
	var in automationScope
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListWorkflows(ctx)
	})
}

func (h *automationHandlers) ListForms(ctx context.Context, input json.RawMessage) (string, error) {
	var in automationPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListForms(ctx, intParam(in.Limit), intParam(in.Skip))
	})
}

type formSubmissionsInput struct {
	FormID     string `json:"formId"`
	ContactID  string `json:"contactId"`
	Limit      int    `json:"limit"`
	LocationID string `json:"locationId"`
}

func (h *automationHandlers) FormSubmissions(ctx context.Context, input json.RawMessage) (string, error) {
	var in formSubmissionsInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetFormSubmissions(ctx, map[string]string{
			"formId":    in.FormID,
			"contactId": in.ContactID,
			"limit":     intParam(in.Limit),
		})
	})
}

func (h *automationHandlers) ListSurveys(ctx context.Context, input json.RawMessage) (string, error) {
	var in automationPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListSurveys(ctx, intParam(in.Limit), intParam(in.Skip))
	})
}

type surveySubmissionsInput struct {
	SurveyID   string `json:"surveyId"`
	Limit      int    `json:"limit"`
	LocationID string `json:"locationId"`
}

func (h *automationHandlers) SurveySubmissions(ctx context.Context, input json.RawMessage) (string, error) {
	var in surveySubmissionsInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetSurveySubmissions(ctx, map[string]string{
			"surveyId": in.SurveyID,
			"limit":    intParam(in.Limit),
		})
	})
}
