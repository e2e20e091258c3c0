// ABOUTME: Misc pack covers products, media, custom objects, company info, and phone numbers.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// MiscPack creates the pack of product, company, and phone tools.
func MiscPack(r *tenant.Resolver) *packs.Pack {
	h := &miscHandlers{resolver: r}
	return &packs.Pack{
		ID: "misc",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_products",
					Description:          "List products in an account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.ListProducts,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_product",
					Description:          "Fetch a product by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"productId":{"type":"string"},"locationId":{"type":"string"}},"required":["productId"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.GetProduct,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "create_product",
					Description:          "Create a product",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"name":{"type":"string"},"productType":{"type":"string"},"description":{"type":"string"},"locationId":{"type":"string"}},"required":["name","productType"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.CreateProduct,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "delete_product",
					Description:          "Delete a product",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"productId":{"type":"string"},"locationId":{"type":"string"}},"required":["productId"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.DeleteProduct,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_product_prices",
					Description:          "List prices defined for a product",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"productId":{"type":"string"},"locationId":{"type":"string"}},"required":["productId"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.ListPrices,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_company",
					Description:          "Fetch agency company details",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"companyId":{"type":"string"},"locationId":{"type":"string"}},"required":["companyId"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.GetCompany,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_phone_numbers",
					Description:          "List phone numbers provisioned for the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.ListPhoneNumbers,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_media_files",
					Description:          "List files in the media library",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"query":{"type":"string"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.ListMediaFiles,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_custom_objects",
					Description:          "List custom object schemas defined for the account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.ListCustomObjects,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "search_custom_object_records",
					Description:          "Search records of a custom object schema",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"objectKey":{"type":"string"},"page":{"type":"integer"},"pageLimit":{"type":"integer"},"query":{"type":"string"},"locationId":{"type":"string"}},"required":["objectKey"]}`),
					RequiredCapabilities: []string{"misc"},
				},
				Handler: h.SearchCustomObjectRecords,
			},
		},
	}
}

type miscHandlers struct {
	resolver *tenant.Resolver
}

type miscPageInput struct {
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (h *miscHandlers) ListProducts(ctx context.Context, input json.RawMessage) (string, error) {
	var in miscPageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListProducts(ctx, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
		})
	})
}

type productIDInput struct {
	ProductID  string `json:"productId"`
	LocationID string `json:"locationId"`
}

func (h *miscHandlers) GetProduct(ctx context.Context, input json.RawMessage) (string, error) {
	var in productIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ProductID == "" {
		return "", fmt.Errorf("productId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetProduct(ctx, in.ProductID)
	})
}

func (h *miscHandlers) CreateProduct(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId")
	if err != nil {
		return "", err
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.CreateProduct(ctx, body)
	})
}

func (h *miscHandlers) DeleteProduct(ctx context.Context, input json.RawMessage) (string, error) {
	var in productIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ProductID == "" {
		return "", fmt.Errorf("productId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.DeleteProduct(ctx, in.ProductID)
	})
}

func (h *miscHandlers) ListPrices(ctx context.Context, input json.RawMessage) (string, error) {
	var in productIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.ProductID == "" {
		return "", fmt.Errorf("productId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListProductPrices(ctx, in.ProductID)
	})
}

type companyIDInput struct {
	CompanyID  string `json:"companyId"`
	LocationID string `json:"locationId"`
}

func (h *miscHandlers) GetCompany(ctx context.Context, input json.RawMessage) (string, error) {
	var in companyIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.CompanyID == "" {
		return "", fmt.Errorf("companyId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetCompany(ctx, in.CompanyID)
	})
}

func (h *miscHandlers) ListPhoneNumbers(ctx context.Context, input json.RawMessage) (string, error) {
	var in struct {
		LocationID string `json:"locationId"`
	}
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListPhoneNumbers(ctx)
	})
}

func (h *miscHandlers) ListMediaFiles(ctx context.Context, input json.RawMessage) (string, error) {
	var in struct {
		Limit      int    `json:"limit"`
		Offset     int    `json:"offset"`
		Query      string `json:"query"`
		LocationID string `json:"locationId"`
	}
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListMediaFiles(ctx, map[string]string{
			"limit":  intParam(in.Limit),
			"offset": intParam(in.Offset),
			"query":  in.Query,
		})
	})
}

func (h *miscHandlers) ListCustomObjects(ctx context.Context, input json.RawMessage) (string, error) {
	var in struct {
		LocationID string `json:"locationId"`
	}
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListCustomObjects(ctx)
	})
}

func (h *miscHandlers) SearchCustomObjectRecords(ctx context.Context, input json.RawMessage) (string, error) {
	var scope struct {
		ObjectKey  string `json:"objectKey"`
		LocationID string `json:"locationId"`
	}
	body, err := decodeBody(input, &scope, "locationId", "objectKey")
	if err != nil {
		return "", err
	}
	if scope.ObjectKey == "" {
		return "", fmt.Errorf("objectKey is required")
	}
	return call(ctx, h.resolver, scope.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.SearchCustomObjectRecords(ctx, scope.ObjectKey, body)
	})
}
