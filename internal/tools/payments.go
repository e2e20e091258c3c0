// ABOUTME: Payments pack covers invoices, orders, transactions, and subscriptions.

package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/packs"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// PaymentsPack creates the pack of billing and payment tools.
func PaymentsPack(r *tenant.Resolver) *packs.Pack {
	h := &paymentHandlers{resolver: r}
	return &packs.Pack{
		ID: "payments",
		Tools: []*packs.Tool{
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_invoices",
					Description:          "List invoices in an account",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"status":{"type":"string"},"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.ListInvoices,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_invoice",
					Description:          "Fetch an invoice by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"invoiceId":{"type":"string"},"locationId":{"type":"string"}},"required":["invoiceId"]}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.GetInvoice,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "send_invoice",
					Description:          "Send an invoice to its contact",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"invoiceId":{"type":"string"},"locationId":{"type":"string"}},"required":["invoiceId"]}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.SendInvoice,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "void_invoice",
					Description:          "Void an invoice",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"invoiceId":{"type":"string"},"locationId":{"type":"string"}},"required":["invoiceId"]}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.VoidInvoice,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_orders",
					Description:          "List payment orders",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.ListOrders,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "get_order",
					Description:          "Fetch an order by ID",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"orderId":{"type":"string"},"locationId":{"type":"string"}},"required":["orderId"]}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.GetOrder,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_transactions",
					Description:          "List payment transactions",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.ListTransactions,
			},
			{
				Definition: &packs.ToolDefinition{
					Name:                 "list_subscriptions",
					Description:          "List payment subscriptions",
					InputSchema:          json.RawMessage(`{"type":"object","properties":{"limit":{"type":"integer"},"offset":{"type":"integer"},"locationId":{"type":"string"}}}`),
					RequiredCapabilities: []string{"payments"},
				},
				Handler: h.ListSubscriptions,
			},
		},
	}
}

type paymentHandlers struct {
	resolver *tenant.Resolver
}

type pageInput struct {
	Status     string `json:"status"`
	Limit      int    `json:"limit"`
	Offset     int    `json:"offset"`
	LocationID string `json:"locationId"`
}

func (p pageInput) query() map[string]string {
	return map[string]string{
		"status": p.Status,
		"limit":  intParam(p.Limit),
		"offset": intParam(p.Offset),
	}
}

func (h *paymentHandlers) ListInvoices(ctx context.Context, input json.RawMessage) (string, error) {
	var in pageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListInvoices(ctx, in.query())
	})
}

type invoiceIDInput struct {
	InvoiceID  string `json:"invoiceId"`
	LocationID string `json:"locationId"`
}

func (h *paymentHandlers) GetInvoice(ctx context.Context, input json.RawMessage) (string, error) {
	var in invoiceIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.InvoiceID == "" {
		return "", fmt.Errorf("invoiceId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetInvoice(ctx, in.InvoiceID)
	})
}

func (h *paymentHandlers) SendInvoice(ctx context.Context, input json.RawMessage) (string, error) {
	var in invoiceIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.InvoiceID == "" {
		return "", fmt.Errorf("invoiceId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.SendInvoice(ctx, in.InvoiceID)
	})
}

func (h *paymentHandlers) VoidInvoice(ctx context.Context, input json.RawMessage) (string, error) {
	var in invoiceIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.InvoiceID == "" {
		return "", fmt.Errorf("invoiceId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.VoidInvoice(ctx, in.InvoiceID)
	})
}

func (h *paymentHandlers) ListOrders(ctx context.Context, input json.RawMessage) (string, error) {
	var in pageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListOrders(ctx, in.query())
	})
}

type orderIDInput struct {
	OrderID    string `json:"orderId"`
	LocationID string `json:"locationId"`
}

func (h *paymentHandlers) GetOrder(ctx context.Context, input json.RawMessage) (string, error) {
	var in orderIDInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	if in.OrderID == "" {
		return "", fmt.Errorf("orderId is required")
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.GetOrder(ctx, in.OrderID)
	})
}

func (h *paymentHandlers) ListTransactions(ctx context.Context, input json.RawMessage) (string, error) {
	var in pageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListTransactions(ctx, in.query())
	})
}

func (h *paymentHandlers) ListSubscriptions(ctx context.Context, input json.RawMessage) (string, error) {
	var in pageInput
	if err := decodeInput(input, &in); err != nil {
		return "", err
	}
	return call(ctx, h.resolver, in.LocationID, func(c *ghl.Client) (json.RawMessage, error) {
		return c.ListSubscriptions(ctx, in.query())
	})
}
