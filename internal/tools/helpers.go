// ABOUTME: Shared helpers for tool handlers.
// ABOUTME: Result formatting, key masking, and query parameter conversion.

package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/ghlkit/ghl-gateway/internal/ghl"
	"github.com/ghlkit/ghl-gateway/internal/tenant"
)

// call resolves a client for the given account scope, invokes fn with it,
// and formats the response. Most handlers are one call invocation.
func call(ctx context.Context, r *tenant.Resolver, locationID string, fn func(*ghl.Client) (json.RawMessage, error)) (string, error) {
	client, err := r.Resolve(ctx, locationID)
	if err != nil {
		return "", err
	}
	raw, err := fn(client)
	if err != nil {
		return "", err
	}
	return ok(raw)
}

// decodeInput unmarshals tool input into the given struct, returning a
// uniform error for malformed payloads.
func decodeInput(input json.RawMessage, v any) error {
	if err := json.Unmarshal(input, v); err != nil {
		return fmt.Errorf("invalid input: %w", err)
	}
	return nil
}

// decodeBody splits tool input into routing fields and a pass-through
// request body, dropping the named routing keys from the body.
func decodeBody(input json.RawMessage, routing any, drop ...string) (map[string]any, error) {
	if err := decodeInput(input, routing); err != nil {
		return nil, err
	}
	body := map[string]any{}
	if err := json.Unmarshal(input, &body); err != nil {
		return nil, fmt.Errorf("invalid input: %w", err)
	}
	for _, key := range drop {
		delete(body, key)
	}
	return body, nil
}

// ok formats an API response for tool output. Payloads are pretty-printed
// so agents get readable JSON; an empty payload becomes a success marker.
func ok(raw json.RawMessage) (string, error) {
	if len(raw) == 0 {
		return `{"success": true}`, nil
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		// Non-JSON payloads pass through as-is
		return string(raw), nil
	}
	return buf.String(), nil
}

// maskKey returns a display form of an API key that keeps only the first
// eight characters. Full keys never appear in tool output or logs.
func maskKey(key string) string {
	if len(key) <= 8 {
		return key
	}
	return key[:8] + "..."
}

// intParam converts an optional integer input to a query string value.
// Zero means unset and yields the empty string, which the client omits.
func intParam(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}
