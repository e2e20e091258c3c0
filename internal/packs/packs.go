// ABOUTME: Core types for in-process tool packs.
// ABOUTME: A pack is a named group of tools with JSON-schema inputs and handlers.

package packs

import (
	"context"
	"encoding/json"
)

// ToolHandler executes a tool. It receives the tool input as JSON and
// returns the result text (usually pretty-printed JSON) or an error.
type ToolHandler func(ctx context.Context, input json.RawMessage) (string, error)

// ToolDefinition describes a tool for discovery.
type ToolDefinition struct {
	Name                 string
	Description          string
	InputSchema          json.RawMessage
	RequiredCapabilities []string
}

// Tool pairs a definition with its handler.
type Tool struct {
	Definition *ToolDefinition
	Handler    ToolHandler
}

// Pack is a collection of tools registered under one ID. The pack ID
// doubles as the capability name that grants access to its tools.
type Pack struct {
	ID    string
	Tools []*Tool
}
