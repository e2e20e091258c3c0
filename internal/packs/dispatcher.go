// ABOUTME: Dispatches tool calls to registered handlers with a uniform result envelope.
// ABOUTME: Handler errors and panics become error results, never transport failures.

package packs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"
)

// ErrToolNotFound indicates the requested tool is not registered.
var ErrToolNotFound = errors.New("tool not found")

// DefaultTimeout is the default timeout for tool execution.
const DefaultTimeout = 30 * time.Second

// Result is the outcome of a tool call. Text carries the payload either
// way; IsError marks handler failures so callers can surface them as
// tool-level errors rather than protocol errors.
type Result struct {
	Text    string
	IsError bool
}

// Dispatcher executes tool calls against a Registry.
type Dispatcher struct {
	registry *Registry
	logger   *slog.Logger
	timeout  time.Duration
}

// DispatcherConfig contains configuration options for the Dispatcher.
type DispatcherConfig struct {
	Registry *Registry
	Logger   *slog.Logger
	Timeout  time.Duration
}

// NewDispatcher creates a new Dispatcher with the given configuration.
func NewDispatcher(cfg DispatcherConfig) *Dispatcher {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		registry: cfg.Registry,
		logger:   logger,
		timeout:  timeout,
	}
}

// Dispatch runs the named tool with the given input. An unregistered
// tool name is the only per-call condition reported as an error; every
// failure inside the handler, panics included, comes back as a Result
// with IsError set so the caller never loses the invocation.
func (d *Dispatcher) Dispatch(ctx context.Context, toolName string, input json.RawMessage) (*Result, error) {
	tool := d.registry.GetToolByName(toolName)
	if tool == nil {
		d.logger.Debug("tool not found", "tool_name", toolName)
		return nil, fmt.Errorf("%w: %s", ErrToolNotFound, toolName)
	}

	if len(input) == 0 || string(input) == "null" {
		input = json.RawMessage("{}")
	}

	ctx, cancel := context.WithTimeout(ctx, d.timeout)
	defer cancel()

	d.logger.Debug("dispatching tool call", "tool_name", toolName)

	text, err := d.runHandler(ctx, tool, input)
	if err != nil {
		d.logger.Warn("tool call failed",
			"tool_name", toolName,
			"error", err,
		)
		return &Result{Text: err.Error(), IsError: true}, nil
	}

	return &Result{Text: text}, nil
}

// runHandler invokes the handler, converting panics into errors so one
// bad tool cannot take down the server.
func (d *Dispatcher) runHandler(ctx context.Context, tool *Tool, input json.RawMessage) (text string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			d.logger.Error("tool handler panicked",
				"tool_name", tool.Definition.Name,
				"panic", rec,
			)
			err = fmt.Errorf("internal error in tool %s: %v", tool.Definition.Name, rec)
		}
	}()
	return tool.Handler(ctx, input)
}

// HasTool reports whether a tool with the given name is registered.
func (d *Dispatcher) HasTool(toolName string) bool {
	return d.registry.GetToolByName(toolName) != nil
}

// GetToolDefinition returns the definition for a tool name, or nil.
func (d *Dispatcher) GetToolDefinition(toolName string) *ToolDefinition {
	tool := d.registry.GetToolByName(toolName)
	if tool == nil {
		return nil
	}
	return tool.Definition
}
