// ABOUTME: Tests for the tool dispatcher.
// ABOUTME: Covers success, handler errors, panics, timeouts, and unknown tools.

package packs

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func newTestDispatcher(t *testing.T, tools ...*Tool) *Dispatcher {
	t.Helper()
	r := NewRegistry(testLogger())
	if err := r.RegisterPack(&Pack{ID: "test", Tools: tools}); err != nil {
		t.Fatalf("RegisterPack: %v", err)
	}
	return NewDispatcher(DispatcherConfig{Registry: r, Logger: testLogger()})
}

func TestDispatchSuccess(t *testing.T) {
	d := newTestDispatcher(t, &Tool{
		Definition: &ToolDefinition{Name: "echo"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return string(input), nil
		},
	})

	result, err := d.Dispatch(context.Background(), "echo", json.RawMessage(`{"x":1}`))
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.IsError {
		t.Error("unexpected IsError")
	}
	if result.Text != `{"x":1}` {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestDispatchNilInputBecomesEmptyObject(t *testing.T) {
	d := newTestDispatcher(t, &Tool{
		Definition: &ToolDefinition{Name: "echo"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return string(input), nil
		},
	})

	result, err := d.Dispatch(context.Background(), "echo", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if result.Text != "{}" {
		t.Errorf("Text = %q, want {}", result.Text)
	}
}

func TestDispatchHandlerErrorBecomesResult(t *testing.T) {
	d := newTestDispatcher(t, &Tool{
		Definition: &ToolDefinition{Name: "broken"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return "", errors.New("GHL API Error 404: Not Found")
		},
	})

	result, err := d.Dispatch(context.Background(), "broken", nil)
	if err != nil {
		t.Fatalf("handler error must not become dispatch error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError")
	}
	if result.Text != "GHL API Error 404: Not Found" {
		t.Errorf("Text = %q", result.Text)
	}
}

func TestDispatchPanicBecomesResult(t *testing.T) {
	d := newTestDispatcher(t, &Tool{
		Definition: &ToolDefinition{Name: "panicky"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			panic("boom")
		},
	})

	result, err := d.Dispatch(context.Background(), "panicky", nil)
	if err != nil {
		t.Fatalf("panic must not become dispatch error: %v", err)
	}
	if !result.IsError {
		t.Error("expected IsError after panic")
	}
	if !strings.Contains(result.Text, "boom") {
		t.Errorf("Text = %q, want panic value included", result.Text)
	}
}

func TestDispatchUnknownTool(t *testing.T) {
	d := newTestDispatcher(t)

	_, err := d.Dispatch(context.Background(), "missing", nil)
	if !errors.Is(err, ErrToolNotFound) {
		t.Fatalf("err = %v, want ErrToolNotFound", err)
	}
}

func TestDispatchTimeout(t *testing.T) {
	r := NewRegistry(testLogger())
	r.RegisterPack(&Pack{ID: "slow", Tools: []*Tool{{
		Definition: &ToolDefinition{Name: "sleepy"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(5 * time.Second):
				return "done", nil
			}
		},
	}}})
	d := NewDispatcher(DispatcherConfig{
		Registry: r,
		Logger:   testLogger(),
		Timeout:  20 * time.Millisecond,
	})

	result, err := d.Dispatch(context.Background(), "sleepy", nil)
	if err != nil {
		t.Fatalf("Dispatch: %v", err)
	}
	if !result.IsError {
		t.Error("expected timeout to surface as error result")
	}
}

func TestHasToolAndDefinition(t *testing.T) {
	d := newTestDispatcher(t, &Tool{
		Definition: &ToolDefinition{Name: "present", Description: "here"},
		Handler: func(ctx context.Context, input json.RawMessage) (string, error) {
			return "", nil
		},
	})

	if !d.HasTool("present") {
		t.Error("HasTool(present) = false")
	}
	if d.HasTool("absent") {
		t.Error("HasTool(absent) = true")
	}
	if def := d.GetToolDefinition("present"); def == nil || def.Description != "here" {
		t.Errorf("GetToolDefinition = %+v", def)
	}
	if def := d.GetToolDefinition("absent"); def != nil {
		t.Error("expected nil definition for absent tool")
	}
}
