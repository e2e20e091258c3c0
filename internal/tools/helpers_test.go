// ABOUTME: Tests for shared tool helpers.

package tools

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestMaskKey(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"pit-0123456789abcdef", "pit-0123..."},
		{"short", "short"},
		{"12345678", "12345678"},
		{"", ""},
	}
	for _, c := range cases {
		if got := maskKey(c.in); got != c.want {
			t.Errorf("maskKey(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestOkPrettyPrints(t *testing.T) {
	out, err := ok(json.RawMessage(`{"a":{"b":1}}`))
	if err != nil {
		t.Fatalf("ok: %v", err)
	}
	if !strings.Contains(out, "\n") {
		t.Errorf("expected indented output, got %q", out)
	}
}

func TestOkEmptyPayload(t *testing.T) {
	out, err := ok(nil)
	if err != nil {
		t.Fatalf("ok: %v", err)
	}
	if out != `{"success": true}` {
		t.Errorf("out = %q", out)
	}
}

func TestOkNonJSONPassthrough(t *testing.T) {
	out, err := ok(json.RawMessage("plain text"))
	if err != nil {
		t.Fatalf("ok: %v", err)
	}
	if out != "plain text" {
		t.Errorf("out = %q", out)
	}
}

func TestIntParam(t *testing.T) {
	if got := intParam(0); got != "" {
		t.Errorf("intParam(0) = %q, want empty", got)
	}
	if got := intParam(25); got != "25" {
		t.Errorf("intParam(25) = %q", got)
	}
}
