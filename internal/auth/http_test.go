// ABOUTME: Tests for bearer extraction and admin password middleware.

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		header  string
		token   string
		wantErr bool
	}{
		{"Bearer abc123", "abc123", false},
		{"", "", true},
		{"Basic abc123", "", true},
		{"Bearer ", "", true},
	}
	for _, c := range cases {
		token, errMsg := ExtractBearerToken(c.header)
		if c.wantErr && errMsg == "" {
			t.Errorf("header %q: expected error", c.header)
		}
		if !c.wantErr && token != c.token {
			t.Errorf("header %q: token = %q, want %q", c.header, token, c.token)
		}
	}
}

func passwordProbe(t *testing.T, configured, sent string) int {
	t.Helper()
	handler := RequirePassword(configured)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	req := httptest.NewRequest(http.MethodGet, "/admin/accounts", nil)
	if sent != "" {
		req.Header.Set("Authorization", "Bearer "+sent)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec.Code
}

func TestRequirePasswordPlain(t *testing.T) {
	if code := passwordProbe(t, "hunter2", "hunter2"); code != http.StatusOK {
		t.Errorf("correct password: status %d", code)
	}
	if code := passwordProbe(t, "hunter2", "wrong"); code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d", code)
	}
	if code := passwordProbe(t, "hunter2", ""); code != http.StatusUnauthorized {
		t.Errorf("missing password: status %d", code)
	}
}

func TestRequirePasswordBcrypt(t *testing.T) {
	hash, err := HashPassword("hunter2")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if code := passwordProbe(t, hash, "hunter2"); code != http.StatusOK {
		t.Errorf("correct password: status %d", code)
	}
	if code := passwordProbe(t, hash, "wrong"); code != http.StatusUnauthorized {
		t.Errorf("wrong password: status %d", code)
	}
}
