// ABOUTME: Tests for the GHL HTTP client
// ABOUTME: Covers headers, query filtering, body handling and error mapping

package ghl

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client at an httptest server and records requests.
func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *http.Request) {
	t.Helper()

	var captured http.Request
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = *r
		captured.URL = r.URL
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(Config{
		BaseURL:    srv.URL,
		APIKey:     "test-key",
		LocationID: "loc-1",
	})
	return client, &captured
}

func TestRequestHeaders(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/", RequestOptions{
		Version: VersionStandard,
	})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if got := captured.Header.Get("Authorization"); got != "Bearer test-key" {
		t.Errorf("Authorization = %q", got)
	}
	if got := captured.Header.Get("Content-Type"); got != "application/json" {
		t.Errorf("Content-Type = %q", got)
	}
	if got := captured.Header.Get("Accept"); got != "application/json" {
		t.Errorf("Accept = %q", got)
	}
	if got := captured.Header.Get("Version"); got != "2021-07-28" {
		t.Errorf("Version = %q", got)
	}
}

func TestRequestOmitsEmptyQueryValues(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/", RequestOptions{
		Query: map[string]string{
			"query": "smith",
			"limit": "",
			"page":  "",
		},
		Version: VersionStandard,
	})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	q := captured.URL.Query()
	if q.Get("query") != "smith" {
		t.Errorf("expected query=smith, got %q", q.Get("query"))
	}
	if _, present := q["limit"]; present {
		t.Error("empty limit value must be omitted from the query string")
	}
	if _, present := q["page"]; present {
		t.Error("empty page value must be omitted from the query string")
	}
}

func TestRequestSerializesBody(t *testing.T) {
	var received map[string]any
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&received)
		w.Write([]byte(`{"contact":{"id":"c1"}}`))
	})

	result, err := client.Request(context.Background(), http.MethodPost, "/contacts/", RequestOptions{
		Body:    map[string]any{"firstName": "Ada", "locationId": "loc-1"},
		Version: VersionStandard,
	})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}

	if received["firstName"] != "Ada" {
		t.Errorf("body not delivered: %v", received)
	}

	var parsed struct {
		Contact struct{ ID string }
	}
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("unmarshaling result: %v", err)
	}
	if parsed.Contact.ID != "c1" {
		t.Errorf("unexpected result: %s", result)
	}
}

func TestRequestNoBodyOnGet(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/", RequestOptions{
		Body:    map[string]any{"ignored": true},
		Version: VersionStandard,
	})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if captured.ContentLength > 0 {
		t.Errorf("GET request must not carry a body, got length %d", captured.ContentLength)
	}
}

func TestRequestAPIError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("not found"))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/nope", RequestOptions{
		Version: VersionStandard,
	})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != 404 {
		t.Errorf("StatusCode = %d", apiErr.StatusCode)
	}
	if apiErr.Details != "not found" {
		t.Errorf("Details = %q", apiErr.Details)
	}
	if apiErr.Error() != "GHL API Error 404: Not Found" {
		t.Errorf("Error() = %q", apiErr.Error())
	}
}

func TestRequestInvalidJSONResponse(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("<html>definitely not json</html>"))
	})

	_, err := client.Request(context.Background(), http.MethodGet, "/contacts/", RequestOptions{
		Version: VersionStandard,
	})
	if err == nil {
		t.Fatal("expected parse error for non-JSON body")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Error("parse failures must not be wrapped as APIError")
	}
}

func TestRequestEmptyBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	result, err := client.Request(context.Background(), http.MethodDelete, "/contacts/c1", RequestOptions{
		Version: VersionStandard,
	})
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	if result != nil {
		t.Errorf("expected nil result for empty body, got %s", result)
	}
}

func TestDomainMethodScoping(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"contacts":[]}`))
	})

	_, err := client.SearchContacts(context.Background(), "ada", "")
	if err != nil {
		t.Fatalf("SearchContacts failed: %v", err)
	}
	if got := captured.URL.Query().Get("locationId"); got != "loc-1" {
		t.Errorf("expected bound location in query, got %q", got)
	}
	// Empty limit omitted
	if _, present := captured.URL.Query()["limit"]; present {
		t.Error("empty limit must be omitted")
	}
}

func TestLegacyVersionOnAppointments(t *testing.T) {
	client, captured := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	if _, err := client.GetAppointment(context.Background(), "ev-1"); err != nil {
		t.Fatalf("GetAppointment failed: %v", err)
	}
	if got := captured.Header.Get("Version"); got != VersionLegacy {
		t.Errorf("expected legacy version header, got %q", got)
	}
}
