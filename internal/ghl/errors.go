// ABOUTME: Typed error for non-2xx GHL API responses
// ABOUTME: Carries the HTTP status code and the raw response body for diagnostics

package ghl

// APIError is returned when the GHL API responds with a non-2xx status.
// Details holds the raw response body text when it could be read.
type APIError struct {
	StatusCode int
	Message    string
	Details    string
}

func (e *APIError) Error() string {
	return e.Message
}
