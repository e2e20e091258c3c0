// ABOUTME: HTTP middleware for the admin API
// ABOUTME: Checks bearer credentials against a bcrypt password hash

package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// ExtractBearerToken extracts a bearer token from an Authorization
// header value. The second return value is an error message, empty on
// success.
func ExtractBearerToken(authHeader string) (string, string) {
	if authHeader == "" {
		return "", "missing authorization header"
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", "invalid authorization header format"
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", "empty token"
	}
	return token, ""
}

// HashPassword returns a bcrypt hash of the given password for storage
// in configuration.
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// RequirePassword creates an HTTP middleware that accepts requests
// carrying the admin password as a bearer token. The configured value
// may be a bcrypt hash or, for development setups, the plain password.
func RequirePassword(configured string) func(http.Handler) http.Handler {
	isHash := strings.HasPrefix(configured, "$2a$") || strings.HasPrefix(configured, "$2b$")
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, errMsg := ExtractBearerToken(r.Header.Get("Authorization"))
			if errMsg != "" {
				http.Error(w, `{"error":"`+errMsg+`"}`, http.StatusUnauthorized)
				return
			}

			if isHash {
				if bcrypt.CompareHashAndPassword([]byte(configured), []byte(token)) != nil {
					http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
					return
				}
			} else if subtle.ConstantTimeCompare([]byte(configured), []byte(token)) != 1 {
				http.Error(w, `{"error":"invalid credentials"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
