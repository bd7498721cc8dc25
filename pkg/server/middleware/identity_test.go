package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loanledger/pkg/identity"
)

func TestMiddlewareResolvesIdentity(t *testing.T) {
	auth := NewAuthenticator(identity.HeaderResolver{})

	var seen *identity.Identity
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = identity.Get(r.Context())
	}))

	req := httptest.NewRequest("GET", "/loans/1/schedule", nil)
	req.Header.Set(identity.UserHeader, "42")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	require.NotNil(t, seen)
	assert.Equal(t, int64(42), seen.UserID)
}

func TestMiddlewarePassesThroughAnonymous(t *testing.T) {
	auth := NewAuthenticator(identity.HeaderResolver{})

	called := false
	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		_, ok := identity.Get(r.Context())
		assert.False(t, ok)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/users", nil))

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMiddlewareRejectsMalformedIdentity(t *testing.T) {
	auth := NewAuthenticator(identity.HeaderResolver{})

	handler := auth.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not be reached")
	}))

	req := httptest.NewRequest("GET", "/loans/1/schedule", nil)
	req.Header.Set(identity.UserHeader, "not-a-number")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
