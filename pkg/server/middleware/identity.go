package middleware

import (
	"errors"
	"net/http"

	"loanledger/pkg/identity"
)

// Authenticator is middleware that resolves the caller identity and stores
// it on the request context.
type Authenticator struct {
	Resolver identity.Resolver
}

// NewAuthenticator creates identity-resolving middleware around a resolver.
func NewAuthenticator(resolver identity.Resolver) *Authenticator {
	return &Authenticator{Resolver: resolver}
}

// Middleware resolves the caller identity. A request with no identity at
// all passes through unauthenticated; handlers that need one reject it
// there. A malformed identity is rejected here with 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, err := a.Resolver.Resolve(r)
		if err != nil {
			if errors.Is(err, identity.ErrNoIdentity) {
				next.ServeHTTP(w, r)
				return
			}
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte("Malformed identity"))
			return
		}

		r = r.WithContext(identity.Set(r.Context(), id))
		next.ServeHTTP(w, r)
	})
}
