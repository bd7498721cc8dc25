package identity

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"

	// UserHeader carries the claimed user ID when no token auth is
	// configured.
	UserHeader = "X-Ledger-User"
)

// ErrNoIdentity is returned by resolvers when the request carries no
// identity at all, as opposed to a malformed one.
var ErrNoIdentity = errors.New("no identity supplied")

// Identity is the claimed caller of a request.
type Identity struct {
	UserID int64
}

// Resolver extracts the caller identity from a request. The ownership and
// grant checks in the service layer compare against whatever identity the
// resolver produces, so swapping in a real authentication scheme never
// touches the sharing or authorization logic.
type Resolver interface {
	Resolve(r *http.Request) (*Identity, error)
}

// HeaderResolver trusts the X-Ledger-User header (or, failing that, the
// user_id query parameter). It stands in for a missing authentication
// layer: the caller simply claims who they are.
type HeaderResolver struct{}

func (HeaderResolver) Resolve(r *http.Request) (*Identity, error) {
	raw := r.Header.Get(UserHeader)
	if raw == "" {
		raw = r.URL.Query().Get("user_id")
	}
	if raw == "" {
		return nil, ErrNoIdentity
	}

	userID, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed user ID %q", raw)
	}
	return &Identity{UserID: userID}, nil
}

// TokenResolver reads the user ID from the subject claim of an HS256
// bearer token.
type TokenResolver struct {
	Secret []byte
}

func (t TokenResolver) Resolve(r *http.Request) (*Identity, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return nil, ErrNoIdentity
	}

	tokenStr, ok := strings.CutPrefix(authHeader, "Bearer ")
	if !ok {
		return nil, errors.New("malformed authorization header")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		return t.Secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	subject, err := token.Claims.GetSubject()
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("malformed token subject %q", subject)
	}
	return &Identity{UserID: userID}, nil
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
