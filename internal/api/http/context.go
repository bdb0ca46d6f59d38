package http

import (
	"context"

	"rentfit-backend/internal/domain"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated principal attached to a request after the
// bearer token checks out.
type Identity struct {
	SubjectID int32
	Username  string
	Role      domain.Role
}

// WithIdentity returns a context carrying the authenticated identity.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom extracts the authenticated identity from the context.
func IdentityFrom(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
