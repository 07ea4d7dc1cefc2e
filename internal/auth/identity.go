// Package auth implements HTTP Basic authentication and the per-route
// authorization policies layered in front of the business logic.
package auth

import (
	"context"

	"github.com/forumhub/backend/internal/models"
)

type contextKey string

const identityKey contextKey = "identity"

// Identity is the authenticated login plus its role set, established once per
// request at authentication time. Roles are not re-read for the remainder of
// the request.
type Identity struct {
	Login string
	Roles []models.Role
}

// HasRole reports whether the identity holds the given role
func (id *Identity) HasRole(role models.Role) bool {
	for _, r := range id.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// WithIdentity stores the identity in the context
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFrom retrieves the authenticated identity from the context
func IdentityFrom(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(identityKey).(*Identity)
	return id, ok && id != nil
}
