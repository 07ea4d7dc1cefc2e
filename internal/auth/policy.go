package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/forumhub/backend/internal/models"
	"github.com/go-chi/chi/v5"
)

// Decision is the outcome of a policy evaluation
type Decision int

// Policy evaluation outcomes
const (
	Allow Decision = iota
	Unauthorized
	Forbidden
)

// OwnerLookup resolves the author of a resource by its id. found is false
// when the resource does not exist; that must never be treated as ownership.
type OwnerLookup interface {
	GetAuthor(ctx context.Context, id string) (author string, found bool, err error)
}

// Policy decides whether the identity (nil when anonymous) may perform the
// request. A non-nil error means the decision could not be made and the
// request fails with an internal error.
type Policy func(r *http.Request, identity *Identity) (Decision, error)

// Public always allows, authenticated or not
func Public() Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		return Allow, nil
	}
}

// AuthenticatedOnly allows any established identity
func AuthenticatedOnly() Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		if identity == nil {
			return Unauthorized, nil
		}
		return Allow, nil
	}
}

// SelfOnly allows when the identity's login equals the named path parameter
func SelfOnly(pathParam string) Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		if identity == nil {
			return Unauthorized, nil
		}
		if identity.Login != chi.URLParam(r, pathParam) {
			return Forbidden, nil
		}
		return Allow, nil
	}
}

// RoleRequired allows when the identity holds the given role
func RoleRequired(role models.Role) Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		if identity == nil {
			return Unauthorized, nil
		}
		if !identity.HasRole(role) {
			return Forbidden, nil
		}
		return Allow, nil
	}
}

// OwnerOnly allows when the identity's login matches the author of the
// resource whose id is in the named path parameter. A missing resource denies.
func OwnerOnly(lookup OwnerLookup, pathParam string) Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		if identity == nil {
			return Unauthorized, nil
		}
		owns, err := ownsResource(r, lookup, pathParam, identity)
		if err != nil {
			return Forbidden, err
		}
		if !owns {
			return Forbidden, nil
		}
		return Allow, nil
	}
}

// OwnerOrRole allows when the identity owns the resource or holds the given
// role. When the resource does not exist the check degrades to the role
// check alone.
func OwnerOrRole(lookup OwnerLookup, pathParam string, role models.Role) Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		if identity == nil {
			return Unauthorized, nil
		}
		owns, err := ownsResource(r, lookup, pathParam, identity)
		if err != nil {
			return Forbidden, err
		}
		if owns || identity.HasRole(role) {
			return Allow, nil
		}
		return Forbidden, nil
	}
}

// AnyOf allows when any of the policies allows. The denial is Unauthorized
// only when every policy reported Unauthorized.
func AnyOf(policies ...Policy) Policy {
	return func(r *http.Request, identity *Identity) (Decision, error) {
		decision := Unauthorized
		for _, p := range policies {
			d, err := p(r, identity)
			if err != nil {
				return Forbidden, err
			}
			if d == Allow {
				return Allow, nil
			}
			if d == Forbidden {
				decision = Forbidden
			}
		}
		return decision, nil
	}
}

// ownsResource reports whether the identity's login matches the resource
// author, case-insensitively. Ownership lookup runs before the business
// operation, so the resource may be fetched twice per request.
func ownsResource(r *http.Request, lookup OwnerLookup, pathParam string, identity *Identity) (bool, error) {
	author, found, err := lookup.GetAuthor(r.Context(), chi.URLParam(r, pathParam))
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	return strings.EqualFold(author, identity.Login), nil
}

// Require wraps a handler with a policy check. The identity established by
// BasicAuth is read from the request context; a missing identity where one is
// required yields 401, an identity failing the policy yields 403.
func Require(policy Policy) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			identity, _ := IdentityFrom(r.Context())

			decision, err := policy(r, identity)
			if err != nil {
				respondStatus(w, http.StatusInternalServerError, "internal server error")
				return
			}

			switch decision {
			case Allow:
				next.ServeHTTP(w, r)
			case Unauthorized:
				respondStatus(w, http.StatusUnauthorized, "authentication required")
			default:
				respondStatus(w, http.StatusForbidden, "permission denied")
			}
		})
	}
}
