package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/forumhub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// fakeOwnerLookup is a fake implementation of OwnerLookup
type fakeOwnerLookup struct {
	author string
	found  bool
	err    error
}

func (f *fakeOwnerLookup) GetAuthor(ctx context.Context, id string) (string, bool, error) {
	if f.err != nil {
		return "", false, f.err
	}
	return f.author, f.found, f.err
}

// withTestIdentity injects an identity into the request context, standing in
// for the BasicAuth middleware
func withTestIdentity(id *Identity) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if id != nil {
				r = r.WithContext(WithIdentity(r.Context(), id))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// performPolicyRequest routes a request through Require(policy) on a route
// with a {login} and an {id} path parameter
func performPolicyRequest(t *testing.T, policy Policy, identity *Identity, method, target string) *httptest.ResponseRecorder {
	t.Helper()

	r := chi.NewRouter()
	r.Use(withTestIdentity(identity))
	r.With(Require(policy)).MethodFunc(method, "/user/{login}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	r.With(Require(policy)).MethodFunc(method, "/post/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestPublic(t *testing.T) {
	rec := performPolicyRequest(t, Public(), nil, http.MethodGet, "/user/bob")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthenticatedOnly(t *testing.T) {
	tests := []struct {
		name           string
		identity       *Identity
		expectedStatus int
	}{
		{
			name:           "anonymous is rejected",
			identity:       nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "any identity is allowed",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, AuthenticatedOnly(), tt.identity, http.MethodGet, "/user/bob")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestSelfOnly(t *testing.T) {
	tests := []struct {
		name           string
		identity       *Identity
		target         string
		expectedStatus int
	}{
		{
			name:           "own resource is allowed",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			target:         "/user/bob",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "someone else's resource is forbidden",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			target:         "/user/alice",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "login comparison is exact",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			target:         "/user/Bob",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous is rejected",
			identity:       nil,
			target:         "/user/bob",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, SelfOnly("login"), tt.identity, http.MethodGet, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestRoleRequired(t *testing.T) {
	tests := []struct {
		name           string
		identity       *Identity
		expectedStatus int
	}{
		{
			name:           "holder of the role is allowed",
			identity:       &Identity{Login: "root", Roles: []models.Role{models.RoleUser, models.RoleAdministrator}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "identity without the role is forbidden",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous is rejected",
			identity:       nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, RoleRequired(models.RoleAdministrator), tt.identity, http.MethodGet, "/user/bob")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestOwnerOnly(t *testing.T) {
	tests := []struct {
		name           string
		lookup         *fakeOwnerLookup
		identity       *Identity
		expectedStatus int
	}{
		{
			name:           "owner is allowed",
			lookup:         &fakeOwnerLookup{author: "bob", found: true},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "ownership comparison is case-insensitive",
			lookup:         &fakeOwnerLookup{author: "Bob", found: true},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "non-owner is forbidden",
			lookup:         &fakeOwnerLookup{author: "alice", found: true},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "missing resource never allows by ownership",
			lookup:         &fakeOwnerLookup{found: false},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "lookup failure is an internal error",
			lookup:         &fakeOwnerLookup{err: errors.New("store down")},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name:           "anonymous is rejected",
			lookup:         &fakeOwnerLookup{author: "bob", found: true},
			identity:       nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, OwnerOnly(tt.lookup, "id"), tt.identity, http.MethodGet, "/post/42")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestOwnerOrRole(t *testing.T) {
	tests := []struct {
		name           string
		lookup         *fakeOwnerLookup
		identity       *Identity
		expectedStatus int
	}{
		{
			name:           "owner without the role is allowed",
			lookup:         &fakeOwnerLookup{author: "bob", found: true},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "role holder who is not the owner is allowed",
			lookup:         &fakeOwnerLookup{author: "alice", found: true},
			identity:       &Identity{Login: "mod", Roles: []models.Role{models.RoleUser, models.RoleModerator}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing resource degrades to the role check",
			lookup:         &fakeOwnerLookup{found: false},
			identity:       &Identity{Login: "mod", Roles: []models.Role{models.RoleModerator}},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "missing resource denies an identity without the role",
			lookup:         &fakeOwnerLookup{found: false},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "non-owner without the role is forbidden",
			lookup:         &fakeOwnerLookup{author: "alice", found: true},
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous is rejected",
			lookup:         &fakeOwnerLookup{author: "bob", found: true},
			identity:       nil,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, OwnerOrRole(tt.lookup, "id", models.RoleModerator), tt.identity, http.MethodGet, "/post/42")
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}

func TestAnyOf(t *testing.T) {
	selfOrAdmin := AnyOf(SelfOnly("login"), RoleRequired(models.RoleAdministrator))

	tests := []struct {
		name           string
		identity       *Identity
		target         string
		expectedStatus int
	}{
		{
			name:           "self is allowed",
			identity:       &Identity{Login: "bob", Roles: []models.Role{models.RoleUser}},
			target:         "/user/bob",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "administrator is allowed on any login",
			identity:       &Identity{Login: "root", Roles: []models.Role{models.RoleAdministrator}},
			target:         "/user/bob",
			expectedStatus: http.StatusOK,
		},
		{
			name:           "plain user on another login is forbidden",
			identity:       &Identity{Login: "alice", Roles: []models.Role{models.RoleUser}},
			target:         "/user/bob",
			expectedStatus: http.StatusForbidden,
		},
		{
			name:           "anonymous is rejected, not forbidden",
			identity:       nil,
			target:         "/user/bob",
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := performPolicyRequest(t, selfOrAdmin, tt.identity, http.MethodGet, tt.target)
			assert.Equal(t, tt.expectedStatus, rec.Code)
		})
	}
}
