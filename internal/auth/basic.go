package auth

import (
	"context"
	"encoding/base64"
	"net/http"
	"strings"

	"github.com/forumhub/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialStore is the interface that wraps the account lookup needed to
// validate presented credentials.
type CredentialStore interface {
	// Method GetByLogin retrieves an account by login.
	//
	// If no account with such login exists, (nil, nil) is returned.
	// A non-nil error is returned only for store failures.
	GetByLogin(ctx context.Context, login string) (*models.Account, error)
}

// BasicAuth validates HTTP Basic credentials against the credential store.
//
// Requests without an Authorization header continue anonymously; the route's
// policy decides whether that is acceptable. Requests presenting credentials
// are rejected with 401 when the login is unknown or the password does not
// match the stored bcrypt hash. On success the identity (login plus role set)
// is stored in the request context.
func BasicAuth(store CredentialStore, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			login, password, ok := basicCredentials(r.Header.Get("Authorization"))
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			account, err := store.GetByLogin(r.Context(), login)
			if err != nil {
				logger.Error("failed to load account for authentication", zap.Error(err))
				respondStatus(w, http.StatusInternalServerError, "internal server error")
				return
			}
			if account == nil {
				respondStatus(w, http.StatusUnauthorized, "login is incorrect")
				return
			}

			if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
				respondStatus(w, http.StatusUnauthorized, "password is incorrect")
				return
			}

			identity := &Identity{Login: account.Login, Roles: account.Roles}
			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		})
	}
}

// basicCredentials decodes an "Authorization: Basic base64(login:password)"
// header value. ok is false when the header is absent or not Basic.
func basicCredentials(header string) (login, password string, ok bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	credentials := strings.SplitN(string(decoded), ":", 2)
	if len(credentials) != 2 {
		return "", "", false
	}

	return credentials[0], credentials[1], true
}

func respondStatus(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(`{"error":"` + message + `"}`))
}
