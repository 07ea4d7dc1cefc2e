package handlers

import (
	"context"
	"net/http"

	"github.com/forumhub/backend/internal/auth"
	"github.com/forumhub/backend/internal/models"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AccountService is the interface that wraps methods for account business logic.
type AccountService interface {
	// Method Register creates a new account with the base USER role.
	//
	// A login containing characters outside [A-Za-z0-9] or an already taken
	// login fails with a conflict error; no record is persisted in either case.
	Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error)
	// Method Get retrieves an account by login.
	Get(ctx context.Context, login string) (*models.Account, error)
	// Method Remove deletes an account and returns the removed record.
	Remove(ctx context.Context, login string) (*models.Account, error)
	// Method UpdateProfile overwrites the provided name fields; nil fields are left unchanged.
	UpdateProfile(ctx context.Context, login string, req *models.UpdateAccountRequest) (*models.Account, error)
	// Method ChangeRole adds or removes a role and returns the account with its current role set.
	ChangeRole(ctx context.Context, login, roleName string, add bool) (*models.Account, error)
	// Method ChangePassword re-hashes and persists a new password.
	ChangePassword(ctx context.Context, login, newPassword string) error
}

// AccountHandler handles account-related HTTP requests
type AccountHandler struct {
	BaseHandler
	service AccountService
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(service AccountService, logger *zap.Logger) *AccountHandler {
	return &AccountHandler{
		BaseHandler: newBaseHandler(logger),
		service:     service,
	}
}

// RegisterRoutes registers all account routes with their authorization policies
func (h *AccountHandler) RegisterRoutes(r chi.Router) {
	r.Route("/account", func(r chi.Router) {
		r.With(auth.Require(auth.Public())).Post("/register", h.Register)
		r.With(auth.Require(auth.AuthenticatedOnly())).Get("/user/{login}", h.Get)
		r.With(auth.Require(auth.AnyOf(auth.SelfOnly("login"), auth.RoleRequired(models.RoleAdministrator)))).Delete("/user/{login}", h.Remove)
		r.With(auth.Require(auth.SelfOnly("login"))).Put("/user/{login}", h.UpdateProfile)
		r.With(auth.Require(auth.RoleRequired(models.RoleAdministrator))).Put("/user/{login}/role/{role}", h.AddRole)
		r.With(auth.Require(auth.RoleRequired(models.RoleAdministrator))).Delete("/user/{login}/role/{role}", h.RemoveRole)
		r.With(auth.Require(auth.AuthenticatedOnly())).Put("/password", h.ChangePassword)
	})
}

// Register handles POST /account/register
// @Summary Register a new account
// @Description Register a new account with login, password and names. The login must be alphanumeric and free.
// @Tags account
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration request"
// @Success 200 {object} models.Account
// @Failure 400 {object} map[string]string "Invalid request body"
// @Failure 409 {object} map[string]string "Login taken or invalid"
// @Router /account/register [post]
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := h.decodeValid(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.Register(r.Context(), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, account)
}

// Get handles GET /account/user/{login}
// @Summary Get an account
// @Tags account
// @Produce json
// @Security BasicAuth
// @Param login path string true "Account login"
// @Success 200 {object} models.Account
// @Failure 401 {object} map[string]string "Authentication required"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/user/{login} [get]
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Get(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, account)
}

// Remove handles DELETE /account/user/{login}
// @Summary Remove an account
// @Description Remove an account. Allowed for the account owner or an administrator.
// @Tags account
// @Produce json
// @Security BasicAuth
// @Param login path string true "Account login"
// @Success 200 {object} models.Account "Removed account"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/user/{login} [delete]
func (h *AccountHandler) Remove(w http.ResponseWriter, r *http.Request) {
	account, err := h.service.Remove(r.Context(), chi.URLParam(r, "login"))
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, account)
}

// UpdateProfile handles PUT /account/user/{login}
// @Summary Update account names
// @Description Update first/last name. Omitted fields are left unchanged. Allowed for the account owner only.
// @Tags account
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param login path string true "Account login"
// @Param request body models.UpdateAccountRequest true "Profile update"
// @Success 200 {object} models.Account
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/user/{login} [put]
func (h *AccountHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateAccountRequest
	if err := h.decodeJSON(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.service.UpdateProfile(r.Context(), chi.URLParam(r, "login"), &req)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, account)
}

// AddRole handles PUT /account/user/{login}/role/{role}
// @Summary Grant a role
// @Tags account
// @Produce json
// @Security BasicAuth
// @Param login path string true "Account login"
// @Param role path string true "Role name"
// @Success 200 {object} models.RolesResponse
// @Failure 400 {object} map[string]string "Unknown role"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/user/{login}/role/{role} [put]
func (h *AccountHandler) AddRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, true)
}

// RemoveRole handles DELETE /account/user/{login}/role/{role}
// @Summary Revoke a role
// @Tags account
// @Produce json
// @Security BasicAuth
// @Param login path string true "Account login"
// @Param role path string true "Role name"
// @Success 200 {object} models.RolesResponse
// @Failure 400 {object} map[string]string "Unknown role"
// @Failure 403 {object} map[string]string "Permission denied"
// @Failure 404 {object} map[string]string "Account not found"
// @Router /account/user/{login}/role/{role} [delete]
func (h *AccountHandler) RemoveRole(w http.ResponseWriter, r *http.Request) {
	h.changeRole(w, r, false)
}

func (h *AccountHandler) changeRole(w http.ResponseWriter, r *http.Request, add bool) {
	account, err := h.service.ChangeRole(r.Context(), chi.URLParam(r, "login"), chi.URLParam(r, "role"), add)
	if err != nil {
		h.respondServiceError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, models.RolesResponse{Login: account.Login, Roles: account.Roles})
}

// ChangePassword handles PUT /account/password
// @Summary Change the authenticated account's password
// @Description The new password is passed in the X-Password header.
// @Tags account
// @Security BasicAuth
// @Param X-Password header string true "New password"
// @Success 204 "Password changed"
// @Failure 400 {object} map[string]string "Missing X-Password header"
// @Failure 401 {object} map[string]string "Authentication required"
// @Router /account/password [put]
func (h *AccountHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	identity, ok := auth.IdentityFrom(r.Context())
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	newPassword := r.Header.Get("X-Password")
	if newPassword == "" {
		h.respondError(w, http.StatusBadRequest, "missing X-Password header")
		return
	}

	if err := h.service.ChangePassword(r.Context(), identity.Login, newPassword); err != nil {
		h.respondServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
