package services

import (
	"context"
	"regexp"

	"github.com/forumhub/backend/internal/models"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// AccountRepository is the interface that wraps methods for account data access
type AccountRepository interface {
	// Method Create inserts a new account together with its role set.
	//
	// If some error occurs during account creation, the error will be returned.
	Create(ctx context.Context, account *models.Account) error
	// Method GetByLogin retrieves an account with its role set by login.
	//
	// If no account with such login exists, (nil, nil) will be returned.
	GetByLogin(ctx context.Context, login string) (*models.Account, error)
	// Method ExistsByLogin checks if an account with such login exists.
	//
	// If some error occurs during check, the error will be returned together with "false" value.
	ExistsByLogin(ctx context.Context, login string) (bool, error)
	// Method Update persists the mutable account fields (names and password hash).
	Update(ctx context.Context, account *models.Account) error
	// Method SetRoles replaces the account's persisted role set.
	SetRoles(ctx context.Context, login string, roles []models.Role) error
	// Method Delete removes an account and its role set.
	Delete(ctx context.Context, login string) error
}

// accountService implements the account business operations
type accountService struct {
	repo   AccountRepository
	logger *zap.Logger
}

// NewAccountService creates a new account service
func NewAccountService(repo AccountRepository, logger *zap.Logger) *accountService {
	return &accountService{
		repo:   repo,
		logger: logger,
	}
}

// loginPattern restricts logins to ASCII letters and digits
var loginPattern = regexp.MustCompile(`^[a-zA-Z0-9]+$`)

// Register creates a new account with the base USER role.
// A login with characters outside [A-Za-z0-9] fails with ErrInvalidLogin and
// never persists a record; a taken login fails with ErrAccountExists.
func (s *accountService) Register(ctx context.Context, req *models.RegisterRequest) (*models.Account, error) {
	if !loginPattern.MatchString(req.Login) {
		return nil, ErrInvalidLogin
	}

	exists, err := s.repo.ExistsByLogin(ctx, req.Login)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAccountExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &models.Account{
		Login:        req.Login,
		PasswordHash: string(passwordHash),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Roles:        []models.Role{models.RoleUser},
	}

	if err := s.repo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// Get retrieves an account by login
func (s *accountService) Get(ctx context.Context, login string) (*models.Account, error) {
	account, err := s.repo.GetByLogin(ctx, login)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

// Remove deletes an account and returns the removed record
func (s *accountService) Remove(ctx context.Context, login string) (*models.Account, error) {
	account, err := s.Get(ctx, login)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Delete(ctx, login); err != nil {
		return nil, err
	}

	s.logger.Info("account removed", zap.String("login", login))
	return account, nil
}

// UpdateProfile overwrites the provided name fields; nil fields are left unchanged
func (s *accountService) UpdateProfile(ctx context.Context, login string, req *models.UpdateAccountRequest) (*models.Account, error) {
	account, err := s.Get(ctx, login)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}

	if err := s.repo.Update(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

// ChangeRole adds or removes a role and returns the current role set.
// When the set is already in the target state no persistence write happens.
// Removing the last remaining role is a no-op.
func (s *accountService) ChangeRole(ctx context.Context, login, roleName string, add bool) (*models.Account, error) {
	role, err := models.ParseRole(roleName)
	if err != nil {
		return nil, ErrInvalidRole
	}

	account, err := s.Get(ctx, login)
	if err != nil {
		return nil, err
	}

	var changed bool
	if add {
		changed = account.AddRole(role)
	} else {
		changed = account.RemoveRole(role)
	}

	if changed {
		if err := s.repo.SetRoles(ctx, login, account.Roles); err != nil {
			return nil, err
		}
	}

	return account, nil
}

// ChangePassword re-hashes and persists a new password. An empty new password
// leaves the hash unchanged but still performs the persistence write, as does
// a new password equal to the current one.
func (s *accountService) ChangePassword(ctx context.Context, login, newPassword string) error {
	account, err := s.Get(ctx, login)
	if err != nil {
		return err
	}

	if newPassword != "" {
		// Skip re-hashing when the password is unchanged
		if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(newPassword)) != nil {
			passwordHash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
			if err != nil {
				return err
			}
			account.PasswordHash = string(passwordHash)
		}
	}

	return s.repo.Update(ctx, account)
}

// EnsureAdmin creates the bootstrap administrator account if it does not
// exist yet. It runs once at startup, before the server accepts traffic,
// and is idempotent.
func (s *accountService) EnsureAdmin(ctx context.Context, login, password string) error {
	exists, err := s.repo.ExistsByLogin(ctx, login)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.Account{
		Login:        login,
		PasswordHash: string(passwordHash),
		FirstName:    login,
		LastName:     login,
		Roles:        []models.Role{models.RoleUser, models.RoleModerator, models.RoleAdministrator},
	}

	if err := s.repo.Create(ctx, admin); err != nil {
		return err
	}

	s.logger.Info("bootstrap administrator created", zap.String("login", login))
	return nil
}
