package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/forumhub/backend/internal/models"
	"go.uber.org/zap"
)

type accountRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *sql.DB, logger *zap.Logger) *accountRepository {
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new account together with its role rows
func (r *accountRepository) Create(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO accounts (login, password_hash, first_name, last_name)
		VALUES (?, ?, ?, ?)
	`
	if _, err := tx.ExecContext(ctx, query, account.Login, account.PasswordHash, account.FirstName, account.LastName); err != nil {
		r.logger.Error("failed to create account", zap.Error(err), zap.String("login", account.Login))
		return fmt.Errorf("failed to create account: %w", err)
	}

	for _, role := range account.Roles {
		if _, err := tx.ExecContext(ctx, `INSERT INTO account_roles (login, role) VALUES (?, ?)`, account.Login, string(role)); err != nil {
			r.logger.Error("failed to create account role", zap.Error(err), zap.String("login", account.Login))
			return fmt.Errorf("failed to create account role: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetByLogin retrieves an account and its role set by login.
// Returns (nil, nil) when no such account exists.
func (r *accountRepository) GetByLogin(ctx context.Context, login string) (*models.Account, error) {
	query := `
		SELECT login, password_hash, first_name, last_name
		FROM accounts
		WHERE login = ?
	`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, login).Scan(
		&account.Login,
		&account.PasswordHash,
		&account.FirstName,
		&account.LastName,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("failed to get account", zap.Error(err), zap.String("login", login))
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	rows, err := r.db.QueryContext(ctx, `SELECT role FROM account_roles WHERE login = ?`, login)
	if err != nil {
		r.logger.Error("failed to get account roles", zap.Error(err), zap.String("login", login))
		return nil, fmt.Errorf("failed to get account roles: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, fmt.Errorf("failed to scan account role: %w", err)
		}
		account.Roles = append(account.Roles, models.Role(role))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read account roles: %w", err)
	}

	return account, nil
}

// ExistsByLogin checks if an account exists with the given login
func (r *accountRepository) ExistsByLogin(ctx context.Context, login string) (bool, error) {
	query := `SELECT EXISTS(SELECT * FROM accounts WHERE login = ?)`

	var exists bool
	if err := r.db.QueryRowContext(ctx, query, login).Scan(&exists); err != nil {
		r.logger.Error("failed to check login existence", zap.Error(err), zap.String("login", login))
		return false, fmt.Errorf("failed to check login existence: %w", err)
	}

	return exists, nil
}

// Update persists the mutable account fields (names and password hash).
// The login and role set are not touched.
func (r *accountRepository) Update(ctx context.Context, account *models.Account) error {
	query := `
		UPDATE accounts
		SET password_hash = ?, first_name = ?, last_name = ?
		WHERE login = ?
	`

	if _, err := r.db.ExecContext(ctx, query, account.PasswordHash, account.FirstName, account.LastName, account.Login); err != nil {
		r.logger.Error("failed to update account", zap.Error(err), zap.String("login", account.Login))
		return fmt.Errorf("failed to update account: %w", err)
	}
	return nil
}

// SetRoles replaces the account's role rows with the given set
func (r *accountRepository) SetRoles(ctx context.Context, login string, roles []models.Role) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM account_roles WHERE login = ?`, login); err != nil {
		r.logger.Error("failed to clear account roles", zap.Error(err), zap.String("login", login))
		return fmt.Errorf("failed to clear account roles: %w", err)
	}

	for _, role := range roles {
		if _, err := tx.ExecContext(ctx, `INSERT INTO account_roles (login, role) VALUES (?, ?)`, login, string(role)); err != nil {
			r.logger.Error("failed to insert account role", zap.Error(err), zap.String("login", login))
			return fmt.Errorf("failed to insert account role: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Delete removes an account. Role rows are removed by the cascade.
func (r *accountRepository) Delete(ctx context.Context, login string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE login = ?`, login); err != nil {
		r.logger.Error("failed to delete account", zap.Error(err), zap.String("login", login))
		return fmt.Errorf("failed to delete account: %w", err)
	}
	return nil
}
