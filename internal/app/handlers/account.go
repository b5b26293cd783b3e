package handlers

import (
	"context"

	"github.com/vova4o/dronelog/internal/app/models"
	"github.com/vova4o/dronelog/package/logger"
)

// Accounter interface
type Accounter interface {
	Current() models.UserPreferences
	Register(ctx context.Context, username, password string) error
	SetLoginStatus(ctx context.Context, isLoggedIn bool) error
}

// AccountHandler drives the login, registration and logout flows
type AccountHandler struct {
	accounts Accounter
	logger   *logger.Logger
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(accounts Accounter, logger *logger.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		logger:   logger,
	}
}

// Login compares the supplied credentials against the last observed
// preferences snapshot. A mismatch is a plain false with no persistence.
// On a match the session flag is persisted before success is reported, so
// a storage failure fails the login.
func (h *AccountHandler) Login(ctx context.Context, username, password string) (bool, error) {
	h.logger.Info("Login called")

	current := h.accounts.Current()
	if username != current.Username || password != current.Password {
		h.logger.Info("Login rejected: credentials do not match")
		return false, nil
	}

	if err := h.accounts.SetLoginStatus(ctx, true); err != nil {
		h.logger.Error("Failed to persist login status")
		return false, err
	}

	return true, nil
}

// Register stores the identity unconditionally, overwriting any previous
// one, and logs the new user in
func (h *AccountHandler) Register(ctx context.Context, username, password string) error {
	h.logger.Info("Register called")

	if err := h.accounts.Register(ctx, username, password); err != nil {
		h.logger.Error("Failed to register user")
		return err
	}

	return nil
}

// Logout clears the session flag, the credentials stay stored so the user
// can log back in without registering again
func (h *AccountHandler) Logout(ctx context.Context) error {
	h.logger.Info("Logout called")

	if err := h.accounts.SetLoginStatus(ctx, false); err != nil {
		h.logger.Error("Failed to persist logout")
		return err
	}

	return nil
}
