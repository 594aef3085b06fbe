// Package cli implements the command-line interface: the presentation layer
// that drives registration, login, expense entry, and reporting.
package cli

import (
	"errors"
	"fmt"

	"github.com/rohan-06-eng/cantilver-expense/internal/auth"
	"github.com/rohan-06-eng/cantilver-expense/internal/service"
	"github.com/rohan-06-eng/cantilver-expense/internal/session"
)

// App bundles the services the commands operate on.
type App struct {
	Auth     auth.Authenticator
	Sessions *auth.JWTManager
	Tokens   *session.FileStore
	Ledger   *service.LedgerService
	Report   *service.ReportService
	Catalog  *service.CatalogService
}

// requireSession loads and validates the stored session token, returning the
// authenticated user's ID and username.
func (a *App) requireSession() (userID, username string, err error) {
	token, err := a.Tokens.Load()
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			return "", "", fmt.Errorf("not logged in; run 'expenses login' first")
		}
		return "", "", err
	}

	claims, err := a.Sessions.Validate(token)
	if err != nil {
		return "", "", fmt.Errorf("session expired or invalid; run 'expenses login' again")
	}
	return claims.UserID, claims.Username, nil
}
