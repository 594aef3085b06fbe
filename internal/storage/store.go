// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
)

var (
	// ErrUnavailable is returned when the database cannot be opened,
	// read, or written. It is fatal to the attempted operation only; the
	// process continues.
	ErrUnavailable = errors.New("storage unavailable")

	// ErrDuplicateUsername is returned by CreateUser when the username is
	// already taken. Detection relies on the UNIQUE constraint so the
	// check-and-insert is atomic; there is no separate existence query.
	ErrDuplicateUsername = errors.New("username already exists")
)

// Store defines the interface for expense tracker storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateUser persists a new user. Returns ErrDuplicateUsername if the
	// username is taken.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByUsername retrieves a user by exact, case-sensitive username.
	// Returns (nil, nil) if no such user exists.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	// Returns (nil, nil) if no such user exists.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// ListCategories returns all categories in catalog (seed) order.
	ListCategories(ctx context.Context) ([]models.Category, error)

	// GetCategoryByName retrieves a category by exact name.
	// Returns (nil, nil) if no such category exists.
	GetCategoryByName(ctx context.Context, name string) (*models.Category, error)

	// CreateExpense appends a new expense row. The row is visible to
	// subsequent queries as soon as this returns.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// ListExpenses returns the user's expenses, most recent first.
	// limit <= 0 means no limit.
	ListExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error)

	// SummarizeByCategory returns the sum of the user's expenses grouped by
	// category, ordered by category name. Categories without expenses for
	// this user are omitted. An empty result is not an error.
	SummarizeByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error)

	// Close releases any resources held by the store.
	Close() error
}
