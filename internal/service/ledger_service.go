// Package service implements the application operations the presentation
// layer calls: the expense ledger, the category catalog, and the spending
// report. Every operation takes the authenticated user's ID explicitly.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
	"github.com/rohan-06-eng/cantilver-expense/internal/money"
	"github.com/rohan-06-eng/cantilver-expense/internal/storage"
)

var (
	// ErrInvalidAmount is returned when the amount does not parse as a
	// positive decimal number. Nothing is persisted.
	ErrInvalidAmount = money.ErrInvalidAmount

	// ErrUnknownCategory is returned when the category name does not
	// resolve to a catalog entry. Nothing is persisted.
	ErrUnknownCategory = errors.New("unknown category")
)

// LedgerService appends expenses to a user's ledger.
type LedgerService struct {
	store storage.Store
}

// NewLedgerService creates a new LedgerService with the given storage backend.
func NewLedgerService(store storage.Store) *LedgerService {
	return &LedgerService{store: store}
}

// AddExpense validates and appends an expense for the user.
//
// The amount must parse as a positive decimal; the category name must
// resolve to an existing catalog entry. Date and description are stored
// verbatim: an empty description is permitted and no date-format validation
// is performed. On success the new row is immediately visible to subsequent
// queries.
func (s *LedgerService) AddExpense(ctx context.Context, userID, categoryName, amount, date, description string) (*models.Expense, error) {
	amt, err := money.Parse(amount)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	category, err := s.store.GetCategoryByName(ctx, categoryName)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, categoryName)
	}

	expense := &models.Expense{
		UserID:       userID,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Amount:       amt,
		SpentOn:      date,
		Description:  description,
	}
	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, err
	}

	slog.Info("Expense added",
		"expense_id", expense.ID,
		"user_id", userID,
		"category", category.Name,
		"amount", amt.String(),
		"date", date,
	)
	return expense, nil
}

// ListExpenses returns the user's expenses, most recent first.
// limit <= 0 returns all rows.
func (s *LedgerService) ListExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	return s.store.ListExpenses(ctx, userID, limit)
}
