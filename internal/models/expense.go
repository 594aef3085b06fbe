package models

import "github.com/rohan-06-eng/cantilver-expense/internal/money"

// Expense is a single recorded expense. Expenses are append-only: once
// written they are never updated or deleted.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string

	// UserID references the owning user.
	UserID string

	// CategoryID references the resolved category.
	CategoryID int64

	// CategoryName is the resolved category name. Populated on reads that
	// join the catalog; empty on writes.
	CategoryName string

	// Amount is the expense amount in cents.
	Amount money.Money

	// SpentOn is the calendar date as entered, normally YYYY-MM-DD.
	// Stored verbatim; no format validation is performed.
	SpentOn string

	// Description is optional free text.
	Description string

	// CreatedAt is the Unix timestamp when the row was appended.
	CreatedAt int64
}

// CategoryTotal is one row of the per-category spending report: the sum of
// all of a user's expenses in one category.
type CategoryTotal struct {
	CategoryName string
	Total        money.Money
}
