package sqlite

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/rohan-06-eng/cantilver-expense/internal/models"
	"github.com/rohan-06-eng/cantilver-expense/internal/money"
)

// CreateExpense appends a new expense row.
// Generates the ID and creation timestamp if not set. The insert is a single
// statement: it either commits fully or leaves no partial state.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	query := `
		INSERT INTO expenses (id, user_id, category_id, amount_cents, spent_on, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	_, err := s.db.ExecContext(ctx, query,
		expense.ID,
		expense.UserID,
		expense.CategoryID,
		expense.Amount.Cents,
		expense.SpentOn,
		expense.Description,
		expense.CreatedAt,
	)
	if err != nil {
		return wrapUnavailable("create expense", err)
	}

	return nil
}

// ListExpenses returns the user's expenses with resolved category names,
// most recent first. limit <= 0 returns all rows.
func (s *SQLiteStore) ListExpenses(ctx context.Context, userID string, limit int) ([]models.Expense, error) {
	query := `
		SELECT e.id, e.user_id, e.category_id, c.name, e.amount_cents, e.spent_on, e.description, e.created_at
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = ?
		ORDER BY e.created_at DESC, e.id
	`
	args := []any{userID}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, wrapUnavailable("list expenses", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(
			&e.ID,
			&e.UserID,
			&e.CategoryID,
			&e.CategoryName,
			&e.Amount.Cents,
			&e.SpentOn,
			&e.Description,
			&e.CreatedAt,
		); err != nil {
			return nil, wrapUnavailable("scan expense", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable("iterate expenses", err)
	}

	return expenses, nil
}

// SummarizeByCategory computes the sum of the user's expenses grouped by
// category name. Inner-join semantics: categories without a matching expense
// are omitted. Results are ordered by category name so report output is
// deterministic.
func (s *SQLiteStore) SummarizeByCategory(ctx context.Context, userID string) ([]models.CategoryTotal, error) {
	query := `
		SELECT c.name, SUM(e.amount_cents)
		FROM expenses e
		JOIN categories c ON e.category_id = c.id
		WHERE e.user_id = ?
		GROUP BY c.name
		ORDER BY c.name
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, wrapUnavailable("summarize by category", err)
	}
	defer rows.Close()

	var totals []models.CategoryTotal
	for rows.Next() {
		var name string
		var cents int64
		if err := rows.Scan(&name, &cents); err != nil {
			return nil, wrapUnavailable("scan category total", err)
		}
		totals = append(totals, models.CategoryTotal{
			CategoryName: name,
			Total:        money.Money{Cents: cents},
		})
	}
	if err := rows.Err(); err != nil {
		return nil, wrapUnavailable("iterate category totals", err)
	}

	return totals, nil
}
