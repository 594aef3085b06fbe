package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rohan-06-eng/cantilver-expense/internal/service"
)

// categoriesCmd lists the spending categories.
func categoriesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List spending categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			categories, err := app.Catalog.ListCategories(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to list categories: %w", err)
			}

			rows := make([][]interface{}, len(categories))
			for i, c := range categories {
				rows[i] = []interface{}{c.ID, c.Name}
			}
			renderTable(cmd.OutOrStdout(), []string{"ID", "Name"}, rows)
			return nil
		},
	}
}

// addCmd records a new expense for the logged-in user.
func addCmd(app *App) *cobra.Command {
	var amount, category, date, description string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Record an expense",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := app.requireSession()
			if err != nil {
				return err
			}

			// Amount and category are required; date defaults to today
			if amount == "" || category == "" {
				return fmt.Errorf("amount and category are required")
			}
			if date == "" {
				date = time.Now().Format("2006-01-02")
			}

			expense, err := app.Ledger.AddExpense(cmd.Context(), userID, category, amount, date, description)
			if err != nil {
				if errors.Is(err, service.ErrInvalidAmount) {
					return fmt.Errorf("amount must be a number: %q", amount)
				}
				if errors.Is(err, service.ErrUnknownCategory) {
					return fmt.Errorf("unknown category %q; run 'expenses categories' to see the catalog", category)
				}
				return fmt.Errorf("failed to add expense: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Expense added: %s %s on %s\n",
				expense.Amount, expense.CategoryName, expense.SpentOn)
			return nil
		},
	}

	cmd.Flags().StringVarP(&amount, "amount", "a", "", "Amount spent, e.g. 12.50")
	cmd.Flags().StringVarP(&category, "category", "c", "", "Spending category")
	cmd.Flags().StringVarP(&date, "date", "d", "", "Date (YYYY-MM-DD, defaults to today)")
	cmd.Flags().StringVarP(&description, "description", "m", "", "Optional description")

	return cmd
}

// listCmd shows the logged-in user's recent expenses.
func listCmd(app *App) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List recent expenses",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := app.requireSession()
			if err != nil {
				return err
			}

			expenses, err := app.Ledger.ListExpenses(cmd.Context(), userID, limit)
			if err != nil {
				return fmt.Errorf("failed to list expenses: %w", err)
			}
			if len(expenses) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses recorded yet.")
				return nil
			}

			rows := make([][]interface{}, len(expenses))
			for i, e := range expenses {
				rows[i] = []interface{}{e.SpentOn, e.CategoryName, e.Amount.String(), e.Description}
			}
			renderTable(cmd.OutOrStdout(), []string{"Date", "Category", "Amount", "Description"}, rows)
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of expenses to show (0 for all)")

	return cmd
}
