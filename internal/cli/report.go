package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// barWidth is the width of the widest bar in the report chart.
const barWidth = 40

// reportCmd renders the per-category spending report as a bar chart.
func reportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "report",
		Short: "Show spending summed by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			userID, _, err := app.requireSession()
			if err != nil {
				return err
			}

			totals, err := app.Report.SummarizeByCategory(cmd.Context(), userID)
			if err != nil {
				return fmt.Errorf("failed to generate report: %w", err)
			}
			if len(totals) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No expenses found for generating report.")
				return nil
			}

			var maxCents int64
			for _, t := range totals {
				if t.Total.Cents > maxCents {
					maxCents = t.Total.Cents
				}
			}

			rows := make([][]interface{}, len(totals))
			for i, t := range totals {
				rows[i] = []interface{}{t.CategoryName, t.Total.String(), bar(t.Total.Cents, maxCents)}
			}
			renderTable(cmd.OutOrStdout(), []string{"Category", "Total", ""}, rows)
			return nil
		},
	}
}

// bar scales cents against the largest total; every non-zero total gets at
// least one segment.
func bar(cents, maxCents int64) string {
	if maxCents <= 0 {
		return ""
	}
	n := int(cents * barWidth / maxCents)
	if n < 1 {
		n = 1
	}
	return strings.Repeat("█", n)
}
