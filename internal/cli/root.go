package cli

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the root command with all subcommands attached.
func NewRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "expenses",
		Short:         "Personal expense tracker",
		Long:          "Record personal expenses in a local database and view per-category spending reports.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(
		registerCmd(app),
		loginCmd(app),
		logoutCmd(app),
		whoamiCmd(app),
		categoriesCmd(app),
		addCmd(app),
		listCmd(app),
		reportCmd(app),
	)

	return rootCmd
}
