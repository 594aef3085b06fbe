package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rohan-06-eng/cantilver-expense/internal/auth"
)

// registerCmd creates a new user account.
func registerCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new account",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := app.Auth.Register(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, auth.ErrDuplicateUsername) {
					return fmt.Errorf("registration failed: username %q already exists", username)
				}
				return fmt.Errorf("registration failed: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Registration successful. You can now log in.")
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username for the new account")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password for the new account")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

// loginCmd authenticates and stores a session token for subsequent commands.
func loginCmd(app *App) *cobra.Command {
	var username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in and start a session",
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Auth.Authenticate(cmd.Context(), username, password)
			if err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					return fmt.Errorf("login failed: invalid username or password")
				}
				return fmt.Errorf("login failed: %w", err)
			}

			token, err := app.Sessions.Generate(user)
			if err != nil {
				return fmt.Errorf("failed to create session: %w", err)
			}
			if err := app.Tokens.Save(token); err != nil {
				return fmt.Errorf("failed to save session: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s.\n", user.Username)
			return nil
		},
	}

	cmd.Flags().StringVarP(&username, "username", "u", "", "Username")
	cmd.Flags().StringVarP(&password, "password", "p", "", "Password")
	cmd.MarkFlagRequired("username")
	cmd.MarkFlagRequired("password")

	return cmd
}

// logoutCmd ends the current session.
func logoutCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Tokens.Clear(); err != nil {
				return fmt.Errorf("failed to clear session: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

// whoamiCmd prints the current session's user.
func whoamiCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, username, err := app.requireSession()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), username)
			return nil
		},
	}
}
