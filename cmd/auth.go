package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	supabasebackend "github.com/bnema/dreamlog/internal/adapters/backend/supabase"
	"github.com/bnema/dreamlog/internal/domain"
	"github.com/spf13/cobra"
)

var errMissingToken = errors.New("access token is required")

func newAuthCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage backend authentication",
	}

	cmd.AddCommand(newAuthLoginCmd(app), newAuthLogoutCmd(app), newAuthWhoamiCmd(app))

	return cmd
}

func newAuthLoginCmd(app *app) *cobra.Command {
	var token string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store a backend access token",
		Long:  "Store a backend access token in the secret store. Reads the token from stdin when --token is not set.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			token = strings.TrimSpace(token)
			if token == "" {
				read, err := readToken(cmd.InOrStdin())
				if err != nil {
					return err
				}
				token = read
			}
			if token == "" {
				return errMissingToken
			}

			if err := app.secretStore.Put(cmd.Context(), supabasebackend.AccessTokenKey, token); err != nil {
				return fmt.Errorf("store access token: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Access token stored.")
			return err
		},
	}

	cmd.Flags().StringVar(&token, "token", "", "Access token")

	return cmd
}

func readToken(in io.Reader) (string, error) {
	scanner := bufio.NewScanner(in)
	if scanner.Scan() {
		return strings.TrimSpace(scanner.Text()), nil
	}
	if err := scanner.Err(); err != nil {
		return "", fmt.Errorf("read access token: %w", err)
	}
	return "", nil
}

func newAuthLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored access token",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.secretStore.Delete(cmd.Context(), supabasebackend.AccessTokenKey); err != nil {
				return fmt.Errorf("remove access token: %w", err)
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return err
		},
	}
}

func newAuthWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current user and backend",
		RunE: func(cmd *cobra.Command, _ []string) error {
			userID, err := app.currentUser(cmd.Context())
			if err != nil {
				if errors.Is(err, domain.ErrAuthenticationRequired) {
					_, writeErr := fmt.Fprintf(cmd.OutOrStdout(), "not signed in (backend: %s)\n", app.backend)
					if writeErr != nil {
						return writeErr
					}
				}
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s (backend: %s)\n", userID, app.backend)
			return err
		},
	}
}
