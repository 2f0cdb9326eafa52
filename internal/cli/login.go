package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	fitpair "github.com/fitpair/fitpair"
	"github.com/fitpair/fitpair/forms"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and persist the session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		email := loginEmail
		password := loginPassword

		if email == "" || password == "" {
			form := huh.NewForm(
				huh.NewGroup(
					huh.NewInput().
						Title("Email").
						Placeholder("name@example.com").
						Validate(forms.CheckEmail).
						Value(&email),
					huh.NewInput().
						Title("Password").
						EchoMode(huh.EchoModePassword).
						Validate(forms.CheckPassword).
						Value(&password),
				),
			)
			if err := form.Run(); err != nil {
				return err
			}
		} else if result := forms.ValidateCredentials(email, password); !result.Valid {
			for field, msg := range result.Errors {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", field, msg)
			}
			return errors.New("invalid sign-in input")
		}

		client, cleanup, err := newClient()
		if err != nil {
			return err
		}
		defer cleanup()

		ctx := context.Background()
		if _, err := client.Bootstrap(ctx); err != nil && !errors.Is(err, fitpair.ErrBootstrapRan) {
			return err
		}

		snap, err := client.Login(ctx, email, password)
		if err != nil {
			if errors.Is(err, fitpair.ErrSessionNotPersisted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "warning: signed in, but the session could not be saved and will not survive a restart")
			} else {
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (%s). Your home is the %s.\n",
			snap.Email, roleLabel(snap.Role), areaLabel(fitpair.Decide(snap)))
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Email (prompts when omitted)")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "Password (prompts when omitted)")
	rootCmd.AddCommand(loginCmd)
}
