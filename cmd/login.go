package cmd

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"

	"github.com/dataroom/cli/internal/api"
)

var (
	flagCredential string
	flagToken      string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate with your DataRoom server",
	Long: `Authenticate using a Google ID credential or an existing API token.

Google credential (from the provider's sign-in flow):
  dataroom login --credential eyJhbGc...

Existing token:
  dataroom login --token eyJhbGc...`,
	RunE: runLogin,
}

func init() {
	loginCmd.Flags().StringVar(&flagCredential, "credential", "", "Google ID credential to exchange for a session")
	loginCmd.Flags().StringVar(&flagToken, "token", "", "Existing session token")
	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, args []string) error {
	switch {
	case flagCredential != "":
		return loginWithCredential(flagCredential)
	case flagToken != "":
		return loginWithToken(flagToken)
	}
	return fmt.Errorf("pass --credential or --token")
}

func loginWithCredential(credential string) error {
	client := api.NewClient(sess.ServerURL, "")
	resp, err := client.GoogleLogin(credential)
	if err != nil {
		return fmt.Errorf("authenticating: %w", err)
	}

	sess.SetAuth(&resp.User, resp.Token)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", resp.User.Name, resp.User.Email)
	return nil
}

func loginWithToken(token string) error {
	// Validate the token by calling /auth/me.
	client := api.NewClient(sess.ServerURL, token)
	user, err := client.Me()
	if err != nil {
		var apiErr *api.APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
			return fmt.Errorf("invalid token — server returned 401")
		}
		return fmt.Errorf("validating token: %w", err)
	}

	sess.SetAuth(user, token)
	if err := sess.Save(); err != nil {
		return fmt.Errorf("saving session: %w", err)
	}

	fmt.Printf("Logged in as %s (%s)\n", user.Name, user.Email)
	return nil
}
