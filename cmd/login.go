package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/chinmay1088/walletgate/crypto"
	"github.com/chinmay1088/walletgate/keyring"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newLoginCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Store your API key in an encrypted vault",
		Long: `Store your API key encrypted with a password under ~/.walletgate.
Later commands unlock it when no --api-key or WALLETGATE_API_KEY is given.
A --base-url given here is stored with the key and used whenever the key
is read from the vault, unless 'walletgate endpoint' or --base-url says
otherwise.

Examples:
  walletgate login
  walletgate login --base-url https://staging.example.com/v1`,
		Args: cobra.NoArgs,
		RunE: runLogin,
	}
	cmd.Flags().Bool("force", false, "replace existing credentials")
	return cmd
}

func readSecret(cmd *cobra.Command, prompt string) (string, error) {
	fmt.Fprint(cmd.ErrOrStderr(), prompt)
	secret, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.ErrOrStderr())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(string(secret)), nil
}

func runLogin(cmd *cobra.Command, args []string) error {
	s, err := readSettings(cmd)
	if err != nil {
		return err
	}
	manager := keyring.NewManager(s.dir)
	force, _ := cmd.Flags().GetBool("force")

	baseURL := strings.TrimSpace(s.baseURLFlag)
	if baseURL != "" {
		if err := checkEndpoint(baseURL); err != nil {
			return err
		}
	}

	if manager.VaultExists() && !force {
		return fmt.Errorf("credentials already stored. Run 'walletgate logout' or pass --force")
	}
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return fmt.Errorf("login needs an interactive terminal")
	}

	apiKey, err := readSecret(cmd, "Enter your API key: ")
	if err != nil {
		return err
	}
	if apiKey == "" {
		return fmt.Errorf("API key is empty")
	}

	password, err := readSecret(cmd, "Choose a vault password: ")
	if err != nil {
		return err
	}
	if len(password) < 8 {
		return fmt.Errorf("password must be at least 8 characters long")
	}
	confirm, err := readSecret(cmd, "Confirm password: ")
	if err != nil {
		return err
	}
	if password != confirm {
		return fmt.Errorf("passwords do not match")
	}

	if err := manager.Save(crypto.Credentials{APIKey: apiKey, BaseURL: baseURL}, password); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✅ Credentials stored")
	fmt.Fprintf(cmd.OutOrStdout(), "📍 Vault: %s\n", manager.Dir())
	if baseURL != "" {
		fmt.Fprintf(cmd.OutOrStdout(), "🌐 Endpoint: %s\n", baseURL)
	}
	return nil
}

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Delete stored credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := readSettings(cmd)
			if err != nil {
				return err
			}
			if err := keyring.NewManager(s.dir).Remove(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "✅ Credentials removed")
			return nil
		},
	}
}
