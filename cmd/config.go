package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/chinmay1088/walletgate/api"
	"github.com/chinmay1088/walletgate/crypto"
	"github.com/chinmay1088/walletgate/keyring"
	"github.com/chinmay1088/walletgate/logging"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Environment variables read by the CLI
const (
	EnvAPIKey   = "WALLETGATE_API_KEY"
	EnvBaseURL  = "WALLETGATE_BASE_URL"
	EnvPassword = "WALLETGATE_PASSWORD"
)

// settings are the resolved global flags
type settings struct {
	apiKeyFlag  string
	baseURLFlag string
	dir         string
	verbose     bool
	json        bool
	strict      bool
}

func readSettings(cmd *cobra.Command) (*settings, error) {
	s := &settings{}
	s.apiKeyFlag, _ = cmd.Flags().GetString("api-key")
	s.baseURLFlag, _ = cmd.Flags().GetString("base-url")
	s.dir, _ = cmd.Flags().GetString("dir")
	s.verbose, _ = cmd.Flags().GetBool("verbose")
	s.json, _ = cmd.Flags().GetBool("json")
	s.strict, _ = cmd.Flags().GetBool("strict")

	if s.dir == "" {
		dir, err := keyring.DefaultDir()
		if err != nil {
			return nil, err
		}
		s.dir = dir
	}
	return s, nil
}

// loadDotEnv reads ./.env without overriding variables already set
func loadDotEnv() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}
	return nil
}

// resolver picks the API key and base URL from flags, environment and the
// keyring, in that order
type resolver struct {
	getenv   func(string) string
	keyring  *keyring.Manager
	password func() (string, error)

	// set when the API key came from the vault
	creds *crypto.Credentials
}

func (r *resolver) apiKey(flag string) (string, error) {
	if key := strings.TrimSpace(flag); key != "" {
		return key, nil
	}
	if key := strings.TrimSpace(r.getenv(EnvAPIKey)); key != "" {
		return key, nil
	}
	if !r.keyring.VaultExists() {
		return "", fmt.Errorf("no API key: pass --api-key, set %s or run 'walletgate login'", EnvAPIKey)
	}

	password, err := r.password()
	if err != nil {
		return "", err
	}
	creds, err := r.keyring.Unlock(password)
	if err != nil {
		return "", fmt.Errorf("failed to unlock credentials: %w", err)
	}
	r.creds = creds
	return creds.APIKey, nil
}

func (r *resolver) baseURL(flag string) string {
	if u := strings.TrimSpace(flag); u != "" {
		return u
	}
	if u := strings.TrimSpace(r.getenv(EnvBaseURL)); u != "" {
		return u
	}
	if u := r.keyring.Endpoint(); u != "" {
		return u
	}
	// base URL recorded at login, only known once the vault is open
	if r.creds != nil && r.creds.BaseURL != "" {
		return r.creds.BaseURL
	}
	return api.DefaultBaseURL
}

// promptPassword reads the vault password from WALLETGATE_PASSWORD or the terminal
func promptPassword(cmd *cobra.Command) func() (string, error) {
	return func() (string, error) {
		if pw := os.Getenv(EnvPassword); pw != "" {
			return pw, nil
		}
		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			return "", fmt.Errorf("vault is locked and stdin is not a terminal; set %s", EnvPassword)
		}
		fmt.Fprint(cmd.ErrOrStderr(), "Enter your vault password: ")
		password, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("failed to read password: %w", err)
		}
		return string(password), nil
	}
}

// newClient builds an API client from the command's flags and environment
func newClient(cmd *cobra.Command) (*api.Client, *settings, error) {
	s, err := readSettings(cmd)
	if err != nil {
		return nil, nil, err
	}
	if err := loadDotEnv(); err != nil {
		return nil, nil, err
	}

	r := &resolver{
		getenv:   os.Getenv,
		keyring:  keyring.NewManager(s.dir),
		password: promptPassword(cmd),
	}
	key, err := r.apiKey(s.apiKeyFlag)
	if err != nil {
		return nil, nil, err
	}

	logger, err := logging.New(s.verbose)
	if err != nil {
		return nil, nil, err
	}

	opts := []api.Option{
		api.WithBaseURL(r.baseURL(s.baseURLFlag)),
		api.WithLogger(logger),
		api.WithUserAgent("walletgate-cli/" + version),
	}
	if s.strict {
		opts = append(opts, api.WithStrictAddresses())
	}

	client, err := api.NewClient(key, opts...)
	if err != nil {
		return nil, nil, err
	}
	return client, s, nil
}
