package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/chinmay1088/walletgate/api"
	"github.com/spf13/cobra"
)

var (
	version = api.Version
)

// NewRootCmd builds the walletgate command tree
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "walletgate",
		Short: "Wallet sign-in and token gating from the command line",
		Long: `walletgate talks to the wallet authorization service: it issues sign-in
nonces, exchanges signatures for access tokens, checks token gating
requirements and looks up supported chains.

Credentials:
  --api-key flag, WALLETGATE_API_KEY (also read from ./.env), or the
  encrypted vault written by 'walletgate login'.

Examples:
  walletgate login                                   # Store your API key
  walletgate nonce 0x5aAe...BeAed                    # Issue a sign-in nonce
  walletgate auth 0x5aAe...BeAed 0x4f2c...           # Exchange a signature for a token
  walletgate validate eyJhbGciOi...                  # Decode and check a token
  walletgate ownership solana 7xKX... --token-id So1...
  walletgate chains                                  # List supported chains`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().String("api-key", "", "API key (overrides WALLETGATE_API_KEY and the vault)")
	rootCmd.PersistentFlags().String("base-url", "", "service base URL")
	rootCmd.PersistentFlags().String("dir", "", "config directory (default ~/.walletgate)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace requests")
	rootCmd.PersistentFlags().Bool("json", false, "print raw JSON")
	rootCmd.PersistentFlags().Bool("strict", false, "check address formats before sending")
	_ = rootCmd.PersistentFlags().MarkHidden("dir")

	// Add subcommands
	rootCmd.AddCommand(newLoginCmd())
	rootCmd.AddCommand(newLogoutCmd())
	rootCmd.AddCommand(newEndpointCmd())
	rootCmd.AddCommand(newNonceCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newAuthzCmd())
	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newOwnershipCmd())
	rootCmd.AddCommand(newChainCmd())
	rootCmd.AddCommand(newChainsCmd())
	rootCmd.AddCommand(newAddressCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the root command until it finishes or the process is interrupted
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return NewRootCmd().ExecuteContext(ctx)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "walletgate v%s\n", version)
		},
	}
}
