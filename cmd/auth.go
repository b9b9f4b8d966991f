package cmd

import (
	"fmt"
	"sort"
	"time"

	"github.com/chinmay1088/walletgate/api"
	"github.com/chinmay1088/walletgate/chains"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newNonceCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nonce <wallet-address>",
		Short: "Issue a sign-in nonce for a wallet",
		Long: `Ask the service for a single-use nonce. Embed it in the message the
wallet signs, then pass the signature to 'walletgate auth'.

Examples:
  walletgate nonce 0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed
  walletgate nonce 7xKXtg2CW87d97TXJSDpbD5jBkheTqA83TZRuJosgAsU --chain solana`,
		Args: cobra.ExactArgs(1),
		RunE: runNonce,
	}
	cmd.Flags().String("chain", string(chains.Default), "chain slug")
	return cmd
}

func runNonce(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}
	chain, _ := cmd.Flags().GetString("chain")

	var resp *api.NonceResponse
	err = request(cmd, s, "Requesting nonce...", func() error {
		resp, err = client.Nonce(cmd.Context(), api.NonceRequest{
			Chain:         chains.Chain(chain),
			WalletAddress: args[0],
		})
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, resp)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔑 Nonce:     %s\n", color.CyanString(resp.Nonce))
	fmt.Fprintf(out, "📝 Statement: %s\n", resp.Statement)
	fmt.Fprintf(out, "📄 Format:    %s\n", resp.Format)
	if resp.Format == api.FormatSIWE {
		fmt.Fprintln(out, "💡 Pass --format siwe and the signing context flags to 'walletgate auth'")
	}
	return nil
}

func newAuthCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth <wallet-address> <signature>",
		Short: "Exchange a wallet signature for an access token",
		Long: `Send the signature of a nonce message and receive an access token.
Requirement flags gate the sign-in on token ownership.

Examples:
  walletgate auth 0x5aAe...BeAed 0x4f2c...1b
  walletgate auth 0x5aAe...BeAed 0x4f2c...1b --contract 0xfb69...d359 --min-balance 1
  walletgate auth 0x5aAe...BeAed 0x4f2c...1b --format siwe --domain app.example.com \
      --uri https://app.example.com --chain-id 1 --issued-at 2026-10-19T10:00:00Z`,
		Args: cobra.ExactArgs(2),
		RunE: runAuth,
	}
	f := cmd.Flags()
	f.String("chain", string(chains.Default), "chain slug")
	f.String("format", string(api.FormatPlain), "format the nonce was issued in (plain or siwe)")
	f.String("domain", "", "signing context: domain")
	f.String("uri", "", "signing context: URI")
	f.Int64("chain-id", 0, "signing context: chain id")
	f.String("issued-at", "", "signing context: issuance timestamp")
	f.String("chain-type", "", "signing context: chain type")
	f.String("locale", "", "signing context: locale")
	addRequirementFlags(cmd)
	return cmd
}

func signingContextFromFlags(cmd *cobra.Command) *api.SigningContext {
	f := cmd.Flags()
	sc := &api.SigningContext{}
	sc.Domain, _ = f.GetString("domain")
	sc.URI, _ = f.GetString("uri")
	sc.ChainID, _ = f.GetInt64("chain-id")
	sc.IssuedAt, _ = f.GetString("issued-at")
	sc.ChainType, _ = f.GetString("chain-type")
	sc.Locale, _ = f.GetString("locale")
	if *sc == (api.SigningContext{}) {
		return nil
	}
	return sc
}

func runAuth(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}
	reqs, err := requirementsFromFlags(cmd)
	if err != nil {
		return err
	}
	chain, _ := cmd.Flags().GetString("chain")
	format, _ := cmd.Flags().GetString("format")

	var resp *api.AuthResponse
	err = request(cmd, s, "Authenticating...", func() error {
		resp, err = client.Auth(cmd.Context(), api.AuthRequest{
			Chain:         chains.Chain(chain),
			WalletAddress: args[0],
			Signature:     args[1],
			Requirements:  reqs,
			Context:       signingContextFromFlags(cmd),
			Format:        api.MessageFormat(format),
		})
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, resp)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✅ Authenticated")
	printSession(cmd, resp)
	return nil
}

func newAuthzCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "authz <access-token>",
		Short: "Re-check gating requirements for an access token",
		Long: `Check requirements against an existing access token without a new
signature. At least one requirement flag (or --requirements) is needed.
--revalidate makes the service re-derive ownership instead of trusting an
earlier decision.

Examples:
  walletgate authz eyJhbGciOi... --collection punks
  walletgate authz eyJhbGciOi... --contract 0xfb69...d359 --revalidate`,
		Args: cobra.ExactArgs(1),
		RunE: runAuthz,
	}
	cmd.Flags().Bool("revalidate", false, "force the service to re-derive ownership")
	addRequirementFlags(cmd)
	return cmd
}

func runAuthz(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}
	reqs, err := requirementsFromFlags(cmd)
	if err != nil {
		return err
	}
	revalidate, _ := cmd.Flags().GetBool("revalidate")

	var resp *api.AuthResponse
	err = request(cmd, s, "Checking authorization...", func() error {
		resp, err = client.Authz(cmd.Context(), api.AuthzRequest{
			AccessToken:  args[0],
			Requirements: reqs,
			Revalidate:   revalidate,
		})
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, resp)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "✅ Authorized")
	printSession(cmd, resp)
	return nil
}

func printSession(cmd *cobra.Command, resp *api.AuthResponse) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🔑 Access token: %s\n", resp.AccessToken)
	printUser(cmd, resp.User)
}

func printUser(cmd *cobra.Command, user api.AuthenticatedUser) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "👛 Wallet: %s\n", user.WalletAddress)
	if user.FormattedWalletAddress != "" {
		fmt.Fprintf(out, "   Display: %s\n", user.FormattedWalletAddress)
	}
	fmt.Fprintf(out, "🌐 Chain: %s\n", user.Chain)

	if len(user.TokenBalances) > 0 {
		keys := make([]string, 0, len(user.TokenBalances))
		for k := range user.TokenBalances {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		fmt.Fprintln(out, "📊 Ownership:")
		for _, k := range keys {
			fmt.Fprintf(out, "   - %s: %s\n", k, user.TokenBalances[k])
		}
	}
}

func newValidateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <access-token>",
		Short: "Decode and check an access token",
		Long: `Validate an access token and print its claims. Requirement flags are
enforced at validation time.

Examples:
  walletgate validate eyJhbGciOi...
  walletgate validate eyJhbGciOi... --allow 0x5aAe...BeAed`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
	addRequirementFlags(cmd)
	return cmd
}

func runValidate(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}
	reqs, err := requirementsFromFlags(cmd)
	if err != nil {
		return err
	}

	var claims *api.AccessTokenPayload
	err = request(cmd, s, "Validating token...", func() error {
		claims, err = client.Validate(cmd.Context(), api.ValidateRequest{
			AccessToken:  args[0],
			Requirements: reqs,
		})
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, claims)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "✅ Token is valid")
	fmt.Fprintf(out, "   Subject:  %s\n", claims.Subject)
	fmt.Fprintf(out, "   Issuer:   %s\n", claims.Issuer)
	fmt.Fprintf(out, "   Audience: %s\n", claims.Audience)
	fmt.Fprintf(out, "   Token ID: %s\n", claims.TokenID)
	fmt.Fprintf(out, "   Issued:   %s\n", time.Unix(claims.IssuedAt, 0).UTC().Format(time.RFC3339))
	fmt.Fprintf(out, "   Expires:  %s\n", claims.Expiry().UTC().Format(time.RFC3339))
	printUser(cmd, claims.User)
	return nil
}
