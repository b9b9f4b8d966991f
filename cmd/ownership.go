package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletgate/api"
	"github.com/chinmay1088/walletgate/chains"
	"github.com/fatih/color"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func newOwnershipCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ownership <chain> <wallet-address>",
		Short: "Check whether a wallet holds a token",
		Long: `Check token ownership for a wallet.

EVM chains (ethereum, polygon, arbitrum, optimism, base, avalanche, bsc)
need --contract. Solana needs one or more --token-id mint addresses and
Bitcoin one or more --token-id inscription ids.

Examples:
  walletgate ownership ethereum 0x5aAe...BeAed --contract 0xfb69...d359 --min-balance 1
  walletgate ownership solana 7xKX...gAsU --token-id So11111111111111111111111111111111111111112
  walletgate ownership bitcoin bc1q...f3t4 --token-id 6fb9...2799i0`,
		Args: cobra.ExactArgs(2),
		RunE: runOwnership,
	}
	f := cmd.Flags()
	f.String("contract", "", "token contract address")
	f.StringSlice("token-id", nil, "token id, repeatable")
	f.String("min-balance", "", "minimum token balance")
	return cmd
}

func runOwnership(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}

	req := api.TokenOwnershipRequest{
		Chain:         chains.Chain(args[0]),
		WalletAddress: args[1],
	}
	req.ContractAddress, _ = cmd.Flags().GetString("contract")
	req.TokenIDs, _ = cmd.Flags().GetStringSlice("token-id")
	if v, _ := cmd.Flags().GetString("min-balance"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return fmt.Errorf("invalid --min-balance %q: %w", v, err)
		}
		req.MinTokenBalance = &d
	}

	var resp *api.TokenOwnership
	err = request(cmd, s, "Checking ownership...", func() error {
		resp, err = client.TokenOwnership(cmd.Context(), req)
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, resp)
	}

	balance, err := resp.Balance()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "👛 Wallet:  %s\n", resp.WalletAddress)
	fmt.Fprintf(out, "💰 Balance: %s\n", color.CyanString(balance.String()))
	fmt.Fprintf(out, "🔐 Allowed: %s\n", yesNo(resp.Allowed))
	return nil
}
