package cmd

import (
	"fmt"

	"github.com/chinmay1088/walletgate/chains"
	"github.com/spf13/cobra"
)

func newAddressCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "address <chain> <address>",
		Short: "Check and normalize a wallet address locally",
		Long: `Check that an address is well formed for a chain and print its
canonical form. Nothing is sent to the service.

Supported chains: ethereum, polygon, arbitrum, optimism, base, avalanche, bsc,
solana, bitcoin

Examples:
  walletgate address ethereum 0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed
  walletgate address bitcoin bc1qw508d6qejxtdg4y5r3zarvary0c5xw7kv8f3t4`,
		Args: cobra.ExactArgs(2),
		RunE: runAddress,
	}
}

func runAddress(cmd *cobra.Command, args []string) error {
	chain := chains.Chain(args[0]).Normalize()
	family, ok := chains.FamilyOf(chain)
	if !ok {
		return fmt.Errorf("unsupported chain: %s", chain)
	}

	normalized, err := chains.NormalizeAddress(family, args[1])
	if err != nil {
		return err
	}

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return printJSON(cmd, map[string]string{
			"chain":   string(chain),
			"family":  string(family),
			"address": normalized,
		})
	}
	fmt.Fprintf(cmd.OutOrStdout(), "✅ %s (%s): %s\n", chain, family, normalized)
	return nil
}
