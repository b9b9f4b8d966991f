package cmd

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/walletgate/api"
	"github.com/chinmay1088/walletgate/chains"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newChainsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chains",
		Short: "List supported chains",
		Args:  cobra.NoArgs,
		RunE:  runChains,
	}
}

func runChains(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}

	var list []api.ChainInfo
	err = request(cmd, s, "Fetching chains...", func() error {
		list, err = client.Chains(cmd.Context())
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, list)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 %d supported chains\n\n", len(list))
	for _, c := range list {
		fmt.Fprintf(out, "%-12s %-20s id=%-8d type=%-9s authz=%s\n",
			c.ChainSlug, c.ChainName, c.ChainID, c.ChainType, yesNo(c.AuthorizationSupported))
	}
	return nil
}

func newChainCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chain <slug>",
		Short: "Show metadata for one chain",
		Long: `Show metadata for one chain.

Examples:
  walletgate chain ethereum
  walletgate chain solana --json`,
		Args: cobra.ExactArgs(1),
		RunE: runChain,
	}
}

func runChain(cmd *cobra.Command, args []string) error {
	client, s, err := newClient(cmd)
	if err != nil {
		return err
	}

	var info *api.ChainInfo
	err = request(cmd, s, "Fetching chain...", func() error {
		info, err = client.ChainInfo(cmd.Context(), chains.Chain(args[0]))
		return err
	})
	if err != nil {
		return err
	}
	if s.json {
		return printJSON(cmd, info)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "🌐 %s (%s)\n", color.CyanString(info.ChainName), info.ChainSlug)
	fmt.Fprintf(out, "   Chain ID:      %d\n", info.ChainID)
	fmt.Fprintf(out, "   Type:          %s\n", strings.ToUpper(string(info.ChainType)))
	fmt.Fprintf(out, "   Public RPC:    %s\n", info.PublicRPC)
	fmt.Fprintf(out, "   Authorization: %s\n", yesNo(info.AuthorizationSupported))
	return nil
}
