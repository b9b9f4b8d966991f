package cmd

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/chinmay1088/walletgate/api"
	"github.com/chinmay1088/walletgate/keyring"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newEndpointCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "endpoint [url]",
		Short: "Show or change the service endpoint",
		Long: `Show the saved service endpoint or switch to another deployment.

Examples:
  walletgate endpoint                                 # Show current endpoint
  walletgate endpoint https://staging.example.com/v1  # Switch endpoint
  walletgate endpoint --reset                         # Back to the default`,
		Args: cobra.MaximumNArgs(1),
		RunE: runEndpoint,
	}
	cmd.Flags().Bool("reset", false, "forget the saved endpoint")
	return cmd
}

func runEndpoint(cmd *cobra.Command, args []string) error {
	s, err := readSettings(cmd)
	if err != nil {
		return err
	}
	manager := keyring.NewManager(s.dir)
	out := cmd.OutOrStdout()

	if reset, _ := cmd.Flags().GetBool("reset"); reset {
		if err := manager.SetEndpoint(""); err != nil {
			return err
		}
		fmt.Fprintf(out, "🌐 Endpoint reset to %s\n", color.GreenString(api.DefaultBaseURL))
		return nil
	}

	if len(args) == 0 {
		current := manager.Endpoint()
		if current == "" {
			fmt.Fprintf(out, "🌐 Current endpoint: %s (default)\n", color.GreenString(api.DefaultBaseURL))
			return nil
		}
		fmt.Fprintf(out, "🌐 Current endpoint: %s\n", color.YellowString(current))
		return nil
	}

	if err := checkEndpoint(args[0]); err != nil {
		return err
	}
	if err := manager.SetEndpoint(args[0]); err != nil {
		return err
	}

	fmt.Fprintf(out, "🌐 Switched to %s\n", color.YellowString(args[0]))
	if strings.HasPrefix(args[0], "http://") {
		fmt.Fprintln(out, "⚠️  The API key is sent in every request; plain http exposes it")
	}
	return nil
}

// checkEndpoint accepts absolute http(s) URLs only
func checkEndpoint(raw string) error {
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "https" && u.Scheme != "http") || u.Host == "" {
		return fmt.Errorf("invalid endpoint: %s. Use an http(s) URL", raw)
	}
	return nil
}
