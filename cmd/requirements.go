package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/chinmay1088/walletgate/api"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

func addRequirementFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("requirements", "", "requirements as JSON, or @file to read them from a file")
	f.String("min-balance", "", "minimum token balance")
	f.String("contract", "", "token contract address")
	f.StringSlice("token-id", nil, "token id, repeatable")
	f.String("collection", "", "collection id")
	f.String("creator", "", "creator address")
	f.StringSlice("allow", nil, "allowed wallet address, repeatable")
}

// requirementsFromFlags merges --requirements with the individual flags,
// which take precedence. It returns nil when no requirement was given.
func requirementsFromFlags(cmd *cobra.Command) (*api.Requirements, error) {
	f := cmd.Flags()
	req := &api.Requirements{}

	raw, _ := f.GetString("requirements")
	if raw != "" {
		data := []byte(raw)
		if strings.HasPrefix(raw, "@") {
			var err error
			data, err = os.ReadFile(strings.TrimPrefix(raw, "@"))
			if err != nil {
				return nil, fmt.Errorf("failed to read requirements file: %w", err)
			}
		}
		if err := json.Unmarshal(data, req); err != nil {
			return nil, fmt.Errorf("failed to parse requirements: %w", err)
		}
	}

	if v, _ := f.GetString("min-balance"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			return nil, fmt.Errorf("invalid --min-balance %q: %w", v, err)
		}
		req.MinTokenBalance = &d
	}
	if v, _ := f.GetString("contract"); v != "" {
		req.ContractAddress = v
	}
	if v, _ := f.GetStringSlice("token-id"); len(v) > 0 {
		req.TokenIDs = v
	}
	if v, _ := f.GetString("collection"); v != "" {
		req.CollectionID = v
	}
	if v, _ := f.GetString("creator"); v != "" {
		req.CreatorAddress = v
	}
	if v, _ := f.GetStringSlice("allow"); len(v) > 0 {
		req.WalletAddresses = v
	}

	if raw == "" && req.IsZero() {
		return nil, nil
	}
	return req, nil
}
