package api

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/chinmay1088/walletgate/chains"
)

// requiredField is one identifying field an ownership check may need
type requiredField struct {
	name    string
	present func(*TokenOwnershipRequest) bool
	check   func(chains.Family, *TokenOwnershipRequest) error
}

var (
	contractField = requiredField{
		name: "contractAddress",
		present: func(r *TokenOwnershipRequest) bool {
			return r.ContractAddress != ""
		},
		check: func(f chains.Family, r *TokenOwnershipRequest) error {
			return chains.ValidateContract(f, r.ContractAddress)
		},
	}

	tokenIDsField = requiredField{
		name: "tokenIds",
		present: func(r *TokenOwnershipRequest) bool {
			return len(r.TokenIDs) > 0
		},
		check: func(f chains.Family, r *TokenOwnershipRequest) error {
			for _, id := range r.TokenIDs {
				if err := chains.ValidateTokenID(f, id); err != nil {
					return err
				}
			}
			return nil
		},
	}
)

// ownershipRules lists the fields each chain family needs to resolve an
// ownership check. A new family is one entry here.
var ownershipRules = map[chains.Family][]requiredField{
	chains.FamilyEthereum: {contractField},
	chains.FamilySolana:   {tokenIDsField},
	chains.FamilyBitcoin:  {tokenIDsField},
}

// TokenOwnership checks whether the wallet holds the asset identified by the
// chain-specific fields of req
func (c *Client) TokenOwnership(ctx context.Context, req TokenOwnershipRequest) (*TokenOwnership, error) {
	req.Chain = req.Chain.OrDefault()
	req.WalletAddress = strings.TrimSpace(req.WalletAddress)
	req.ContractAddress = strings.TrimSpace(req.ContractAddress)
	req.TokenIDs = compact(req.TokenIDs)

	if req.WalletAddress == "" {
		return nil, missing("walletAddress")
	}
	if err := c.checkOwnership(&req); err != nil {
		return nil, err
	}
	if err := c.checkAddress(req.Chain, req.WalletAddress); err != nil {
		return nil, err
	}

	path := fmt.Sprintf("%s/%s/wallets/%s/tokenOwnership",
		pathChains, url.PathEscape(req.Chain.String()), url.PathEscape(req.WalletAddress))

	var resp TokenOwnership
	if err := c.postJSON(ctx, path, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// checkOwnership applies the rule of the chain's family. Chains without a
// rule need at least one identifying field.
func (c *Client) checkOwnership(req *TokenOwnershipRequest) error {
	family, ok := c.families[req.Chain]
	fields, hasRule := ownershipRules[family]
	if !ok || !hasRule {
		if !contractField.present(req) && !tokenIDsField.present(req) {
			return newValidationError("contractAddress",
				fmt.Sprintf("or tokenIds is required for chain %s", req.Chain))
		}
		return nil
	}

	for _, field := range fields {
		if !field.present(req) {
			return newValidationError(field.name,
				fmt.Sprintf("is required for %s chains", family))
		}
		if c.strict {
			if err := field.check(family, req); err != nil {
				return newValidationError(field.name, err.Error())
			}
		}
	}
	return nil
}

// checkAddress validates a wallet address format when strict checks are on
func (c *Client) checkAddress(chain chains.Chain, address string) error {
	if !c.strict {
		return nil
	}
	family, ok := c.families[chain]
	if !ok || !family.Known() {
		return nil
	}
	if err := chains.ValidateAddress(family, address); err != nil {
		return newValidationError("walletAddress", err.Error())
	}
	return nil
}

func compact(ids []string) []string {
	var out []string
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			out = append(out, id)
		}
	}
	return out
}
