package api

import (
	"context"
	"net/url"

	"github.com/chinmay1088/walletgate/chains"
)

// ChainInfo fetches the metadata of one chain
func (c *Client) ChainInfo(ctx context.Context, chain chains.Chain) (*ChainInfo, error) {
	chain = chain.Normalize()
	if chain == "" {
		return nil, missing("chain")
	}

	var info ChainInfo
	if err := c.getJSON(ctx, pathChains+"/"+url.PathEscape(chain.String()), &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// Chains lists every chain the service supports
func (c *Client) Chains(ctx context.Context) ([]ChainInfo, error) {
	var list chainList
	if err := c.getJSON(ctx, pathChains, &list); err != nil {
		return nil, err
	}
	return list.Data, nil
}
