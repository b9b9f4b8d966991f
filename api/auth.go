package api

import (
	"context"
	"strings"
)

// Nonce issues a single-use nonce for walletAddress to sign
func (c *Client) Nonce(ctx context.Context, req NonceRequest) (*NonceResponse, error) {
	req.Chain = req.Chain.OrDefault()
	req.WalletAddress = strings.TrimSpace(req.WalletAddress)

	if req.WalletAddress == "" {
		return nil, missing("walletAddress")
	}
	if err := c.checkAddress(req.Chain, req.WalletAddress); err != nil {
		return nil, err
	}

	var resp NonceResponse
	if err := c.postJSON(ctx, pathNonce, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Auth exchanges a signed nonce message for an access token. When
// requirements are given the returned user carries the ownership evidence.
func (c *Client) Auth(ctx context.Context, req AuthRequest) (*AuthResponse, error) {
	req.Chain = req.Chain.OrDefault()
	req.WalletAddress = strings.TrimSpace(req.WalletAddress)
	req.Signature = strings.TrimSpace(req.Signature)
	req.Requirements = req.Requirements.orNil()

	if req.WalletAddress == "" {
		return nil, missing("walletAddress")
	}
	if req.Signature == "" {
		return nil, missing("signature")
	}
	if req.Format == FormatSIWE && req.Context == nil {
		return nil, newValidationError("context", "is required for siwe formatted nonces")
	}
	if err := c.checkAddress(req.Chain, req.WalletAddress); err != nil {
		return nil, err
	}

	var resp AuthResponse
	if err := c.postJSON(ctx, pathAuth, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Authz re-checks requirements against an existing access token without a
// new signature. Revalidate forces the server to re-derive ownership.
func (c *Client) Authz(ctx context.Context, req AuthzRequest) (*AuthResponse, error) {
	req.AccessToken = strings.TrimSpace(req.AccessToken)

	if req.AccessToken == "" {
		return nil, missing("accessToken")
	}
	if req.Requirements == nil {
		return nil, missing("requirements")
	}

	var resp AuthResponse
	if err := c.postJSON(ctx, pathAuthz, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Validate decodes an access token and, if requirements are given, checks
// that they still hold
func (c *Client) Validate(ctx context.Context, req ValidateRequest) (*AccessTokenPayload, error) {
	req.AccessToken = strings.TrimSpace(req.AccessToken)
	req.Requirements = req.Requirements.orNil()

	if req.AccessToken == "" {
		return nil, newValidationError("accessToken", "is required to validate a token")
	}

	var payload AccessTokenPayload
	if err := c.postJSON(ctx, pathValidate, req, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}
