package api

import (
	"fmt"
	"time"

	"github.com/chinmay1088/walletgate/chains"
	"github.com/shopspring/decimal"
)

// MessageFormat is the message format a nonce was issued for
type MessageFormat string

const (
	// FormatPlain is a free-form message embedding the nonce
	FormatPlain MessageFormat = "plain"
	// FormatSIWE is the structured sign-in message; auth needs a SigningContext
	FormatSIWE MessageFormat = "siwe"
)

// Requirements describes the gating condition a wallet must satisfy.
// The zero value means no gating.
type Requirements struct {
	MinTokenBalance *decimal.Decimal `json:"minTokenBalance,omitempty"`
	ContractAddress string           `json:"contractAddress,omitempty"`
	TokenIDs        []string         `json:"tokenIds,omitempty"`
	CollectionID    string           `json:"collectionId,omitempty"`
	CreatorAddress  string           `json:"creatorAddress,omitempty"`
	WalletAddresses []string         `json:"walletAddresses,omitempty"`
}

// IsZero reports whether no gating field is set
func (r *Requirements) IsZero() bool {
	return r == nil ||
		(r.MinTokenBalance == nil &&
			r.ContractAddress == "" &&
			len(r.TokenIDs) == 0 &&
			r.CollectionID == "" &&
			r.CreatorAddress == "" &&
			len(r.WalletAddresses) == 0)
}

// orNil drops an empty requirements value so it is omitted from the wire
func (r *Requirements) orNil() *Requirements {
	if r.IsZero() {
		return nil
	}
	return r
}

// SigningContext carries the fields the server needs to rebuild a structured
// sign-in message. It is passed through as-is.
type SigningContext struct {
	Domain    string `json:"domain,omitempty"`
	URI       string `json:"uri,omitempty"`
	ChainID   int64  `json:"chainId,omitempty"`
	IssuedAt  string `json:"issuedAt,omitempty"`
	ChainType string `json:"chainType,omitempty"`
	Locale    string `json:"locale,omitempty"`
}

// AuthenticatedUser is the subject returned by the server
type AuthenticatedUser struct {
	WalletAddress          string       `json:"walletAddress"`
	FormattedWalletAddress string       `json:"formattedWalletAddress"`
	Chain                  chains.Chain `json:"chain"`
	// TokenBalances is the ownership evidence, keyed by requirement type.
	// Only present when requirements were supplied and satisfied.
	TokenBalances map[string]string `json:"tokenBalances,omitempty"`
}

// NonceRequest asks for a single-use nonce. Chain defaults to chains.Default.
type NonceRequest struct {
	Chain         chains.Chain `json:"chain"`
	WalletAddress string       `json:"walletAddress"`
}

// NonceResponse is the nonce plus the statement to embed in the signed message
type NonceResponse struct {
	Nonce     string        `json:"nonce"`
	Statement string        `json:"statement"`
	Format    MessageFormat `json:"format"`
}

// AuthRequest exchanges a wallet signature for an access token
type AuthRequest struct {
	Chain         chains.Chain    `json:"chain"`
	WalletAddress string          `json:"walletAddress"`
	Signature     string          `json:"signature"`
	Requirements  *Requirements   `json:"requirements,omitempty"`
	Context       *SigningContext `json:"context,omitempty"`

	// Format is the format the nonce was issued in. It is not sent; when it is
	// FormatSIWE a Context must be supplied.
	Format MessageFormat `json:"-"`
}

// AuthResponse is returned by auth and authz
type AuthResponse struct {
	AccessToken string            `json:"accessToken"`
	User        AuthenticatedUser `json:"user"`
}

// AuthzRequest re-checks gating conditions for an existing token
type AuthzRequest struct {
	AccessToken  string        `json:"accessToken"`
	Requirements *Requirements `json:"requirements"`
	Revalidate   bool          `json:"revalidate"`
}

// ValidateRequest decodes and checks an access token
type ValidateRequest struct {
	AccessToken  string        `json:"accessToken"`
	Requirements *Requirements `json:"requirements,omitempty"`
}

// AccessTokenPayload is the decoded claim set of an access token
type AccessTokenPayload struct {
	IssuedAt  int64             `json:"iat"`
	ExpiresAt int64             `json:"exp"`
	Issuer    string            `json:"iss"`
	Subject   string            `json:"sub"`
	Audience  string            `json:"aud"`
	TokenID   string            `json:"jti"`
	User      AuthenticatedUser `json:"user"`
}

// Expiry returns the exp claim as a time
func (p *AccessTokenPayload) Expiry() time.Time {
	return time.Unix(p.ExpiresAt, 0)
}

// ExpiredAt reports whether the token is expired at t
func (p *AccessTokenPayload) ExpiredAt(t time.Time) bool {
	return p.ExpiresAt != 0 && !t.Before(p.Expiry())
}

// TokenOwnershipRequest checks whether a wallet holds an asset.
// Which identifying field is required depends on the chain family.
type TokenOwnershipRequest struct {
	Chain           chains.Chain     `json:"-"`
	WalletAddress   string           `json:"-"`
	ContractAddress string           `json:"contractAddress,omitempty"`
	MinTokenBalance *decimal.Decimal `json:"minTokenBalance,omitempty"`
	TokenIDs        []string         `json:"tokenIds,omitempty"`
}

// TokenOwnership is the ownership decision for a wallet
type TokenOwnership struct {
	Allowed       bool   `json:"allowed"`
	WalletAddress string `json:"walletAddress"`
	TokenBalance  string `json:"tokenBalance"`
}

// Balance parses TokenBalance without losing precision
func (o *TokenOwnership) Balance() (decimal.Decimal, error) {
	if o.TokenBalance == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(o.TokenBalance)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid token balance %q: %w", o.TokenBalance, err)
	}
	return d, nil
}

// ChainInfo is the metadata of one supported chain
type ChainInfo struct {
	ChainSlug              chains.Chain  `json:"chainSlug"`
	ChainID                int64         `json:"chainID"`
	ChainType              chains.Family `json:"chainType"`
	ChainName              string        `json:"chainName"`
	PublicRPC              string        `json:"publicRPC"`
	AuthorizationSupported bool          `json:"authorizationSupported"`
}

type chainList struct {
	Data []ChainInfo `json:"data"`
}
