package chains

import (
	"fmt"
	"strings"

	"github.com/chinmay1088/walletgate/chains/bitcoin"
	"github.com/chinmay1088/walletgate/chains/ethereum"
	"github.com/chinmay1088/walletgate/chains/solana"
)

// Chain identifies a blockchain network by its slug
type Chain string

// Family groups chains that share an addressing scheme
type Family string

// Chain families
const (
	FamilyEthereum Family = "ethereum"
	FamilySolana   Family = "solana"
	FamilyBitcoin  Family = "bitcoin"
)

// Supported chains
const (
	Ethereum  Chain = "ethereum"
	Polygon   Chain = "polygon"
	Arbitrum  Chain = "arbitrum"
	Optimism  Chain = "optimism"
	Base      Chain = "base"
	Avalanche Chain = "avalanche"
	BSC       Chain = "bsc"
	Solana    Chain = "solana"
	Bitcoin   Chain = "bitcoin"
)

// Default is the chain used when a request leaves it empty
const Default = Ethereum

var families = map[Chain]Family{
	Ethereum:  FamilyEthereum,
	Polygon:   FamilyEthereum,
	Arbitrum:  FamilyEthereum,
	Optimism:  FamilyEthereum,
	Base:      FamilyEthereum,
	Avalanche: FamilyEthereum,
	BSC:       FamilyEthereum,
	Solana:    FamilySolana,
	Bitcoin:   FamilyBitcoin,
}

// Registry returns a copy of the built-in chain to family table
func Registry() map[Chain]Family {
	out := make(map[Chain]Family, len(families))
	for c, f := range families {
		out[c] = f
	}
	return out
}

// FamilyOf returns the family of a built-in chain
func FamilyOf(chain Chain) (Family, bool) {
	f, ok := families[chain.Normalize()]
	return f, ok
}

// Normalize lower-cases and trims a chain slug
func (c Chain) Normalize() Chain {
	return Chain(strings.ToLower(strings.TrimSpace(string(c))))
}

// OrDefault returns the chain, or Default when it is empty
func (c Chain) OrDefault() Chain {
	if n := c.Normalize(); n != "" {
		return n
	}
	return Default
}

func (c Chain) String() string {
	return string(c)
}

// Known reports whether the family has address codecs in this package
func (f Family) Known() bool {
	switch f {
	case FamilyEthereum, FamilySolana, FamilyBitcoin:
		return true
	}
	return false
}

// ValidateAddress checks that address is well formed for the family
func ValidateAddress(family Family, address string) error {
	switch family {
	case FamilyEthereum:
		return ethereum.ValidateAddress(address)
	case FamilySolana:
		return solana.ValidateAddress(address)
	case FamilyBitcoin:
		return bitcoin.ValidateAddress(address)
	default:
		return fmt.Errorf("unsupported chain family: %s", family)
	}
}

// ValidateContract checks a contract address for families addressed by contract
func ValidateContract(family Family, address string) error {
	switch family {
	case FamilyEthereum:
		return ethereum.ValidateAddress(address)
	default:
		return fmt.Errorf("chain family %s has no contract addresses", family)
	}
}

// ValidateTokenID checks a token identifier for families addressed by token id
func ValidateTokenID(family Family, id string) error {
	switch family {
	case FamilySolana:
		return solana.ValidateMint(id)
	case FamilyBitcoin:
		return bitcoin.ValidateInscriptionID(id)
	default:
		return fmt.Errorf("chain family %s has no token ids", family)
	}
}

// NormalizeAddress returns the canonical display form of an address
func NormalizeAddress(family Family, address string) (string, error) {
	switch family {
	case FamilyEthereum:
		return ethereum.Checksum(address)
	case FamilySolana:
		return solana.Canonical(address)
	case FamilyBitcoin:
		return bitcoin.Canonical(address)
	default:
		return "", fmt.Errorf("unsupported chain family: %s", family)
	}
}
