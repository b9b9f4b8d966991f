package solana

import (
	"fmt"
	"strings"

	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// ValidateAddress checks that address decodes to an ed25519 public key
func ValidateAddress(address string) error {
	_, err := parse(address)
	return err
}

// Canonical returns the base58 form of the decoded public key
func Canonical(address string) (string, error) {
	key, err := parse(address)
	if err != nil {
		return "", err
	}
	return key.String(), nil
}

// ValidateMint checks a token mint address used as a token id
func ValidateMint(mint string) error {
	mint = strings.TrimSpace(mint)
	if mint == "" {
		return fmt.Errorf("mint address is empty")
	}
	raw, err := base58.Decode(mint)
	if err != nil {
		return fmt.Errorf("invalid base58 mint address %q: %w", mint, err)
	}
	if len(raw) != solana.PublicKeyLength {
		return fmt.Errorf("mint address %q decodes to %d bytes, expected %d", mint, len(raw), solana.PublicKeyLength)
	}
	return nil
}

func parse(address string) (solana.PublicKey, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return solana.PublicKey{}, fmt.Errorf("address is empty")
	}
	key, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return solana.PublicKey{}, fmt.Errorf("invalid solana address %q: %w", address, err)
	}
	return key, nil
}
