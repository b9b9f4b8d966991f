package ethereum

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// ValidateAddress checks for a 20-byte hex address with 0x prefix
func ValidateAddress(address string) error {
	address = strings.TrimSpace(address)
	if address == "" {
		return fmt.Errorf("address is empty")
	}
	if !strings.HasPrefix(address, "0x") && !strings.HasPrefix(address, "0X") {
		return fmt.Errorf("address %q must start with 0x", address)
	}
	if !common.IsHexAddress(address) {
		return fmt.Errorf("invalid ethereum address: %s", address)
	}
	return nil
}

// Checksum returns the EIP-55 mixed-case form of an address
func Checksum(address string) (string, error) {
	if err := ValidateAddress(address); err != nil {
		return "", err
	}
	return common.HexToAddress(strings.TrimSpace(address)).Hex(), nil
}
