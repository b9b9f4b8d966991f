package bitcoin

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Params are the network parameters addresses are checked against.
// Only mainnet is supported.
var Params = &chaincfg.MainNetParams

// ValidateAddress checks that address decodes for mainnet
func ValidateAddress(address string) error {
	_, err := decode(address)
	return err
}

// Canonical returns the encoded form of the decoded address
func Canonical(address string) (string, error) {
	addr, err := decode(address)
	if err != nil {
		return "", err
	}
	return addr.EncodeAddress(), nil
}

// ValidateInscriptionID checks an ordinal inscription id of the form <txid>i<index>
func ValidateInscriptionID(id string) error {
	id = strings.TrimSpace(id)
	sep := strings.LastIndex(id, "i")
	if sep <= 0 || sep == len(id)-1 {
		return fmt.Errorf("invalid inscription id %q: expected <txid>i<index>", id)
	}

	txid, index := id[:sep], id[sep+1:]
	if len(txid) != chainhash.MaxHashStringSize {
		return fmt.Errorf("invalid inscription id %q: txid must be %d hex characters", id, chainhash.MaxHashStringSize)
	}
	if _, err := chainhash.NewHashFromStr(txid); err != nil {
		return fmt.Errorf("invalid inscription txid: %w", err)
	}
	if _, err := strconv.ParseUint(index, 10, 32); err != nil {
		return fmt.Errorf("invalid inscription index %q", index)
	}
	return nil
}

func decode(address string) (btcutil.Address, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("address is empty")
	}
	addr, err := btcutil.DecodeAddress(address, Params)
	if err != nil {
		return nil, fmt.Errorf("invalid bitcoin address %q: %w", address, err)
	}
	if !addr.IsForNet(Params) {
		return nil, fmt.Errorf("bitcoin address %q is not a mainnet address", address)
	}
	return addr, nil
}
