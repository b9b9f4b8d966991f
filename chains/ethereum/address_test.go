package ethereum

import (
	"testing"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	tests := []struct {
		name    string
		address string
		wantErr bool
	}{
		{"checksummed", "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", false},
		{"lower case", "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", false},
		{"missing prefix", "fb6916095ca1df60bb79ce92ce3ea74c37c5d359", true},
		{"too short", "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d3", true},
		{"not hex", "0xzz6916095ca1df60bb79ce92ce3ea74c37c5d359", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAddress(tt.address)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestChecksumGeneratedKey(t *testing.T) {
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	want := crypto.PubkeyToAddress(key.PublicKey).Hex()

	got, err := Checksum(" " + want + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
