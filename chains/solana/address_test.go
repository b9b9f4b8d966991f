package solana

import (
	"testing"

	"github.com/gagliardetto/solana-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress("11111111111111111111111111111111"))
	assert.NoError(t, ValidateAddress(solana.NewWallet().PublicKey().String()))

	assert.Error(t, ValidateAddress(""))
	assert.Error(t, ValidateAddress("0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.Error(t, ValidateAddress("1111"))
}

func TestCanonical(t *testing.T) {
	key := solana.NewWallet().PublicKey()
	got, err := Canonical("\t" + key.String())
	require.NoError(t, err)
	assert.Equal(t, key.String(), got)
}

func TestValidateMint(t *testing.T) {
	assert.NoError(t, ValidateMint("So11111111111111111111111111111111111111112"))
	assert.Error(t, ValidateMint(""))
	assert.Error(t, ValidateMint("0OIl"))
	assert.Error(t, ValidateMint("3yZe7d"))
}
