package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		chain  Chain
		family Family
		ok     bool
	}{
		{Ethereum, FamilyEthereum, true},
		{Polygon, FamilyEthereum, true},
		{"  BASE ", FamilyEthereum, true},
		{Solana, FamilySolana, true},
		{Bitcoin, FamilyBitcoin, true},
		{"cardano", "", false},
	}

	for _, tt := range tests {
		t.Run(string(tt.chain), func(t *testing.T) {
			family, ok := FamilyOf(tt.chain)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.family, family)
		})
	}
}

func TestOrDefault(t *testing.T) {
	assert.Equal(t, Ethereum, Chain("").OrDefault())
	assert.Equal(t, Ethereum, Chain("   ").OrDefault())
	assert.Equal(t, Solana, Chain("Solana").OrDefault())
}

func TestRegistryIsACopy(t *testing.T) {
	reg := Registry()
	reg["flow"] = FamilySolana
	delete(reg, Ethereum)

	_, ok := FamilyOf("flow")
	assert.False(t, ok)
	_, ok = FamilyOf(Ethereum)
	assert.True(t, ok)
}

func TestValidateAddress(t *testing.T) {
	assert.NoError(t, ValidateAddress(FamilyEthereum, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.NoError(t, ValidateAddress(FamilySolana, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	assert.NoError(t, ValidateAddress(FamilyBitcoin, "1A1zP1eP5QGefi2DMPTfTL5SLmv7DivfNa"))

	assert.Error(t, ValidateAddress(FamilyEthereum, "TokenkegQfeZyiNwAJbNbGKPFXCWuBvf9Ss623VQ5DA"))
	assert.Error(t, ValidateAddress(FamilySolana, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.Error(t, ValidateAddress("tezos", "tz1"))
}

func TestValidateContractAndTokenID(t *testing.T) {
	assert.NoError(t, ValidateContract(FamilyEthereum, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"))
	assert.Error(t, ValidateContract(FamilySolana, "So11111111111111111111111111111111111111112"))

	assert.NoError(t, ValidateTokenID(FamilySolana, "So11111111111111111111111111111111111111112"))
	assert.NoError(t, ValidateTokenID(FamilyBitcoin, "6fb976ab49dcec017f1e201e84395983204ae1a7c2abf7ced0a85d692e442799i0"))
	assert.Error(t, ValidateTokenID(FamilyEthereum, "1"))
}

func TestNormalizeAddress(t *testing.T) {
	got, err := NormalizeAddress(FamilyEthereum, "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed")
	require.NoError(t, err)
	assert.Equal(t, "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed", got)

	got, err = NormalizeAddress(FamilySolana, " 11111111111111111111111111111111 ")
	require.NoError(t, err)
	assert.Equal(t, "11111111111111111111111111111111", got)

	_, err = NormalizeAddress("tezos", "tz1")
	assert.Error(t, err)
}
