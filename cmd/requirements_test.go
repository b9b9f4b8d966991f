package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseRequirementFlags(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{Use: "test"}
	addRequirementFlags(cmd)
	require.NoError(t, cmd.ParseFlags(args))
	return cmd
}

func TestRequirementsFromFlags(t *testing.T) {
	cmd := parseRequirementFlags(t,
		"--min-balance", "2.5",
		"--contract", "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359",
		"--allow", "0xa,0xb",
	)

	reqs, err := requirementsFromFlags(cmd)
	require.NoError(t, err)
	require.NotNil(t, reqs.MinTokenBalance)
	assert.Equal(t, "2.5", reqs.MinTokenBalance.String())
	assert.Equal(t, "0xfb6916095ca1df60bb79ce92ce3ea74c37c5d359", reqs.ContractAddress)
	assert.Equal(t, []string{"0xa", "0xb"}, reqs.WalletAddresses)
	assert.Empty(t, reqs.TokenIDs)
}

func TestRequirementsFlagsOverrideJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reqs.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"collectionId":"punks","contractAddress":"0x1"}`), 0600))

	cmd := parseRequirementFlags(t, "--requirements", "@"+path, "--contract", "0x2")

	reqs, err := requirementsFromFlags(cmd)
	require.NoError(t, err)
	assert.Equal(t, "punks", reqs.CollectionID)
	assert.Equal(t, "0x2", reqs.ContractAddress)
}

func TestRequirementsFromFlagsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "bad balance", args: []string{"--min-balance", "lots"}},
		{name: "bad json", args: []string{"--requirements", "{not json"}},
		{name: "missing file", args: []string{"--requirements", "@/does/not/exist.json"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := requirementsFromFlags(parseRequirementFlags(t, tt.args...))
			assert.Error(t, err)
		})
	}
}

func TestRequirementsFromNoFlags(t *testing.T) {
	reqs, err := requirementsFromFlags(parseRequirementFlags(t))
	require.NoError(t, err)
	assert.Nil(t, reqs)
}

func TestRequirementsExplicitEmptyJSON(t *testing.T) {
	reqs, err := requirementsFromFlags(parseRequirementFlags(t, "--requirements", "{}"))
	require.NoError(t, err)
	require.NotNil(t, reqs)
	assert.True(t, reqs.IsZero())
}
