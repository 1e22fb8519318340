package gitswitch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootWiring(t *testing.T) {
	cmd := root()
	names := make([]string, 0, 2)
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "checkout")
	assert.Contains(t, names, "restore")
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
	assert.NotNil(t, cmd.PersistentFlags().Lookup("verbose"))
}

func TestCheckoutRequiresBranchArg(t *testing.T) {
	cmd := root()
	cmd.SetArgs([]string{"checkout"})
	cmd.SilenceUsage = true
	cmd.SilenceErrors = true
	err := cmd.Execute()
	require.Error(t, err)
}

func TestHash(t *testing.T) {
	assert.Zero(t, hash(nil))
	code := hash(assert.AnError)
	assert.Greater(t, code, 0)
	assert.Less(t, code, 255)
}
