package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitswitch/gitswitch/pkg/config"
)

func project(t *testing.T, contents string) config.Project {
	t.Helper()
	dir := t.TempDir()
	cp := filepath.Join(dir, ".gitswitch.yaml")
	if contents != "" {
		require.NoError(t, os.WriteFile(cp, []byte(contents), 0o600))
	}
	return config.Project{Path: dir, ConfigPath: cp}
}

func TestNewDefaults(t *testing.T) {
	cfg, err := config.New(project(t, ""))
	require.NoError(t, err)
	assert.False(t, cfg.RecurseSubmodules)
	assert.InDelta(t, 0.8, cfg.CheckoutWeight, 0.001)
	assert.InDelta(t, 0.2, cfg.FilterWeight, 0.001)
}

func TestNewLoadsFile(t *testing.T) {
	cfg, err := config.New(project(t, `
recurseSubmodules: true
progress:
  checkoutWeight: 0.6
  filterWeight: 0.4
auth:
  extraErrorPatterns:
    - "remote: SSO required"
`))
	require.NoError(t, err)
	assert.True(t, cfg.RecurseSubmodules)
	assert.InDelta(t, 0.6, cfg.CheckoutWeight, 0.001)
	assert.Equal(t, []string{"remote: SSO required"}, cfg.ExtraErrorPatterns)
}

func TestNewRejectsMalformedFile(t *testing.T) {
	_, err := config.New(project(t, "recurseSubmodules: ["))
	assert.ErrorIs(t, err, config.ErrConfigFileHaveInvalidFormat)
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GITSWITCH_RECURSESUBMODULES", "true")
	cfg, err := config.New(project(t, ""))
	require.NoError(t, err)
	assert.True(t, cfg.RecurseSubmodules)
}

func TestSnapshotIsIndependent(t *testing.T) {
	cfg, err := config.New(project(t, "auth:\n  extraErrorPatterns: [\"a\"]\n"))
	require.NoError(t, err)
	snap, err := config.Snapshot(cfg)
	require.NoError(t, err)

	cfg.RecurseSubmodules = true
	cfg.ExtraErrorPatterns[0] = "mutated"

	assert.False(t, snap.RecurseSubmodules)
	assert.Equal(t, "a", snap.ExtraErrorPatterns[0])
}
