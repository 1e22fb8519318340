package git

import (
	"context"
	"testing"

	"github.com/coreos/go-semver/semver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitswitch/gitswitch/pkg/sh"
)

func TestEngineVersion(t *testing.T) {
	client := Client{Run: func(_ context.Context, cmd sh.Command) (sh.Result, error) {
		cmd.LineFn("git version 2.39.1")
		return sh.Result{}, nil
	}}
	v, err := client.EngineVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2.39.1", v.String())
}

func TestEngineVersionUnparseable(t *testing.T) {
	client := Client{Run: func(_ context.Context, cmd sh.Command) (sh.Result, error) {
		cmd.LineFn("not a git")
		return sh.Result{}, nil
	}}
	_, err := client.EngineVersion(context.Background())
	assert.ErrorIs(t, err, ErrEngineVersion)
}

func TestSupportsProgress(t *testing.T) {
	assert.True(t, SupportsProgress(semver.New("2.39.1")))
	assert.True(t, SupportsProgress(semver.New("1.8.4")))
	assert.False(t, SupportsProgress(semver.New("1.7.9")))
	assert.False(t, SupportsProgress(nil))
}
