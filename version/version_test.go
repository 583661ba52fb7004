package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo_Dev(t *testing.T) {
	i := Info{Version: "dev", CommitHash: "abcdef123456", BuildTime: "now"}

	assert.True(t, i.IsDev())
	assert.Equal(t, "condax dev (commit abcdef123456, built now)", i.String())
	assert.Equal(t, "abcdef1", i.Short())

	v, err := i.Semver()
	require.NoError(t, err)
	assert.Equal(t, "0.0.0-dev", v.String())
}

func TestInfo_Tagged(t *testing.T) {
	i := Info{Version: "v1.4.2", CommitHash: "abc", BuildTime: "then"}

	assert.False(t, i.IsDev())
	assert.Equal(t, "condax v1.4.2 (commit abc, built then)", i.String())
	assert.Equal(t, "abc", i.Short())
	assert.Equal(t, "1.4.2", i.SemverString())
}

func TestInfo_BadVersion(t *testing.T) {
	i := Info{Version: "banana"}
	_, err := i.Semver()
	assert.Error(t, err)
	assert.Equal(t, "banana", i.SemverString())
}

func TestGet(t *testing.T) {
	i := Get()
	assert.NotEmpty(t, i.GoVersion)
	assert.Contains(t, i.Platform, "/")
}
