package reputation

import (
	"path/filepath"
	"testing"

	"github.com/mchmarny/gauge/pkg/slabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSignals(t *testing.T) {
	s, err := LoadSignals(filepath.Join("testdata", "maintainer.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "octocat", s.Username)
	assert.True(t, s.StrongAuth)
	assert.Equal(t, int64(400), s.Commits)

	s, err = LoadSignals(filepath.Join("testdata", "newcomer.json"))
	require.NoError(t, err)
	assert.Equal(t, "drive-by", s.Username)
	assert.Equal(t, int64(1), s.UnverifiedCommits)

	_, err = LoadSignals(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)

	_, err = LoadSignals(filepath.Join("testdata", "signals.txt"))
	assert.ErrorIs(t, err, slabs.ErrUnsupportedFormat)
}

func TestCompute(t *testing.T) {
	_, err := Compute(nil)
	assert.Error(t, err)

	// only recency contributes for an empty profile with a commit today
	r, err := Compute(&Signals{})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, r.Reputation, 1e-9)
	assert.Equal(t, "Low", r.Assessment)
	assert.NotEmpty(t, r.Model)
	assert.Len(t, r.Categories, 4)
	assert.Len(t, r.Slabs, 4)

	r, err = Compute(&Signals{Suspended: true, StrongAuth: true, AgeDays: 1000})
	require.NoError(t, err)
	assert.Equal(t, 0.0, r.Reputation)
	assert.Equal(t, "Low", r.Assessment)
}

func TestComputeOrdering(t *testing.T) {
	hi, err := LoadSignals(filepath.Join("testdata", "maintainer.yaml"))
	require.NoError(t, err)
	lo, err := LoadSignals(filepath.Join("testdata", "newcomer.json"))
	require.NoError(t, err)

	rh, err := Compute(hi)
	require.NoError(t, err)
	rl, err := Compute(lo)
	require.NoError(t, err)

	assert.Greater(t, rh.Reputation, rl.Reputation)
	assert.LessOrEqual(t, rh.Reputation, 1.0)
	assert.GreaterOrEqual(t, rl.Reputation, 0.0)
	assert.Equal(t, "High", rh.Assessment)
	assert.Equal(t, "octocat", rh.Username)
}
