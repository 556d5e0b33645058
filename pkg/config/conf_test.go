package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mchmarny/gauge/pkg/gauge"
	"github.com/mchmarny/gauge/pkg/slabs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig(t *testing.T) {
	testDir := filepath.Join(t.TempDir(), "gauge")

	c1, err := ReadOrCreate(testDir)
	require.NoError(t, err)
	require.NotNil(t, c1)
	assert.Equal(t, Default(), c1)

	c1.Width = 640
	c1.Animate = true
	c1.Format = "gif"
	c1.Slabs = map[string]gauge.Slabs{
		"sla": {
			{Min: 0, Max: 99, Color: "red", Assessment: "Breached"},
			{Min: 99, Max: 100, Color: "green", Assessment: "Met"},
		},
	}

	err = Save(testDir, c1)
	assert.NoError(t, err)

	c2, err := ReadOrCreate(testDir)
	require.NoError(t, err)
	require.NotNil(t, c2)
	assert.Equal(t, c1.Width, c2.Width)
	assert.Equal(t, c1.Animate, c2.Animate)
	assert.Equal(t, c1.Format, c2.Format)
	assert.Equal(t, c1.Slabs, c2.Slabs)
	assert.Equal(t, []string{"sla"}, c2.SetNames())
}

func TestConfigErrors(t *testing.T) {
	_, err := ReadOrCreate("")
	assert.ErrorIs(t, err, errDirRequired)

	assert.ErrorIs(t, Save("", Default()), errDirRequired)
	assert.Error(t, Save(t.TempDir(), nil))

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("width: [oops"), fileMode))
	_, err = ReadOrCreate(dir)
	assert.Error(t, err)
}

func TestConfigFillDefaults(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("animate: true\n"), fileMode))

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.True(t, c.Animate)
	assert.Equal(t, defaultWidth, c.Width)
	assert.Equal(t, defaultFormat, c.Format)
	assert.Equal(t, defaultFPS, c.FPS)
	assert.Equal(t, defaultPreset, c.Preset)
}

func TestConfigFPSCapped(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, configFileName), []byte("fps: 2000000000\n"), fileMode))

	c, err := ReadOrCreate(dir)
	require.NoError(t, err)
	assert.Equal(t, gauge.MaxFPS, c.FPS)
}

func TestSlabSet(t *testing.T) {
	c := Default()
	c.Slabs = map[string]gauge.Slabs{
		"binary": {
			{Min: 0, Max: 1, Color: "red", Assessment: "Off"},
			{Min: 1, Max: 2, Color: "green", Assessment: "On"},
		},
		"broken": {
			{Min: 0, Max: 1, Color: "red", Assessment: "Off"},
			{Min: 5, Max: 6, Color: "green", Assessment: "On"},
		},
	}

	s, err := c.SlabSet("binary")
	require.NoError(t, err)
	assert.Len(t, s, 2)

	s, err = c.SlabSet("")
	require.NoError(t, err)
	p, err := slabs.Preset(defaultPreset)
	require.NoError(t, err)
	assert.Equal(t, p, s)

	_, err = c.SlabSet("broken")
	assert.ErrorIs(t, err, gauge.ErrGap)

	_, err = c.SlabSet("unknown")
	assert.ErrorIs(t, err, slabs.ErrUnknownPreset)
}
