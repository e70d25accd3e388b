package viewerconfig_test

import (
	"os"
	"path/filepath"
	"testing"

	"stepped-pyramid/internal/viewerconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFileMissing(t *testing.T) {
	got := viewerconfig.LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Equal(t, viewerconfig.Default(), got)
}

func TestLoadFileInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("window: [unclosed"), 0644))
	assert.Equal(t, viewerconfig.Default(), viewerconfig.LoadFile(path))
}

func TestLoadFilePartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.yaml")
	require.NoError(t, os.WriteFile(path, []byte("show_fps: true\ncamera:\n  speed: 0.5\n"), 0644))

	got := viewerconfig.LoadFile(path)
	want := viewerconfig.Default()
	want.ShowFPS = true
	want.Camera.Speed = 0.5
	assert.Equal(t, want, got)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "pyramid.yaml")
	p := viewerconfig.Default()
	p.Window.Title = "zigzag"
	p.Seed = 99
	require.NoError(t, viewerconfig.Save(path, p))
	assert.Equal(t, p, viewerconfig.LoadFile(path))
}

func TestLoadEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "env.yaml")
	require.NoError(t, os.WriteFile(path, []byte("seed: 5\n"), 0644))
	t.Setenv(viewerconfig.EnvConfigPath, path)

	t.Setenv(viewerconfig.EnvSeed, "")
	got, err := viewerconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.Seed)

	t.Setenv(viewerconfig.EnvSeed, "1234")
	got, err = viewerconfig.Load()
	require.NoError(t, err)
	assert.Equal(t, int64(1234), got.Seed)

	t.Setenv(viewerconfig.EnvSeed, "not-a-number")
	_, err = viewerconfig.Load()
	assert.Error(t, err)
}
