package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	set, err := Load(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, err)
	assert.Empty(t, set)
}

func TestLoadSetsVariables(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# viewer overrides\n\nPYRAMID_SEED=42\nexport PYRAMID_CONFIG=\"config/alt.yaml\"\nnot a pair\n=novalue\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	t.Setenv("PYRAMID_SEED", "")
	t.Setenv("PYRAMID_CONFIG", "")
	set, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"PYRAMID_SEED", "PYRAMID_CONFIG"}, set)
	assert.Equal(t, "42", os.Getenv("PYRAMID_SEED"))
	assert.Equal(t, "config/alt.yaml", os.Getenv("PYRAMID_CONFIG"))
}

func TestLoadKeepsExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("PYRAMID_SEED=1\n"), 0644))

	t.Setenv("PYRAMID_SEED", "7")
	set, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, set)
	assert.Equal(t, "7", os.Getenv("PYRAMID_SEED"))
}

func TestParseLine(t *testing.T) {
	tests := []struct {
		in         string
		key, value string
		ok         bool
	}{
		{"A=1", "A", "1", true},
		{"  B = two  ", "B", "two", true},
		{"C='quoted'", "C", "quoted", true},
		{"export D=x", "D", "x", true},
		{"# E=1", "", "", false},
		{"", "", "", false},
		{"noequals", "", "", false},
		{"=v", "", "", false},
	}
	for _, tt := range tests {
		k, v, ok := parseLine(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.key, k, tt.in)
		assert.Equal(t, tt.value, v, tt.in)
	}
}
