package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWritesMemoryAndFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "run.txt")
	l := New(path)
	l.now = func() time.Time { return time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC) }

	l.Log("steps=3")
	l.Logf("mirrors=%d", 2)

	want := []string{
		"[2024-03-01 09:30:00] steps=3",
		"[2024-03-01 09:30:00] mirrors=2",
	}
	assert.Equal(t, want, l.Lines())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join(want, "\n")+"\n", string(data))
}

func TestLinesIsCopy(t *testing.T) {
	l := New(filepath.Join(t.TempDir(), "x.txt"))
	l.Log("a")
	lines := l.Lines()
	lines[0] = "mutated"
	assert.NotEqual(t, "mutated", l.Lines()[0])
}

func TestNewDefaultPath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	l := New("")
	assert.Equal(t, LogFilePath, l.Path())
	_, err = os.Stat(filepath.Join(dir, "logs"))
	assert.NoError(t, err)
}
