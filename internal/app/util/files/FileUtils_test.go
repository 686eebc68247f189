package files

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetProjectRoot(t *testing.T) {
	root, err := GetProjectRoot()
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(root, "go.mod"))
}

func TestResolveResourceDir(t *testing.T) {
	abs, err := ResolveResourceDir("/tmp/resource")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/resource", abs)

	rel, err := ResolveResourceDir("resource")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(rel))
	assert.Equal(t, "resource", filepath.Base(rel))
}

func TestListRecordings(t *testing.T) {
	dir := t.TempDir()

	write := func(name string, mod time.Time) {
		path := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	now := time.Now()
	write("recording-b.wav", now)
	write("recording-a.wav", now.Add(-time.Hour))
	write("recording-a-transcript.txt", now)

	recordings, err := ListRecordings(dir)
	require.NoError(t, err)
	require.Len(t, recordings, 2)
	assert.Equal(t, "recording-a.wav", recordings[0].Name)
	assert.Equal(t, "recording-b.wav", recordings[1].Name)
	assert.Equal(t, int64(1), recordings[0].Size)
}

func TestListRecordingsMissingDir(t *testing.T) {
	_, err := ListRecordings(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestReadTranscript(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")
	require.NoError(t, os.WriteFile(path, []byte("  hello\n"), 0o644))

	text, err := ReadTranscript(path)
	require.NoError(t, err)
	assert.Equal(t, "hello", text)
}
