package recorder

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatSegments(t *testing.T) {
	at := time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC)
	segments := []TranscriptSegment{
		{Time: at, Text: "first line"},
		{Time: at.Add(3 * time.Second), Err: "rate limited"},
		{Time: at.Add(6 * time.Second), Text: "second line"},
		{Time: at.Add(9 * time.Second), Text: ""},
	}

	got := FormatSegments(segments)
	want := "[2025-03-01 10:30:00]  first line\n[2025-03-01 10:30:06]  second line"
	assert.Equal(t, want, got)

	assert.Empty(t, FormatSegments(nil))
}

func TestWriteTranscriptFile(t *testing.T) {
	dir := t.TempDir()
	wavPath := filepath.Join(dir, "recording-20250301-103000.wav")
	stoppedAt := time.Date(2025, 3, 1, 10, 31, 0, 0, time.UTC)

	path, err := WriteTranscriptFile(wavPath, 48000, "whisper-1", "[2025-03-01 10:30:00]  hello", stoppedAt)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "recording-20250301-103000-transcript.txt"), path)

	body, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.HasPrefix(text, "Transcription result\n"))
	assert.Contains(t, text, "Sample rate: 48000 Hz")
	assert.Contains(t, text, "Model: whisper-1")
	assert.Contains(t, text, "hello")
}
