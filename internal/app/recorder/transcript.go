package recorder

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/samber/lo"
)

const segmentTimeLayout = "2006-01-02 15:04:05"

// FormatSegments renders the transcript body, one timestamped line per
// successful segment. Failed segments carry no text and are omitted.
func FormatSegments(segments []TranscriptSegment) string {
	lines := lo.FilterMap(segments, func(seg TranscriptSegment, _ int) (string, bool) {
		if seg.Err != "" || seg.Text == "" {
			return "", false
		}
		return fmt.Sprintf("[%s]  %s", seg.Time.Format(segmentTimeLayout), seg.Text), true
	})
	return strings.Join(lines, "\n")
}

// WriteTranscriptFile saves the transcript next to the WAV file, replacing
// the .wav suffix with -transcript.txt, and returns the written path.
func WriteTranscriptFile(wavPath string, sampleRate int, model, transcript string, stoppedAt time.Time) (string, error) {
	path := strings.TrimSuffix(wavPath, ".wav") + "-transcript.txt"

	var b strings.Builder
	b.WriteString("Transcription result\n")
	b.WriteString(fmt.Sprintf("Time: %s\n", stoppedAt.Format(segmentTimeLayout)))
	b.WriteString(fmt.Sprintf("Audio file: %s\n", wavPath))
	b.WriteString(fmt.Sprintf("Sample rate: %d Hz\n", sampleRate))
	b.WriteString(fmt.Sprintf("Model: %s\n", model))
	b.WriteString(strings.Repeat("=", 50) + "\n\n")
	b.WriteString(transcript)
	b.WriteString("\n")

	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write transcript: %w", err)
	}
	return path, nil
}
