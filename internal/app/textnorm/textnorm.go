// Package textnorm post-processes transcript text. Normalizers are plain
// functions so the transcription pipeline stays agnostic of the locale
// handling behind them.
package textnorm

import (
	"sync"

	"github.com/longbridgeapp/opencc"
)

// Normalizer rewrites a transcript segment after transcription.
type Normalizer func(string) string

// Identity returns text unchanged.
func Identity(text string) string { return text }

var (
	s2tOnce      sync.Once
	s2tConverter *opencc.OpenCC
	s2tErr       error
)

// SimplifiedToTraditional converts Simplified Chinese to Traditional
// Chinese. The whisper models frequently emit Simplified script even for
// Traditional-script speakers, so zh transcripts are normalized before
// display. Conversion failures fall back to the original text.
func SimplifiedToTraditional(text string) string {
	s2tOnce.Do(func() {
		s2tConverter, s2tErr = opencc.New("s2t")
	})
	if s2tErr != nil || s2tConverter == nil {
		return text
	}

	converted, err := s2tConverter.Convert(text)
	if err != nil {
		return text
	}
	return converted
}

// ForLanguage picks the normalizer for a transcription language hint.
func ForLanguage(language string) Normalizer {
	if language == "zh" {
		return SimplifiedToTraditional
	}
	return Identity
}
