package api

import "context"

// ChunkTranscriber converts one in-memory WAV chunk to text. The language
// hint follows ISO 639-1 ("zh", "en", ...). An empty string with a nil
// error means the chunk carried no recognizable speech.
type ChunkTranscriber interface {
	TranscribeChunk(ctx context.Context, wavData []byte, language string) (string, error)
}

// ChunkTranscriberFunc adapts a function to the ChunkTranscriber interface.
type ChunkTranscriberFunc func(ctx context.Context, wavData []byte, language string) (string, error)

func (f ChunkTranscriberFunc) TranscribeChunk(ctx context.Context, wavData []byte, language string) (string, error) {
	return f(ctx, wavData, language)
}
