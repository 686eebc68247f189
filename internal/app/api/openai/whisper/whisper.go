package whisper

import (
	"bytes"
	"context"
	"fmt"

	"github.com/sashabaranov/go-openai"
)

// RemoteTranscriber implements chunk transcription using the OpenAI API.
// Chunks are submitted as in-memory WAV files; nothing touches disk.
type RemoteTranscriber struct {
	client *openai.Client
	model  string
}

// NewRemoteTranscriber creates a new RemoteTranscriber instance. An empty
// model selects whisper-1.
func NewRemoteTranscriber(client *openai.Client, model string) *RemoteTranscriber {
	if model == "" {
		model = openai.Whisper1
	}
	return &RemoteTranscriber{client: client, model: model}
}

// TranscribeChunk submits one WAV chunk to the OpenAI transcription API.
// No prompt is passed: whisper transcribes prompt text as audio content.
func (rt *RemoteTranscriber) TranscribeChunk(ctx context.Context, wavData []byte, language string) (string, error) {
	req := openai.AudioRequest{
		Model:    rt.model,
		Reader:   bytes.NewReader(wavData),
		FilePath: "chunk.wav",
		Language: language,
		Format:   openai.AudioResponseFormatText,
	}

	resp, err := rt.client.CreateTranscription(ctx, req)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", err)
	}

	return resp.Text, nil
}
