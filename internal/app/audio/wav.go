package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
)

// HeaderSize is the size of a canonical PCM WAV header.
const HeaderSize = 44

// WAVHeader represents the header structure of a mono PCM-16 WAV file.
type WAVHeader struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // File size - 8 bytes
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // Number of bytes in the data
}

func newWAVHeader(sampleRate int, dataSize uint32) WAVHeader {
	const (
		numChannels   = uint16(1)
		bitsPerSample = uint16(16)
	)
	return WAVHeader{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     36 + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   1,
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample) / 8,
		BlockAlign:    numChannels * bitsPerSample / 8,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
}

// EncodeWAV encodes PCM-16 samples into a complete in-memory WAV file,
// suitable for submission to a transcription API.
func EncodeWAV(samples []int16, sampleRate int) ([]byte, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("cannot encode empty audio samples")
	}
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	header := newWAVHeader(sampleRate, uint32(len(samples)*SampleWidth))

	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(samples)*SampleWidth))
	if err := binary.Write(buf, binary.LittleEndian, header); err != nil {
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}
	if err := binary.Write(buf, binary.LittleEndian, samples); err != nil {
		return nil, fmt.Errorf("failed to write audio data: %w", err)
	}

	return buf.Bytes(), nil
}

// DecodeWAVInfo reads sample rate and data size from a WAV header.
func DecodeWAVInfo(data []byte) (sampleRate int, dataSize int, err error) {
	if len(data) < HeaderSize {
		return 0, 0, fmt.Errorf("WAV data too short: need at least %d bytes, got %d", HeaderSize, len(data))
	}
	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return 0, 0, fmt.Errorf("invalid WAV file: missing RIFF/WAVE header")
	}

	sampleRate = int(binary.LittleEndian.Uint32(data[24:28]))
	dataSize = int(binary.LittleEndian.Uint32(data[40:44]))
	return sampleRate, dataSize, nil
}

// Writer appends PCM-16 bytes to a WAV file incrementally. The header is
// written up front with zero sizes and patched on Close, so a crashed
// process leaves a recognizable but truncated file rather than no file.
type Writer struct {
	f          *os.File
	sampleRate int
	dataSize   uint32
}

// NewWriter creates the file at path and writes a provisional header.
func NewWriter(path string, sampleRate int) (*Writer, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create WAV file %s: %w", path, err)
	}

	header := newWAVHeader(sampleRate, 0)
	if err := binary.Write(f, binary.LittleEndian, header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write WAV header: %w", err)
	}

	return &Writer{f: f, sampleRate: sampleRate}, nil
}

// Write appends raw little-endian PCM-16 bytes to the data chunk.
func (w *Writer) Write(pcm []byte) error {
	if _, err := w.f.Write(pcm); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}
	w.dataSize += uint32(len(pcm))
	return nil
}

// BytesWritten returns the number of data bytes written so far.
func (w *Writer) BytesWritten() int64 {
	return int64(w.dataSize)
}

// Close patches the RIFF and data chunk sizes and closes the file.
func (w *Writer) Close() error {
	var buf [4]byte

	binary.LittleEndian.PutUint32(buf[:], 36+w.dataSize)
	if _, err := w.f.WriteAt(buf[:], 4); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to patch RIFF chunk size: %w", err)
	}

	binary.LittleEndian.PutUint32(buf[:], w.dataSize)
	if _, err := w.f.WriteAt(buf[:], 40); err != nil {
		w.f.Close()
		return fmt.Errorf("failed to patch data chunk size: %w", err)
	}

	if err := w.f.Close(); err != nil {
		return fmt.Errorf("failed to close WAV file: %w", err)
	}
	return nil
}
