package record

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"

	"live-whisper/internal/app"
	"live-whisper/internal/app/audio"
	"live-whisper/internal/app/recorder"
)

var inputFilePath string
var realtime bool

// frameSamples is the replay granularity, 20ms worth of audio per frame.
const frameMillis = 20

func init() {
	Cmd.Flags().StringVarP(&inputFilePath, "input", "i", "", "WAV file to replay through the pipeline")
	Cmd.Flags().BoolVarP(&realtime, "realtime", "r", false, "pace frames at recording speed instead of replaying as fast as possible")

	Cmd.MarkFlagRequired("input")
}

// Cmd represents the record command
var Cmd = &cobra.Command{
	Use:   "record",
	Short: "Replay a WAV file through the live transcription pipeline",
	Long: `Replay a WAV file through the live transcription pipeline.

The file is fed frame by frame exactly as a microphone callback would,
so chunking, voice detection and per-chunk transcription all apply.`,
	Run: func(cmd *cobra.Command, args []string) {
		data, err := os.ReadFile(inputFilePath)
		if err != nil {
			log.Fatalf("Failed to read input file: %v\n", err)
		}
		sampleRate, dataSize, err := audio.DecodeWAVInfo(data)
		if err != nil {
			log.Fatalf("Not a usable WAV file: %v\n", err)
		}
		pcmEnd := audio.HeaderSize + dataSize
		if pcmEnd > len(data) {
			pcmEnd = len(data)
		}
		samples := audio.BytesToSamples(data[audio.HeaderSize:pcmEnd])

		registry := app.InitializeRegistry()
		token, started := registry.Start()
		if !started {
			log.Fatalf("A recording session is already active: %v\n", token)
		}

		frameLen := sampleRate * frameMillis / 1000
		for offset := 0; offset < len(samples); offset += frameLen {
			end := offset + frameLen
			if end > len(samples) {
				end = len(samples)
			}
			registry.HandleFrame(recorder.Frame{Samples: samples[offset:end], SampleRate: sampleRate})
			if realtime {
				time.Sleep(frameMillis * time.Millisecond)
			} else {
				time.Sleep(2 * time.Millisecond)
			}
		}

		res := registry.Stop(token)
		fmt.Println(res.Message)
		if res.TranscriptPath != "" {
			fmt.Printf("transcript saved to: %v\n", res.TranscriptPath)
		}
		if res.Transcript != "" {
			fmt.Println(res.Transcript)
		}
		fmt.Printf("estimated cost: $%.6f\n", res.Estimate.Total)
	},
}
