package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"live-whisper/cmd/lw/cmd/export"
	"live-whisper/cmd/lw/cmd/models"
	"live-whisper/cmd/lw/cmd/record"
	"live-whisper/cmd/lw/cmd/serve"
	"live-whisper/cmd/lw/cmd/version"
)

var Verbose bool

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lw",
	Short: "Live microphone transcription with chunked whisper calls",
	Long: `Live microphone transcription with chunked whisper calls.
- Serve the recording API and feed it captured audio
- Voiced chunks are shipped to the transcription API every few seconds
- Finished sessions are saved as WAV + transcript and recorded to sqlite.`,
	TraverseChildren: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serve.Cmd)
	rootCmd.AddCommand(record.Cmd)
	rootCmd.AddCommand(export.Cmd)
	rootCmd.AddCommand(models.Cmd)
	rootCmd.AddCommand(version.Cmd)

	rootCmd.PersistentFlags().BoolVarP(&Verbose, "verbose", "V", false, "verbose output")
}
