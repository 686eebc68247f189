package main

import (
	"fmt"
	"os"

	"live-whisper/cmd/lw/cmd"
	"live-whisper/internal/config"
)

func main() {
	apiKeys, err := config.InitializeConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration warning: %v\n", err)
	} else if apiKeys.OpenAI != "" {
		os.Setenv("OPENAI_API_KEY", apiKeys.OpenAI)
	}

	cmd.Execute()
}
