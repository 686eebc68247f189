package models

import (
	"fmt"

	"github.com/spf13/cobra"

	"live-whisper/internal/app/cost"
)

// Cmd represents the models command
var Cmd = &cobra.Command{
	Use:   "models",
	Short: "List supported transcription models and their prices",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range cost.Models() {
			p := cost.ProfileFor(name)
			fmt.Printf("%-24s %-28s $%.4f/min audio, $%.8f/output token\n",
				name, p.Label, p.InputCostPerMinute, p.OutputCostPerToken)
		}
		return nil
	},
}
