package export

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/spf13/cobra"

	"live-whisper/internal/app/export"
	"live-whisper/internal/app/repository/sqlite"
	"live-whisper/internal/app/util/files"
)

var outputFilePath string
var limit int

func init() {
	Cmd.Flags().StringVarP(&outputFilePath, "outputFilePath", "o", "", "set outputFilePath")
	Cmd.Flags().IntVarP(&limit, "limit", "n", 100, "maximum number of recordings to export")

	Cmd.MarkFlagRequired("outputFilePath")
}

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export recording history to excel",
	Long: `Export recording history to excel

- Exports the most recent recordings, newest first`,
	Run: func(cmd *cobra.Command, args []string) {
		projectRoot, err := files.GetProjectRoot()
		if err != nil {
			log.Fatalf("Failed to get project root: %v\n", err)
		}

		dbPath := filepath.Join(projectRoot, "data/recordings.db")
		db, err := sqlite.NewSQLiteDB(dbPath)
		if err != nil {
			log.Fatalf("Failed to open recording database: %v\n", err)
		}
		defer db.Close()

		recordings, err := db.GetRecent(limit)
		if err != nil {
			log.Fatal(err)
		}

		if err := export.ToExcel(recordings, outputFilePath); err != nil {
			log.Fatal(err)
		}
		fmt.Printf("export finished, exported file path: %v\n", outputFilePath)
	},
}
