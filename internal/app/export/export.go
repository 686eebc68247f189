package export

import (
	"fmt"
	"time"

	"github.com/tealeg/xlsx"

	"live-whisper/internal/app/model"
)

// ToExcel writes recording history rows to an xlsx workbook.
func ToExcel(recordings []model.Recording, outputFilePath string) error {
	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Recordings")
	if err != nil {
		return fmt.Errorf("add sheet: %w", err)
	}

	headerRow := sheet.AddRow()
	headerRow.AddCell().Value = "ID"
	headerRow.AddCell().Value = "Started At"
	headerRow.AddCell().Value = "Stopped At"
	headerRow.AddCell().Value = "Duration (s)"
	headerRow.AddCell().Value = "Segments"
	headerRow.AddCell().Value = "Model"
	headerRow.AddCell().Value = "Language"
	headerRow.AddCell().Value = "WAV File"
	headerRow.AddCell().Value = "Transcript"
	headerRow.AddCell().Value = "Estimated Cost (USD)"
	headerRow.AddCell().Value = "Error Message"

	for _, r := range recordings {
		row := sheet.AddRow()
		row.AddCell().Value = fmt.Sprint(r.ID)
		row.AddCell().Value = r.StartedAt.Format(time.RFC3339)
		row.AddCell().Value = r.StoppedAt.Format(time.RFC3339)
		row.AddCell().Value = fmt.Sprintf("%.2f", r.DurationSec)
		row.AddCell().Value = fmt.Sprint(r.SegmentCount)
		row.AddCell().Value = r.Model
		row.AddCell().Value = r.Language
		row.AddCell().Value = r.WAVPath
		row.AddCell().Value = r.Transcript
		row.AddCell().Value = fmt.Sprintf("%.6f", r.EstimatedCost)
		row.AddCell().Value = r.ErrorMessage
	}

	if err := file.Save(outputFilePath); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}
