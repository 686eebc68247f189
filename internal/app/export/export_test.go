package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx"

	"live-whisper/internal/app/model"
)

func TestToExcel(t *testing.T) {
	out := filepath.Join(t.TempDir(), "history.xlsx")
	recordings := []model.Recording{
		{
			ID:            1,
			StartedAt:     time.Date(2025, 3, 1, 10, 30, 0, 0, time.UTC),
			StoppedAt:     time.Date(2025, 3, 1, 10, 31, 0, 0, time.UTC),
			DurationSec:   60,
			SegmentCount:  20,
			Model:         "whisper-1",
			Language:      "zh",
			WAVPath:       "resource/recording-1.wav",
			Transcript:    "你好",
			EstimatedCost: 0.006,
		},
		{
			ID:           2,
			HasError:     1,
			ErrorMessage: "recording file missing",
		},
	}

	require.NoError(t, ToExcel(recordings, out))

	file, err := xlsx.OpenFile(out)
	require.NoError(t, err)
	require.Len(t, file.Sheets, 1)
	sheet := file.Sheets[0]
	assert.Equal(t, "Recordings", sheet.Name)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "你好", sheet.Rows[1].Cells[8].Value)
	assert.Equal(t, "recording file missing", sheet.Rows[2].Cells[10].Value)
}

func TestToExcelEmptyHistory(t *testing.T) {
	out := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, ToExcel(nil, out))
	assert.FileExists(t, out)
}
