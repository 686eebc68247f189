package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"live-whisper/internal/app/cost"
	"live-whisper/internal/app/recorder"
	"live-whisper/internal/app/repository"
	"live-whisper/internal/app/util/files"
)

// RecordingHandler exposes the recording lifecycle over HTTP. Handlers do
// formatting only; all state lives behind the registry.
type RecordingHandler struct {
	registry    *recorder.Registry
	dao         repository.RecordingDAO
	resourceDir string
	logger      *zap.Logger
}

func NewRecordingHandler(registry *recorder.Registry, dao repository.RecordingDAO, resourceDir string, logger *zap.Logger) *RecordingHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecordingHandler{
		registry:    registry,
		dao:         dao,
		resourceDir: resourceDir,
		logger:      logger,
	}
}

type stopRequest struct {
	Token string `json:"token" binding:"required"`
}

// Start handles POST /api/recording/start. A request while a session is
// already live is a no-op answering with that session's token.
func (h *RecordingHandler) Start(c *gin.Context) {
	token, started := h.registry.Start()
	if !started {
		c.JSON(http.StatusOK, gin.H{"token": token, "started": false})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"token": token, "started": true})
}

// Stop handles POST /api/recording/stop
func (h *RecordingHandler) Stop(c *gin.Context) {
	var req stopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "token is required"})
		return
	}

	res := h.registry.Stop(req.Token)
	if res.Status == recorder.StatusNotRecording {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  res.Status.String(),
			"message": res.Message,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":          res.Status.String(),
		"message":         res.Message,
		"wav_path":        res.WAVPath,
		"transcript_path": res.TranscriptPath,
		"transcript":      res.Transcript,
		"duration_sec":    res.DurationSec,
		"segment_count":   res.SegmentCount,
		"estimate":        res.Estimate,
	})
}

// Status handles GET /api/recording/status
func (h *RecordingHandler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.registry.Snapshot())
}

// Models handles GET /api/recording/models
func (h *RecordingHandler) Models(c *gin.Context) {
	names := cost.Models()
	profiles := make([]gin.H, 0, len(names))
	for _, name := range names {
		p := cost.ProfileFor(name)
		profiles = append(profiles, gin.H{
			"name":                  name,
			"label":                 p.Label,
			"input_cost_per_minute": p.InputCostPerMinute,
			"output_cost_per_token": p.OutputCostPerToken,
		})
	}
	c.JSON(http.StatusOK, gin.H{"models": profiles})
}

// Files handles GET /api/recording/files. With ?transcripts=1 the saved
// transcript text is inlined per recording.
func (h *RecordingHandler) Files(c *gin.Context) {
	recordings, err := files.ListRecordings(h.resourceDir)
	if err != nil {
		h.logger.Error("recording listing failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list recordings"})
		return
	}

	includeTranscripts := c.Query("transcripts") == "1"
	entries := make([]gin.H, 0, len(recordings))
	for _, rec := range recordings {
		entry := gin.H{
			"name":     rec.Name,
			"path":     rec.FullPath,
			"size":     rec.Size,
			"mod_time": rec.ModTime,
		}
		if includeTranscripts {
			transcriptPath := strings.TrimSuffix(rec.FullPath, ".wav") + "-transcript.txt"
			if text, err := files.ReadTranscript(transcriptPath); err == nil {
				entry["transcript"] = text
			}
		}
		entries = append(entries, entry)
	}
	c.JSON(http.StatusOK, gin.H{"recordings": entries})
}

// History handles GET /api/recording/history
func (h *RecordingHandler) History(c *gin.Context) {
	if h.dao == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"error": "history persistence is disabled"})
		return
	}

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 500 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 500"})
			return
		}
		limit = n
	}

	recordings, err := h.dao.GetRecent(limit)
	if err != nil {
		h.logger.Error("history query failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load history"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"recordings": recordings})
}
