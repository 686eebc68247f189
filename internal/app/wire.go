//go:build wireinject
// +build wireinject

package app

import (
	"log"
	"os"
	"path/filepath"

	"github.com/google/wire"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"live-whisper/internal/app/api"
	"live-whisper/internal/app/api/openai"
	"live-whisper/internal/app/api/openai/whisper"
	"live-whisper/internal/app/recorder"
	"live-whisper/internal/app/repository"
	"live-whisper/internal/app/repository/sqlite"
	"live-whisper/internal/app/util/files"
	"live-whisper/internal/config"
	"live-whisper/internal/metrics"
	"live-whisper/web"
)

// providePipeline loads config/pipeline.yaml from the project root when it
// exists, otherwise the built-in defaults.
func providePipeline() config.Pipeline {
	root, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	path := filepath.Join(root, "config", "pipeline.yaml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return resolveResourceDir(config.DefaultPipeline())
	}

	pipeline, err := config.LoadPipeline(path)
	if err != nil {
		log.Fatalf("Failed to load pipeline config: %v\n", err)
	}
	return resolveResourceDir(pipeline)
}

// resolveResourceDir anchors a relative resource dir at the project root
// so every entry point writes recordings to the same place.
func resolveResourceDir(pipeline config.Pipeline) config.Pipeline {
	dir, err := files.ResolveResourceDir(pipeline.ResourceDir)
	if err != nil {
		log.Fatalf("Failed to resolve resource dir: %v\n", err)
	}
	pipeline.ResourceDir = dir
	return pipeline
}

// provideTranscriber uses openai's remote service, must set environment variable OPENAI_API_KEY
func provideTranscriber(pipeline config.Pipeline) api.ChunkTranscriber {
	return whisper.NewRemoteTranscriber(openai.GetClient(), pipeline.Model)
}

func provideRecordingDAO() repository.RecordingDAO {
	projectRoot, err := files.GetProjectRoot()
	if err != nil {
		log.Fatalf("Failed to get project root: %v\n", err)
	}

	dataDir := filepath.Join(projectRoot, "data")
	if err := files.EnsureDir(dataDir); err != nil {
		log.Fatalf("Failed to create data directory: %v\n", err)
	}

	dao, err := sqlite.NewSQLiteDB(filepath.Join(dataDir, "recordings.db"))
	if err != nil {
		log.Fatalf("Failed to open recording database: %v\n", err)
	}
	return dao
}

func provideLogger() *zap.Logger {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to build logger: %v\n", err)
	}
	return logger
}

func provideMetricsRegistry() *prometheus.Registry {
	return prometheus.NewRegistry()
}

func provideMetrics(registry *prometheus.Registry) *metrics.Metrics {
	return metrics.New(registry)
}

func InitializeRegistry() *recorder.Registry {
	wire.Build(recorder.NewRegistry, providePipeline, provideTranscriber, provideRecordingDAO, provideMetricsRegistry, provideMetrics, provideLogger)
	return &recorder.Registry{}
}

func InitializeServer(serverConfig web.Config) *web.Server {
	wire.Build(web.NewServer, recorder.NewRegistry, providePipeline, provideTranscriber, provideRecordingDAO, provideMetricsRegistry, provideMetrics, provideLogger)
	return &web.Server{}
}
