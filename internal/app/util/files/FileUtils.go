package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"
)

// RecordingFile describes one WAV file found in the resource directory.
type RecordingFile struct {
	FullPath string
	Name     string
	ModTime  time.Time
	Size     int64
}

func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filename)
}

// ResolveResourceDir turns a relative resource directory into an absolute
// path under the project root. Absolute paths pass through unchanged.
func ResolveResourceDir(dir string) (string, error) {
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	root, err := GetProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, dir), nil
}

func EnsureDir(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}

// ListRecordings returns the WAV files under dir, oldest first.
func ListRecordings(dir string) ([]RecordingFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read resource dir: %w", err)
	}

	var recordings []RecordingFile
	for _, entry := range entries {
		if entry.IsDir() || strings.ToLower(filepath.Ext(entry.Name())) != ".wav" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		recordings = append(recordings, RecordingFile{
			FullPath: filepath.Join(dir, entry.Name()),
			Name:     entry.Name(),
			ModTime:  info.ModTime(),
			Size:     info.Size(),
		})
	}

	sort.Slice(recordings, func(i, j int) bool {
		return recordings[i].ModTime.Before(recordings[j].ModTime)
	})

	return recordings, nil
}

// ReadTranscript reads a saved transcript file and returns its trimmed text.
func ReadTranscript(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(content)), nil
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		newPath := filepath.Dir(path)
		if newPath == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = newPath
	}
}
