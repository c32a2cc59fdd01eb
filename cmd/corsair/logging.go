package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

const (
	logFileName = "corsair.log"
	maxLogSize  = 10 * 1024 * 1024
)

// setupLogging returns a logger writing to dir/corsair.log when debug is set,
// and a discarding logger otherwise. The returned file is nil when discarding.
// An oversized log is renamed with a timestamp suffix before reopening.
func setupLogging(debug bool, dir string) (*slog.Logger, *os.File, error) {
	if !debug {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}

	logPath := filepath.Join(dir, logFileName)
	if info, err := os.Stat(logPath); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("corsair_%s.log", time.Now().Format("20060102_150405")))
		if err := os.Rename(logPath, rotated); err != nil {
			return nil, nil, fmt.Errorf("rotate log: %w", err)
		}
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log: %w", err)
	}

	handler := slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
	logger := slog.New(handler).With("run", uuid.NewString())
	return logger, f, nil
}
