package main

import (
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	logFileName = "dragboard.log"
	maxLogSize  = 10 << 20
)

// setupLogging routes log and slog output to dir/dragboard.log when debug is set
// Without debug all output is discarded; the terminal belongs to the board
// Returns the open file for the caller to close, nil when logging is off or failed
func setupLogging(debug bool, dir string, level slog.Level) *os.File {
	if !debug {
		discardLogs()
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "creating log directory %s: %v\n", dir, err)
		discardLogs()
		return nil
	}

	path := filepath.Join(dir, logFileName)
	if info, err := os.Stat(path); err == nil && info.Size() > maxLogSize {
		rotated := filepath.Join(dir, fmt.Sprintf("dragboard-%s.log", time.Now().Format("20060102-150405")))
		if err := os.Rename(path, rotated); err != nil {
			fmt.Fprintf(os.Stderr, "rotating log %s: %v\n", path, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "opening log %s: %v\n", path, err)
		discardLogs()
		return nil
	}

	log.SetOutput(f)
	slog.SetDefault(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})))
	slog.Info("logging started", "path", path, "level", level)
	return f
}

// discardLogs silences both loggers; slog.SetDefault rewires log, so it goes first
func discardLogs() {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	log.SetOutput(io.Discard)
}
