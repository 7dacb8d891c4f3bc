// Package logs holds the process-wide debug logger. The TUI owns stdout, so
// log output goes to a file in the data directory.
package logs

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"sync"
)

const (
	prefix = "[carrot] "
	flags  = log.LstdFlags | log.Lshortfile
)

var (
	Logger  = log.New(io.Discard, prefix, flags)
	logFile *os.File
	mu      sync.Mutex
)

// Initialize points the logger at path, creating parent directories. An empty
// path leaves the logger discarding output.
func Initialize(path string) error {
	mu.Lock()
	defer mu.Unlock()

	if path == "" {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return err
	}

	if logFile != nil {
		logFile.Close()
	}
	logFile = f
	Logger = log.New(f, prefix, flags)
	Logger.Printf("logging to %s", path)
	return nil
}

// SetOutput sends log output to w, closing any open log file.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
	Logger = log.New(w, prefix, flags)
}

// Close closes the log file.
func Close() error {
	mu.Lock()
	defer mu.Unlock()

	if logFile != nil {
		err := logFile.Close()
		logFile = nil
		Logger = log.New(io.Discard, prefix, flags)
		return err
	}
	return nil
}
