package logging

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

const (
	maxLogSizeMB  = 10
	maxLogBackups = 5
	maxLogAgeDays = 14
)

// Init points the standard logger at stderr and, when path is set, a rotating file.
// The returned closer releases the file handle.
func Init(path string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds)

	path = strings.TrimSpace(path)
	if path == "" {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		log.SetOutput(os.Stderr)
		return io.NopCloser(nil), err
	}

	writer := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    maxLogSizeMB,
		MaxBackups: maxLogBackups,
		MaxAge:     maxLogAgeDays,
		Compress:   true,
	}

	log.SetOutput(io.MultiWriter(os.Stderr, writer))
	return writer, nil
}
