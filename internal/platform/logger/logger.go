package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New builds the process logger: console output, optionally tee'd into a
// size-rotated file when filePath is non-empty.
func New(level string, filePath string) zerolog.Logger {
	writers := []io.Writer{consoleWriter()}
	if filePath != "" {
		writers = append(writers, fileWriter(filePath))
	}

	zl := zerolog.New(io.MultiWriter(writers...)).With().Timestamp().Logger()
	return zl.Level(parseLevel(level))
}

func consoleWriter() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

func fileWriter(path string) io.Writer {
	return &lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     30, // days
		Compress:   true,
	}
}

func parseLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
