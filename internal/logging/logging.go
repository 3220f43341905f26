// Package logging configures the global zerolog logger.
//
// The terminal UI owns stdout and stderr while it runs, so in that mode logs go
// to a file. The server and headless commands log to stderr.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DefaultFileName is the log file used by the terminal UI
const DefaultFileName = "mlguide.log"

// ParseLevel maps a config level to a zerolog level; empty means info
func ParseLevel(level string) (zerolog.Level, error) {
	switch level {
	case "", "info":
		return zerolog.InfoLevel, nil
	case "debug":
		return zerolog.DebugLevel, nil
	case "warn":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, errors.Newf("invalid log level %q", level)
	}
}

// SetupConsole sends human readable logs to w
func SetupConsole(w io.Writer, level string) error {
	lvl, err := ParseLevel(level)
	if err != nil {
		return err
	}
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: time.TimeOnly}
	log.Logger = zerolog.New(out).Level(lvl).With().Timestamp().Logger()
	return nil
}

// SetupFile appends JSON logs to path, or to DefaultFileName in the user cache
// directory when path is empty. The returned closer releases the file.
func SetupFile(path, level string) (io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if path == "" {
		path = DefaultFilePath()
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, errors.Wrap(err, "could not create log directory")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "could not open log file %s", path)
	}
	log.Logger = zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return f, nil
}

// Discard silences the global logger
func Discard() {
	log.Logger = zerolog.Nop()
}

// DefaultFilePath returns the TUI log file location
func DefaultFilePath() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return DefaultFileName
	}
	return filepath.Join(dir, "mlguide", DefaultFileName)
}
