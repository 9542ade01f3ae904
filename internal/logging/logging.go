// Package logging provides the named, dynamically-leveled loggers used for
// audit output. Two loggers exist: one for request entry/exit records and one
// for catalog events. Each writes to the console and to its own append-only
// log file, and its minimum level can be changed at runtime through the
// registry (exposed over HTTP by the logs handler).
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"github.com/rs/zerolog"
)

// Logger names accepted by the registry.
const (
	RequestLogger = "request-logger"
	BooksLogger   = "books-logger"
)

var (
	ErrUnknownLogger = errors.New("unknown logger")
	ErrUnknownLevel  = errors.New("unknown log level")
)

// Config holds the sink configuration for the registry.
type Config struct {
	// Dir is the directory for per-logger log files. Created if missing.
	Dir string

	// Console is the shared console sink. Default: os.Stdout.
	Console io.Writer
}

type namedLogger struct {
	level  atomic.Int32
	logger zerolog.Logger
	file   *os.File
}

// Registry maps logger names to their loggers and current minimum levels.
// The logger set is fixed at construction; only levels change afterwards.
type Registry struct {
	loggers map[string]*namedLogger
}

// leveledWriter drops events below the registry's current level for the
// logger. Filtering at the writer rather than the logger lets the level
// change after the logger value has been handed out.
type leveledWriter struct {
	min *atomic.Int32
	out zerolog.LevelWriter
}

func (w *leveledWriter) Write(p []byte) (int, error) {
	return w.out.Write(p)
}

func (w *leveledWriter) WriteLevel(level zerolog.Level, p []byte) (int, error) {
	if level < zerolog.Level(w.min.Load()) {
		return len(p), nil
	}
	return w.out.WriteLevel(level, p)
}

// NewRegistry opens the log sinks and builds the named loggers, each starting
// at INFO.
func NewRegistry(cfg Config) (*Registry, error) {
	console := cfg.Console
	if console == nil {
		console = os.Stdout
	}
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory: %w", err)
	}

	files := map[string]string{
		RequestLogger: "requests.log",
		BooksLogger:   "books.log",
	}

	r := &Registry{loggers: make(map[string]*namedLogger, len(files))}
	for name, filename := range files {
		f, err := os.OpenFile(filepath.Join(cfg.Dir, filename), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			r.Close()
			return nil, fmt.Errorf("open log file for %s: %w", name, err)
		}

		nl := &namedLogger{file: f}
		nl.level.Store(int32(zerolog.InfoLevel))

		consoleWriter := zerolog.ConsoleWriter{
			Out:        console,
			TimeFormat: "02-01-2006 15:04:05.000",
			NoColor:    true,
		}
		out := &leveledWriter{
			min: &nl.level,
			out: zerolog.MultiLevelWriter(consoleWriter, f),
		}
		nl.logger = zerolog.New(out).With().Timestamp().Str("logger", name).Logger()
		r.loggers[name] = nl
	}
	return r, nil
}

// Logger returns the named logger. Unknown names get a disabled logger so
// callers never have to branch on registration.
func (r *Registry) Logger(name string) zerolog.Logger {
	if nl, ok := r.loggers[name]; ok {
		return nl.logger
	}
	return zerolog.Nop()
}

// Level returns the current minimum level of the named logger.
func (r *Registry) Level(name string) (zerolog.Level, error) {
	nl, ok := r.loggers[name]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("%w: %s", ErrUnknownLogger, name)
	}
	return zerolog.Level(nl.level.Load()), nil
}

// SetLevel changes the minimum level of the named logger and returns the
// level that is now in effect.
func (r *Registry) SetLevel(name, levelName string) (zerolog.Level, error) {
	nl, ok := r.loggers[name]
	if !ok {
		return zerolog.NoLevel, fmt.Errorf("%w: %s", ErrUnknownLogger, name)
	}
	level, err := ParseLevel(levelName)
	if err != nil {
		return zerolog.NoLevel, err
	}
	nl.level.Store(int32(level))
	return level, nil
}

// Close closes the file sinks.
func (r *Registry) Close() error {
	var firstErr error
	for _, nl := range r.loggers {
		if nl.file == nil {
			continue
		}
		if err := nl.file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
		nl.file = nil
	}
	return firstErr
}

// ParseLevel accepts level names case-insensitively, including the WARNING
// alias.
func ParseLevel(name string) (zerolog.Level, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "warning" {
		s = zerolog.LevelWarnValue
	}
	if s == "" {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	level, err := zerolog.ParseLevel(s)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}
	return level, nil
}

// LevelName renders a level the way the logs endpoint reports it.
func LevelName(level zerolog.Level) string {
	return strings.ToUpper(level.String())
}
