package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

type Level int8

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l Level) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l Level) String() string { return strings.ToLower(l.slog().String()) }

func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "debug", "verbose":
		return LevelDebug, nil
	case "info", "":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level: %q", s)
	}
}

type Logger interface {
	SetLevel(Level)
	Enabled(Level) bool
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
	SetOutput(io.Writer)
}

var DefaultLogger Logger = NewLogger(os.Stdout)

type Config struct {
	Level Level
	Save  bool // tee output into a rotated file at the path given to Set
}

var (
	writer     *FileWriter
	writerPath string
	lock       sync.Mutex
)

func Set(config Config, path string) {
	lock.Lock()
	defer lock.Unlock()

	DefaultLogger.SetLevel(config.Level)

	if writer != nil && (!config.Save || path != writerPath) {
		DefaultLogger.SetOutput(os.Stdout)
		writer.Close()
		writer = nil
	}

	if config.Save && writer == nil {
		writer = NewLogWriter(path)
		writerPath = path
		DefaultLogger.SetOutput(io.MultiWriter(os.Stdout, writer))
	}
}

func Close() error {
	lock.Lock()
	defer lock.Unlock()
	if writer == nil {
		return nil
	}
	DefaultLogger.SetOutput(os.Stdout)
	err := writer.Close()
	writer = nil
	return err
}

func SetLevel(l Level)           { DefaultLogger.SetLevel(l) }
func Enabled(l Level) bool       { return DefaultLogger.Enabled(l) }
func Debug(msg string, v ...any) { DefaultLogger.Debug(msg, v...) }
func Info(msg string, v ...any)  { DefaultLogger.Info(msg, v...) }
func Warn(msg string, v ...any)  { DefaultLogger.Warn(msg, v...) }
func Error(msg string, v ...any) { DefaultLogger.Error(msg, v...) }
func SetOutput(w io.Writer)      { DefaultLogger.SetOutput(w) }

type logger struct {
	level  slog.LevelVar
	mu     sync.RWMutex
	logger *slog.Logger
}

func NewLogger(w io.Writer) *logger {
	l := &logger{}
	l.level.Set(slog.LevelInfo)
	l.logger = l.newSlog(w)
	return l
}

func (l *logger) newSlog(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: &l.level}))
}

func (l *logger) SetLevel(z Level)     { l.level.Set(z.slog()) }
func (l *logger) Enabled(z Level) bool { return l.level.Level() <= z.slog() }

func (l *logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	l.logger = l.newSlog(w)
	l.mu.Unlock()
}

func (l *logger) log(level slog.Level, msg string, args ...any) {
	l.mu.RLock()
	z := l.logger
	l.mu.RUnlock()
	z.Log(context.Background(), level, msg, args...)
}

func (l *logger) Debug(msg string, args ...any) { l.log(slog.LevelDebug, msg, args...) }
func (l *logger) Info(msg string, args ...any)  { l.log(slog.LevelInfo, msg, args...) }
func (l *logger) Warn(msg string, args ...any)  { l.log(slog.LevelWarn, msg, args...) }
func (l *logger) Error(msg string, args ...any) { l.log(slog.LevelError, msg, args...) }
