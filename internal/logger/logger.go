// Package logger configures the zap backed logr.Logger of the gridtable command.
package logger

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"strings"
	"sync"
	"syscall"

	"github.com/go-logr/logr"
	"github.com/go-logr/zapr"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type loggerContextKey struct{}

const (
	CommandKey   = "command"
	VersionKey   = "version"
	GoVersionKey = "go_version"
	TimeStampKey = "timestamp"
	MessageKey   = "message"
)

var (
	once sync.Once

	// globalZapLogger is kept for Sync
	globalZapLogger *zap.Logger

	globalLogrLogger *logr.Logger

	defaultNoopLogger = logr.Discard()
)

// ParseLevel parses a level name like "debug", "info", "warn" or "error"
// and returns it as the int8 zapcore.Level passed to Get.
func ParseLevel(name string) (int8, error) {
	level, err := zapcore.ParseLevel(name)
	if err != nil {
		return 0, err
	}
	return int8(level), nil
}

// New returns a JSON logger writing entries of at least level to w.
// The returned *zap.Logger must be synced by the caller.
func New(w io.Writer, level int8) (logr.Logger, *zap.Logger) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.TimeKey = TimeStampKey
	encoderCfg.MessageKey = MessageKey

	version, goVersion := "(devel)", "unknown"
	if info, ok := debug.ReadBuildInfo(); ok {
		version = info.Main.Version
		goVersion = info.GoVersion
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(zapcore.Level(level)),
	).With(
		[]zapcore.Field{
			zap.String(VersionKey, version),
			zap.String(GoVersionKey, goVersion),
		},
	)
	zl := zap.New(core,
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel),
		zap.WithFatalHook(zapcore.WriteThenPanic),
	)
	return zapr.NewLogger(zl), zl
}

// Get initializes the global logger writing to stderr
// with the minimum zapcore.Level logLevel.
// Only the first call configures the logger.
func Get(logLevel int8) *logr.Logger {
	once.Do(func() {
		gl, zl := New(os.Stderr, logLevel)
		globalZapLogger = zl
		globalLogrLogger = &gl
	})
	if globalLogrLogger == nil {
		return &defaultNoopLogger
	}
	return globalLogrLogger
}

// WithLogger returns a context with log attached
// or ctx if it already holds the same logger.
// The logger is also attached with logr.NewContext
// so library code can use logr.FromContextOrDiscard.
func WithLogger(ctx context.Context, log *logr.Logger) context.Context {
	if lp, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok && lp == log {
		return ctx
	}
	ctx = logr.NewContext(ctx, *log)
	return context.WithValue(ctx, loggerContextKey{}, log)
}

// FromContext returns the logger of the context,
// the global logger, or a no-op logger if none was configured.
func FromContext(ctx context.Context) *logr.Logger {
	if log, ok := ctx.Value(loggerContextKey{}).(*logr.Logger); ok {
		return log
	} else if log := globalLogrLogger; log != nil {
		return log
	}
	return &defaultNoopLogger
}

// Sync flushes buffered log entries, call it before exiting.
func Sync() {
	if globalZapLogger != nil {
		if err := globalZapLogger.Sync(); err != nil {
			if isIgnorableSyncError(err) {
				return
			}
			fmt.Fprintf(os.Stderr, "WARNING: failed to sync zap logger: %v\n", err)
		}
	}
}

// isIgnorableSyncError returns true for the errors
// returned when syncing pipes and terminals.
func isIgnorableSyncError(err error) bool {
	if errors.Is(err, syscall.ENOTTY) || errors.Is(err, syscall.EINVAL) || errors.Is(err, syscall.EIO) || errors.Is(err, syscall.EBADF) {
		return true
	}
	// Windows consoles
	return strings.Contains(err.Error(), "The handle is invalid")
}
