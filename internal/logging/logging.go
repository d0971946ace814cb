package logging

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// SuccessLevel sits below zap's debug level so it never collides with the
// built-in severities.
const SuccessLevel = zapcore.Level(-2)

const (
	colorRed    = "\x1b[31m"
	colorGreen  = "\x1b[32m"
	colorYellow = "\x1b[33m"
	colorBold   = "\x1b[1m"
	colorReset  = "\x1b[0m"
)

// wraps zap with the Success/Error/Warning/Info severities used by srtlint
type Logger struct {
	base    *zap.Logger
	sugar   *zap.SugaredLogger
	verbose bool
}

// builds a logger writing warnings and errors to stderr and everything else
// to stdout
func NewLogger(verbose bool) *Logger {
	return New(newTeeCore(os.Stdout, os.Stderr, verbose), verbose)
}

func newTeeCore(out, errOut io.Writer, verbose bool) zapcore.Core {
	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		MessageKey:       "msg",
		LevelKey:         "level",
		EncodeLevel:      encodeLevel,
		ConsoleSeparator: " ",
	})

	minLevel := zapcore.InfoLevel
	if verbose {
		minLevel = zapcore.DebugLevel
	}

	stdout := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		if lvl == SuccessLevel {
			return true
		}
		return lvl >= minLevel && lvl < zapcore.WarnLevel
	})
	stderr := zap.LevelEnablerFunc(func(lvl zapcore.Level) bool {
		return lvl >= zapcore.WarnLevel
	})

	return zapcore.NewTee(
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(out)), stdout),
		zapcore.NewCore(enc, zapcore.Lock(zapcore.AddSync(errOut)), stderr),
	)
}

// New wraps an arbitrary core, e.g. a zaptest/observer core in tests.
func New(core zapcore.Core, verbose bool) *Logger {
	base := zap.New(core)
	return &Logger{
		base:    base,
		sugar:   base.Sugar(),
		verbose: verbose,
	}
}

// Nop returns a logger that discards everything.
func Nop() *Logger {
	return New(zapcore.NewNopCore(), false)
}

func (l *Logger) Verbose() bool {
	return l.verbose
}

func (l *Logger) Success(format string, args ...any) {
	l.log(SuccessLevel, format, args...)
}

func (l *Logger) Info(format string, args ...any) {
	l.log(zapcore.InfoLevel, format, args...)
}

func (l *Logger) Warning(format string, args ...any) {
	l.log(zapcore.WarnLevel, format, args...)
}

func (l *Logger) Error(format string, args ...any) {
	l.log(zapcore.ErrorLevel, format, args...)
}

func (l *Logger) Debugw(msg string, keysAndValues ...any) {
	l.sugar.Debugw(msg, keysAndValues...)
}

// Sync flushes buffered entries; errors from syncing a terminal are ignored.
func (l *Logger) Sync() {
	_ = l.base.Sync()
}

func (l *Logger) log(lvl zapcore.Level, format string, args ...any) {
	msg := format
	if len(args) > 0 {
		msg = fmt.Sprintf(format, args...)
	}
	if ce := l.base.Check(lvl, msg); ce != nil {
		ce.Write()
	}
}

func encodeLevel(lvl zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var tag, color string
	switch lvl {
	case SuccessLevel:
		tag, color = "SUCCESS", colorGreen
	case zapcore.ErrorLevel, zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		tag, color = "ERROR", colorRed
	case zapcore.WarnLevel:
		tag, color = "WARNING", colorYellow
	case zapcore.DebugLevel:
		tag, color = "DEBUG", colorBold
	default:
		tag, color = "INFO", colorBold
	}
	enc.AppendString(color + "[" + tag + "]" + colorReset)
}
