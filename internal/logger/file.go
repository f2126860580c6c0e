package logger

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// FileLogger writes JSON log lines to a rotating file. The dashboard owns
// the terminal while it runs, so anything that must be logged during a
// monitoring session goes to a file instead of stderr.
type FileLogger struct {
	zlog  *zap.Logger
	sugar *zap.SugaredLogger
}

// NewFileLogger creates a rotating file logger at the given path. Parent
// directories are created as needed. Debug output is gated by the same
// LOOKOUT_DEBUG environment variable as the stderr logger.
func NewFileLogger(path string) (*FileLogger, error) {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}

	w := zapcore.AddSync(&lumberjack.Logger{
		Filename:   path,
		MaxSize:    10, // MB
		MaxBackups: 5,
		MaxAge:     14, // days
		Compress:   true,
	})

	cfg := zap.NewProductionEncoderConfig()
	cfg.TimeKey = "ts"

	level := zap.InfoLevel
	if debugEnabled() {
		level = zap.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(cfg), w, level)
	zlog := zap.New(core)

	return &FileLogger{zlog: zlog, sugar: zlog.Sugar()}, nil
}

// Close flushes any buffered log entries.
func (l *FileLogger) Close() error {
	return l.zlog.Sync()
}

func (l *FileLogger) Debug(format string, args ...interface{}) {
	l.sugar.Debugf(format, args...)
}

func (l *FileLogger) Info(format string, args ...interface{}) {
	l.sugar.Infof(format, args...)
}

func (l *FileLogger) Warn(format string, args ...interface{}) {
	l.sugar.Warnf(format, args...)
}

func (l *FileLogger) Error(format string, args ...interface{}) {
	l.sugar.Errorf(format, args...)
}
