// Package logging builds the application's zap logger.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tesso57/shelfdesk/internal/application/settings"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// New returns a JSON logger writing to a rotating file. The terminal belongs
// to the UI, so nothing is written to stderr. An empty file disables
// logging. The returned func flushes and closes the file.
func New(cfg settings.LogConfig) (*zap.Logger, func(), error) {
	path := strings.TrimSpace(cfg.File)
	if path == "" {
		return zap.NewNop(), func() {}, nil
	}

	level := zapcore.InfoLevel
	if raw := strings.TrimSpace(cfg.Level); raw != "" {
		parsed, err := zapcore.ParseLevel(raw)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid log level %q: %w", raw, err)
		}
		level = parsed
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("create log directory: %w", err)
	}
	rotator := &lumberjack.Logger{
		Filename:   path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level)
	logger := zap.New(core).With(zap.Int("pid", os.Getpid()))

	return logger, func() {
		_ = logger.Sync()
		_ = rotator.Close()
	}, nil
}
