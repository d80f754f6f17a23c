// Package logger wires the process-global zap logger from config.
package logger

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lexqna/lexqna/internal/config"
)

const timeLayout = "15:04:05 02-01-2006"

// InitLogger replaces zap's globals with a console logger at the configured
// level. Callers reach it through zap.L() afterwards.
func InitLogger(conf *config.Config) error {
	lvl, err := zapcore.ParseLevel(conf.LogLvl)
	if err != nil {
		return fmt.Errorf("unsupported log lvl %q: %w", conf.LogLvl, err)
	}

	enc := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		MessageKey:     "msg",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeTime:     zapcore.TimeEncoderOfLayout(timeLayout),
		EncodeDuration: zapcore.MillisDurationEncoder,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
	})

	core := zapcore.NewCore(enc, zapcore.Lock(os.Stdout), zap.NewAtomicLevelAt(lvl))
	zap.ReplaceGlobals(zap.New(core, zap.ErrorOutput(zapcore.Lock(os.Stderr))))

	return nil
}
