package core

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/natefinch/lumberjack"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"profile_decorator/global"
)

func getCore(filename string, cfg global.Log, level zapcore.LevelEnabler) zapcore.Core {
	lumberJackLogger := &lumberjack.Logger{
		Filename:   filename,
		MaxSize:    cfg.MaxSize, // MB
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAge, // days
		Compress:   cfg.Compress,
	}
	writer := zapcore.AddSync(lumberJackLogger)
	config := zapcore.EncoderConfig{
		MessageKey:   "msg",
		LevelKey:     "level",
		TimeKey:      "ts",
		CallerKey:    "file",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		EncodeCaller: zapcore.ShortCallerEncoder,
		EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendString(t.Format("2006-01-02 15:04:05"))
		},
		EncodeDuration: func(d time.Duration, enc zapcore.PrimitiveArrayEncoder) {
			enc.AppendInt64(int64(d) / 1000000)
		},
	}
	encoder := zapcore.NewJSONEncoder(config)
	return zapcore.NewCore(encoder, writer, level)
}

// Zap builds a logger with one rotating file per level under cfg.Dir:
// profile_debug.log, profile_info.log, profile_warn.log and
// profile_error.log (error and above).
func Zap(cfg global.Log) (*zap.Logger, error) {
	minLevel, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	if err := os.MkdirAll(cfg.Dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("log dir: %w", err)
	}

	only := func(want zapcore.Level) zap.LevelEnablerFunc {
		return func(level zapcore.Level) bool {
			return level >= minLevel && level == want
		}
	}
	errorLog := zap.LevelEnablerFunc(func(level zapcore.Level) bool {
		return level >= minLevel && level >= zap.ErrorLevel
	})

	cores := [...]zapcore.Core{
		getCore(filepath.Join(cfg.Dir, "profile_debug.log"), cfg, only(zap.DebugLevel)),
		getCore(filepath.Join(cfg.Dir, "profile_info.log"), cfg, only(zap.InfoLevel)),
		getCore(filepath.Join(cfg.Dir, "profile_warn.log"), cfg, only(zap.WarnLevel)),
		getCore(filepath.Join(cfg.Dir, "profile_error.log"), cfg, errorLog),
	}
	return zap.New(zapcore.NewTee(cores[:]...), zap.AddCaller()), nil
}
