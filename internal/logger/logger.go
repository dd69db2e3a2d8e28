// Package logger builds the zap loggers used by the decasify command and
// server. Output goes to a console core and, when a file is configured, to a
// JSON file rotated by lumberjack.
package logger

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Config configures a logger.
type Config struct {
	// Level is one of "debug", "info", "warn" or "error".
	Level string `yaml:"level" lua:"level" validate:"omitempty,oneof=debug info warn error"`
	// Development selects a human readable console encoding.
	Development bool `yaml:"development" lua:"development"`
	// File enables JSON file output rotated by lumberjack.
	File       string `yaml:"file" lua:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" lua:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" lua:"max_backups" validate:"gte=0"`
	MaxAgeDays int    `yaml:"max_age_days" lua:"max_age_days" validate:"gte=0"`
}

// DefaultConfig is the configuration used for zero values.
var DefaultConfig = Config{
	Level:      "info",
	MaxSizeMB:  10, // megabytes
	MaxBackups: 5,
	MaxAgeDays: 7, // days
}

func (c *Config) level() (zapcore.Level, error) {
	if c.Level == "" {
		return zap.InfoLevel, nil
	}
	lvl, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return lvl, fmt.Errorf("logger: invalid level %q: %w", c.Level, err)
	}
	return lvl, nil
}

// New returns a logger writing to console and, if conf.File is set, to the
// rotated log file. The returned close function flushes and closes the log
// file.
func New(conf Config, console io.Writer) (*zap.Logger, func() error, error) {
	lvl, err := conf.level()
	if err != nil {
		return nil, nil, err
	}

	var consoleEncoder zapcore.Encoder
	if conf.Development {
		consoleConfig := zap.NewDevelopmentEncoderConfig()
		consoleConfig.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(consoleConfig)
	} else {
		consoleEncoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	}
	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.AddSync(console), lvl),
	}

	closeFn := func() error { return nil }
	if conf.File != "" {
		lj := &lumberjack.Logger{
			Filename:   conf.File,
			MaxSize:    orDefault(conf.MaxSizeMB, DefaultConfig.MaxSizeMB),
			MaxBackups: orDefault(conf.MaxBackups, DefaultConfig.MaxBackups),
			MaxAge:     orDefault(conf.MaxAgeDays, DefaultConfig.MaxAgeDays),
			Compress:   true,
		}
		fileEncoder := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		cores = append(cores, zapcore.NewCore(fileEncoder, zapcore.AddSync(lj), lvl))
		closeFn = lj.Close
	}

	log := zap.New(zapcore.NewTee(cores...),
		zap.AddCaller(),
		zap.AddStacktrace(zap.ErrorLevel))
	return log, func() error {
		log.Sync()
		return closeFn()
	}, nil
}

func orDefault(v, def int) int {
	if v > 0 {
		return v
	}
	return def
}
