// SPDX-License-Identifier: MIT

// Package logging builds the zap loggers used by the thermsim command.
package logging

import (
	"fmt"
	"io"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Config selects the logger flavour.
type Config struct {
	// Level is a zap level name: debug, info, warn, error.
	Level string
	// Development switches to the console encoder with caller info and
	// stack traces from warn upwards.
	Development bool
}

// New returns a logger writing to w: JSON with the production encoder, or
// human-readable console output in development mode.
func New(cfg Config, w io.Writer) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}

	sink := zapcore.AddSync(w)
	if !cfg.Development {
		enc := zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
		return zap.New(zapcore.NewCore(enc, sink, level)), nil
	}

	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	return zap.New(zapcore.NewCore(enc, sink, level),
		zap.Development(),
		zap.AddCaller(),
		zap.AddStacktrace(zapcore.WarnLevel),
	), nil
}
