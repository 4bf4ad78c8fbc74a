// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package obslog builds the structured logger shared by the CLI and the
// pipeline packages, following codenerd's use of go.uber.org/zap for a
// single process-wide logger constructed once at startup.
package obslog

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New builds a *zap.SugaredLogger. debug selects DebugLevel (verbose
// classification tracing); otherwise InfoLevel.
func New(debug bool) (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if debug {
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
		cfg.Development = true
		cfg.Encoding = "console"
		cfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	l, err := cfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Noop returns a logger that discards everything, used by tests and by
// library callers that don't want the pipeline to log at all.
func Noop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
