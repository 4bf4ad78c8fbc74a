// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package flu is the fluted fragment pipeline's public façade, the
// counterpart to this pipeline's SAT-solving ancestor's root gini package
// (which wraps its internal/xo.S CDCL solver behind a small
// New()/Add()/Solve() surface). Env replaces implicit globals
// (a package-level signature, options, and statistics): every pipeline
// call takes an explicit *Env instead of reading package-level state.
package flu

import (
	"time"

	"go.uber.org/zap"

	"github.com/fluteproof/flu/inter"
)

// Options is the CLI/config surface: the single mode flag that selects
// fluted mode, a debug flag for verbose classification tracing, and the
// fresh-predicate naming prefix used by the definitional preprocessor.
type Options struct {
	// FlutedMode records whether fluted mode is selected. No package in
	// this module reads it: the check and solve commands always run the
	// fluted classifiers and report "not fluted" for a problem outside the
	// fragment rather than aborting.
	FlutedMode bool
	// Debug enables verbose classification tracing.
	Debug bool
	// FreshPrefix is prepended to fresh predicate names minted by the
	// definitional preprocessor. Defaults to "fl".
	FreshPrefix string
	// Timeout bounds a single pipeline invocation; zero means no bound.
	Timeout time.Duration
}

// DefaultOptions returns the zero-configuration Options: fluted mode on,
// debug tracing off, the "fl" fresh prefix, no timeout.
func DefaultOptions() Options {
	return Options{FlutedMode: true, FreshPrefix: "fl"}
}

// Env is the explicit environment threaded by reference through every
// pipeline call: the host's signature table, the resolved options, a
// statistics sink, and a structured logger. No pipeline package reads
// any package-level global; everything comes from Env.
type Env struct {
	Sig   inter.Signature
	Opts  Options
	Stats *inter.Statistics
	Log   *zap.SugaredLogger
}

// NewEnv builds an Env from a signature and options, with a fresh
// Statistics sink and the given logger.
func NewEnv(sig inter.Signature, opts Options, log *zap.SugaredLogger) *Env {
	return &Env{Sig: sig, Opts: opts, Stats: &inter.Statistics{}, Log: log}
}

// Debugw logs at debug level only when Opts.Debug is set: silent by
// default, verbose on request.
func (e *Env) Debugw(msg string, kv ...interface{}) {
	if e.Log == nil || !e.Opts.Debug {
		return
	}
	e.Log.Debugw(msg, kv...)
}
