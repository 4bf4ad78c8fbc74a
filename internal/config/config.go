// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package config binds the fluted CLI's cobra flags into the pipeline's
// Options struct, following cmd/gini/main.go's flag-collection idiom but
// through cobra's flag.FlagSet-compatible pflag registration instead of
// the standard library's flag package.
package config

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/fluteproof/flu"
)

// Flags holds the raw flag destinations bound by Register; Resolve turns
// them into a flu.Options once cobra has parsed argv.
type Flags struct {
	Fluted      bool
	Debug       bool
	FreshPrefix string
	Timeout     time.Duration
	Stats       bool
	EmitTrace   bool
}

// Register binds every fluted CLI flag onto fs.
func Register(fs *pflag.FlagSet) *Flags {
	f := &Flags{}
	fs.BoolVar(&f.Fluted, "fluted", true, "select fluted mode (recorded in Options.FlutedMode; the commands always run the fluted classifiers)")
	fs.BoolVar(&f.Debug, "debug", false, "enable verbose classification tracing")
	fs.StringVar(&f.FreshPrefix, "fresh-prefix", "fl", "prefix for fresh predicates minted by definitional preprocessing")
	fs.DurationVar(&f.Timeout, "timeout", 0, "bound a single pipeline invocation (0 = unbounded)")
	fs.BoolVar(&f.Stats, "stats", false, "print pipeline statistics after running")
	fs.BoolVar(&f.EmitTrace, "emit-trace", false, "stream a classification trace over the crisp wire protocol")
	return f
}

// Resolve builds a flu.Options from parsed flags.
func (f *Flags) Resolve() flu.Options {
	return flu.Options{
		FlutedMode:  f.Fluted,
		Debug:       f.Debug,
		FreshPrefix: f.FreshPrefix,
		Timeout:     f.Timeout,
	}
}
