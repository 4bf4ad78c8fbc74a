// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"fmt"
	"io"
	"time"
)

// Summary aggregates a Run's results into corpus-wide totals.
type Summary struct {
	Cases       int
	Mismatches  int
	Separated   int
	Resolvents  int
	TotalTime   time.Duration
	SlowestCase string
	Slowest     time.Duration
}

// Summarize reduces results into a Summary.
func Summarize(results []Result) Summary {
	var s Summary
	s.Cases = len(results)
	for _, r := range results {
		if r.Mismatch {
			s.Mismatches++
		}
		s.Separated += r.Separated
		s.Resolvents += r.Resolvents
		s.TotalTime += r.Duration
		if r.Duration > s.Slowest {
			s.Slowest = r.Duration
			s.SlowestCase = r.Case
		}
	}
	return s
}

// WriteReport prints one line per case followed by the corpus summary,
// in the plain tabular style cmd/gini/main.go's --stats flag used for
// solver counters.
func WriteReport(w io.Writer, results []Result) {
	for _, r := range results {
		status := "ok"
		if r.Mismatch {
			status = "MISMATCH"
		}
		fmt.Fprintf(w, "%-24s %-8s separated=%-3d resolvents=%-4d maximal=%-4d %v\n",
			r.Case, status, r.Separated, r.Resolvents, r.MaximalLiterals, r.Duration)
	}
	s := Summarize(results)
	fmt.Fprintf(w, "---\ncases=%d mismatches=%d separated=%d resolvents=%d total=%v slowest=%s(%v)\n",
		s.Cases, s.Mismatches, s.Separated, s.Resolvents, s.TotalTime, s.SlowestCase, s.Slowest)
}
