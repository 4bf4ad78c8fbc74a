// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"bytes"
	"context"
	"testing"

	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/internal/obslog"
)

func testEnv() *flu.Env {
	return flu.NewEnv(inter.NewMemSignature(0), flu.Options{Debug: false}, obslog.Noop())
}

func TestRunGeneratedSuiteNoMismatches(t *testing.T) {
	suite := GeneratedSuite(7)
	if len(suite) == 0 {
		t.Fatal("expected a non-empty generated suite")
	}
	env := testEnv()
	sig := inter.NewMemSignature(0)
	results, err := Run(context.Background(), env, sig, suite, 4)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(results) != len(suite) {
		t.Fatalf("expected %d results, got %d", len(suite), len(results))
	}
	for _, r := range results {
		if r.Mismatch {
			t.Errorf("case %s: unexpected classification mismatch", r.Case)
		}
	}
}

func TestRunSequentialMatchesConcurrent(t *testing.T) {
	suite := GeneratedSuite(7)
	env := testEnv()
	sig := inter.NewMemSignature(0)

	seq, err := Run(context.Background(), env, sig, suite, 1)
	if err != nil {
		t.Fatalf("Run(workers=1): %v", err)
	}
	par, err := Run(context.Background(), env, sig, suite, 8)
	if err != nil {
		t.Fatalf("Run(workers=8): %v", err)
	}
	for i := range seq {
		if seq[i].Case != par[i].Case || seq[i].ClausesFluted != par[i].ClausesFluted {
			t.Errorf("case %d: sequential and concurrent runs disagree", i)
		}
	}
}

func TestWriteReport(t *testing.T) {
	results := []Result{
		{Case: "a", Separated: 1, Resolvents: 2},
		{Case: "b", Mismatch: true},
	}
	var buf bytes.Buffer
	WriteReport(&buf, results)
	out := buf.String()
	if len(out) == 0 {
		t.Fatal("expected non-empty report")
	}
}

func TestSummarizeCountsMismatches(t *testing.T) {
	results := []Result{
		{Mismatch: true},
		{Mismatch: false},
		{Mismatch: true},
	}
	s := Summarize(results)
	if s.Mismatches != 2 {
		t.Errorf("expected 2 mismatches, got %d", s.Mismatches)
	}
	if s.Cases != 3 {
		t.Errorf("expected 3 cases, got %d", s.Cases)
	}
}
