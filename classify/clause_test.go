// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package classify

import (
	"testing"

	"github.com/fluteproof/flu/term"
)

const (
	predP = 100
	predQ = 101
)

func lit(id int, positive bool, pred int, args ...term.Term) term.Literal {
	return term.NewLiteral(id, positive, pred, args...)
}

// S1: P(x,y) ∨ ¬Q(x,y) — FL1.
func TestClauseS1FL1(t *testing.T) {
	c := term.NewClause(1,
		lit(0, true, predP, term.Var(1), term.Var(0)),
		lit(1, false, predQ, term.Var(1), term.Var(0)))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("S1 should be FL1-accepted")
	}
}

// S2: P(x,y) ∨ ¬Q(y,z) renumbered so rightmost vars differ by more than
// one — rejected.
func TestClauseS2Rejected(t *testing.T) {
	c := term.NewClause(1,
		lit(0, true, predP, term.Var(3), term.Var(2)),
		lit(1, false, predQ, term.Var(1), term.Var(0)))
	if clauseFluted(testEnv(), c) {
		t.Errorf("S2 should be rejected (rightmost vars differ by more than one)")
	}
}

// S3: P(x) ∨ Q(x,y) — FL3, ranges overlap at 0.
func TestClauseS3FL3(t *testing.T) {
	// P(x) with x=var(1), Q(x,y) with x=var(1), y=var(0): P's rightmost
	// (var(1)) and Q's rightmost (var(0)) differ by exactly one.
	c := term.NewClause(1,
		lit(0, true, predP, term.Var(1)),
		lit(1, true, predQ, term.Var(1), term.Var(0)))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("S3 should be FL3-accepted")
	}
}

// S3b: P(x2, x0) ∨ Q(x1) — rejected. P's own argument list is not
// internally contiguous (x2 then x0 skips x1), even though P and Q's
// rightmost variables (0 and 1) differ by exactly one and so route the
// clause into the FL3 path, where the cross-literal check alone would
// let it through.
func TestClauseS3bFL3RejectsInternalGap(t *testing.T) {
	c := term.NewClause(1,
		lit(0, true, predP, term.Var(2), term.Var(0)),
		lit(1, true, predQ, term.Var(1)))
	if clauseFluted(testEnv(), c) {
		t.Errorf("S3b should be rejected: P's own arguments are not contiguous")
	}
}

// S5: P(f(x), x) ∨ Q(x) — FL2 accepted.
func TestClauseS5FL2(t *testing.T) {
	fn := 200
	c := term.NewClause(1,
		lit(0, true, predP, term.Func(fn, term.Var(0)), term.Var(0)),
		lit(1, true, predQ, term.Var(0)))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("S5 should be FL2-accepted")
	}
}

func TestClauseEqualityAlwaysRejects(t *testing.T) {
	c := term.NewClause(1,
		lit(0, true, term.EqualityFunctor, term.Var(0), term.Var(0)))
	if clauseFluted(testEnv(), c) {
		t.Errorf("equality literal should always reject")
	}
}

func TestClauseSingleLiteralAcceptsIffFluted(t *testing.T) {
	fluted := term.NewClause(1, lit(0, true, predP, term.Var(0)))
	if !clauseFluted(testEnv(), fluted) {
		t.Errorf("single fluted literal should be accepted")
	}
	notFluted := term.NewClause(2, lit(0, true, term.EqualityFunctor, term.Var(0), term.Var(0)))
	if clauseFluted(testEnv(), notFluted) {
		t.Errorf("single non-fluted literal should be rejected")
	}
}

func TestClauseAllNullaryAccepted(t *testing.T) {
	c := term.NewClause(1, lit(0, true, predP), lit(1, false, predQ))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("all-nullary clause should be trivially accepted")
	}
}

// Nested functional arguments under distinct functors: P(h(y0), f(x0),
// x1). h(y0) and f(x0) each bottom out at variable 0 while the
// predicate's own rightmost argument is variable 1 — accepted FL2, with
// the walk under each functor constrained against, and reporting back,
// the outer variable 1.
func TestClauseFL2AcceptsNestedFunctional(t *testing.T) {
	fnF, fnH := 200, 201
	c := term.NewClause(1,
		lit(0, true, predP,
			term.Func(fnH, term.Var(0)),
			term.Func(fnF, term.Var(0)),
			term.Var(1)))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("nested functional arguments should be FL2-accepted")
	}
}

func TestClauseFL1AcceptsIncompleteRun(t *testing.T) {
	// Every literal's rightmost var is 3, none reach var 0 at all — FL1
	// has no completeness gate on the shared rightmost variable, so
	// this clause is still accepted.
	c := term.NewClause(1, lit(0, true, predP, term.Var(3)))
	if !clauseFluted(testEnv(), c) {
		t.Errorf("FL1 run not reaching variable 0 should still be accepted")
	}
}
