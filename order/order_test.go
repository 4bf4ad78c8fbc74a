// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package order

import (
	"testing"

	"github.com/fluteproof/flu/term"
)

const (
	predP = 100
	predQ = 101
)

func TestCompareArity(t *testing.T) {
	small := term.NewLiteral(0, true, predP, term.Var(0))
	big := term.NewLiteral(1, true, predP, term.Var(0), term.Var(1))
	if Compare(small, big) != Less {
		t.Errorf("lower arity should compare less")
	}
	if Compare(big, small) != Greater {
		t.Errorf("higher arity should compare greater")
	}
}

func TestCompareNullaryPolarityTieBreak(t *testing.T) {
	pos := term.NewLiteral(0, true, predP)
	neg := term.NewLiteral(1, false, predP)
	if Compare(neg, pos) != Greater {
		t.Errorf("negative should outrank positive on the same nullary functor")
	}
}

func TestCompareGroundnessDisagreementIncomparable(t *testing.T) {
	varLit := term.NewLiteral(0, true, predP, term.Var(0))
	groundLit := term.NewLiteral(1, true, predP, term.Func(5))
	if Compare(varLit, groundLit) != Incomparable {
		t.Errorf("groundness disagreement should be incomparable")
	}
}

func TestCompareBothRightmostVariablesIncomparable(t *testing.T) {
	a := term.NewLiteral(0, true, predP, term.Var(0))
	b := term.NewLiteral(1, true, predQ, term.Var(1))
	if Compare(a, b) != Incomparable {
		t.Errorf("two literals with variable rightmost arguments should be incomparable")
	}
}

func TestCompareVariableRightmostIsSmaller(t *testing.T) {
	varRight := term.NewLiteral(0, true, predP, term.Var(0))
	funcRight := term.NewLiteral(1, true, predP, term.Func(5))
	if Compare(varRight, funcRight) != Less {
		t.Errorf("variable rightmost should compare less than a functional rightmost")
	}
}

func TestCompareSuperterm(t *testing.T) {
	fn := 5
	inner := term.Func(fn)
	outer := term.Func(fn, inner)
	small := term.NewLiteral(0, true, predP, inner)
	large := term.NewLiteral(1, true, predP, outer)
	if Compare(small, large) != Less {
		t.Errorf("a literal whose rightmost is contained in the other's should be less")
	}
	if Compare(large, small) != Greater {
		t.Errorf("containment should be antisymmetric")
	}
}

func TestCompareGroundStructuralTieBreak(t *testing.T) {
	a := term.NewLiteral(0, true, predP, term.Func(3))
	b := term.NewLiteral(1, true, predP, term.Func(7))
	if Compare(a, b) != Less {
		t.Errorf("incomparable ground superterm should fall back to functor id order")
	}
}

func TestMaximalOpportunisticMarking(t *testing.T) {
	fn := 5
	small := term.NewLiteral(0, true, predP, term.Func(fn))
	large := term.NewLiteral(1, true, predP, term.Func(fn, term.Func(fn)))
	c := term.NewClause(1, small, large)

	if !Maximal(c, large) {
		t.Errorf("the containing literal should be maximal")
	}
	// Verdict for `small` should already be memoized as non-maximal by
	// the opportunistic marking during the query above.
	v, ok := c.MemoGet(small.ID())
	if !ok || v != term.VerdictNonMaximal {
		t.Errorf("expected `small` to be opportunistically marked non-maximal, got %v ok=%v", v, ok)
	}
}

func TestPolarityBreaksStructurallyEqualRightmost(t *testing.T) {
	fn := 9
	term1 := term.Func(fn)
	a := term.NewLiteral(0, true, predP, term.Func(fn, term1))
	b := term.NewLiteral(1, false, predP, term.Func(fn, term1))
	c := term.NewClause(1, a, b)
	if StrictlyMaximal(c, a) {
		t.Errorf("the positive literal should lose to the structurally-equal negative one")
	}
	if !StrictlyMaximal(c, b) {
		t.Errorf("the negative literal should be strictly maximal")
	}
}
