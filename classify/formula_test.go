// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package classify

import (
	"testing"

	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/internal/obslog"
	"github.com/fluteproof/flu/term"
)

func testEnv() *flu.Env {
	return flu.NewEnv(inter.NewMemSignature(0), flu.Options{Debug: false}, obslog.Noop())
}

// forallXY builds ∀x.∀y. body with x bound outermost, y innermost — the
// outer-variable stack seen by body is [x, y].
func forallXY(x, y int, body term.Formula) term.Formula {
	return term.Quantified(term.FORALL, []int{x},
		term.Quantified(term.FORALL, []int{y}, body))
}

func TestFormulasAcceptsAlignedLiteral(t *testing.T) {
	// P(x,y): rightmost arg y matches innermost bound var, then x
	// matches the next stack position — a fluted alignment.
	p := term.LitFormula(term.NewLiteral(0, true, 10, term.Var(1), term.Var(2)))
	f := forallXY(1, 2, p)
	prob := inter.NewMemProblem(term.NewUnit(0, f))
	if !Formulas(testEnv(), prob) {
		t.Errorf("expected aligned literal to be accepted")
	}
}

func TestFormulasRejectsFunctionalArgument(t *testing.T) {
	p := term.LitFormula(term.NewLiteral(0, true, 10, term.Func(5), term.Var(2)))
	f := forallXY(1, 2, p)
	prob := inter.NewMemProblem(term.NewUnit(0, f))
	if Formulas(testEnv(), prob) {
		t.Errorf("expected functional argument to be rejected")
	}
}

func TestFormulasRejectsEquality(t *testing.T) {
	p := term.LitFormula(term.NewLiteral(0, true, term.EqualityFunctor, term.Var(1), term.Var(2)))
	f := forallXY(1, 2, p)
	prob := inter.NewMemProblem(term.NewUnit(0, f))
	if Formulas(testEnv(), prob) {
		t.Errorf("expected equality literal to be rejected")
	}
}

func TestFormulasRejectsInconsistentPermutation(t *testing.T) {
	pred := 10
	lit1 := term.LitFormula(term.NewLiteral(0, true, pred, term.Var(1), term.Var(2)))
	// P(x2, x2) aligns on its own (x2 matches the stack top, the left x2
	// recurs to its right), but records permutation 1,1 against the
	// first unit's 0,1.
	lit2 := term.LitFormula(term.NewLiteral(1, true, pred, term.Var(2), term.Var(2)))
	f1 := forallXY(1, 2, lit1)
	f2 := forallXY(1, 2, lit2)
	prob := inter.NewMemProblem(term.NewUnit(0, f1), term.NewUnit(1, f2))
	if Formulas(testEnv(), prob) {
		t.Errorf("expected inconsistent per-predicate permutation to be rejected")
	}
}

func TestFormulasAcceptsConnectives(t *testing.T) {
	p := term.LitFormula(term.NewLiteral(0, true, 10, term.Var(1), term.Var(2)))
	q := term.LitFormula(term.NewLiteral(1, false, 11, term.Var(1), term.Var(2)))
	body := term.NAry(term.OR, p, term.Not(q))
	f := forallXY(1, 2, body)
	prob := inter.NewMemProblem(term.NewUnit(0, f))
	if !Formulas(testEnv(), prob) {
		t.Errorf("expected disjunction/negation of aligned literals to be accepted")
	}
}
