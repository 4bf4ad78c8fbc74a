// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package xo

import (
	"testing"

	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/term"
)

const predP = 1

type identitySub struct{}

func (identitySub) ApplyToQuery(l term.Literal) term.Literal  { return l }
func (identitySub) ApplyToResult(l term.Literal) term.Literal { return l }

type plainUnifier struct {
	abstraction bool
	constraints []term.Literal
}

func (u plainUnifier) UsesAbstraction() bool             { return u.abstraction }
func (u plainUnifier) ConstraintLiterals() []term.Literal { return u.constraints }

type fakeIndex struct {
	candidates []inter.Candidate
}

func (f *fakeIndex) Query(l term.Literal, positive bool) []inter.Candidate {
	return f.candidates
}

type fakeColor struct{ compatible bool }

func (f fakeColor) Compatible(a, b *term.Clause) bool { return f.compatible }

func buildPair(t *testing.T) (premise, result *term.Clause, id func() int) {
	t.Helper()
	a := term.Func(7)
	premise = term.NewClause(0, term.NewLiteral(0, true, predP, term.Var(0)))
	premise.Store = term.Active
	result = term.NewClause(1, term.NewLiteral(0, false, predP, a))
	result.Store = term.Active

	next := 100
	id = func() int { id := next; next++; return id }
	return premise, result, id
}

func TestGenerateClausesProducesEmptyClauseOnFullResolution(t *testing.T) {
	premise, result, nextID := buildPair(t)
	cand := inter.Candidate{
		Clause:       result,
		Literal:      result.Lits[0],
		Substitution: identitySub{},
		Unifier:      plainUnifier{},
	}
	e := &Engine{Index: &fakeIndex{candidates: []inter.Candidate{cand}}, NextID: nextID}

	out := e.GenerateClauses(premise)
	if len(out) != 1 {
		t.Fatalf("expected one conclusion, got %d", len(out))
	}
	c := out[0]
	if len(c.Lits) != 0 {
		t.Errorf("expected the empty clause, got %d literals", len(c.Lits))
	}
	if c.Inference.Rule != term.RuleResolution {
		t.Errorf("expected RuleResolution, got %v", c.Inference.Rule)
	}
	if len(c.Inference.Parents) != 2 || c.Inference.Parents[0] != premise.ID || c.Inference.Parents[1] != result.ID {
		t.Errorf("expected parents [%d %d], got %v", premise.ID, result.ID, c.Inference.Parents)
	}
	if e.Stats.Derived != 1 {
		t.Errorf("expected Derived stat incremented, got %d", e.Stats.Derived)
	}
}

func TestGenerateClauseSkipsColorIncompatiblePair(t *testing.T) {
	premise, result, nextID := buildPair(t)
	cand := inter.Candidate{
		Clause:       result,
		Literal:      result.Lits[0],
		Substitution: identitySub{},
		Unifier:      plainUnifier{},
	}
	e := &Engine{
		Index:  &fakeIndex{candidates: []inter.Candidate{cand}},
		NextID: nextID,
		Color:  fakeColor{compatible: false},
	}

	out := e.GenerateClauses(premise)
	if len(out) != 0 {
		t.Errorf("expected no conclusions from a color-incompatible pair, got %d", len(out))
	}
	if e.Stats.SkippedColor != 1 {
		t.Errorf("expected SkippedColor incremented, got %d", e.Stats.SkippedColor)
	}
}

func TestGenerateClauseSkipsInactiveResult(t *testing.T) {
	premise, result, nextID := buildPair(t)
	result.Store = term.Passive
	cand := inter.Candidate{
		Clause:       result,
		Literal:      result.Lits[0],
		Substitution: identitySub{},
		Unifier:      plainUnifier{},
	}
	e := &Engine{Index: &fakeIndex{candidates: []inter.Candidate{cand}}, NextID: nextID}

	out := e.GenerateClauses(premise)
	if len(out) != 0 {
		t.Errorf("expected no conclusions when the result clause is not active, got %d", len(out))
	}
}

func TestGenerateClausesUsesConstrainedResolutionUnderAbstraction(t *testing.T) {
	premise, result, nextID := buildPair(t)
	constraint := term.NewLiteral(9, true, 5, term.Var(0))
	cand := inter.Candidate{
		Clause:       result,
		Literal:      result.Lits[0],
		Substitution: identitySub{},
		Unifier:      plainUnifier{abstraction: true, constraints: []term.Literal{constraint}},
	}
	e := &Engine{Index: &fakeIndex{candidates: []inter.Candidate{cand}}, NextID: nextID}

	out := e.GenerateClauses(premise)
	if len(out) != 1 {
		t.Fatalf("expected one conclusion, got %d", len(out))
	}
	c := out[0]
	if c.Inference.Rule != term.RuleConstrainedResolution {
		t.Errorf("expected RuleConstrainedResolution, got %v", c.Inference.Rule)
	}
	if len(c.Lits) != 1 || !c.Lits[0].Equal(constraint) {
		t.Errorf("expected the constraint literal to survive into the conclusion, got %v", c.Lits)
	}
}
