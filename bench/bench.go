// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package bench runs generated corpora through the fluted pipeline's
// classification, preprocessing, separation, ordering, and resolution
// stages and reports per-case timing and outcomes, the generalization
// of the teacher's bench package (Suite/instrun.go) from spawning and
// timing external solver processes to driving this pipeline's stages
// in-process.
package bench

import (
	"time"

	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/classify"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/internal/xo"
	"github.com/fluteproof/flu/order"
	"github.com/fluteproof/flu/preprocess"
	"github.com/fluteproof/flu/separate"
	"github.com/fluteproof/flu/term"
)

// Case is one generated problem: a set of quantified formula units to
// run through the formula classifier and preprocessor, plus a set of
// clauses to run through the clause classifier, separator, ordering,
// and resolution engine. Either half may be empty when a case targets
// only the formula or only the clause stages.
type Case struct {
	Name    string
	Units   []term.Formula
	Clauses []*term.Clause
	// WantFluted records the corpus author's expectation, so Run can
	// report a mismatch instead of just an outcome.
	WantFluted bool
}

// Result is one case's outcome: which stages ran, what they decided,
// and how long the whole case took.
type Result struct {
	Case              string
	FormulasFluted    bool
	ClausesFluted     bool
	PreprocessedUnits int
	Separated         int
	MaximalLiterals   int
	Resolvents        int
	Mismatch          bool
	Duration          time.Duration
}

// runCase drives one case through every stage, single-threaded: the
// corpus sweep's concurrency lives in Run, never inside a case.
func runCase(env *flu.Env, sig inter.Signature, c Case) Result {
	start := time.Now()
	res := Result{Case: c.Name}

	if len(c.Units) > 0 {
		p := inter.NewMemProblem()
		for _, u := range c.Units {
			p.Insert(u, -1)
		}
		res.FormulasFluted = classify.Formulas(env, p)
		for _, u := range p.Units() {
			preprocess.Run(env, p, u)
			res.PreprocessedUnits++
		}
	}

	if len(c.Clauses) > 0 {
		res.ClausesFluted = classify.Clauses(env, c.Clauses)

		nextID := 100000
		alloc := func() int { id := nextID; nextID++; return id }
		for _, cl := range c.Clauses {
			if _, _, ok := separate.Split(cl, sig, alloc); ok {
				res.Separated++
			}
			for _, l := range cl.Lits {
				if order.Maximal(cl, l) {
					res.MaximalLiterals++
				}
			}
		}

		res.Resolvents = resolveCorpus(c.Clauses)
	}

	if len(c.Units) > 0 && res.FormulasFluted != c.WantFluted {
		res.Mismatch = true
	}
	if len(c.Clauses) > 0 && res.ClausesFluted != c.WantFluted {
		res.Mismatch = true
	}
	res.Duration = time.Since(start)
	return res
}

// resolveCorpus runs the clauses' active literals against every other
// clause through the resolution engine's mechanical pipeline, using a
// literal-identity index rather than a full unification engine (out of
// scope per §5): it only produces candidates for syntactically
// identical, oppositely-signed literals, enough to exercise
// GenerateClauses's admission and assembly logic across a corpus.
func resolveCorpus(clauses []*term.Clause) int {
	active := make([]*term.Clause, len(clauses))
	for i, c := range clauses {
		dup := term.Derived(c.ID, c.Inference.Rule, c.Inference.Parents, c.Lits...)
		dup.Store = term.Active
		dup.Age = c.Age
		active[i] = dup
	}
	idx := &identityIndex{clauses: active}
	nextID := 900000
	eng := &xo.Engine{
		Index:  idx,
		NextID: func() int { id := nextID; nextID++; return id },
	}
	eng.Attach(idx)

	total := 0
	for _, c := range active {
		total += len(eng.GenerateClauses(c))
	}
	return total
}

// identityIndex answers Query by literal-equality-modulo-polarity: a
// bench-only stand-in for the host's unification-with-abstraction
// index, since the corpus's synthetic clauses are built from shared
// argument shapes and don't need real unification to find complements.
type identityIndex struct {
	clauses []*term.Clause
}

func (idx *identityIndex) Query(l term.Literal, positive bool) []inter.Candidate {
	var out []inter.Candidate
	for _, c := range idx.clauses {
		for _, m := range c.Lits {
			if m.Polarity() != positive {
				continue
			}
			if !sameShape(l, m) {
				continue
			}
			out = append(out, inter.Candidate{
				Clause:       c,
				Literal:      m,
				Substitution: identitySub{},
				Unifier:      identityUnifier{},
			})
		}
	}
	return out
}

func sameShape(a, b term.Literal) bool {
	if a.FunctorID() != b.FunctorID() || a.Arity() != b.Arity() {
		return false
	}
	for i := 0; i < a.Arity(); i++ {
		if !a.NthArg(i).Equal(b.NthArg(i)) {
			return false
		}
	}
	return true
}

type identitySub struct{}

func (identitySub) ApplyToQuery(l term.Literal) term.Literal  { return l }
func (identitySub) ApplyToResult(l term.Literal) term.Literal { return l }

type identityUnifier struct{}

func (identityUnifier) UsesAbstraction() bool              { return false }
func (identityUnifier) ConstraintLiterals() []term.Literal { return nil }
