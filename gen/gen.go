// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package gen generates synthetic fluted and deliberately non-fluted
// first-order problems: formula-level quantifier chains for the
// formula classifier, and clause shapes exercising each of FL1/FL2/FL3
// and both separable and inseparable variable ranges, for use by tests
// and the bench package's corpus sweeps.
package gen

import (
	"math/rand"
	"sync"

	"github.com/fluteproof/flu/term"
)

// rng is a package-level seedable source, the same pattern the
// teacher's Rand3Cnf/BinCycle generators used for reproducible random
// problems.
var (
	mu  sync.Mutex
	rng = rand.New(rand.NewSource(33))
)

// Seed reseeds the package-level generator for reproducible test runs.
func Seed(s int64) {
	mu.Lock()
	defer mu.Unlock()
	rng = rand.New(rand.NewSource(s))
}

func randIntn(n int) int {
	mu.Lock()
	defer mu.Unlock()
	return rng.Intn(n)
}

// Generator mints fresh, non-colliding predicate, functor, literal,
// and clause ids for one synthetic problem, so successive calls never
// accidentally alias symbols the way two independent package-level
// counters could.
type Generator struct {
	nextPred, nextFunc, nextLit, nextClause int
}

// New builds a Generator whose ids start at base (useful for keeping
// several generated problems' symbol spaces disjoint within one run).
func New(base int) *Generator {
	return &Generator{nextPred: base, nextFunc: base, nextLit: base, nextClause: base}
}

func (g *Generator) pred() int {
	p := g.nextPred
	g.nextPred++
	return p
}

func (g *Generator) functor() int {
	f := g.nextFunc
	g.nextFunc++
	return f
}

func (g *Generator) lit() int {
	l := g.nextLit
	g.nextLit++
	return l
}

func (g *Generator) clauseID() int {
	c := g.nextClause
	g.nextClause++
	return c
}

// varRun returns the variables from..to inclusive, descending: the
// suffix-of-a-shared-sequence argument shape every fluted literal uses.
func varRun(from, to int) []term.Term {
	if from < to {
		return nil
	}
	args := make([]term.Term, 0, from-to+1)
	for v := from; v >= to; v-- {
		args = append(args, term.Var(v))
	}
	return args
}

// FlutedChain builds `forall x_{n-1} ... forall x0. P_{n-1}(x_{n-1},...,x0)
// & ... & P0(x0)`: a nested quantifier prefix over n variables wrapping
// a conjunction of literals whose argument lists are all suffixes of
// the same variable sequence, sharing rightmost variable 0 throughout
// — trivially fluted at both the formula and clause level.
func (g *Generator) FlutedChain(n int) term.Formula {
	conjuncts := make([]term.Formula, n)
	for i := 0; i < n; i++ {
		lit := term.NewLiteral(g.lit(), true, g.pred(), varRun(i, 0)...)
		conjuncts[i] = term.LitFormula(lit)
	}
	return g.closeOver(n, term.NAry(term.AND, conjuncts...))
}

// NonFlutedChain builds the same shape as FlutedChain but scrambles one
// literal's argument order, breaking the suffix discipline: the
// classifier must reject it.
func (g *Generator) NonFlutedChain(n int) term.Formula {
	if n < 2 {
		n = 2
	}
	conjuncts := make([]term.Formula, n)
	for i := 0; i < n; i++ {
		args := varRun(i, 0)
		if i == n-1 && len(args) > 1 {
			args[0], args[1] = args[1], args[0] // break the suffix ordering
		}
		lit := term.NewLiteral(g.lit(), true, g.pred(), args...)
		conjuncts[i] = term.LitFormula(lit)
	}
	return g.closeOver(n, term.NAry(term.AND, conjuncts...))
}

func (g *Generator) closeOver(n int, body term.Formula) term.Formula {
	f := body
	for v := 0; v < n; v++ {
		f = term.Quantified(term.FORALL, []int{v}, f)
	}
	return f
}

// FL1Clause builds a clause of n literals, each a variable-only atom
// over a descending suffix of variables 0..n-1, all sharing rightmost
// variable 0: the FL1 sub-form (§4.4).
func (g *Generator) FL1Clause(n int) *term.Clause {
	lits := make([]term.Literal, n)
	for i := 0; i < n; i++ {
		positive := randIntn(2) == 0
		lits[i] = term.NewLiteral(g.lit(), positive, g.pred(), varRun(i, 0)...)
	}
	return term.NewClause(g.clauseID(), lits...)
}

// FL2Clause builds an n-literal clause in the shape of P(f(x0), x0) ∨
// Q1(x0) ∨ ... ∨ Qn-1(x0): one literal carries a functional argument
// wrapping the same variable its own rightmost argument holds, the
// rest are plain atoms over that variable — the FL2 sub-form.
func (g *Generator) FL2Clause(n int) *term.Clause {
	if n < 1 {
		n = 1
	}
	fn := term.Func(g.functor(), term.Var(0))
	lits := make([]term.Literal, n)
	lits[0] = term.NewLiteral(g.lit(), true, g.pred(), fn, term.Var(0))
	for i := 1; i < n; i++ {
		lits[i] = term.NewLiteral(g.lit(), true, g.pred(), term.Var(0))
	}
	return term.NewClause(g.clauseID(), lits...)
}

// FL3Clause builds a clause of n unary literals split across exactly
// two adjacent rightmost-variable groups (0 and 1): the FL3 sub-form
// tolerates one such gap clause-wide, no more.
func (g *Generator) FL3Clause(n int) *term.Clause {
	if n < 2 {
		n = 2
	}
	lits := make([]term.Literal, n)
	lits[0] = term.NewLiteral(g.lit(), true, g.pred(), term.Var(0))
	for i := 1; i < n; i++ {
		v := 0
		if randIntn(2) == 0 {
			v = 1
		}
		positive := randIntn(2) == 0
		lits[i] = term.NewLiteral(g.lit(), positive, g.pred(), term.Var(v))
	}
	// Guarantee at least one literal reaches the second group so the
	// clause actually exercises the FL3 (rather than degenerate FL1)
	// path.
	lits[n-1] = term.NewLiteral(lits[n-1].ID(), lits[n-1].Polarity(), lits[n-1].FunctorID(), term.Var(1))
	return term.NewClause(g.clauseID(), lits...)
}

// SeparableClause builds a three-literal clause whose halves meet only
// at variable "boundary": a descending literal spanning n-1..boundary,
// an ascending literal spanning 0..boundary (pulling the low half's
// range down to variable 0), and a two-argument literal jumping
// straight from boundary to n-1 that anchors the high half. package
// separate's grouping pass puts the first two literals in one half and
// the third in the other, meeting only at the shared boundary
// variable.
func (g *Generator) SeparableClause(boundary, n int) *term.Clause {
	if boundary <= 0 || boundary >= n-1 {
		boundary = n / 2
		if boundary == 0 {
			boundary = 1
		}
	}
	descend := term.NewLiteral(g.lit(), true, g.pred(), varRun(n-1, boundary)...)
	ascend := make([]term.Term, boundary+1)
	for v := 0; v <= boundary; v++ {
		ascend[v] = term.Var(v)
	}
	up := term.NewLiteral(g.lit(), true, g.pred(), ascend...)
	jump := term.NewLiteral(g.lit(), true, g.pred(), term.Var(boundary), term.Var(n-1))
	return term.NewClause(g.clauseID(), descend, up, jump)
}

// InseparableClause builds an FL1-shaped clause (every literal shares
// the same rightmost variable): package separate must refuse to split
// it.
func (g *Generator) InseparableClause(n int) *term.Clause {
	return g.FL1Clause(n)
}
