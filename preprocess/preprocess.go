// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package preprocess implements the definitional rewrite that keeps a
// formula's fluted-violating subformulas out of the clause set entirely:
// every quantifier boundary is replaced by an invocation of a fresh
// auxiliary predicate whose defining axiom, shaped by the subformula's
// polarity, is pushed into the problem as its own unit. NNF, flattening,
// skolemization, and clausification run afterward, outside this package.
package preprocess

import (
	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/term"
)

// rewriter holds the per-call memo and the running literal-id counter for
// freshly minted atoms; both are exclusively owned by one Run call.
type rewriter struct {
	env    *flu.Env
	prob   inter.Problem
	memo   map[term.Formula]term.Formula
	nextID int
}

// Run rewrites unit's formula under top-level polarity POS, pushing any
// definition units the rewrite needs into prob, and returns the
// (possibly definitionally-replaced) top-level formula.
func Run(env *flu.Env, prob inter.Problem, unit inter.Unit) term.Formula {
	r := &rewriter{env: env, prob: prob, memo: make(map[term.Formula]term.Formula)}
	return r.rewrite(unit.Formula(), POS, unit.ID())
}

func (r *rewriter) freshLitID() int {
	id := r.nextID
	r.nextID++
	return id
}

func (r *rewriter) rewrite(f term.Formula, p Polarity, parent int) term.Formula {
	if cached, ok := r.memo[f]; ok {
		return cached
	}
	var out term.Formula
	switch f.Kind() {
	case term.FORALL, term.EXISTS:
		out = r.rewriteQuantifier(f, p, parent)
	case term.IFF, term.XOR:
		children := f.Children()
		left := r.rewrite(children[0], NEU, parent)
		right := r.rewrite(children[1], NEU, parent)
		out = term.Binary(f.Kind(), left, right)
	case term.IMP:
		children := f.Children()
		left := r.rewrite(children[0], p.Flip(), parent)
		right := r.rewrite(children[1], p, parent)
		out = term.Binary(term.IMP, left, right)
	case term.NOT:
		out = term.Not(r.rewrite(f.Children()[0], p.Flip(), parent))
	case term.AND, term.OR:
		children := f.Children()
		rewritten := make([]term.Formula, len(children))
		for i, c := range children {
			rewritten[i] = r.rewrite(c, p, parent)
		}
		out = term.NAry(f.Kind(), rewritten...)
	default:
		// Atoms and boolean constants pass through unchanged.
		out = f
	}
	r.memo[f] = out
	return out
}

// rewriteQuantifier normalizes a (possibly vector) quantifier into a
// chain of single-variable quantifiers over the recursively rewritten
// innermost body, then axiomatizes the whole rebuilt chain.
func (r *rewriter) rewriteQuantifier(f term.Formula, p Polarity, parent int) term.Formula {
	vars := f.BoundVars()
	body := f.Children()[0]
	rewrittenBody := r.rewrite(body, p, parent)

	chain := rewrittenBody
	for i := len(vars) - 1; i >= 0; i-- {
		chain = term.Quantified(f.Kind(), []int{vars[i]}, chain)
	}
	return r.axiomatize(chain, p, parent)
}

// axiomatize mints a fresh predicate over f's free variables, pushes its
// defining axiom (shaped by p) into the problem, and returns the atom
// invoking it as f's replacement.
func (r *rewriter) axiomatize(f term.Formula, p Polarity, parent int) term.Formula {
	free := freeVars(f)
	predID := r.env.Sig.AddFreshPredicate(len(free), r.env.Opts.FreshPrefix)

	args := make([]term.Term, len(free))
	for i, v := range free {
		args[i] = term.Var(v)
	}
	atom := term.LitFormula(term.NewLiteral(r.freshLitID(), true, predID, args...))

	var body term.Formula
	switch p {
	case POS:
		body = term.Binary(term.IMP, atom, f)
	case NEG:
		body = term.Binary(term.IMP, f, atom)
	default: // NEU
		body = term.NAry(term.AND,
			term.Binary(term.IMP, atom, f),
			term.Binary(term.IMP, f, atom))
	}
	def := universalClose(free, body)
	r.prob.Insert(def, parent)
	r.env.Debugw("definitional axiom introduced", "predicate", predID, "arity", len(free), "polarity", p.String())

	return atom
}

// universalClose wraps body in a single FORALL over vars. Order among
// the closed-over variables is immaterial to the axiom's meaning.
func universalClose(vars []int, body term.Formula) term.Formula {
	if len(vars) == 0 {
		return body
	}
	return term.Quantified(term.FORALL, vars, body)
}
