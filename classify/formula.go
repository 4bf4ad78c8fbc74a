// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package classify implements the fluted fragment's two membership
// checks: Formulas, run before clausification, and Clauses, run after.
// Both are pure decision procedures over the inter contracts; neither
// owns or mutates the problem.
package classify

import (
	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/term"
	"github.com/fluteproof/flu/z"
)

// formulaWalk threads the outer-variable stack and the per-predicate
// permutation map through one Formulas() call. Both are exclusively
// owned by this instance and live only for the call's duration.
type formulaWalk struct {
	env   *flu.Env
	perms map[int]z.PermArray
	varN  int // diagnostic-only: largest stack size ever seen
}

// Formulas decides fluted membership for a set of quantified formula
// units: true iff every unit lies in the fluted fragment.
func Formulas(env *flu.Env, p inter.Problem) bool {
	w := &formulaWalk{env: env, perms: make(map[int]z.PermArray)}
	for _, u := range p.Units() {
		if !w.classify(u.Formula(), nil) {
			env.Debugw("formula rejected", "unit", u.ID())
			return false
		}
	}
	env.Debugw("formulas accepted", "max_outer_stack", w.varN)
	return true
}

func (w *formulaWalk) classify(f inter.Formula, stack []int) bool {
	switch f.Kind() {
	case term.AND, term.OR:
		for _, c := range f.Children() {
			if !w.classify(c, stack) {
				return false
			}
		}
		return true
	case term.NOT:
		return w.classify(f.Children()[0], stack)
	case term.IFF, term.XOR, term.IMP:
		for _, c := range f.Children() {
			if !w.classify(c, stack) {
				return false
			}
		}
		return true
	case term.FORALL, term.EXISTS:
		bound := f.BoundVars()
		if len(bound) == 0 {
			return w.classify(f.Children()[0], stack)
		}
		next := make([]int, 0, len(stack)+len(bound))
		next = append(next, stack...)
		next = append(next, bound...)
		if len(next) > w.varN {
			w.varN = len(next) // diagnostic only, not itself gated
		}
		return w.classify(f.Children()[0], next)
	case term.LITERAL:
		return w.flutable(f.Lit(), stack)
	case term.TRUE, term.FALSE, term.BoolTerm:
		return true
	default:
		return false
	}
}

// flutable decides flutability of a literal under the outer-variable
// stack S. Arguments must all be variables and the literal
// must not be equality. Starting from the right, each argument is
// matched against the current top of S, popping on success; an argument
// that misses the stack top must instead recur elsewhere, to the right,
// in the literal's own argument list — recorded as a permutation slot.
// The resulting canonical permutation is required to be stable per
// predicate across the whole problem.
func (w *formulaWalk) flutable(l term.Literal, stack []int) bool {
	if l.IsEquality() {
		return false
	}
	if !l.AllArgumentsAreVariables() {
		return false
	}
	args := l.Args()
	a := len(args)
	perm := make(z.PermArray, a)

	si := len(stack) - 1
	for i := a - 1; i >= 0; i-- {
		v := args[i].VarIndex()
		if si >= 0 && stack[si] == v {
			perm[i] = i
			si--
			continue
		}
		j := backref(args, i, v)
		if j < 0 {
			return false
		}
		perm[i] = j
	}

	pred := l.FunctorID()
	if existing, ok := w.perms[pred]; ok {
		if !existing.Equal(perm) {
			return false
		}
	} else {
		w.perms[pred] = perm
	}
	return true
}

// backref finds a position j > i in args sharing variable v, the
// "elsewhere, to the right" recoverable-permutation case.
func backref(args []term.Term, i, v int) int {
	for j := i + 1; j < len(args); j++ {
		if args[j].VarIndex() == v {
			return j
		}
	}
	return -1
}
