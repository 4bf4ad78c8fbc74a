// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package classify

import (
	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/term"
	"github.com/fluteproof/flu/z"
)

// Clauses decides fluted membership for a set of clauses: every literal
// of every clause must lie in one of the sub-forms FL1, FL2, or FL3.
func Clauses(env *flu.Env, clauses []*term.Clause) bool {
	for _, c := range clauses {
		if !clauseFluted(env, c) {
			env.Debugw("clause rejected", "id", c.ID)
			return false
		}
	}
	return true
}

func clauseFluted(env *flu.Env, c *term.Clause) bool {
	if c.HasEquality() {
		return false
	}
	if len(c.Lits) == 0 {
		return true
	}
	if allNullary(c) {
		return true
	}
	first := c.Lits[0]
	if !first.AllArgumentsAreVariables() {
		return fl2(c)
	}

	rv := z.VarIdx(first.RightmostVarIndex())
	sawFL3 := false
	for _, l := range c.Lits[1:] {
		if l.IsEquality() {
			return false
		}
		if !l.AllArgumentsAreVariables() {
			return fl2(c)
		}
		if l.Arity() == 0 {
			continue
		}
		lv := z.VarIdx(l.RightmostVarIndex())
		if !lv.Equal(rv) {
			if lv.Distance(rv) == 1 {
				sawFL3 = true
			} else {
				return false
			}
		}
	}
	if sawFL3 {
		return fl3(c)
	}
	return fl1(c, rv)
}

func allNullary(c *term.Clause) bool {
	for _, l := range c.Lits {
		if l.Arity() > 0 {
			return false
		}
	}
	return true
}

// fl1 validates the FL1 sub-form: every literal purely variable-argument,
// non-equality, sharing rightmost variable rv, with each literal's
// arguments descending contiguously left to right and ending at rv
// (rv+a-1, ..., rv+1, rv for a literal of arity a). No completeness gate on rv itself: a clause whose
// shared rightmost variable never reaches 0 (e.g. a single literal
// P(x3)) is still FL1.
func fl1(c *term.Clause, rv z.EVar) bool {
	rvIdx, _ := rv.IsVar()
	for _, l := range c.Lits {
		a := l.Arity()
		// Position idx (0-indexed, left to right) holds rv+(a-1)-idx,
		// so the rightmost position (idx = a-1) always holds rv and
		// values rise by one per position moving left.
		for idx := 0; idx < a; idx++ {
			want := rvIdx + (a - 1) - idx
			if l.NthArg(idx).VarIndex() != want {
				return false
			}
		}
	}
	return true
}

// literalContiguous checks that l's own argument list descends
// contiguously left to right, ending at l's rightmost variable, independent
// of any other literal — the same descending-run shape fl1 checks
// against a clause-shared rv, applied here per literal against its own.
func literalContiguous(l term.Literal) bool {
	a := l.Arity()
	rv := l.RightmostVarIndex()
	for idx := 0; idx < a; idx++ {
		want := rv + (a - 1) - idx
		if l.NthArg(idx).VarIndex() != want {
			return false
		}
	}
	return true
}

// fl3 validates the FL3 sub-form: every literal all-variable,
// non-equality, and internally contiguous in its own arguments, with at
// most two adjacent rightmost-variable values across the clause,
// differing by exactly one.
func fl3(c *term.Clause) bool {
	r1, r2 := z.Unset(), z.Unset()
	for _, l := range c.Lits {
		if l.IsEquality() || !l.AllArgumentsAreVariables() {
			return false
		}
		if l.Arity() == 0 {
			continue
		}
		if !literalContiguous(l) {
			return false
		}
		v := z.VarIdx(l.RightmostVarIndex())
		switch {
		case r1.IsUnset():
			r1 = v
		case r2.IsUnset():
			d := r1.Distance(v)
			if d > 1 {
				return false
			}
			if d == 1 {
				if r1.Less(v) {
					r2 = v
				} else {
					r2, r1 = r1, v
				}
			}
		default:
			if !v.Equal(r1) && !v.Equal(r2) {
				return false
			}
		}
	}
	return true
}

// fl2 validates the FL2 sub-form: literals may contain functional
// arguments. A single outer FSeq accumulates across the clause; each
// literal's whole argument list is walked by fluteArgs and merged in.
func fl2(c *term.Clause) bool {
	outer := term.NewFSeq()
	for _, l := range c.Lits {
		if l.IsEquality() {
			return false
		}
		// fluteArgs already generalizes the purely-variable case (no
		// functional children ever appear) and the mixed case, so a
		// literal's whole argument list — variable-only or not — goes
		// through the same §4.4 recursive walk before merging into the
		// clause-wide outer FSeq.
		inner, ok := fluteArgs(l.Args(), outer.Var())
		if !ok {
			return false
		}
		if !fseqCompatible(outer, inner) {
			return false
		}
		outer.AbsorbInner(inner)
		if !outer.Valid() {
			return false
		}
	}
	return outer.Valid()
}

// fseqCompatible checks the FL2 merge precondition: same highest
// variable, and one term list a prefix of the other.
func fseqCompatible(outer, inner *term.FSeq) bool {
	if !outer.Var().IsUnset() && !inner.Var().IsUnset() && !outer.Var().Equal(inner.Var()) {
		return false
	}
	a, b := outer.Terms(), inner.Terms()
	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}
	for i := range short {
		if !short[i].Equal(long[i]) {
			return false
		}
	}
	return true
}
