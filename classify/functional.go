// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package classify

import (
	"github.com/fluteproof/flu/term"
	"github.com/fluteproof/flu/z"
)

// fluteArgs decides flutedness of an argument list under a contextual
// EVar ctx — the highest variable already established by whatever called
// this walk. Argument lists are suffixes of a shared variable sequence,
// so the walk scans from the rightmost argument backward, producing an
// FSeq.
//
// Rules: the rightmost element may be a variable or a constant; if a
// variable, its own index may not exceed ctx once ctx is set; once the
// scan has passed a functional child no further variables may appear at
// this level (variables occupy a contiguous run at the tail); functional
// children recurse and their term lists must be mutually
// prefix-compatible with the level's running list; the same functional
// child may not appear twice at this level; two distinct constants at
// the same level is a violation. When ctx was set on entry, the
// returned FSeq reports ctx as its own variable regardless of whatever
// smaller variable this level's own scan bottomed out at — the level's
// identity, for merge purposes, is the bound it was called under, not
// its own internal detail.
func fluteArgs(args []term.Term, ctx z.EVar) (*term.FSeq, bool) {
	f := term.NewFSeq()
	sawFunctional := false
	var seenChildren []term.Term
	var constant term.Term
	haveConstant := false

	n := len(args)
	for pos := 0; pos < n; pos++ {
		idx := n - 1 - pos // scan right to left: rightmost argument first
		a := args[idx]
		first := pos == 0

		if a.IsVariable() {
			if sawFunctional {
				return nil, false
			}
			v := a.VarIndex()
			if first {
				if ctx.IsGround() {
					return nil, false
				}
				if k, ok := ctx.IsVar(); ok && v > k {
					return nil, false
				}
			}
			f.AbsorbVar(v)
			if !f.Valid() {
				return nil, false
			}
			continue
		}

		sawFunctional = true
		if a.Arity() == 0 {
			if haveConstant && !constant.Equal(a) {
				return nil, false
			}
			constant = a
			haveConstant = true
			f.AbsorbConstant(a)
			if !f.Valid() {
				return nil, false
			}
			continue
		}

		for _, prior := range seenChildren {
			if prior.Equal(a) {
				return nil, false
			}
		}
		seenChildren = append(seenChildren, a)

		// Promote the context to the running variable bound before
		// descending: once this level has fixed a highest variable
		// (from a sibling plain-variable argument), the functional
		// child's own walk must be constrained against it too, not
		// just the bound this level itself was called with.
		childCtx := ctx
		if childCtx.IsUnset() {
			childCtx = f.Var()
		}
		child, ok := fluteArgs(a.Args(), childCtx)
		if !ok {
			return nil, false
		}
		f.AbsorbInner(child)
		if !f.Valid() {
			return nil, false
		}
	}
	if !ctx.IsUnset() {
		f = f.Rebase(ctx)
	}
	return f, f.Valid()
}
