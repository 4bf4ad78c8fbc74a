// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package term

import "github.com/fluteproof/flu/z"

// FSeq is the running summary of a fluted pattern being validated while
// walking an argument list left to right: the highest variable observed,
// whether only ground constants have been seen, the ordered list of
// functional-constant terms encountered, whether the sequence has been
// observed complete (variable 0 or a ground constant at the rightmost
// position), and whether it is still a candidate fluted sequence at all.
//
// An invalid FSeq signals that fluted-ness has already failed for this
// walk; every other field is meaningless once Valid() is false. complete
// is monotone: once set it is never unset. terms is append-only during a
// single walk.
type FSeq struct {
	terms    []Term
	v        z.EVar
	complete bool
	valid    bool
}

// NewFSeq starts a fresh, valid, unset fluted sequence.
func NewFSeq() *FSeq {
	return &FSeq{v: z.Unset(), valid: true}
}

// Valid reports whether the sequence is still a fluted-ness candidate.
func (f *FSeq) Valid() bool { return f.valid }

// Complete reports whether the sequence has been observed to reach its
// base case (variable 0 or a ground constant at the rightmost position).
func (f *FSeq) Complete() bool { return f.complete }

// Var returns the highest variable observed so far (or Unset/Ground).
func (f *FSeq) Var() z.EVar { return f.v }

// Terms returns the ordered list of functional-constant terms observed
// so far. Callers must not mutate the returned slice.
func (f *FSeq) Terms() []Term { return f.terms }

func (f *FSeq) fail() { f.valid = false }

// AbsorbVar ingests a variable argument at the current position. It
// fails (invalidating f) if the sequence had already gone ground, or if
// a highest variable k is already fixed and v is not its successor k+1.
func (f *FSeq) AbsorbVar(v int) {
	if !f.valid {
		return
	}
	if f.v.IsGround() {
		f.fail()
		return
	}
	if k, ok := f.v.IsVar(); ok {
		if v != k+1 {
			f.fail()
			return
		}
	}
	f.v = z.VarIdx(v)
	if v == 0 {
		f.complete = true
	}
}

// AbsorbConstant ingests a functional-constant argument, appending it to
// the term list. It fails if a non-ground highest-var was already fixed
// (variables and constants cannot mix in the same run).
func (f *FSeq) AbsorbConstant(t Term) {
	if !f.valid {
		return
	}
	if _, ok := f.v.IsVar(); ok {
		f.fail()
		return
	}
	f.v = z.Ground()
	f.terms = append(f.terms, t)
	f.complete = true
}

// AbsorbInner merges a nested fluted sequence obtained by recursively
// classifying a functional argument's own argument list. It requires the
// inner sequence's term list to be compatible with the outer one — one
// must be a prefix of the other — encoding the fluted discipline's
// invariant that all arguments share a common suffix of constants.
func (f *FSeq) AbsorbInner(inner *FSeq) {
	if !f.valid {
		return
	}
	if !inner.valid {
		f.fail()
		return
	}
	merged, ok := mergeTermPrefix(f.terms, inner.terms)
	if !ok {
		f.fail()
		return
	}
	f.terms = merged
	if inner.complete {
		f.complete = true
	}
	if f.v.IsUnset() {
		f.v = inner.v
		return
	}
	if inner.v.IsUnset() {
		return
	}
	if !f.v.Equal(inner.v) {
		f.fail()
	}
}

// Finalize returns f if it is still a valid fluted sequence, so the
// caller can compare it against a sibling sequence.
func (f *FSeq) Finalize() (*FSeq, bool) {
	return f, f.valid
}

// Rebase reports v as f's own highest variable regardless of what f's
// walk actually observed. A walk invoked under an already-established
// bound must report that bound back to whatever merges it in next, not
// whatever smaller variable its own subterm happened to bottom out at.
func (f *FSeq) Rebase(v z.EVar) *FSeq {
	if !f.valid || v.IsUnset() {
		return f
	}
	return &FSeq{terms: f.terms, v: v, complete: f.complete, valid: f.valid}
}

// mergeTermPrefix returns the longer of a, b if one is a term-wise
// prefix of the other, and reports whether such a prefix relation holds.
func mergeTermPrefix(a, b []Term) ([]Term, bool) {
	short, long := a, b
	if len(a) > len(b) {
		short, long = b, a
	}
	for i := range short {
		if !short[i].Equal(long[i]) {
			return nil, false
		}
	}
	return long, true
}
