// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package order implements the fluted literal ordering: a lexicographic
// comparator over literal pairs, and the per-clause maximality verdicts
// the resolution engine consults to pick eligible literals.
package order

import "github.com/fluteproof/flu/term"

// Rel is the outcome of comparing two literals or two terms: strictly
// less, strictly greater, equal, or incomparable.
type Rel int

const (
	Less Rel = iota
	Greater
	Equal
	Incomparable
)

// Compare orders two literals lexicographically: arity, then a nullary
// tie-break, groundness agreement, the superterm relation on rightmost
// arguments, a ground structural tie-break, polarity, and finally
// literal identity to guarantee a total, decidable order.
func Compare(a, b term.Literal) Rel {
	if a.Arity() != b.Arity() {
		if a.Arity() < b.Arity() {
			return Less
		}
		return Greater
	}
	if a.Arity() == 0 {
		return nullaryCompare(a, b)
	}
	if a.IsGround() != b.IsGround() {
		return Incomparable
	}

	ra, _ := a.Rightmost()
	rb, _ := b.Rightmost()

	switch {
	case ra.IsVariable() && rb.IsVariable():
		return Incomparable
	case ra.IsVariable() && !rb.IsVariable():
		return Less
	case !ra.IsVariable() && rb.IsVariable():
		return Greater
	}

	rel := superterm(ra, rb)
	if rel == Incomparable && a.IsGround() && b.IsGround() {
		rel = groundLitComparison(ra, rb)
	}
	if rel != Equal {
		return rel
	}
	return polarityBreak(a, b)
}

func nullaryCompare(a, b term.Literal) Rel {
	if a.FunctorID() == b.FunctorID() {
		return polarityBreak(a, b)
	}
	if a.FunctorID() < b.FunctorID() {
		return Less
	}
	return Greater
}

// polarityBreak resolves an otherwise-equal comparison: negative
// outranks positive, then literal identity totally orders what remains.
func polarityBreak(a, b term.Literal) Rel {
	if a.Polarity() != b.Polarity() {
		if !a.Polarity() {
			return Greater
		}
		return Less
	}
	switch {
	case a.ID() < b.ID():
		return Less
	case a.ID() > b.ID():
		return Greater
	default:
		return Equal
	}
}

// superterm compares two non-variable terms by containment along the
// rightmost-argument spine: structurally equal terms are equal, containment in
// the other's spine ranks the container greater.
func superterm(t, u term.Term) Rel {
	if t.Equal(u) {
		return Equal
	}
	if term.IsContained(t, u) {
		return Less
	}
	if term.IsContained(u, t) {
		return Greater
	}
	return Incomparable
}

// groundLitComparison breaks an incomparable ground superterm tie by
// recursing down the rightmost-argument spine, comparing functor ids.
func groundLitComparison(t, u term.Term) Rel {
	if t.Functor() != u.Functor() {
		if t.Functor() < u.Functor() {
			return Less
		}
		return Greater
	}
	rt, okT := t.Rightmost()
	ru, okU := u.Rightmost()
	switch {
	case !okT && !okU:
		return Equal
	case !okT:
		return Less
	case !okU:
		return Greater
	}
	return groundLitComparison(rt, ru)
}
