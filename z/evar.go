// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package z holds small, copyable value types shared across the fluted
// fragment pipeline: the variable-observation tracker EVar and the
// per-predicate PermArray used to record argument-role permutations.
package z

import "fmt"

// evarKind tags the three states an EVar may hold.
type evarKind uint8

const (
	evarUnset evarKind = iota
	evarGround
	evarVar
)

// EVar is "a sequence over zero or more variables" observed so far while
// walking a fluted pattern: unset (nothing observed), ground (only
// constants observed), or var(k) (highest variable index observed is k).
//
// EVar is a value type; the zero value is Unset.
type EVar struct {
	kind evarKind
	k    int
}

// Unset returns the "no observation yet" EVar.
func Unset() EVar { return EVar{kind: evarUnset} }

// Ground returns the "only constants observed" EVar.
func Ground() EVar { return EVar{kind: evarGround} }

// VarIdx returns the EVar recording that the highest variable observed is k.
func VarIdx(k int) EVar { return EVar{kind: evarVar, k: k} }

// IsUnset reports whether no observation has been made yet.
func (e EVar) IsUnset() bool { return e.kind == evarUnset }

// IsGround reports whether only constants have been observed.
func (e EVar) IsGround() bool { return e.kind == evarGround }

// IsVar reports whether a variable has been observed, and if so its index.
func (e EVar) IsVar() (int, bool) {
	if e.kind == evarVar {
		return e.k, true
	}
	return 0, false
}

// Equal reports whether two EVars record the same observation: both
// unset, both ground, or the same variable index.
func (e EVar) Equal(o EVar) bool {
	if e.kind != o.kind {
		return false
	}
	return e.kind != evarVar || e.k == o.k
}

// Distance returns the distance between two set (non-unset) EVars: 0 if
// equal, 1+k between ground and var(k), and |k1-k2| between two vars.
//
// Distance panics if either argument is unset; comparing against an
// unobserved sequence is a programming error in the caller, not a
// classification failure (see error handling design, internal-invariant
// violations).
func (e EVar) Distance(o EVar) int {
	if e.kind == evarUnset || o.kind == evarUnset {
		panic("z: EVar.Distance on unset EVar")
	}
	if e.Equal(o) {
		return 0
	}
	switch {
	case e.kind == evarGround && o.kind == evarVar:
		return 1 + o.k
	case o.kind == evarGround && e.kind == evarVar:
		return 1 + e.k
	default:
		d := e.k - o.k
		if d < 0 {
			d = -d
		}
		return d
	}
}

// Succ returns the successor EVar: var(k) advances to var(k+1); ground
// advances to var(1). Succ panics on Unset, which must be observed via
// AbsorbVar/AbsorbConstant before it can be advanced.
func (e EVar) Succ() EVar {
	switch e.kind {
	case evarGround:
		return VarIdx(1)
	case evarVar:
		return VarIdx(e.k + 1)
	default:
		panic("z: EVar.Succ on unset EVar")
	}
}

// Less gives the total order ground < var(0) < var(1) < ... used to
// compare set EVars. Less panics if either side is unset.
func (e EVar) Less(o EVar) bool {
	if e.kind == evarUnset || o.kind == evarUnset {
		panic("z: EVar.Less on unset EVar")
	}
	if e.kind == o.kind {
		return e.kind == evarVar && e.k < o.k
	}
	return e.kind == evarGround
}

// String renders e for debug logging.
func (e EVar) String() string {
	switch e.kind {
	case evarUnset:
		return "unset"
	case evarGround:
		return "ground"
	default:
		return fmt.Sprintf("var(%d)", e.k)
	}
}
