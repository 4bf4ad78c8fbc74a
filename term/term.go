// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package term holds the concrete term, literal, and clause representation
// used by the fluted fragment pipeline: a variable is an index into the
// enclosing quantifier prefix, a functional term is a functor id plus an
// ordered argument list, and a literal's rightmost argument is always the
// "top" of its fluted sequence.
//
// The prover's own term pool, substitution engine, and clause containers
// are out of scope; this package gives the pipeline's algorithmic core
// (classification, preprocessing, separation, ordering, resolution) a
// concrete, in-memory representation to compute over and to test
// against, patterned after this pipeline's SAT-solving ancestor's
// z.Var/z.Lit value types.
package term

// Term is either a variable (an index into the surrounding quantifier's
// bound-variable sequence) or a functional term (a functor id with an
// ordered argument list). The rightmost argument of a functional term
// carries distinguished semantics for the fluted discipline: it is
// walked first when checking containment or superterm relations.
type Term struct {
	variable bool
	idx      int
	functor  int
	args     []Term
}

// Var builds a variable term with the given index.
func Var(idx int) Term { return Term{variable: true, idx: idx} }

// Func builds a functional term. Zero args gives a constant.
func Func(functor int, args ...Term) Term {
	return Term{functor: functor, args: args}
}

// IsVariable reports whether t is a variable.
func (t Term) IsVariable() bool { return t.variable }

// VarIndex returns t's variable index. It panics if t is not a variable.
func (t Term) VarIndex() int {
	if !t.variable {
		panic("term: VarIndex on functional term")
	}
	return t.idx
}

// Functor returns t's functor id. It panics if t is a variable.
func (t Term) Functor() int {
	if t.variable {
		panic("term: Functor on variable term")
	}
	return t.functor
}

// Args returns t's argument list. Empty (possibly nil) for a variable or
// a constant.
func (t Term) Args() []Term { return t.args }

// Arity returns the number of arguments of a functional term, or 0 for a
// variable.
func (t Term) Arity() int { return len(t.args) }

// NthArg returns the i'th argument (0-indexed, left to right).
func (t Term) NthArg(i int) Term { return t.args[i] }

// Rightmost returns t's rightmost argument, the "top" of its fluted
// sequence, and whether one exists (false for a variable or a constant).
func (t Term) Rightmost() (Term, bool) {
	if t.variable || len(t.args) == 0 {
		return Term{}, false
	}
	return t.args[len(t.args)-1], true
}

// IsConstant reports whether t is a nullary functional term.
func (t Term) IsConstant() bool { return !t.variable && len(t.args) == 0 }

// Equal reports structural equality: same kind, same variable index or
// same functor and pairwise-equal arguments.
func (t Term) Equal(o Term) bool {
	if t.variable != o.variable {
		return false
	}
	if t.variable {
		return t.idx == o.idx
	}
	if t.functor != o.functor || len(t.args) != len(o.args) {
		return false
	}
	for i := range t.args {
		if !t.args[i].Equal(o.args[i]) {
			return false
		}
	}
	return true
}

// isContained reports whether t equals u or equals some term along u's
// rightmost-argument spine. This is the containment relation the
// superterm order (order.Compare) is built from.
func (t Term) isContained(u Term) bool {
	cur := u
	for {
		if t.Equal(cur) {
			return true
		}
		next, ok := cur.Rightmost()
		if !ok {
			return false
		}
		cur = next
	}
}

// IsContained is the exported form of isContained, used by package order.
func IsContained(t, u Term) bool { return t.isContained(u) }

// String renders t for debug logging and test failure messages.
func (t Term) String() string {
	if t.variable {
		return varName(t.idx)
	}
	if len(t.args) == 0 {
		return functorName(t.functor)
	}
	s := functorName(t.functor) + "("
	for i, a := range t.args {
		if i > 0 {
			s += ","
		}
		s += a.String()
	}
	return s + ")"
}

func varName(idx int) string {
	return "x" + itoa(idx)
}

func functorName(f int) string {
	return "f" + itoa(f)
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
