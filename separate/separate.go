// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package separate implements the clause separator: given an activated
// clause whose literals split into two variable-range-disjoint halves,
// it produces a replacement pair joined by a fresh name predicate.
package separate

import (
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/term"
)

// half tracks the running variable range of one side of the split: the
// leftmost variable seen among its literals' leftmost arguments, and the
// rightmost variable of the literal that anchored the half.
type half struct {
	lits  []term.Literal
	first int
	last  int
}

func (h *half) absorb(l term.Literal, first, last int) {
	if h.lits == nil {
		h.first, h.last = first, last
	} else if first < h.first {
		h.first = first
	}
	h.lits = append(h.lits, l)
}

// Split attempts to separate c into two clauses sharing a fresh name
// predicate. nextClauseID allocates the ids for the two replacement
// clauses (the host owns the clause id space). Split returns ok=false
// when c is not separable: it contains a ground or non-variable-argument
// literal, decomposes into only one range (FL1-shaped), or the two
// ranges are not properly disjoint.
func Split(c *term.Clause, sig inter.Signature, nextClauseID func() int) (left, right *term.Clause, ok bool) {
	if len(c.Lits) == 0 {
		return nil, nil, false
	}
	for _, l := range c.Lits {
		if l.IsGround() || !l.AllArgumentsAreVariables() {
			return nil, nil, false
		}
	}

	first0, last0 := literalRange(c.Lits[0])
	groupC := &half{}
	groupC.absorb(c.Lits[0], first0, last0)
	groupD := &half{}

	for _, l := range c.Lits[1:] {
		f, last := literalRange(l)
		if last == groupC.last {
			groupC.absorb(l, f, last)
			continue
		}
		groupD.absorb(l, f, last)
	}

	if len(groupD.lits) == 0 {
		return nil, nil, false // FL1-shaped: nothing to separate
	}

	cGroup, dGroup := groupC, groupD
	if cGroup.last > dGroup.last {
		cGroup, dGroup = dGroup, cGroup
	}
	if cGroup.first != 0 {
		return nil, nil, false
	}
	if dGroup.first == 0 {
		return nil, nil, false // halves share every variable
	}

	arity := cGroup.last - dGroup.first + 1
	args := make([]term.Term, arity)
	for i := 0; i < arity; i++ {
		args[i] = term.Var(dGroup.first + i)
	}
	pred := sig.AddNamePredicate(arity)

	nameID := freshLitID(c)
	negName := term.NewLiteral(nameID, false, pred, args...)
	posName := term.NewLiteral(nameID+1, true, pred, args...)

	leftLits := append(append([]term.Literal{}, cGroup.lits...), negName)
	rightLits := append(append([]term.Literal{}, dGroup.lits...), posName)

	left = term.Derived(nextClauseID(), term.RuleSeparation, []int{c.ID}, leftLits...)
	right = term.Derived(nextClauseID(), term.RuleSeparation, []int{c.ID}, rightLits...)
	return left, right, true
}

// literalRange returns the variable index of l's leftmost and rightmost
// argument positions. Callers must have already checked that every
// argument of l is a variable.
func literalRange(l term.Literal) (first, last int) {
	args := l.Args()
	first = args[0].VarIndex()
	last = args[len(args)-1].VarIndex()
	return first, last
}

// freshLitID picks an id for the two halves of the shared name literal
// that cannot collide with any literal already in c.
func freshLitID(c *term.Clause) int {
	max := -1
	for _, l := range c.Lits {
		if l.ID() > max {
			max = l.ID()
		}
	}
	return max + 1
}
