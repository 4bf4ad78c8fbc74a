// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package order

import "github.com/fluteproof/flu/term"

// Maximal reports whether l is maximal in c: no other literal of c
// compares strictly greater. Verdicts are memoized on c; a fresh
// computation opportunistically marks every literal found strictly less
// than l as non-maximal, amortizing future queries.
func Maximal(c *term.Clause, l term.Literal) bool {
	v := verdict(c, l)
	return v == term.VerdictMaximal || v == term.VerdictStrictlyMaximal
}

// StrictlyMaximal reports whether l is strictly maximal in c: no other
// literal compares greater-or-equal.
func StrictlyMaximal(c *term.Clause, l term.Literal) bool {
	return verdict(c, l) == term.VerdictStrictlyMaximal
}

func verdict(c *term.Clause, l term.Literal) term.Verdict {
	if v, ok := c.MemoGet(l.ID()); ok {
		return v
	}
	strict := true
	max := true
	for _, m := range c.Lits {
		if m.ID() == l.ID() {
			continue
		}
		switch Compare(m, l) {
		case Greater:
			max = false
			strict = false
		case Equal:
			strict = false
		case Less:
			// m loses to l here regardless of what else remains: a
			// permanent verdict, safe to record now.
			c.MemoSet(m.ID(), term.VerdictNonMaximal)
		}
	}
	v := term.VerdictNonMaximal
	switch {
	case strict:
		v = term.VerdictStrictlyMaximal
	case max:
		v = term.VerdictMaximal
	}
	c.MemoSet(l.ID(), v)
	return v
}
