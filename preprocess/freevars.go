// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package preprocess

import (
	"sort"

	"github.com/fluteproof/flu/term"
)

// freeVars collects the free variables of f in ascending order: every
// variable index reachable through f's literals that is not bound by
// some quantifier nested within f itself. Variables bound by an
// enclosing quantifier outside f are, correctly, reported as free.
func freeVars(f term.Formula) []int {
	seen := make(map[int]bool)
	var order []int
	walkFree(f, nil, seen, &order)
	sort.Ints(order)
	return order
}

func walkFree(f term.Formula, bound map[int]bool, seen map[int]bool, order *[]int) {
	switch f.Kind() {
	case term.FORALL, term.EXISTS:
		inner := make(map[int]bool, len(bound)+len(f.BoundVars()))
		for v := range bound {
			inner[v] = true
		}
		for _, v := range f.BoundVars() {
			inner[v] = true
		}
		walkFree(f.Children()[0], inner, seen, order)
	case term.LITERAL:
		for _, a := range f.Lit().Args() {
			collectTermVars(a, bound, seen, order)
		}
	case term.TRUE, term.FALSE, term.BoolTerm:
	default:
		for _, c := range f.Children() {
			walkFree(c, bound, seen, order)
		}
	}
}

func collectTermVars(t term.Term, bound map[int]bool, seen map[int]bool, order *[]int) {
	if t.IsVariable() {
		v := t.VarIndex()
		if bound[v] {
			return
		}
		if !seen[v] {
			seen[v] = true
			*order = append(*order, v)
		}
		return
	}
	for _, a := range t.Args() {
		collectTermVars(a, bound, seen, order)
	}
}
