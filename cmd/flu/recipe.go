// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fluteproof/flu/gen"
	"github.com/fluteproof/flu/term"
	"github.com/pkg/errors"
)

// recipe names a synthetic problem to build with package gen: this
// pipeline has no clausification or input-format parser (§5's
// Non-goals), so `flu check`/`flu solve` take a recipe string of the
// form "shape:n" instead of a file path — the same shapes bench's
// GeneratedSuite draws from, addressable one at a time from the
// command line.
type recipe struct {
	shape string
	n     int
}

func parseRecipe(s string) (recipe, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return recipe{}, errors.Errorf("recipe %q: want SHAPE:N (e.g. fl1:4)", s)
	}
	n, err := strconv.Atoi(parts[1])
	if err != nil {
		return recipe{}, errors.Wrapf(err, "recipe %q: bad size", s)
	}
	if n < 1 {
		return recipe{}, errors.Errorf("recipe %q: size must be positive", s)
	}
	return recipe{shape: parts[0], n: n}, nil
}

// build materializes r as a problem: either quantified formula units
// (for the formula-level shapes) or clauses (for everything else).
func (r recipe) build(g *gen.Generator) (units []term.Formula, clauses []*term.Clause, err error) {
	switch r.shape {
	case "fluted-chain":
		return []term.Formula{g.FlutedChain(r.n)}, nil, nil
	case "non-fluted-chain":
		return []term.Formula{g.NonFlutedChain(r.n)}, nil, nil
	case "fl1":
		return nil, []*term.Clause{g.FL1Clause(r.n)}, nil
	case "fl2":
		return nil, []*term.Clause{g.FL2Clause(r.n)}, nil
	case "fl3":
		return nil, []*term.Clause{g.FL3Clause(r.n)}, nil
	case "separable":
		if r.n < 3 {
			return nil, nil, errors.Errorf("recipe %q: separable needs n >= 3", r.shape)
		}
		return nil, []*term.Clause{g.SeparableClause(r.n/2, r.n)}, nil
	case "inseparable":
		return nil, []*term.Clause{g.InseparableClause(r.n)}, nil
	default:
		return nil, nil, fmt.Errorf("unknown recipe shape %q (want one of fluted-chain, non-fluted-chain, fl1, fl2, fl3, separable, inseparable)", r.shape)
	}
}
