// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package bench

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/gen"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/term"
)

// Suite is a named corpus of cases to sweep.
type Suite []Case

// GeneratedSuite builds a corpus spanning every generator shape at a
// handful of sizes, seeded for reproducibility.
func GeneratedSuite(seed int64) Suite {
	gen.Seed(seed)
	g := gen.New(0)
	var s Suite

	for _, n := range []int{2, 4, 8} {
		s = append(s, Case{
			Name:       fmt.Sprintf("fluted-chain-%d", n),
			Units:      []term.Formula{g.FlutedChain(n)},
			WantFluted: true,
		})
		s = append(s, Case{
			Name:       fmt.Sprintf("non-fluted-chain-%d", n),
			Units:      []term.Formula{g.NonFlutedChain(n)},
			WantFluted: false,
		})
		s = append(s, Case{
			Name:       fmt.Sprintf("fl1-%d", n),
			Clauses:    []*term.Clause{g.FL1Clause(n)},
			WantFluted: true,
		})
		s = append(s, Case{
			Name:       fmt.Sprintf("fl2-%d", n),
			Clauses:    []*term.Clause{g.FL2Clause(n)},
			WantFluted: true,
		})
		s = append(s, Case{
			Name:       fmt.Sprintf("fl3-%d", n),
			Clauses:    []*term.Clause{g.FL3Clause(n)},
			WantFluted: true,
		})
		if n >= 3 {
			s = append(s, Case{
				Name:       fmt.Sprintf("separable-%d", n),
				Clauses:    []*term.Clause{g.SeparableClause(n/2, n)},
				WantFluted: true,
			})
		}
		s = append(s, Case{
			Name:       fmt.Sprintf("inseparable-%d", n),
			Clauses:    []*term.Clause{g.InseparableClause(n)},
			WantFluted: true,
		})
	}
	return s
}

// Run sweeps suite across a bounded worker pool: each case runs
// single-threaded through the pipeline stages, and only the pool
// itself fans out, the way the teacher's ax package pooled solver
// instances behind a bounded number of live workers rather than
// spawning one goroutine per request.
func Run(ctx context.Context, env *flu.Env, sig inter.Signature, suite Suite, workers int) ([]Result, error) {
	results := make([]Result, len(suite))
	g, _ := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range suite {
		i, c := i, c
		g.Go(func() error {
			results[i] = runCase(env, sig, c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
