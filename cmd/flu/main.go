// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Command flu drives the fluted fragment pipeline from the command
// line: `flu check RECIPE` runs the formula/clause classifiers alone,
// `flu solve RECIPE` runs classification, preprocessing, separation and
// maximal-literal counting; neither subcommand runs resolution. RECIPE
// names a synthetic problem shape ("fl1:4", "fluted-chain:6", ...)
// built by package gen, since clausification of an arbitrary on-disk
// problem is out of scope for this pipeline (§5) and no other input
// format exists in this corpus. This generalizes cmd/gini/main.go's
// flag-parsed, file-driven CLI to a recipe-driven one.
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/fluteproof/flu"
	"github.com/fluteproof/flu/classify"
	"github.com/fluteproof/flu/crisp"
	"github.com/fluteproof/flu/gen"
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/internal/config"
	"github.com/fluteproof/flu/internal/obslog"
	"github.com/fluteproof/flu/order"
	"github.com/fluteproof/flu/preprocess"
	"github.com/fluteproof/flu/separate"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "flu",
		Short:         "fluted fragment classification and resolution pipeline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	fs := pflag.NewFlagSet("flu", pflag.ContinueOnError)
	flags := config.Register(fs)
	root.PersistentFlags().AddFlagSet(fs)

	root.AddCommand(newCheckCmd(flags), newSolveCmd(flags))
	return root
}

func buildEnv(flags *config.Flags) (*flu.Env, error) {
	log, err := obslog.New(flags.Debug)
	if err != nil {
		return nil, err
	}
	return flu.NewEnv(inter.NewMemSignature(0), flags.Resolve(), log), nil
}

func withTimeout(env *flu.Env, run func() error) error {
	if env.Opts.Timeout <= 0 {
		return run()
	}
	done := make(chan error, 1)
	go func() { done <- run() }()
	select {
	case err := <-done:
		return err
	case <-time.After(env.Opts.Timeout):
		return fmt.Errorf("timed out after %s", env.Opts.Timeout)
	}
}

// newCheckCmd wires `flu check RECIPE`: build the recipe's problem,
// run the formula classifier over any quantifier units and the clause
// classifier over any clauses, and report accept/reject — no
// preprocessing, separation, or resolution.
func newCheckCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "check RECIPE",
		Short: "classify a generated recipe without running the resolution engine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(flags)
			if err != nil {
				return err
			}
			r, err := parseRecipe(args[0])
			if err != nil {
				return err
			}
			units, clauses, err := r.build(gen.New(0))
			if err != nil {
				return err
			}

			return withTimeout(env, func() error {
				runID := uuid.New()
				var records []crisp.Record
				fluted := true

				if len(units) > 0 {
					p := inter.NewMemProblem()
					for _, u := range units {
						p.Insert(u, -1)
					}
					ok := classify.Formulas(env, p)
					fluted = fluted && ok
					for _, u := range p.Units() {
						records = append(records, formulaRecord(u.ID(), ok))
					}
				}
				if len(clauses) > 0 {
					ok := classify.Clauses(env, clauses)
					fluted = fluted && ok
					for _, c := range clauses {
						records = append(records, clauseRecord(c.ID, ok))
					}
				}

				if flags.EmitTrace {
					if err := crisp.Encode(os.Stdout, runID, records); err != nil {
						return err
					}
				} else {
					printVerdict(fluted)
				}
				if flags.Stats {
					printStats(env)
				}
				return nil
			})
		},
	}
}

// newSolveCmd wires `flu solve RECIPE`: classification, then
// definitional preprocessing on formula units, then a count of
// separable clauses and maximal literals. It does not run the resolution
// engine, and it ignores --emit-trace.
func newSolveCmd(flags *config.Flags) *cobra.Command {
	return &cobra.Command{
		Use:   "solve RECIPE",
		Short: "run classification, preprocessing, separation and maximality counts over a generated recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := buildEnv(flags)
			if err != nil {
				return err
			}
			r, err := parseRecipe(args[0])
			if err != nil {
				return err
			}
			units, clauses, err := r.build(gen.New(0))
			if err != nil {
				return err
			}

			return withTimeout(env, func() error {
				fluted := true

				if len(units) > 0 {
					p := inter.NewMemProblem()
					for _, u := range units {
						p.Insert(u, -1)
					}
					fluted = fluted && classify.Formulas(env, p)
					for _, u := range p.Units() {
						preprocessed := preprocess.Run(env, p, u)
						env.Debugw("preprocessed", "unit", u.ID(), "kind", preprocessed.Kind())
					}
				}

				if len(clauses) > 0 {
					fluted = fluted && classify.Clauses(env, clauses)

					nextID := 1
					alloc := func() int { id := nextID; nextID++; return id }
					separated, maximal := 0, 0
					for _, c := range clauses {
						if _, _, ok := separate.Split(c, env.Sig, alloc); ok {
							separated++
						}
						for _, l := range c.Lits {
							if order.Maximal(c, l) {
								maximal++
							}
						}
					}
					fmt.Printf("separated=%d maximal-literals=%d\n", separated, maximal)
				}

				printVerdict(fluted)
				if flags.Stats {
					printStats(env)
				}
				return nil
			})
		},
	}
}

func formulaRecord(id int, ok bool) crisp.Record {
	r := crisp.Record{ID: id, Kind: crisp.KindFormula, Verdict: crisp.Rejected}
	if ok {
		r.Verdict = crisp.Accepted
	} else {
		r.Reason = crisp.ReasonOuterStackViolation
	}
	return r
}

func clauseRecord(id int, ok bool) crisp.Record {
	r := crisp.Record{ID: id, Kind: crisp.KindClause, Verdict: crisp.Rejected}
	if ok {
		r.Verdict = crisp.Accepted
	} else {
		r.Reason = crisp.ReasonVariableGap
	}
	return r
}

func printVerdict(fluted bool) {
	if fluted {
		fmt.Println("fluted")
		return
	}
	fmt.Println("not fluted")
}

func printStats(env *flu.Env) {
	s := env.Stats
	fmt.Printf("derived=%d skipped-color=%d skipped-weight=%d skipped-aftercheck=%d skipped-redundancy=%d separations=%d\n",
		s.Derived, s.SkippedColor, s.SkippedWeight, s.SkippedAftercheck, s.SkippedRedundancy, s.SeparationsApplied)
}
