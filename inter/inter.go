// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package inter declares the narrow, consumer-only interfaces the fluted
// fragment pipeline needs from the surrounding first-order prover: the
// unification engine, term/clause pooling, the passive/active clause
// containers, clausification, and the saturation driver loop are all
// out of scope and are represented here only by the contracts a correct
// host must satisfy.
//
// Small interfaces describing what the surrounding solver needs from a
// representation it does not itself own, the same pattern this pipeline's
// SAT-solving ancestor used for Solvable, Adder, MaxVar, Liter, Model,
// and Assumable.
package inter

import "github.com/fluteproof/flu/term"

// Formula and Unit, the formula-tree accessor contracts, live in package
// term alongside Term/Literal/Clause: Go's structural interfaces mean a
// concrete Formula implementation must return the interface type from
// Children(), so the interface and its default implementation have to
// share a package to avoid an import cycle between inter and term.
type Formula = term.Formula
type Unit = term.Unit

// Problem is the host's mutable collection of units: an iterator with
// insertion, used by the formula/clause classifiers (read-only gate
// check) and the definitional preprocessor (which pushes
// fresh definition units as it rewrites).
type Problem interface {
	Units() []Unit
	// Insert adds a new unit to the problem, attributed to the given
	// inference record and returns its allocated id.
	Insert(f Formula, parent int) int
	// Invalidated reports whether some prior step marked the problem
	// unsound to continue processing (e.g. an internal-invariant
	// violation surfaced without panicking).
	Invalidated() bool
}

// Signature is the host's predicate/functor symbol table.
type Signature interface {
	// AddFreshPredicate allocates a new predicate of the given arity
	// with a name derived from prefix (the definitional
	// preprocessor uses prefix "fl").
	AddFreshPredicate(arity int, prefix string) int
	// AddNamePredicate allocates a new predicate of the given arity for
	// clause separation.
	AddNamePredicate(arity int) int
}

// Candidate is one complementary-literal match returned by the
// unification-with-abstraction Index, as consumed by the resolution engine.
type Candidate struct {
	Clause       *term.Clause
	Literal      term.Literal
	Substitution Substitution
	Unifier      Unifier
}

// Index is the unification-with-abstraction index over the prover's
// literal pool. The resolution engine queries it once per eligible literal of the premise.
type Index interface {
	Query(l term.Literal, positive bool) []Candidate
}

// Substitution applies a unifier's bindings to a literal, once for the
// query clause's literals and once for the result clause's.
type Substitution interface {
	ApplyToQuery(l term.Literal) term.Literal
	ApplyToResult(l term.Literal) term.Literal
}

// Unifier describes the outcome of a unification attempt: whether it
// used abstraction (approximating a non-unifiable pair with a
// constraint) and, if so, the constraint literals to carry into the
// conclusion.
type Unifier interface {
	UsesAbstraction() bool
	ConstraintLiterals() []term.Literal
}

// PassiveContainer is the host's admission policy for newly generated
// clauses, queried by the resolution engine before doing the
// (possibly expensive) work of assembling a conclusion. Both limit
// checks take the lower-bound positive-literal count alongside the
// weight/age bound, so a host limit policy (e.g. a positive-literal
// cap for a bounded-strategy saturation loop) can reject a
// conclusion the plain weight/age bound alone would admit.
type PassiveContainer interface {
	FulfilsAgeLimit(age, positives int) bool
	FulfilsWeightLimit(weight, positives int) bool
	WeightLimited() bool
}

// Ordering exposes the host's external literal/term ordering (e.g. a
// KBO-like ordering) used for the resolution engine's aftercheck
// re-verification once a
// literal's arguments have been substituted.
type Ordering interface {
	// Greater reports whether a is strictly greater than b under the
	// host ordering.
	Greater(a, b term.Literal) bool
	// Equal reports whether a and b are ordering-equal.
	Equal(a, b term.Literal) bool
}

// Selector reports whether a clause's positively-selected literals
// require the aftercheck's stricter (non-)equal comparison.
type Selector interface {
	IsPositivelySelected(c *term.Clause, l term.Literal) bool
	MoreThanOneSelected(c *term.Clause) bool
}

// AnswerLiteralManager synthesizes a combined answer literal from two
// premises' answer literals under the selected literal's polarity.
type AnswerLiteralManager interface {
	HasAnswerLiteral(c *term.Clause) bool
	Combine(query, result *term.Clause, selectedPositive bool) term.Literal
}

// RedundancyHandler vetoes a non-abstraction-unifier inference judged
// redundant by the host's simplification machinery.
type RedundancyHandler interface {
	Reject(query, result *term.Clause) bool
}

// ColorChecker reports whether two clauses are color-compatible
// (interpolation-coloring, an orthogonal host concern the resolution
// engine must respect).
type ColorChecker interface {
	Compatible(a, b *term.Clause) bool
}

// ProofExtraStore attaches proof-output metadata to a derived clause
// when the host's full-proof mode is enabled.
type ProofExtraStore interface {
	Enabled() bool
	Attach(c *term.Clause, rule term.Rule, parents []int)
}

// Statistics is the host's counters for skipped/derived inferences. The
// resolution engine increments the first five in generateClause (an
// inactive result clause counts nothing); SeparationsApplied is not
// incremented anywhere in this module.
type Statistics struct {
	Derived            int64
	SkippedColor       int64
	SkippedWeight      int64
	SkippedAftercheck  int64
	SkippedRedundancy  int64
	SeparationsApplied int64
}
