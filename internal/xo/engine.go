// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

// Package xo holds the fluted resolution engine: the generating
// inference the host saturation loop drives once a clause activates.
// The package name and the struct-of-collaborators shape (an engine
// grouping an index, an ordering, admission policy, and its own stats
// counter) follow this pipeline's SAT-solving ancestor's own S struct,
// which grouped Vars/Cdb/Trail/Guess/Driver/Active the same way.
package xo

import (
	"github.com/fluteproof/flu/inter"
	"github.com/fluteproof/flu/order"
	"github.com/fluteproof/flu/term"
)

// Engine drives the fluted resolution calculus against a host
// saturation loop. It holds no clause storage of its own — the
// passive/active containers, the clause pool, and the unification
// index are all supplied by the host via the inter package's
// contracts.
type Engine struct {
	Index      inter.Index
	Passive    inter.PassiveContainer
	Ordering   inter.Ordering
	Selector   inter.Selector
	Redundancy inter.RedundancyHandler
	Color      inter.ColorChecker
	Answers    inter.AnswerLiteralManager
	Proof      inter.ProofExtraStore
	NextID     func() int

	Stats inter.Statistics
}

// Attach requests a unification-with-abstraction index over the
// prover's literal pool. It is a no-op beyond bookkeeping: the
// contract is that the host supplies the index up front.
func (e *Engine) Attach(idx inter.Index) {
	e.Index = idx
}

// GenerateClauses produces every conclusion resolution can derive from
// premise: for each of premise's eligible (maximal) literals, it
// queries the index for complementary candidates and assembles a
// conclusion from each one that survives generateClause's checks.
func (e *Engine) GenerateClauses(premise *term.Clause) []*term.Clause {
	var out []*term.Clause
	for _, l := range premise.Lits {
		if !order.Maximal(premise, l) {
			continue
		}
		for _, cand := range e.Index.Query(l, !l.Polarity()) {
			if !order.Maximal(cand.Clause, cand.Literal) {
				continue
			}
			if c := e.generateClause(premise, l, cand); c != nil {
				out = append(out, c)
			}
		}
	}
	return out
}

// generateClause assembles one resolution conclusion from a query
// literal l of premise and a complementary candidate, following the
// admission and aftercheck checks a correct resolution rule must
// apply before committing to the (possibly expensive) work of
// building the output literal list.
func (e *Engine) generateClause(premise *term.Clause, l term.Literal, cand inter.Candidate) *term.Clause {
	resultCl := cand.Clause
	if resultCl.Store != term.Active {
		return nil
	}
	if e.Color != nil && !e.Color.Compatible(premise, resultCl) {
		e.Stats.SkippedColor++
		return nil
	}

	if e.Passive != nil {
		age := premise.Age
		if resultCl.Age > age {
			age = resultCl.Age
		}
		age++
		lowWeight, positives := lowerBound(premise, l, resultCl, cand.Literal, cand.Substitution)
		if !e.Passive.FulfilsAgeLimit(age, positives) {
			e.Stats.SkippedWeight++
			return nil
		}
		if e.Passive.WeightLimited() && !e.Passive.FulfilsWeightLimit(lowWeight, positives) {
			e.Stats.SkippedWeight++
			return nil
		}
	}

	out := append([]term.Literal{}, cand.Unifier.ConstraintLiterals()...)

	moreThanOne := e.Selector != nil && e.Selector.MoreThanOneSelected(premise)
	selQuery := cand.Substitution.ApplyToQuery(l)
	for _, m := range premise.Other(l.ID()) {
		sub := cand.Substitution.ApplyToQuery(m)
		if moreThanOne && !e.aftercheck(l, selQuery, sub) {
			e.Stats.SkippedAftercheck++
			return nil
		}
		out = append(out, sub)
	}

	moreThanOneResult := e.Selector != nil && e.Selector.MoreThanOneSelected(resultCl)
	selResult := cand.Substitution.ApplyToResult(cand.Literal)
	for _, m := range resultCl.Other(cand.Literal.ID()) {
		sub := cand.Substitution.ApplyToResult(m)
		if moreThanOneResult && !e.aftercheck(cand.Literal, selResult, sub) {
			e.Stats.SkippedAftercheck++
			return nil
		}
		out = append(out, sub)
	}

	if !cand.Unifier.UsesAbstraction() && e.Redundancy != nil && e.Redundancy.Reject(premise, resultCl) {
		e.Stats.SkippedRedundancy++
		return nil
	}

	if e.Answers != nil && e.Answers.HasAnswerLiteral(premise) && e.Answers.HasAnswerLiteral(resultCl) {
		out = append(out, e.Answers.Combine(premise, resultCl, l.Polarity()))
	}

	rule := term.RuleResolution
	if cand.Unifier.UsesAbstraction() {
		rule = term.RuleConstrainedResolution
	}
	id := e.nextID()
	conclusion := term.Derived(id, rule, []int{premise.ID, resultCl.ID}, out...)

	e.Stats.Derived++
	if e.Proof != nil && e.Proof.Enabled() {
		e.Proof.Attach(conclusion, rule, []int{premise.ID, resultCl.ID})
	}
	return conclusion
}

// aftercheck re-verifies maximality of a substituted selected literal
// (selectedSub, the substitution of selected) against one other
// substituted literal of its own clause (otherSub), required whenever
// more than one literal was eligible for selection: abort if otherSub
// now compares greater, or (for a positively selected literal) equal.
func (e *Engine) aftercheck(selected, selectedSub, otherSub term.Literal) bool {
	if e.Ordering == nil {
		return true
	}
	if e.Ordering.Greater(otherSub, selectedSub) {
		return false
	}
	if selected.Polarity() && e.Ordering.Equal(otherSub, selectedSub) {
		return false
	}
	return true
}

func (e *Engine) nextID() int {
	if e.NextID != nil {
		return e.NextID()
	}
	return 0
}

// lowerBound computes a cheap lower bound on the output clause's
// weight and positive-literal count, consulted before doing the full
// substitution-and-aftercheck work of assembling a conclusion.
func lowerBound(queryCl *term.Clause, queryLit term.Literal, resultCl *term.Clause, resultLit term.Literal, sub inter.Substitution) (weight int, positives int) {
	for _, m := range queryCl.Other(queryLit.ID()) {
		s := sub.ApplyToQuery(m)
		weight += 1 + s.Arity()
		if s.Polarity() {
			positives++
		}
	}
	for _, m := range resultCl.Other(resultLit.ID()) {
		s := sub.ApplyToResult(m)
		weight += 1 + s.Arity()
		if s.Polarity() {
			positives++
		}
	}
	return weight, positives
}
