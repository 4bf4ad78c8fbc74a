// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package inter

import (
	"fmt"
	"sync"

	"github.com/fluteproof/flu/term"
)

// MemProblem is a minimal in-memory Problem, used by tests (including
// the gen package's), and the CLI when no richer host
// problem representation is plugged in.
type MemProblem struct {
	units   []Unit
	invalid bool
}

// NewMemProblem builds a MemProblem from the given units.
func NewMemProblem(units ...Unit) *MemProblem {
	return &MemProblem{units: append([]Unit(nil), units...)}
}

func (p *MemProblem) Units() []Unit { return p.units }

func (p *MemProblem) Insert(f Formula, parent int) int {
	id := len(p.units)
	p.units = append(p.units, term.NewUnit(id, f))
	return id
}

func (p *MemProblem) Invalidated() bool { return p.invalid }

// Invalidate marks the problem unsound to continue processing.
func (p *MemProblem) Invalidate() { p.invalid = true }

// MemSignature is a minimal in-memory Signature allocating fresh
// predicate ids atomically per call.
type MemSignature struct {
	mu    sync.Mutex
	next  int
	names map[int]string
}

// NewMemSignature builds a MemSignature whose first allocated id is start.
func NewMemSignature(start int) *MemSignature {
	return &MemSignature{next: start, names: make(map[int]string)}
}

func (s *MemSignature) AddFreshPredicate(arity int, prefix string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	s.names[id] = fmt.Sprintf("%s%d/%d", prefix, id, arity)
	return id
}

func (s *MemSignature) AddNamePredicate(arity int) int {
	return s.AddFreshPredicate(arity, "n")
}

// Name returns the display name minted for id, if any.
func (s *MemSignature) Name(id int) string { return s.names[id] }
