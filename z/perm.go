// Copyright 2016 The Gini Authors. All rights reserved.  Use of this source
// code is governed by a license that can be found in the License file.

package z

import "strconv"

// PermArray is a fixed-width sequence of argument positions describing,
// for each position of a literal's argument list, which argument
// position of the same literal supplied its value: the position itself
// when it matched the outer-variable stack, or a later position holding
// the same variable. Two PermArrays are compared by their canonical string form,
// giving the per-predicate permutation consistency check used by the
// formula classifier.
type PermArray []int

// Canon renders p in canonical string form, e.g. "2,0,1" for a
// three-argument permutation. Two PermArrays are consistent for the
// same predicate iff their canonical forms are equal.
func (p PermArray) Canon() string {
	if len(p) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(p)*2)
	for i, v := range p {
		if i > 0 {
			buf = append(buf, ',')
		}
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	return string(buf)
}

// Equal reports whether p and o have the same canonical form.
func (p PermArray) Equal(o PermArray) bool {
	return p.Canon() == o.Canon()
}
