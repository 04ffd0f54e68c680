// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package core implements the SA-IS (suffix array by induced sorting)
// engine: the recursive construction, its bucket-based induction scans,
// the LMS-substring naming pass, and the buffer-layout scheme that lets
// the whole recursion run inside one caller-provided working region.
package core

import "golang.org/x/exp/constraints"

// Index is the unsigned integer type backing the suffix array and every
// scratch buffer the algorithm touches. The text length must fit strictly
// below None(I), since None(I) is reserved as the empty-cell marker.
type Index interface {
	constraints.Unsigned
}

// None returns I's all-ones value, the empty-cell marker used throughout
// construction (spec: "NONE is distinguishable from any valid text index
// because the text length fits strictly below NONE").
func None[I Index]() I {
	var none I
	none--
	return none
}

// bitWidth returns the number of bits in I, computed generically (no
// unsafe) by counting how many times None(I) can be halved.
func bitWidth[I Index]() int {
	x := None[I]()
	n := 0
	for x != 0 {
		n++
		x >>= 1
	}
	return n
}
