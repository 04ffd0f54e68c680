// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

import "iter"

// CountsToStarts turns a per-character frequency table into bucket start
// indices in place, via an exclusive prefix sum.
func CountsToStarts[I Index](counts []I) {
	var sum I
	for i, c := range counts {
		counts[i] = sum
		sum += c
	}
}

// WriteBucketEnds derives bucket end indices (inclusive) from bucket start
// indices, writing into out. Every bucket's end is the next bucket's start
// minus one, except the last bucket, whose end is textLen-1 -- unless the
// last two buckets share a start index (the second-to-last bucket is
// empty), textLen > 1 and there is more than one bucket, in which case it is
// textLen-2.
func WriteBucketEnds[I Index](starts []I, out []I, textLen int) {
	n := len(starts)
	for i := 0; i < n-1; i++ {
		out[i] = starts[i+1] - 1 // unsigned wraparound is fine: never read back
	}
	if n == 0 {
		return
	}
	last := I(textLen - 1)
	if textLen > 1 && n > 1 && starts[n-1] == starts[n-2] {
		last = I(textLen - 2)
	}
	out[n-1] = last
}

// BucketBorders iterates (start, endExclusive) for every bucket in ascending
// order, the last bucket's endExclusive being textLen.
func BucketBorders[I Index](starts []I, textLen int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := len(starts)
		for i := 0; i < n; i++ {
			end := textLen
			if i+1 < n {
				end = int(starts[i+1])
			}
			if !yield(int(starts[i]), end) {
				return
			}
		}
	}
}

// BucketBordersRev iterates the same borders in descending bucket order.
func BucketBordersRev[I Index](starts []I, textLen int) iter.Seq2[int, int] {
	return func(yield func(int, int) bool) {
		n := len(starts)
		for i := n - 1; i >= 0; i-- {
			end := textLen
			if i+1 < n {
				end = int(starts[i+1])
			}
			if !yield(int(starts[i]), end) {
				return
			}
		}
	}
}
