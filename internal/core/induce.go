// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

// induceL scans sa left to right, and for every suffix v it finds whose
// predecessor v-1 is L-type, writes v-1 into the front of v-1's bucket. The
// suffix at len(text)-1, which precedes the virtual sentinel and is always
// L-type, is induced first, seeding the scan. starts is left
// untouched; cursors is mutated as buckets fill.
func induceL[C Symbol, I Index](text []C, sa []I, isS *BitVector[I], starts []I, cursors []I) {
	copy(cursors, starts)

	n := len(text)
	last := I(n - 1)
	r := rank(text[n-1])
	sa[cursors[r]] = last
	cursors[r]++

	for i := 0; i < len(sa); i++ {
		v := sa[i]
		if v == None[I]() || v == 0 {
			continue
		}
		if isS.Get(int(v) - 1) {
			continue
		}
		c := rank(text[v-1])
		sa[cursors[c]] = v - 1
		cursors[c]++
	}
}

// InduceSortLMSSubstrings performs the L-type induction followed by the
// S-type induction used to sort LMS substrings (variant A). Unlike the
// finalizing pass, induced S-type positions that are themselves LMS are
// gathered at the tail of sa instead of left where they were induced, so
// that sa[len(sa)-numLMS:] ends up holding the LMS positions in sorted
// order once the scan completes.
func InduceSortLMSSubstrings[C Symbol, I Index](text []C, sa []I, isS *BitVector[I], starts []I, cursors []I, textLen int) {
	induceL(text, sa, isS, starts, cursors)

	WriteBucketEnds(starts, cursors, textLen)
	tail := len(sa)
	for i := len(sa) - 1; i >= 0; i-- {
		v := sa[i]
		if v == None[I]() || v == 0 {
			continue
		}
		if IsLMS(int(v), isS) {
			tail--
			sa[tail] = v
			continue
		}
		if !isS.Get(int(v) - 1) {
			continue
		}
		c := rank(text[v-1])
		idx := cursors[c]
		sa[idx] = v - 1
		cursors[c] = satDec(idx)
	}
}

// InduceFinalize performs the same two induction scans to produce the final
// suffix array (variant B): every S-type predecessor is induced in place,
// with no tail gathering.
func InduceFinalize[C Symbol, I Index](text []C, sa []I, isS *BitVector[I], starts []I, cursors []I, textLen int) {
	induceL(text, sa, isS, starts, cursors)

	WriteBucketEnds(starts, cursors, textLen)
	for i := len(sa) - 1; i >= 0; i-- {
		v := sa[i]
		if v == None[I]() || v == 0 {
			continue
		}
		if !isS.Get(int(v) - 1) {
			continue
		}
		c := rank(text[v-1])
		idx := cursors[c]
		sa[idx] = v - 1
		cursors[c] = satDec(idx)
	}
}
