// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

// NameLMSSubstrings assigns each of the numLMS sorted LMS substrings
// (sa[:numLMS], in sorted order, each entry a text position) a name equal to
// its rank among distinct LMS substrings, then compacts those names into the
// reduced text occupying the tail of sa's upper half. Returns the number of
// distinct names assigned (the reduced alphabet size).
//
// Names are placed at sa[len(text)/2:][pos>>1], pos being the LMS position's
// index into the original text: since consecutive LMS positions are at
// least two apart, p>>1 never collides between two different LMS positions,
// and the halving keeps the placement buffer within the upper half of sa.
func NameLMSSubstrings[C Symbol, I Index](text []C, sa []I, isS *BitVector[I], numLMS int) int {
	scratch := sa[len(text)/2:]
	for i := range scratch {
		scratch[i] = None[I]()
	}

	name := 0
	for i := 0; i < numLMS; i++ {
		pos := sa[i]
		scratch[int(pos)>>1] = I(name)
		if i+1 < numLMS && lmsSubstringsUnequal(text, int(pos), int(sa[i+1]), isS) {
			name++
		}
	}

	write := len(scratch) - 1
	for read := len(scratch) - 1; read >= 0; read-- {
		if scratch[read] == None[I]() {
			continue
		}
		scratch[write] = scratch[read]
		write--
	}

	return name + 1
}

// BuildBacktransform fills dest, which must have length at least the number
// of LMS positions in text, with every LMS position in text order. Applying
// it to a reduced suffix array (each entry an index into the reduced text,
// i.e. an LMS ordinal) recovers the corresponding position in the original
// text.
func BuildBacktransform[I Index](isS *BitVector[I], textLen int, dest []I) {
	w := 0
	for i := 1; i < textLen; i++ {
		if IsLMS(i, isS) {
			dest[w] = I(i)
			w++
		}
	}
}
