// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func scanIsS(t *testing.T, text []byte) *BitVector[uint32] {
	t.Helper()
	words := make([]uint32, WordsFor[uint32](len(text)+1))
	isS := NewBitVector[uint32](words, len(text)+1)
	counts := make([]uint32, 256)
	ScanTypesAndCounts[byte, uint32](text, counts, isS)
	return isS
}

func TestLMSSubstringsUnequal(t *testing.T) {
	// "ababcabcabba": the LMS positions are 2, 5 and 8; 2 and 5 start the
	// equal substring "abca", 8 starts "abba" running to the sentinel. Every
	// LMS substring must compare equal to itself.
	text := []byte("ababcabcabba")
	isS := scanIsS(t, text)

	var lms []int
	for i := 1; i < len(text); i++ {
		if IsLMS(i, isS) {
			lms = append(lms, i)
		}
	}
	assert.NotEmpty(t, lms)

	for _, i := range lms {
		assert.False(t, lmsSubstringsUnequal[byte, uint32](text, i, i, isS), "a substring must equal itself")
	}
}

func TestLMSSubstringsUnequalDifferentLengths(t *testing.T) {
	// Two LMS substrings that agree on a prefix but end at different
	// points (one hits another LMS boundary sooner) are unequal.
	// "bababa": "aba" at 1 ends at LMS 3, while at 3 the same prefix
	// reaches position 5, which is not LMS.
	text := []byte("bababa")
	isS := scanIsS(t, text)

	var lms []int
	for i := 1; i < len(text); i++ {
		if IsLMS(i, isS) {
			lms = append(lms, i)
		}
	}
	assert.Equal(t, []int{1, 3}, lms)
	for i := 0; i < len(lms); i++ {
		for j := i + 1; j < len(lms); j++ {
			a, b := lms[i], lms[j]
			if a == b {
				continue
			}
			// Equality must be symmetric regardless of argument order.
			assert.Equal(t,
				lmsSubstringsUnequal[byte, uint32](text, a, b, isS),
				lmsSubstringsUnequal[byte, uint32](text, b, a, isS))
			assert.True(t, lmsSubstringsUnequal[byte, uint32](text, a, b, isS), "LMS substrings at %d and %d", a, b)
		}
	}
}

func TestPlaceTextOrderLMS(t *testing.T) {
	text := []byte("banana")
	isS := scanIsS(t, text)

	counts := make([]uint32, 256)
	ScanTypesAndCounts[byte, uint32](text, counts, isS)
	CountsToStarts[uint32](counts)
	ends := make([]uint32, 256)
	WriteBucketEnds[uint32](counts, ends, len(text))

	sa := make([]uint32, len(text))
	for i := range sa {
		sa[i] = None[uint32]()
	}
	numLMS := PlaceTextOrderLMS[byte, uint32](text, sa, isS, ends)
	assert.Equal(t, 2, numLMS)

	placed := map[uint32]bool{}
	for _, v := range sa {
		if v != None[uint32]() {
			placed[v] = true
		}
	}
	assert.True(t, placed[1])
	assert.True(t, placed[3])
	assert.Len(t, placed, 2)
}
