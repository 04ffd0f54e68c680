// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

// Construct sorts every suffix of text into sa using SA-IS, recursing on a
// reduced text of LMS-substring names when the initial induction does not
// already separate every suffix. sa must have length at least len(text),
// with its first len(text) cells set to None(I); maxChar must be the
// largest symbol occurring in text. extra is the auxiliary buffer stack
// shared across the whole recursion, used whenever a level's own scratch
// buffers do not fit in sa's surplus beyond len(text).
//
// Recursive calls pass the reduced text as []I rather than []C: reduced
// text "characters" are LMS-substring names, already of the index type, and
// I satisfies Symbol as well as Index.
func Construct[C Symbol, I Index](text []C, maxChar C, sa []I, extra *BufferStack[I]) {
	n := len(text)
	if n == 0 {
		return
	}
	numBuckets := rank(maxChar) + 1

	cfg := CalculateBufferConfig[I](n, len(sa), numBuckets)
	buf := InstantiateOrRecoverBuffers(cfg, sa, extra, numBuckets, Instantiating)

	isS := NewBitVector[I](buf.IsS, n+1)
	counts := buf.Persistent[:numBuckets]
	ScanTypesAndCounts[C, I](text, counts, isS)

	starts := counts
	CountsToStarts[I](starts)

	cursors := buf.Working[:numBuckets]
	WriteBucketEnds[I](starts, cursors, n)

	saWork := buf.Main[:n]
	numLMS := PlaceTextOrderLMS[C, I](text, saWork, isS, cursors)

	if numLMS > 1 {
		InduceSortLMSSubstrings[C, I](text, saWork, isS, starts, cursors, n)
		copy(saWork[:numLMS], saWork[n-numLMS:])

		k := NameLMSSubstrings[C, I](text, saWork, isS, numLMS)
		reducedText := saWork[n-numLMS : n]
		reducedSA := saWork[:numLMS]

		if k == numLMS {
			for i, v := range reducedText {
				reducedSA[v] = I(i)
			}
		} else {
			for i := range reducedSA {
				reducedSA[i] = None[I]()
			}
			Construct[I, I](reducedText, I(k-1), reducedSA, extra)
		}

		// Re-derive the buffers this level needs past the recursive call:
		// extra may have reallocated while the deeper level used it.
		buf = InstantiateOrRecoverBuffers(cfg, sa, extra, numBuckets, Recovering)
		isS = NewBitVector[I](buf.IsS, n+1)
		starts = buf.Persistent[:numBuckets]
		cursors = buf.Working[:numBuckets]

		backtransform := saWork[n-numLMS : n]
		BuildBacktransform[I](isS, n, backtransform)
		for i := range reducedSA {
			reducedSA[i] = backtransform[reducedSA[i]]
		}

		PlaceSortedLMS[C, I](text, saWork, numLMS, starts, cursors, n)
	}

	InduceFinalize[C, I](text, saWork, isS, starts, cursors, n)

	CleanUpExtraBuffers(cfg, extra)
}
