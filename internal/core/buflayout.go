// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

// BufferConfig records, for one recursion level, which of its three scratch
// buffers (the is_s bit vector, the persistent bucket-start table, and the
// working bucket cursor table) fit in the surplus of the caller-provided
// main buffer beyond the text it is sorting, versus which must come from the
// auxiliary BufferStack.
type BufferConfig struct {
	IsSWords         int
	IsSInMain        bool
	PersistentInMain bool
	WorkingInMain    bool
}

// NumExtraBuffers reports how many of the three buffers were not placed in
// the main buffer, i.e. how many BufferStack pushes this level is
// responsible for popping when it finishes.
func (c BufferConfig) NumExtraBuffers() int {
	n := 0
	for _, inMain := range [...]bool{c.IsSInMain, c.PersistentInMain, c.WorkingInMain} {
		if !inMain {
			n++
		}
	}
	return n
}

// CalculateBufferConfig decides the placement above from the text length,
// the length of the main buffer available at this level, and the number of
// buckets. Its surplus (mainLen-textLen) is filled greedily, but the order
// in which the three buffers are tried depends on their relative sizes: if
// the bit vector is larger than a bucket table and fitting all three still
// isn't possible, trying the bit vector first would waste the surplus on a
// buffer that ends up only partially helpful, so the two same-sized bucket
// tables are tried first in that case, as they are whenever the bit vector
// is no larger than a bucket table.
func CalculateBufferConfig[I Index](textLen, mainLen, numBuckets int) BufferConfig {
	isSWords := WordsFor[I](textLen + 1)
	cfg := BufferConfig{IsSWords: isSWords}
	remaining := mainLen - textLen

	preferIsSFirst := isSWords > numBuckets && isSWords+2*numBuckets <= remaining

	if preferIsSFirst {
		if remaining >= isSWords {
			cfg.IsSInMain = true
			remaining -= isSWords
		}
		if remaining >= numBuckets {
			cfg.PersistentInMain = true
			remaining -= numBuckets
		}
		if remaining >= numBuckets {
			cfg.WorkingInMain = true
		}
		return cfg
	}

	if remaining >= numBuckets {
		cfg.PersistentInMain = true
		remaining -= numBuckets
	}
	if remaining >= numBuckets {
		cfg.WorkingInMain = true
		remaining -= numBuckets
	}
	if remaining >= isSWords {
		cfg.IsSInMain = true
	}
	return cfg
}

// Buffers bundles the three scratch regions a recursion level works with,
// however each one's storage was ultimately sourced.
type Buffers[I Index] struct {
	Main       []I
	IsS        []I
	Persistent []I
	Working    []I
}

// InstantiateOrRecoverBuffers carves the buffers marked in-main out of the
// tail of main, then sources whichever buffers are not in-main from extra,
// in Instantiating mode pushing fresh space (zeroing the persistent and is_s
// buffers, which accumulate state; the working buffer does not, since it is
// always fully overwritten before it is read) and in Recovering mode
// re-peeking the same space after a deeper recursion may have reallocated
// extra's backing array.
//
// Buffers pushed onto extra happen in a fixed order (is_s, persistent,
// working) for whichever of them are missing, so a later Recovering call
// peeks them back out in the same grouping a matching Instantiating call
// pushed them in.
func InstantiateOrRecoverBuffers[I Index](cfg BufferConfig, main []I, extra *BufferStack[I], numBuckets int, mode BufferMode) Buffers[I] {
	remaining := main
	var isS, persistent, working []I

	if cfg.IsSInMain {
		cut := len(remaining) - cfg.IsSWords
		remaining, isS = remaining[:cut], remaining[cut:]
		if mode == Instantiating {
			clear(isS)
		}
	}
	if cfg.PersistentInMain {
		cut := len(remaining) - numBuckets
		remaining, persistent = remaining[:cut], remaining[cut:]
		if mode == Instantiating {
			clear(persistent)
		}
	}
	if cfg.WorkingInMain {
		cut := len(remaining) - numBuckets
		remaining, working = remaining[:cut], remaining[cut:]
	}

	switch {
	case cfg.IsSInMain && cfg.PersistentInMain && cfg.WorkingInMain:
		// nothing extra needed
	case cfg.IsSInMain && cfg.PersistentInMain && !cfg.WorkingInMain:
		working = extra.PushOrPeek(numBuckets, mode)
	case cfg.IsSInMain && !cfg.PersistentInMain && !cfg.WorkingInMain:
		persistent, working = extra.PushOrPeekTwo(numBuckets, numBuckets, mode)
	case !cfg.IsSInMain && cfg.PersistentInMain && cfg.WorkingInMain:
		isS = extra.PushOrPeek(cfg.IsSWords, mode)
		if mode == Instantiating {
			clear(isS)
		}
	case !cfg.IsSInMain && cfg.PersistentInMain && !cfg.WorkingInMain:
		isS, working = extra.PushOrPeekTwo(cfg.IsSWords, numBuckets, mode)
		if mode == Instantiating {
			clear(isS)
		}
	case !cfg.IsSInMain && !cfg.PersistentInMain && !cfg.WorkingInMain:
		isS, persistent, working = extra.PushOrPeekThree(cfg.IsSWords, numBuckets, numBuckets, mode)
		if mode == Instantiating {
			clear(isS)
			clear(persistent)
		}
	default:
		// CalculateBufferConfig never sets WorkingInMain unless
		// PersistentInMain is also set, so this is unreachable.
		panic("core: invalid buffer configuration")
	}

	return Buffers[I]{Main: remaining, IsS: isS, Persistent: persistent, Working: working}
}

// CleanUpExtraBuffers pops every buffer this level pushed onto extra.
func CleanUpExtraBuffers[I Index](cfg BufferConfig, extra *BufferStack[I]) {
	for i := 0; i < cfg.NumExtraBuffers(); i++ {
		extra.Pop()
	}
}
