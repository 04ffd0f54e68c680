// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sais constructs suffix arrays over integer-alphabet texts using
// SA-IS (suffix array by induced sorting). The whole recursive construction
// runs inside a single caller-provided buffer: the only extra allocation is
// a small auxiliary stack used when that buffer's surplus beyond the text
// itself runs out.
//
// This package builds the array; it does not search it. Pair it with your
// own binary search over the result, or a wrapper type, if you need prefix
// or suffix lookups.
package sais

import "github.com/nkamenev/saisgo/internal/core"

// Builder configures and runs a suffix array construction. The zero value,
// or the result of New, is ready to use; WithMaxChar is optional.
//
// C is the alphabet's symbol type and I is the index type backing the
// resulting suffix array -- both generic so callers can pick the narrowest
// types that fit their text and its length.
type Builder[C core.Symbol, I core.Index] struct {
	maxChar    C
	maxCharSet bool
}

// New returns a Builder with no max character set; ConstructInto and
// Construct scan the text for it on every call.
func New[C core.Symbol, I core.Index]() *Builder[C, I] {
	return &Builder[C, I]{}
}

// WithMaxChar records the largest symbol that occurs in the text to be
// sorted, skipping the scan ConstructInto would otherwise perform. The
// caller is responsible for its accuracy: supplying a value smaller than
// the text's true maximum makes construction panic with an index out of
// range, since the per-symbol count table is sized from it.
func (b *Builder[C, I]) WithMaxChar(c C) *Builder[C, I] {
	b.maxChar = c
	b.maxCharSet = true
	return b
}

// ConstructInto builds the suffix array of text into sa, which must have
// length at least len(text). The suffix array is written to the first
// len(text) cells; any surplus beyond that is used only as extra scratch
// space for construction, never as part of the returned order.
func (b *Builder[C, I]) ConstructInto(text []C, sa []I) {
	validateBuffer(text, sa)

	maxChar := b.maxChar
	if !b.maxCharSet {
		maxChar = scanMaxChar(text)
	}
	validateAlphabet(maxChar)
	validateIndexWidth[I](len(text))

	for i := range text {
		sa[i] = core.None[I]()
	}

	var extra core.BufferStack[I]
	core.Construct[C, I](text, maxChar, sa, &extra)
}

// Construct builds and returns the suffix array of text.
func (b *Builder[C, I]) Construct(text []C) []I {
	sa := make([]I, len(text))
	b.ConstructInto(text, sa)
	return sa
}

func scanMaxChar[C core.Symbol](text []C) C {
	var max C
	for _, c := range text {
		if c > max {
			max = c
		}
	}
	return max
}
