// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sais

import (
	"fmt"

	"github.com/nkamenev/saisgo/internal/core"
)

// maxAlphabetSize is the largest alphabet this package constructs suffix
// arrays over. Scanning an unbounded alphabet for its true size (as the
// character-map variant of the induced-sort algorithm does) is out of
// scope here; callers with larger alphabets must remap their text into this
// range themselves.
const maxAlphabetSize = 1 << 16

// These are programmer errors, not recoverable runtime conditions, so they
// panic rather than return an error: a caller can only fix them by changing
// the call site, never by retrying.

func validateAlphabet[C core.Symbol](maxChar C) {
	if uint64(maxChar) >= maxAlphabetSize {
		panic(fmt.Sprintf("sais: alphabet of size %d exceeds the %d-symbol limit; construction over larger alphabets is not implemented", uint64(maxChar)+1, maxAlphabetSize))
	}
}

func validateIndexWidth[I core.Index](textLen int) {
	if uint64(textLen) >= uint64(core.None[I]()) {
		panic(fmt.Sprintf("sais: text of length %d does not fit in the chosen index type (max %d)", textLen, uint64(core.None[I]())-1))
	}
}

func validateBuffer[C any, I any](text []C, sa []I) {
	if len(sa) < len(text) {
		panic(fmt.Sprintf("sais: sa buffer has length %d, want at least %d", len(sa), len(text)))
	}
}
