// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

import "golang.org/x/exp/constraints"

// Symbol is a character of the text's alphabet. It must be totally ordered,
// and its rank (its position in ascending order, starting at 0) must fit in
// an int. Alphabet symbols are assumed non-negative, matching the rank
// function of the algorithm this package is modeled on.
type Symbol interface {
	constraints.Integer
}

// rank maps a symbol to its position in the alphabet, 0 being the smallest
// possible symbol. For the integer alphabets this package supports, rank is
// simply the symbol's numeric value.
func rank[C Symbol](c C) int {
	return int(c)
}
