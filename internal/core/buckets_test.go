// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountsToStarts(t *testing.T) {
	counts := []uint32{2, 0, 3, 1}
	CountsToStarts[uint32](counts)
	assert.Equal(t, []uint32{0, 2, 2, 5}, counts)
}

func TestWriteBucketEndsOrdinary(t *testing.T) {
	// 'a'x2, 'b'x0, 'c'x3, 'd'x1 over a text of length 6.
	starts := []uint32{0, 2, 2, 5}
	ends := make([]uint32, len(starts))
	WriteBucketEnds[uint32](starts, ends, 6)
	assert.Equal(t, []uint32{1, 1, 4, 5}, ends)
}

func TestWriteBucketEndsLastBucketEmpty(t *testing.T) {
	// Last bucket empty, textLen > 1, more than one bucket: end backs off
	// by one extra so induction never reads past the real text.
	starts := []uint32{0, 3, 3}
	ends := make([]uint32, len(starts))
	WriteBucketEnds[uint32](starts, ends, 3)
	assert.Equal(t, []uint32{2, 2, 1}, ends)
}

func TestWriteBucketEndsSingleBucket(t *testing.T) {
	starts := []uint32{0}
	ends := make([]uint32, 1)
	WriteBucketEnds[uint32](starts, ends, 5)
	assert.Equal(t, []uint32{4}, ends)
}

func TestBucketBorders(t *testing.T) {
	starts := []uint32{0, 2, 2, 5}
	var got [][2]int
	for s, e := range BucketBorders[uint32](starts, 6) {
		got = append(got, [2]int{s, e})
	}
	assert.Equal(t, [][2]int{{0, 2}, {2, 2}, {2, 5}, {5, 6}}, got)

	got = got[:0]
	for s, e := range BucketBordersRev[uint32](starts, 6) {
		got = append(got, [2]int{s, e})
	}
	assert.Equal(t, [][2]int{{5, 6}, {2, 5}, {2, 2}, {0, 2}}, got)
}
