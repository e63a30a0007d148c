// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// iterators provides small sequence helpers.
package iterators

import (
	"math"
	"strings"

	"golang.org/x/exp/rand"
)

// Chunk splits items into consecutive chunks of the given size. The
// final chunk may be shorter. Chunks alias the input slice. Chunk
// panics if size < 1.
func Chunk[T any](items []T, size int) [][]T {
	if size < 1 {
		panic("iterators: chunk size must be at least 1")
	}
	chunks := make([][]T, 0, (len(items)+size-1)/size)
	for lo := 0; lo < len(items); lo += size {
		hi := lo + size
		if hi > len(items) {
			hi = len(items)
		}
		chunks = append(chunks, items[lo:hi])
	}
	return chunks
}

// Divide splits items into two, the first receiving the given
// fraction (rounded to the nearest element).
func Divide[T any](items []T, fraction float64) ([]T, []T) {
	size := int(math.Round(fraction * float64(len(items))))
	if size < 0 {
		size = 0
	} else if size > len(items) {
		size = len(items)
	}
	return items[:size], items[size:]
}

// Shuffled returns a copy of items in random order.
func Shuffled[T any](rnd *rand.Rand, items []T) []T {
	shuffled := append([]T(nil), items...)
	rnd.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}

// ReplaceAll returns the result of successive string replacements,
// applying each [old, new] pair in order.
func ReplaceAll(s string, replacements ...[2]string) string {
	for _, r := range replacements {
		s = strings.ReplaceAll(s, r[0], r[1])
	}
	return s
}

// NonNil returns the first non-nil pointer in the arguments list, or
// nil.
func NonNil[T any](ptrs ...*T) *T {
	for _, p := range ptrs {
		if p != nil {
			return p
		}
	}
	return nil
}
