// Copyright 2026 Bryan Silverthorn. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package iterators

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestChunk(t *testing.T) {
	require.Equal(t,
		[][]int{{1, 2}, {3, 4}, {5}},
		Chunk([]int{1, 2, 3, 4, 5}, 2),
	)
	require.Equal(t,
		[][]int{{1, 2, 3}},
		Chunk([]int{1, 2, 3}, 10),
	)
	require.Empty(t, Chunk([]int{}, 3))
	require.Panics(t, func() { Chunk([]int{1}, 0) })
}

func TestDivide(t *testing.T) {
	front, back := Divide([]int{1, 2, 3, 4}, 0.5)
	require.Equal(t, []int{1, 2}, front)
	require.Equal(t, []int{3, 4}, back)

	front, back = Divide([]int{1, 2, 3}, 0)
	require.Empty(t, front)
	require.Equal(t, []int{1, 2, 3}, back)

	front, back = Divide([]int{1, 2, 3}, 1)
	require.Equal(t, []int{1, 2, 3}, front)
	require.Empty(t, back)
}

func TestShuffled(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	shuffled := Shuffled(rand.New(rand.NewSource(42)), items)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, items)
	require.Len(t, shuffled, len(items))

	sorted := append([]int(nil), shuffled...)
	sort.Ints(sorted)
	require.Equal(t, items, sorted)
}

func TestReplaceAll(t *testing.T) {
	require.Equal(t, "c c", ReplaceAll("a b", [2]string{"a", "b"}, [2]string{"b", "c"}))
	require.Equal(t, "unchanged", ReplaceAll("unchanged"))
}

func TestNonNil(t *testing.T) {
	a, b := 1, 2
	require.Equal(t, &a, NonNil(nil, &a, &b))
	require.Nil(t, NonNil[int](nil, nil))
}
