// Copyright 2026 The go-nbt Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package mark

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOpenAssignsStableIndices(t *testing.T) {
	a := NewArena(0)
	root := a.Open(0)
	require.Equal(t, 0, root)

	child := a.Open(root)
	require.Equal(t, 1, child)
	require.Equal(t, 1, a.At(child).ParentOffset())
}

func TestGrowPreservesIndices(t *testing.T) {
	a := NewArena(0) // tiny initial capacity (0/32+4 == 4)
	indices := make([]int, 0, 32)
	for i := 0; i < 32; i++ {
		indices = append(indices, a.Open(0))
	}
	for i, idx := range indices {
		require.Equal(t, i, idx, "growth must never renumber a previously-opened mark")
	}
}

func TestListExhaustionOrdering(t *testing.T) {
	a := NewArena(0)
	i := a.Open(0)
	a.ListInit(i, 3, 2) // element kind 3 (INT), length 2

	require.False(t, a.ListExhausted(i))
	a.ListIncrement(i)
	require.False(t, a.ListExhausted(i))
	a.ListIncrement(i)
	require.True(t, a.ListExhausted(i))
}

func TestCloseWritesFinalForm(t *testing.T) {
	a := NewArena(0)
	root := a.Open(0)
	a.CompoundInit(root)
	child := a.Open(root)
	a.CompoundInit(child)

	a.Close(child, 100)
	require.Equal(t, 100, a.At(child).End())
	require.Equal(t, 1, a.At(child).FlatNextMark())

	a.Close(root, 200)
	require.Equal(t, 200, a.At(root).End())
	require.Equal(t, 2, a.At(root).FlatNextMark())
	require.Equal(t, 2, a.Len())
}

func TestListOfEndCountsDeclaredLength(t *testing.T) {
	a := NewArena(0)
	i := a.Open(0)
	a.ListInit(i, 0, 5) // element kind END, declared length 5: legal, no payload per element
	require.True(t, a.ListExhausted(i) == false)
	for n := 0; n < 5; n++ {
		require.False(t, a.ListExhausted(i))
		a.ListIncrement(i)
	}
	require.True(t, a.ListExhausted(i))
}
