package bst

import (
	"math/rand/v2"
	"slices"
	"strings"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestInOrderIsSorted(t *testing.T) {
	tree := FromValues(10, 5, 20, 3, 7, 15)

	require.Equal(t, []int{3, 5, 7, 10, 15, 20}, tree.InOrder())
	require.Equal(t, 6, tree.Len())
	require.Equal(t, 3, tree.Height())
}

func TestDuplicatesAreDropped(t *testing.T) {
	tree := New[string]()
	require.True(t, tree.Insert("b"))
	require.True(t, tree.Insert("a"))
	require.False(t, tree.Insert("b"))
	require.False(t, tree.Insert("a"))

	require.Equal(t, []string{"a", "b"}, tree.InOrder())
	require.Equal(t, 2, tree.Len())
}

func TestContainsMinMax(t *testing.T) {
	tree := FromValues(10, 5, 20, 3, 7, 15)

	require.True(t, tree.Contains(7))
	require.False(t, tree.Contains(8))

	lo, ok := tree.Min()
	require.True(t, ok)
	require.Equal(t, 3, lo)

	hi, ok := tree.Max()
	require.True(t, ok)
	require.Equal(t, 20, hi)
}

func TestEmptyTree(t *testing.T) {
	tree := New[float64]()

	require.True(t, tree.IsEmpty())
	require.Empty(t, tree.InOrder())
	require.False(t, tree.Contains(1))

	_, ok := tree.Min()
	require.False(t, ok)
	_, ok = tree.Max()
	require.False(t, ok)
}

func TestSortedInputDegenerates(t *testing.T) {
	tree := New[int]()
	for i := range 1000 {
		tree.Insert(i)
	}

	require.Equal(t, 1000, tree.Height())
	require.True(t, slices.IsSorted(tree.InOrder()))
}

func TestNewFunc(t *testing.T) {
	tree := NewFunc(func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	tree.Insert("b")
	tree.Insert("A")
	require.False(t, tree.Insert("B"))

	require.Equal(t, []string{"A", "b"}, tree.InOrder())
}

func TestMatchesRedBlackTree(t *testing.T) {
	r := rand.New(rand.NewPCG(11, 12))

	for range 100 {
		tree := New[int]()
		reference := redblacktree.NewWithIntComparator()

		for range r.IntN(200) {
			v := r.IntN(500)
			_, existed := reference.Get(v)
			require.Equal(t, !existed, tree.Insert(v))
			reference.Put(v, struct{}{})
		}

		expected := make([]int, 0, reference.Size())
		for _, k := range reference.Keys() {
			expected = append(expected, k.(int))
		}
		require.Equal(t, expected, tree.InOrder())
		require.Equal(t, reference.Size(), tree.Len())
	}
}
