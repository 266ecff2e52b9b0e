// Package bst implements an unbalanced binary search tree without duplicates.
package bst

import (
	"cmp"
	"iter"

	"github.com/classicds/datastructs/internal/treenode"
)

// Tree keeps every value in a node's left subtree smaller than the node and
// every value in its right subtree larger. The tree is never rebalanced, so
// its shape follows insertion order; sorted input degenerates into a list.
// A Tree is not safe for concurrent use.
type Tree[T any] struct {
	root    *treenode.Node[T]
	compare func(a, b T) int
	size    int
}

// New returns an empty tree ordered by cmp.Compare.
func New[T cmp.Ordered]() *Tree[T] {
	return NewFunc(cmp.Compare[T])
}

// NewFunc returns an empty tree ordered by compare, which returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[T any](compare func(a, b T) int) *Tree[T] {
	return &Tree[T]{compare: compare}
}

// FromValues inserts values in order into a new tree.
func FromValues[T cmp.Ordered](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert adds value as a new leaf. Inserting a value that is already present
// is a no-op and returns false.
func (t *Tree[T]) Insert(value T) bool {
	link := &t.root
	for *link != nil {
		switch c := t.compare(value, (*link).Value); {
		case c < 0:
			link = &(*link).Left
		case c > 0:
			link = &(*link).Right
		default:
			return false
		}
	}

	*link = &treenode.Node[T]{Value: value}
	t.size++
	return true
}

func (t *Tree[T]) Contains(value T) bool {
	current := t.root
	for current != nil {
		switch c := t.compare(value, current.Value); {
		case c < 0:
			current = current.Left
		case c > 0:
			current = current.Right
		default:
			return true
		}
	}
	return false
}

// Min returns the smallest value, or false when the tree is empty.
func (t *Tree[T]) Min() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	current := t.root
	for current.Left != nil {
		current = current.Left
	}
	return current.Value, true
}

// Max returns the largest value, or false when the tree is empty.
func (t *Tree[T]) Max() (T, bool) {
	var zero T
	if t.root == nil {
		return zero, false
	}

	current := t.root
	for current.Right != nil {
		current = current.Right
	}
	return current.Value, true
}

// All returns an iterator over the values in ascending order.
func (t *Tree[T]) All() iter.Seq[T] {
	return treenode.InOrder(t.root)
}

// InOrder returns the values in ascending order.
func (t *Tree[T]) InOrder() []T {
	return treenode.Collect(t.All())
}

func (t *Tree[T]) Len() int {
	return t.size
}

func (t *Tree[T]) IsEmpty() bool {
	return t.root == nil
}

func (t *Tree[T]) Height() int {
	return treenode.Height(t.root)
}
