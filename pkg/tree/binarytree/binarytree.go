// Package binarytree implements a binary tree that stays complete: each insert
// fills the first free child slot in level order.
package binarytree

import (
	"iter"

	"github.com/classicds/datastructs/internal/treenode"
	"github.com/classicds/datastructs/pkg/queue"
)

// Tree is a complete binary tree. Values are placed by position, not by
// ordering, so the in-order walk is not sorted. A Tree is not safe for
// concurrent use.
type Tree[T any] struct {
	root *treenode.Node[T]
	size int
}

func New[T any]() *Tree[T] {
	return &Tree[T]{}
}

// FromValues inserts values in order into a new tree; the first becomes the
// root.
func FromValues[T any](values ...T) *Tree[T] {
	t := New[T]()
	for _, v := range values {
		t.Insert(v)
	}
	return t
}

// Insert places value in the first empty child slot found breadth first,
// trying the left slot of a node before its right slot.
func (t *Tree[T]) Insert(value T) {
	n := &treenode.Node[T]{Value: value}
	t.size++

	if t.root == nil {
		t.root = n
		return
	}

	worklist := queue.New[*treenode.Node[T]]()
	worklist.Enqueue(t.root)
	for {
		// a finite tree always has a free slot, so the worklist never drains
		current, _ := worklist.Dequeue()

		if current.Left == nil {
			current.Left = n
			return
		}
		worklist.Enqueue(current.Left)

		if current.Right == nil {
			current.Right = n
			return
		}
		worklist.Enqueue(current.Right)
	}
}

// All returns an in-order iterator over the values.
func (t *Tree[T]) All() iter.Seq[T] {
	return treenode.InOrder(t.root)
}

// InOrder returns the values visiting left subtree, node, right subtree.
func (t *Tree[T]) InOrder() []T {
	return treenode.Collect(t.All())
}

// LevelOrder returns the values breadth first, which for this tree is also
// insertion order.
func (t *Tree[T]) LevelOrder() []T {
	values := make([]T, 0, t.size)
	for n := range treenode.LevelOrder(t.root) {
		values = append(values, n.Value)
	}
	return values
}

// IsComplete reports whether every level is full except possibly the last,
// which is filled from the left.
func (t *Tree[T]) IsComplete() bool {
	return IsComplete(t.root)
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

// IsComplete reports whether the tree rooted at root is complete. Once a
// missing child has been seen in level order, no later node may have
// children.
func IsComplete[T any](root *treenode.Node[T]) bool {
	gap := false
	for n := range treenode.LevelOrder(root) {
		for _, child := range []*treenode.Node[T]{n.Left, n.Right} {
			if child == nil {
				gap = true
				continue
			}
			if gap {
				return false
			}
		}
	}
	return true
}
