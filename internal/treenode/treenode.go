// Package treenode holds the node shape and the walks shared by the binary
// tree packages. All walks are iterative, so deep or skewed trees do not grow
// the goroutine stack.
package treenode

import (
	"iter"

	"github.com/classicds/datastructs/internal/stack"
	"github.com/classicds/datastructs/pkg/queue"
)

type Node[T any] struct {
	Value       T
	Left, Right *Node[T]
}

// InOrder yields the values of the tree rooted at root: left subtree, node,
// right subtree.
func InOrder[T any](root *Node[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		var pending *stack.Stack[*Node[T]]
		current := root
		for current != nil || !stack.IsEmpty(pending) {
			for current != nil {
				pending = stack.Push(pending, current)
				current = current.Left
			}

			var n *Node[T]
			n, pending = stack.Pop(pending)
			if !yield(n.Value) {
				return
			}
			current = n.Right
		}
	}
}

// LevelOrder yields nodes breadth first, left to right within a level.
func LevelOrder[T any](root *Node[T]) iter.Seq[*Node[T]] {
	return func(yield func(*Node[T]) bool) {
		if root == nil {
			return
		}

		worklist := queue.New[*Node[T]]()
		worklist.Enqueue(root)
		for !worklist.IsEmpty() {
			n, _ := worklist.Dequeue()
			if !yield(n) {
				return
			}
			if n.Left != nil {
				worklist.Enqueue(n.Left)
			}
			if n.Right != nil {
				worklist.Enqueue(n.Right)
			}
		}
	}
}

// Height is the number of nodes on the longest root-to-leaf path; 0 for an
// empty tree.
func Height[T any](root *Node[T]) int {
	type frame struct {
		node  *Node[T]
		depth int
	}

	height := 0
	pending := stack.Push[frame](nil, frame{node: root, depth: 1})
	for !stack.IsEmpty(pending) {
		var f frame
		f, pending = stack.Pop(pending)
		if f.node == nil {
			continue
		}
		height = max(height, f.depth)
		pending = stack.Push(pending, frame{node: f.node.Left, depth: f.depth + 1})
		pending = stack.Push(pending, frame{node: f.node.Right, depth: f.depth + 1})
	}
	return height
}

// Collect drains seq into a slice; an empty sequence gives an empty, non-nil
// slice.
func Collect[T any](seq iter.Seq[T]) []T {
	values := []T{}
	for v := range seq {
		values = append(values, v)
	}
	return values
}
