package demo

import (
	"fmt"
	"strings"

	"github.com/classicds/datastructs/pkg/containers"
	"github.com/classicds/datastructs/pkg/linkedlist"
	"github.com/classicds/datastructs/pkg/logger"
	"github.com/classicds/datastructs/pkg/queue"
	"github.com/classicds/datastructs/pkg/stack"
	"github.com/classicds/datastructs/pkg/tree/binarytree"
	"github.com/classicds/datastructs/pkg/tree/bst"
)

// Scenario builds a container, runs a fixed sequence of operations on it and
// reports the result of each.
type Scenario func(l logger.Logger) Report

// Scenarios maps the demo name to its scenario.
var Scenarios = map[string]Scenario{
	"linkedlist": LinkedList,
	"stack":      Stack,
	"queue":      Queue,
	"binarytree": BinaryTree,
	"bst":        BinarySearchTree,
}

func LinkedList(l logger.Logger) Report {
	r := Report{Container: "linkedlist"}
	list := linkedlist.New[int](containers.WithLogger(l))

	for _, v := range []int{1, 2, 3} {
		list.InsertAtEnd(v)
		r.record(fmt.Sprintf("insert_at_end(%d)", v), "%s", list)
	}

	list.InsertAtBeginning(0)
	r.record("insert_at_beginning(0)", "%s", list)

	if _, err := list.DeleteAtPosition(2); err != nil {
		r.record("delete_at_position(2)", "error: %v", err)
	} else {
		r.record("delete_at_position(2)", "%s", list)
	}

	for _, key := range []int{1, 5} {
		if pos, ok := list.Search(key); ok {
			r.record(fmt.Sprintf("search(%d)", key), "found at position %d", pos)
		} else {
			r.record(fmt.Sprintf("search(%d)", key), "not found")
		}
	}

	list.Reverse()
	r.record("reverse()", "%s", list)

	if err := list.InsertAtPosition(9, 10); err != nil {
		r.record("insert_at_position(9, 10)", "error: %v", err)
	}

	// the last delete runs on an empty list and is a no-op
	for range 4 {
		if list.DeleteAtEnd() {
			r.record("delete_at_end()", "%s", list)
		} else {
			r.record("delete_at_end()", "list is empty, no deletion performed")
		}
	}
	r.record("is_empty()", "%t", list.IsEmpty())

	return r
}

func Stack(l logger.Logger) Report {
	r := Report{Container: "stack"}
	s := stack.New[int](containers.WithLogger(l))

	for _, v := range []int{1, 2, 3} {
		s.Push(v)
		r.record(fmt.Sprintf("push(%d)", v), "%s", s)
	}

	r.record("peek()", "%s", optional[int](s.Peek()))
	for range 4 {
		r.record("pop()", "%s", optional[int](s.Pop()))
	}
	r.record("is_empty()", "%t", s.IsEmpty())

	return r
}

func Queue(l logger.Logger) Report {
	r := Report{Container: "queue"}
	q := queue.New[int](containers.WithLogger(l))

	for _, v := range []int{1, 2, 3} {
		q.Enqueue(v)
		r.record(fmt.Sprintf("enqueue(%d)", v), "%s", q)
	}

	r.record("peek()", "%s", optional[int](q.Peek()))
	for range 4 {
		r.record("dequeue()", "%s", optional[int](q.Dequeue()))
	}
	r.record("is_empty()", "%t", q.IsEmpty())

	return r
}

func BinaryTree(logger.Logger) Report {
	r := Report{Container: "binarytree"}
	tree := binarytree.New[int]()

	for v := 1; v <= 5; v++ {
		tree.Insert(v)
		r.record(fmt.Sprintf("insert(%d)", v), "level order %s", join(tree.LevelOrder()))
	}

	r.record("in_order()", "%s", join(tree.InOrder()))
	r.record("is_complete()", "%t", tree.IsComplete())
	r.record("height()", "%d", tree.Height())

	return r
}

func BinarySearchTree(logger.Logger) Report {
	r := Report{Container: "bst"}
	tree := bst.New[int]()

	for _, v := range []int{10, 5, 20, 3, 7, 15, 7} {
		if tree.Insert(v) {
			r.record(fmt.Sprintf("insert(%d)", v), "inserted")
		} else {
			r.record(fmt.Sprintf("insert(%d)", v), "duplicate ignored")
		}
	}

	r.record("in_order()", "%s", join(tree.InOrder()))
	r.record("contains(15)", "%t", tree.Contains(15))
	r.record("height()", "%d", tree.Height())

	return r
}

func optional[T any](v T, ok bool) string {
	if !ok {
		return "none"
	}
	return fmt.Sprint(v)
}

func join[T any](values []T) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		parts = append(parts, fmt.Sprint(v))
	}
	return strings.Join(parts, " ")
}
